package header

import (
	"errors"
	"testing"

	"github.com/git-pkgs/typesheader/internal/core"
)

func TestParseContributor(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantURL  string
		wantUser string
	}{
		{"My Self <https://github.com/me>", "My Self", "https://github.com/me", "me"},
		{"My Self <https://github.com/me/>", "My Self", "https://github.com/me", "me"},
		{"  Padded   Name   <https://github.com/some-user>  ", "Padded   Name", "https://github.com/some-user", "some-user"},
		{"Bad Url <sptth://hubgit.moc/em>", "Bad Url", "sptth://hubgit.moc/em", ""},
		{"Repo Link <https://github.com/me/repo>", "Repo Link", "https://github.com/me/repo", ""},
		{"Plain Http <http://github.com/me>", "Plain Http", "http://github.com/me", ""},
		{"Other Host <https://gitlab.com/me>", "Other Host", "https://gitlab.com/me", ""},
		{"Sub Domain <https://gist.github.com/me>", "Sub Domain", "https://gist.github.com/me", ""},
		{"Bare Root <https://github.com/>", "Bare Root", "https://github.com/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseContributor(tt.input)
			if err != nil {
				t.Fatalf("ParseContributor(%q) failed: %v", tt.input, err)
			}
			if c.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", c.Name, tt.wantName)
			}
			if c.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", c.URL, tt.wantURL)
			}
			if c.GithubUsername != tt.wantUser {
				t.Errorf("GithubUsername = %q, want %q", c.GithubUsername, tt.wantUser)
			}
		})
	}
}

func TestParseContributorErrors(t *testing.T) {
	for _, input := range []string{
		"No Url",
		"<https://github.com/me>",
		"Unclosed <https://github.com/me",
		"Empty <>",
		"Nested <https://a<b>",
		"",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseContributor(input)
			if err == nil {
				t.Fatalf("ParseContributor(%q) succeeded, want error", input)
			}
			if !errors.Is(err, core.ErrHeaderParse) {
				t.Errorf("error %v does not wrap ErrHeaderParse", err)
			}
		})
	}
}
