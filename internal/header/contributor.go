package header

import (
	"regexp"
	"strings"

	"github.com/git-pkgs/typesheader/internal/core"
)

var githubProfile = regexp.MustCompile(`^https://github\.com/([^/?#\s]+)/?$`)

// ParseContributor parses a single "Name <url>" entry. A URL that is not a
// GitHub profile is kept verbatim and leaves GithubUsername empty.
func ParseContributor(token string) (core.Contributor, error) {
	token = strings.TrimSpace(token)
	open := strings.Index(token, "<")
	if open < 0 || !strings.HasSuffix(token, ">") {
		return core.Contributor{}, &core.HeaderParseError{
			Expected: "contributor",
			Line:     token,
			Reason:   "want 'Name <url>'",
		}
	}

	name := strings.TrimSpace(token[:open])
	if name == "" {
		return core.Contributor{}, &core.HeaderParseError{
			Expected: "contributor",
			Line:     token,
			Reason:   "missing name",
		}
	}

	url := token[open+1 : len(token)-1]
	if url == "" || strings.ContainsAny(url, "<>") {
		return core.Contributor{}, &core.HeaderParseError{
			Expected: "contributor",
			Line:     token,
			Reason:   "malformed url",
		}
	}

	c := core.Contributor{Name: name, URL: url}
	if m := githubProfile.FindStringSubmatch(url); m != nil {
		c.GithubUsername = m[1]
		c.URL = "https://github.com/" + m[1]
	}
	return c, nil
}
