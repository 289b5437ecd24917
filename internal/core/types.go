// Package core provides the shared types, errors and options used by the
// header parser, the version registry and the manifest helpers.
package core

import "encoding/json"

// Header is the metadata carried by the leading comment block of an
// index.d.ts file.
type Header struct {
	LibraryName         string        `json:"libraryName"`
	LibraryMajorVersion int           `json:"libraryMajorVersion"`
	LibraryMinorVersion int           `json:"libraryMinorVersion"`
	TypeScriptVersion   Version       `json:"typeScriptVersion"`
	NonNpm              bool          `json:"nonNpm"`
	Projects            []string      `json:"projects"`
	Contributors        []Contributor `json:"contributors"`
}

// Contributor is one entry of the "Definitions by" line.
type Contributor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// GithubUsername is empty when URL is not a GitHub profile URL.
	GithubUsername string `json:"githubUsername,omitempty"`
}

// Manifest is the package.json fragment derived from a parsed header.
type Manifest struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	Description       string         `json:"description"`
	Homepage          string         `json:"homepage"`
	License           string         `json:"license"`
	Contributors      []Contributor  `json:"contributors"`
	Types             string         `json:"types"`
	TypesVersions     json.Marshaler `json:"typesVersions,omitempty"`
	TypeScriptVersion Version        `json:"typeScriptVersion"`
	NonNpm            bool           `json:"nonNpm,omitempty"`
}
