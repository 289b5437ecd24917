// Package header parses the comment block at the top of a DefinitelyTyped
// index.d.ts file:
//
//	// Type definitions for foo 1.2
//	// Project: https://github.com/foo/foo, https://foo.com
//	// Definitions by: My Self <https://github.com/me>
//	// Definitions: https://github.com/DefinitelyTyped/DefinitelyTyped
//	// TypeScript Version: 4.5
//
// The version line is optional. Project and contributor lists may wrap onto
// following comment lines aligned with their first entry.
package header

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/git-pkgs/typesheader/internal/core"
	"github.com/git-pkgs/typesheader/internal/tsversion"
)

// DefinitionsURL is the only value accepted on the "Definitions:" line.
const DefinitionsURL = "https://github.com/DefinitelyTyped/DefinitelyTyped"

const (
	expectTitle        = "'Type definitions for <name> <major>.<minor>' line"
	expectProject      = "'Project:' line"
	expectContributors = "'Definitions by:' line"
	expectDefinitions  = "'Definitions: " + DefinitionsURL + "' line"
)

var (
	titlePattern       = regexp.MustCompile(`^//\s*Type definitions for\s+(non-npm package\s+)?(.*)$`)
	libraryVersion     = regexp.MustCompile(`^(\d+)\.(\d+)$`)
	definitionsPattern = regexp.MustCompile(`^//\s*Definitions:\s*(\S+)\s*$`)
	versionLinePrefix  = regexp.MustCompile(`^//\s*(?:Minimum\s+)?TypeScript Version:`)
	versionLinePattern = regexp.MustCompile(`^//\s*(?:Minimum\s+)?TypeScript Version:\s*(\S+)\s*$`)
)

// Parser turns header text into a core.Header. It holds no mutable state.
type Parser struct {
	registry core.VersionRegistry
	logger   *log.Logger
}

// New creates a parser. Without WithRegistry the embedded version table is used.
func New(opts ...core.Option) *Parser {
	o := core.NewOptions(opts...)
	p := &Parser{registry: o.Registry, logger: o.Logger}
	if p.registry == nil {
		p.registry = tsversion.Default()
	}
	return p
}

// Parse parses the header at the start of src. Anything after the header is
// ignored. Lines are separated by "\n".
func (p *Parser) Parse(src string) (*core.Header, error) {
	c := newCursor(strings.TrimPrefix(src, "\ufeff"))
	c.skipBlank()

	h := &core.Header{}
	if err := p.parseTitle(c, h); err != nil {
		return nil, err
	}

	projects, err := p.parseList(c, expectProject, "Project:")
	if err != nil {
		return nil, err
	}
	for _, e := range projects {
		if strings.ContainsAny(e.text, " \t") {
			return nil, &core.HeaderParseError{Expected: expectProject, Line: e.line, Reason: "malformed url " + strconv.Quote(e.text)}
		}
		h.Projects = append(h.Projects, e.text)
	}

	contributors, err := p.parseList(c, expectContributors, "Definitions by:")
	if err != nil {
		return nil, err
	}
	for _, e := range contributors {
		contributor, err := ParseContributor(e.text)
		if err != nil {
			var perr *core.HeaderParseError
			if errors.As(err, &perr) {
				return nil, &core.HeaderParseError{Expected: expectContributors, Line: e.line, Reason: perr.Reason + " in " + strconv.Quote(e.text)}
			}
			return nil, err
		}
		if contributor.GithubUsername == "" {
			p.logger.Debug("contributor url is not a github profile", "name", contributor.Name, "url", contributor.URL)
		}
		h.Contributors = append(h.Contributors, contributor)
	}

	if err := p.parseDefinitions(c); err != nil {
		return nil, err
	}

	h.TypeScriptVersion = p.registry.Lowest()
	if line, ok := c.peek(); ok && versionLinePrefix.MatchString(line) {
		c.next()
		v, err := p.ParseTypeScriptVersionLine(line)
		if err != nil {
			return nil, err
		}
		h.TypeScriptVersion = v
	}

	p.logger.Debug("parsed header",
		"library", h.LibraryName,
		"projects", len(h.Projects),
		"contributors", len(h.Contributors),
		"typescript", h.TypeScriptVersion)
	return h, nil
}

// ParseTypeScriptVersionLine parses a single "// [Minimum ]TypeScript Version: X.Y"
// line and checks the version against the registry.
func (p *Parser) ParseTypeScriptVersionLine(line string) (core.Version, error) {
	m := versionLinePattern.FindStringSubmatch(line)
	if m == nil || !p.registry.IsTypeScriptVersion(m[1]) {
		return "", &core.InvalidVersionError{Line: line}
	}
	return core.Version(m[1]), nil
}

func (p *Parser) parseTitle(c *cursor, h *core.Header) error {
	line, ok := c.next()
	if !ok {
		return &core.HeaderParseError{Expected: expectTitle, Reason: "empty input"}
	}
	m := titlePattern.FindStringSubmatch(line)
	if m == nil {
		return &core.HeaderParseError{Expected: expectTitle, Line: line, Reason: "not a title line"}
	}

	rest := strings.TrimSpace(m[2])
	name, version := "", rest
	if idx := strings.LastIndexAny(rest, " \t"); idx >= 0 {
		name, version = strings.TrimSpace(rest[:idx]), rest[idx+1:]
	}
	vm := libraryVersion.FindStringSubmatch(version)
	if vm == nil {
		return &core.HeaderParseError{Expected: expectTitle, Line: line, Reason: "malformed library version " + strconv.Quote(version)}
	}
	if name == "" {
		return &core.HeaderParseError{Expected: expectTitle, Line: line, Reason: "missing library name"}
	}
	major, err := strconv.Atoi(vm[1])
	if err != nil {
		return &core.HeaderParseError{Expected: expectTitle, Line: line, Reason: err.Error()}
	}
	minor, err := strconv.Atoi(vm[2])
	if err != nil {
		return &core.HeaderParseError{Expected: expectTitle, Line: line, Reason: err.Error()}
	}

	h.LibraryName = name
	h.LibraryMajorVersion = major
	h.LibraryMinorVersion = minor
	h.NonNpm = m[1] != ""
	p.logger.Debug("parsed title", "library", name, "major", major, "minor", minor, "nonNpm", h.NonNpm)
	return nil
}

func (p *Parser) parseDefinitions(c *cursor) error {
	line, ok := c.next()
	if !ok {
		return &core.HeaderParseError{Expected: expectDefinitions, Reason: "unexpected end of header"}
	}
	m := definitionsPattern.FindStringSubmatch(line)
	if m == nil {
		return &core.HeaderParseError{Expected: expectDefinitions, Line: line, Reason: "not a definitions line"}
	}
	if strings.TrimSuffix(m[1], "/") != DefinitionsURL {
		return &core.HeaderParseError{Expected: expectDefinitions, Line: line, Reason: "definitions must point at " + DefinitionsURL}
	}
	return nil
}
