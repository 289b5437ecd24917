package core

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderParse is returned when a required header line is missing or malformed.
	ErrHeaderParse = errors.New("header parse error")

	// ErrInvalidVersion is returned when a version is not known to the registry.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrRedirectTooNew is returned when a typesVersions table would redirect every compiler.
	ErrRedirectTooNew = errors.New("redirect too new")
)

// HeaderParseError reports which expected header line failed and why.
type HeaderParseError struct {
	Expected string // e.g. "Project line"
	Line     string // raw offending line, empty at end of input
	Reason   string
}

func (e *HeaderParseError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("expected %s: %s", e.Expected, e.Reason)
	}
	return fmt.Sprintf("expected %s: %s: line is '%s'", e.Expected, e.Reason, e.Line)
}

func (e *HeaderParseError) Unwrap() error {
	return ErrHeaderParse
}

// InvalidVersionError wraps ErrInvalidVersion with the offending source text.
type InvalidVersionError struct {
	Line    string // full source line, when the version came from a header
	Version string
}

func (e *InvalidVersionError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("Could not parse version: line is '%s'", e.Line)
	}
	return fmt.Sprintf("unknown TypeScript version %q", e.Version)
}

func (e *InvalidVersionError) Unwrap() error {
	return ErrInvalidVersion
}

// RedirectTooNewError is returned for a typesVersions table whose only entry is
// the newest known version.
type RedirectTooNewError struct {
	Version Version
}

func (e *RedirectTooNewError) Error() string {
	return fmt.Sprintf("%s is too new: it covers all versions of typescript", e.Version.Tag())
}

func (e *RedirectTooNewError) Unwrap() error {
	return ErrRedirectTooNew
}
