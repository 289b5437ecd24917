// Package typesheader parses the header comment of DefinitelyTyped type
// definitions and computes the TypeScript version metadata that goes into
// the published package.json.
//
// Basic usage:
//
//	import "github.com/git-pkgs/typesheader"
//
//	h, err := typesheader.ParseHeaderOrFail(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(h.LibraryName, h.TypeScriptVersion)
//
//	tv, err := typesheader.MakeTypesVersionsForPackageJSON([]typesheader.Version{"4.2", "4.6"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The version registry is fixed at build time and shared by every call;
// all functions are safe for concurrent use.
package typesheader

import (
	"fmt"
	"io"

	"github.com/git-pkgs/purl"
	packageurl "github.com/package-url/packageurl-go"
	"github.com/git-pkgs/typesheader/internal/core"
	"github.com/git-pkgs/typesheader/internal/header"
	"github.com/git-pkgs/typesheader/internal/npm"
	"github.com/git-pkgs/typesheader/internal/tsversion"
	"github.com/git-pkgs/typesheader/internal/typesversions"
)

// Re-export types from internal/core
type (
	// Header is the parsed header of an index.d.ts file.
	Header = core.Header

	// Contributor is one "Definitions by" entry.
	Contributor = core.Contributor

	// Version is a "MAJOR.MINOR" TypeScript version.
	Version = core.Version

	// Manifest is the package.json fragment built from a header.
	Manifest = core.Manifest

	// URLBuilder constructs URLs for a package.
	URLBuilder = core.URLBuilder

	// Option configures parsing and building.
	Option = core.Option

	// VersionRegistry is what the parser needs from a version registry.
	VersionRegistry = core.VersionRegistry
)

// TypesVersions is the ordered typesVersions table.
type TypesVersions = typesversions.TypesVersions

// Registry is the ordered list of known TypeScript versions.
type Registry = tsversion.Registry

// RegistryTable declares a registry's bounds.
type RegistryTable = tsversion.Table

// Re-export errors
var (
	ErrHeaderParse    = core.ErrHeaderParse
	ErrInvalidVersion = core.ErrInvalidVersion
	ErrRedirectTooNew = core.ErrRedirectTooNew
)

// Error types
type (
	HeaderParseError    = core.HeaderParseError
	InvalidVersionError = core.InvalidVersionError
	RedirectTooNewError = core.RedirectTooNewError
)

// WithRegistry replaces the default version registry.
var WithRegistry = core.WithRegistry

// WithLogger sets a charmbracelet/log logger for debug output.
var WithLogger = core.WithLogger

// ParseHeaderOrFail parses the header at the top of an index.d.ts file.
// It never returns a partially filled Header.
func ParseHeaderOrFail(src string, opts ...Option) (*Header, error) {
	return header.New(opts...).Parse(src)
}

// ParseTypeScriptVersionLine parses a single "// TypeScript Version: X.Y" line.
func ParseTypeScriptVersionLine(line string, opts ...Option) (Version, error) {
	return header.New(opts...).ParseTypeScriptVersionLine(line)
}

// ParseContributor parses one "Name <url>" entry.
func ParseContributor(token string) (Contributor, error) {
	return header.ParseContributor(token)
}

// MakeTypesVersionsForPackageJSON builds the typesVersions table for the given
// tsX.Y folders. It returns nil when versions is empty.
func MakeTypesVersionsForPackageJSON(versions []Version, opts ...Option) (*TypesVersions, error) {
	return typesversions.Build(versions, opts...)
}

// DefaultRegistry returns the built-in version registry.
func DefaultRegistry() *Registry {
	return tsversion.Default()
}

// NewRegistry builds a registry from an explicit table.
func NewRegistry(t RegistryTable) (*Registry, error) {
	return tsversion.New(t)
}

// AllVersions returns every known TypeScript version, oldest first.
func AllVersions() []Version {
	return tsversion.Default().All()
}

// SupportedVersions returns the versions still tested and published.
func SupportedVersions() []Version {
	return tsversion.Default().Supported()
}

// UnsupportedVersions returns the known versions no longer supported.
func UnsupportedVersions() []Version {
	return tsversion.Default().Unsupported()
}

// IsTypeScriptVersion reports whether s is a known TypeScript version.
func IsTypeScriptVersion(s string) bool {
	return tsversion.Default().IsTypeScriptVersion(s)
}

// IsSupported reports whether v is still supported.
func IsSupported(v Version) bool {
	return tsversion.Default().IsSupported(v)
}

// Range returns every version from from to the newest.
func Range(from Version) ([]Version, error) {
	return tsversion.Default().Range(from)
}

// TagsToUpdate returns the dist-tags to move when publishing for from.
func TagsToUpdate(from Version) ([]string, error) {
	return tsversion.Default().TagsToUpdate(from)
}

// TypesPackageName returns the @types package name for a definitions folder.
func TypesPackageName(dir string) string {
	return npm.TypesPackageName(dir)
}

// BuildManifest assembles the package.json fragment for a definitions folder.
func BuildManifest(dir string, h *Header, versions []Version, opts ...Option) (*Manifest, error) {
	return npm.BuildManifest(dir, h, versions, opts...)
}

// WriteManifest writes m as package.json text. typesVersions keys keep their
// order and their "<" unescaped.
func WriteManifest(w io.Writer, m *Manifest) error {
	return npm.WriteManifest(w, m)
}

// BuildURLs returns the registry, download, docs and purl URLs of the
// published @types package for dir at the given version. Keys with no URL
// are omitted.
func BuildURLs(dir, version string) map[string]string {
	return core.BuildURLs(npm.NewURLs(""), npm.TypesPackageName(dir), version)
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components. Like the
// internal npm helpers it only accepts npm PURLs.
func ParsePURL(purlStr string) (*PURL, error) {
	p, err := purl.Parse(purlStr)
	if err != nil {
		return nil, err
	}
	if p.Type != packageurl.TypeNPM {
		return nil, fmt.Errorf("not an npm PURL: %s", purlStr)
	}
	return p, nil
}
