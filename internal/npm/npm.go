// Package npm knows how type definitions are published to npmjs.com: the
// @types package name for a definitions folder, its URLs and PURL, and the
// package.json fragment derived from its header.
package npm

import (
	"fmt"
	"io"
	"strings"

	"github.com/git-pkgs/typesheader/internal/core"
	"github.com/git-pkgs/typesheader/internal/typesversions"
)

const (
	DefaultURL = "https://registry.npmjs.org"
	TypesScope = "@types"

	// HomepageBase is the folder under which every definitions folder lives.
	HomepageBase = "https://github.com/DefinitelyTyped/DefinitelyTyped/tree/master/types/"
)

// TypesPackageName returns the npm name for a definitions folder.
// Scoped packages are mangled: "@babel/core" becomes "@types/babel__core".
func TypesPackageName(dir string) string {
	return TypesScope + "/" + mangleScoped(dir)
}

// DirectoryName is the inverse of TypesPackageName.
func DirectoryName(pkgName string) (string, error) {
	name, ok := strings.CutPrefix(pkgName, TypesScope+"/")
	if !ok || name == "" {
		return "", fmt.Errorf("%q is not an %s package", pkgName, TypesScope)
	}
	if scope, rest, found := strings.Cut(name, "__"); found {
		return "@" + scope + "/" + rest, nil
	}
	return name, nil
}

// DirectoryFromPURL returns the definitions folder named by an @types PURL
// such as "pkg:npm/%40types/babel__core@7.20".
func DirectoryFromPURL(purl string) (string, error) {
	p, err := core.ParsePURL(purl)
	if err != nil {
		return "", err
	}
	return DirectoryName(p.FullName())
}

func mangleScoped(dir string) string {
	if strings.HasPrefix(dir, "@") && strings.Contains(dir, "/") {
		parts := strings.SplitN(dir, "/", 2)
		return strings.TrimPrefix(parts[0], "@") + "__" + parts[1]
	}
	return dir
}

// PackageVersion is the version a header's library version publishes as,
// before the publisher assigns a patch number.
func PackageVersion(h *core.Header) string {
	return fmt.Sprintf("%d.%d.0", h.LibraryMajorVersion, h.LibraryMinorVersion)
}

// BuildManifest assembles the package.json fragment for the definitions in dir.
// versions lists the tsX.Y subfolders; it may be empty.
func BuildManifest(dir string, h *core.Header, versions []core.Version, opts ...core.Option) (*core.Manifest, error) {
	if h == nil {
		return nil, fmt.Errorf("nil header for %s", dir)
	}
	tv, err := typesversions.Build(versions, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	m := &core.Manifest{
		Name:              TypesPackageName(dir),
		Version:           PackageVersion(h),
		Description:       "TypeScript definitions for " + h.LibraryName,
		Homepage:          HomepageBase + mangleScoped(dir),
		License:           "MIT",
		Contributors:      h.Contributors,
		Types:             "index.d.ts",
		TypeScriptVersion: h.TypeScriptVersion,
		NonNpm:            h.NonNpm,
	}
	if tv != nil {
		m.TypesVersions = tv
	}
	return m, nil
}

// WriteManifest writes m as a 4-space indented package.json document.
func WriteManifest(w io.Writer, m *core.Manifest) error {
	return typesversions.WriteJSON(w, m, "    ")
}

var _ core.URLBuilder = (*URLs)(nil)

// URLs builds npmjs.com URLs for @types packages.
type URLs struct {
	baseURL string
}

// NewURLs returns a URL builder for the given registry. An empty baseURL
// means DefaultURL.
func NewURLs(baseURL string) *URLs {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &URLs{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (u *URLs) Registry(name, version string) string {
	if version != "" {
		return fmt.Sprintf("https://www.npmjs.com/package/%s/v/%s", name, version)
	}
	return fmt.Sprintf("https://www.npmjs.com/package/%s", name)
}

func (u *URLs) Download(name, version string) string {
	if version == "" {
		return ""
	}
	shortName := name
	if strings.Contains(name, "/") {
		parts := strings.SplitN(name, "/", 2)
		shortName = parts[1]
	}
	return fmt.Sprintf("%s/%s/-/%s-%s.tgz", u.baseURL, name, shortName, version)
}

// Documentation points at the definitions folder; packages outside @types have none.
func (u *URLs) Documentation(name, version string) string {
	folder, ok := strings.CutPrefix(name, TypesScope+"/")
	if !ok {
		return ""
	}
	return HomepageBase + folder
}

func (u *URLs) PURL(name, version string) string {
	p := core.NewNpmPURL(name, version)
	return p.ToString()
}

