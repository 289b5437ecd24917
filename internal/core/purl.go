package core

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// PURL wraps packageurl.PackageURL with npm-specific helpers.
type PURL struct {
	packageurl.PackageURL
}

// NewNpmPURL builds a PURL for an npm package name such as "@types/node".
// version may be empty.
func NewNpmPURL(fullName, version string) PURL {
	namespace, name := "", fullName
	if strings.HasPrefix(fullName, "@") && strings.Contains(fullName, "/") {
		parts := strings.SplitN(fullName, "/", 2)
		namespace, name = parts[0], parts[1]
	}
	p := packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, version, nil, "")
	return PURL{*p}
}

// FullName returns the package name in the format npm expects, e.g. "@types/node".
func (p PURL) FullName() string {
	if p.Namespace == "" {
		return p.Name
	}
	// packageurl-go keeps @ in namespace, so "@types" + "/" + "node" = "@types/node"
	return p.Namespace + "/" + p.Name
}

// ParsePURL parses a Package URL string into its components.
// Only npm PURLs are accepted.
func ParsePURL(purl string) (*PURL, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	if p.Type != packageurl.TypeNPM {
		return nil, fmt.Errorf("not an npm PURL: %s", purl)
	}
	return &PURL{p}, nil
}
