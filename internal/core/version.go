package core

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Version is a TypeScript "MAJOR.MINOR" identifier such as "4.3".
type Version string

// Majors carry no leading zero, so each version has exactly one spelling.
var versionPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(\d)$`)

// ParseVersion checks the lexical shape of s. It does not consult any registry.
func ParseVersion(s string) (Version, error) {
	if !versionPattern.MatchString(s) {
		return "", fmt.Errorf("malformed version %q", s)
	}
	return Version(s), nil
}

// Major returns the major component, or -1 for a malformed version.
func (v Version) Major() int {
	major, _ := v.parts()
	return major
}

// Minor returns the minor component, or -1 for a malformed version.
func (v Version) Minor() int {
	_, minor := v.parts()
	return minor
}

func (v Version) parts() (int, int) {
	m := versionPattern.FindStringSubmatch(string(v))
	if m == nil {
		return -1, -1
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return -1, -1
	}
	minor, _ := strconv.Atoi(m[2])
	return major, minor
}

// Compare returns -1, 0 or +1 ordering by (major, minor).
func (v Version) Compare(o Version) int {
	vMajor, vMinor := v.parts()
	oMajor, oMinor := o.parts()
	if vMajor != oMajor {
		return cmp.Compare(vMajor, oMajor)
	}
	return cmp.Compare(vMinor, oMinor)
}

// Semver returns v as a semantic version with a zero patch component.
func (v Version) Semver() (*semver.Version, error) {
	if !versionPattern.MatchString(string(v)) {
		return nil, fmt.Errorf("malformed version %q", string(v))
	}
	return semver.NewVersion(string(v))
}

// Tag returns the npm dist-tag for v, e.g. "ts4.3".
func (v Version) Tag() string {
	return "ts" + string(v)
}

func (v Version) String() string {
	return string(v)
}
