// Package typesversions builds the "typesVersions" table of a package.json,
// which sends consumers on older compilers to per-version subfolders.
package typesversions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/git-pkgs/typesheader/internal/core"
	"github.com/git-pkgs/typesheader/internal/tsversion"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Redirects maps a path glob to the rewritten paths, e.g. {"*": ["ts4.3/*"]}.
type Redirects map[string][]string

// TypesVersions is an ordered range-key to Redirects table.
type TypesVersions struct {
	entries *orderedmap.OrderedMap[string, Redirects]
}

// Build returns the typesVersions table for the given per-version folders.
// It returns nil, nil when versions is empty. Duplicate versions are the
// caller's responsibility; they produce the same entry twice and the table
// keeps one.
func Build(versions []core.Version, opts ...core.Option) (*TypesVersions, error) {
	if len(versions) == 0 {
		return nil, nil
	}
	o := core.NewOptions(opts...)
	reg := o.Registry
	if reg == nil {
		reg = tsversion.Default()
	}

	sorted, err := sortVersions(reg, versions)
	if err != nil {
		return nil, err
	}

	latest := reg.Latest()

	t := &TypesVersions{entries: orderedmap.New[string, Redirects]()}
	for _, v := range sorted {
		if v == latest {
			o.Logger.Debug("skipping redirect for newest version", "version", v)
			continue
		}
		key, err := rangeKey(reg, v)
		if err != nil {
			return nil, err
		}
		t.entries.Set(key, Redirects{"*": {v.Tag() + "/*"}})
	}
	// Only the newest version was given: a table redirecting every
	// compiler is never valid.
	if t.entries.Len() == 0 {
		return nil, &core.RedirectTooNewError{Version: latest}
	}
	return t, nil
}

// sortVersions validates versions against reg and sorts them ascending.
// Compilers older than the first redirectable version ignore typesVersions,
// so a folder for one of them could never be reached.
func sortVersions(reg core.VersionRegistry, versions []core.Version) ([]core.Version, error) {
	svs := make(semver.Collection, 0, len(versions))
	for _, v := range versions {
		if !reg.IsTypeScriptVersion(string(v)) || !reg.IsRedirectable(v) {
			return nil, &core.InvalidVersionError{Version: string(v)}
		}
		sv, err := v.Semver()
		if err != nil {
			return nil, err
		}
		svs = append(svs, sv)
	}
	sort.Stable(svs)

	sorted := make([]core.Version, len(svs))
	for i, sv := range svs {
		sorted[i] = core.Version(fmt.Sprintf("%d.%d", sv.Major(), sv.Minor()))
	}
	return sorted, nil
}

// rangeKey returns the exclusive upper bound "<NEXT.0-0" for v, where NEXT is
// the release after v. The "-0" prerelease keeps NEXT's own prereleases out.
func rangeKey(reg core.VersionRegistry, v core.Version) (string, error) {
	next, ok := reg.Next(v)
	if !ok {
		return "", &core.InvalidVersionError{Version: string(v)}
	}
	sv, err := next.Semver()
	if err != nil {
		return "", err
	}
	bound, err := sv.SetPrerelease("0")
	if err != nil {
		return "", err
	}
	return "<" + bound.String(), nil
}

// Len returns the number of entries.
func (t *TypesVersions) Len() int {
	if t == nil {
		return 0
	}
	return t.entries.Len()
}

// Keys returns the range keys in table order.
func (t *TypesVersions) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the redirects for a range key.
func (t *TypesVersions) Get(key string) (Redirects, bool) {
	if t == nil {
		return nil, false
	}
	return t.entries.Get(key)
}

// MarshalJSON writes the table in order without escaping "<" in keys.
func (t *TypesVersions) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	first := true
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encodeTrimmed(enc, &buf, pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTrimmed(enc, &buf, pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeTrimmed encodes v and drops the newline json.Encoder appends.
func encodeTrimmed(enc *json.Encoder, buf *bytes.Buffer, v any) error {
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// WriteJSON writes v as indented JSON to w without HTML escaping, the way
// package.json files are written.
func WriteJSON(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(v)
}
