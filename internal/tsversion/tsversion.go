// Package tsversion holds the ordered list of TypeScript versions that type
// definitions can target, and answers range and dist-tag questions about it.
package tsversion

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/git-pkgs/typesheader/internal/core"
)

// LatestTag is the dist-tag that always follows the newest version tag.
const LatestTag = "latest"

//go:embed versions.toml
var versionsTOML string

// Table is the declarative description of a registry.
type Table struct {
	Oldest           string `toml:"oldest"`
	Newest           string `toml:"newest"`
	FirstSupported   string `toml:"first_supported"`
	RedirectableFrom string `toml:"redirectable_from"`
}

// Registry is an immutable, gap-free, ordered list of versions.
type Registry struct {
	all          []core.Version
	index        map[core.Version]int
	supported    int
	redirectable int
}

var defaultRegistry = mustLoad(versionsTOML)

// Default returns the registry built from the embedded version table.
func Default() *Registry {
	return defaultRegistry
}

// Load decodes a TOML table and builds a registry from it.
func Load(data string) (*Registry, error) {
	var t Table
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decoding version table: %w", err)
	}
	return New(t)
}

func mustLoad(data string) *Registry {
	r, err := Load(data)
	if err != nil {
		panic(err)
	}
	return r
}

// New builds a registry covering every version from t.Oldest to t.Newest.
// RedirectableFrom may be empty, in which case every version is redirectable.
func New(t Table) (*Registry, error) {
	oldest, err := core.ParseVersion(t.Oldest)
	if err != nil {
		return nil, fmt.Errorf("oldest: %w", err)
	}
	newest, err := core.ParseVersion(t.Newest)
	if err != nil {
		return nil, fmt.Errorf("newest: %w", err)
	}
	if oldest.Compare(newest) > 0 {
		return nil, fmt.Errorf("oldest %s is after newest %s", oldest, newest)
	}

	r := &Registry{index: make(map[core.Version]int)}
	for v := oldest; ; v = step(v) {
		r.index[v] = len(r.all)
		r.all = append(r.all, v)
		if v == newest {
			break
		}
	}

	idx, ok := r.index[core.Version(t.FirstSupported)]
	if !ok {
		return nil, fmt.Errorf("first_supported %q is not between %s and %s", t.FirstSupported, oldest, newest)
	}
	r.supported = idx

	if t.RedirectableFrom != "" {
		idx, ok = r.index[core.Version(t.RedirectableFrom)]
		if !ok {
			return nil, fmt.Errorf("redirectable_from %q is not between %s and %s", t.RedirectableFrom, oldest, newest)
		}
		r.redirectable = idx
	}
	return r, nil
}

// step returns the release after v; minor versions stop at 9.
func step(v core.Version) core.Version {
	if v.Minor() == 9 {
		return core.Version(fmt.Sprintf("%d.0", v.Major()+1))
	}
	return core.Version(fmt.Sprintf("%d.%d", v.Major(), v.Minor()+1))
}

// All returns every known version, oldest first.
func (r *Registry) All() []core.Version {
	return clone(r.all)
}

// Supported returns the versions still tested and published, oldest first.
func (r *Registry) Supported() []core.Version {
	return clone(r.all[r.supported:])
}

// Unsupported returns the versions before Supported.
func (r *Registry) Unsupported() []core.Version {
	return clone(r.all[:r.supported])
}

// Lowest is the oldest supported version. Headers without a version line target it.
func (r *Registry) Lowest() core.Version {
	return r.all[r.supported]
}

// Latest is the newest known version.
func (r *Registry) Latest() core.Version {
	return r.all[len(r.all)-1]
}

// IsTypeScriptVersion reports whether s has the "MAJOR.MINOR" shape and is one
// of the known versions.
func (r *Registry) IsTypeScriptVersion(s string) bool {
	v, err := core.ParseVersion(s)
	if err != nil {
		return false
	}
	_, ok := r.index[v]
	return ok
}

// IsSupported reports whether v is in Supported.
func (r *Registry) IsSupported(v core.Version) bool {
	idx, ok := r.index[v]
	return ok && idx >= r.supported
}

// IsRedirectable reports whether a compiler at v understands typesVersions.
func (r *Registry) IsRedirectable(v core.Version) bool {
	idx, ok := r.index[v]
	return ok && idx >= r.redirectable
}

// Next returns the version released after v. ok is false when v is the newest
// or unknown.
func (r *Registry) Next(v core.Version) (core.Version, bool) {
	idx, ok := r.index[v]
	if !ok || idx == len(r.all)-1 {
		return "", false
	}
	return r.all[idx+1], true
}

// Range returns every version from from to the newest, inclusive.
func (r *Registry) Range(from core.Version) ([]core.Version, error) {
	idx, ok := r.index[from]
	if !ok {
		return nil, &core.InvalidVersionError{Version: string(from)}
	}
	return clone(r.all[idx:]), nil
}

// TagsToUpdate returns the dist-tags a package targeting from must be
// published under: one per version in Range(from), then "latest".
func (r *Registry) TagsToUpdate(from core.Version) ([]string, error) {
	versions, err := r.Range(from)
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(versions)+1)
	for _, v := range versions {
		tags = append(tags, v.Tag())
	}
	return append(tags, LatestTag), nil
}

func clone(vs []core.Version) []core.Version {
	out := make([]core.Version, len(vs))
	copy(out, vs)
	return out
}
