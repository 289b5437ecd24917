package typesversions

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/git-pkgs/typesheader/internal/core"
	"github.com/git-pkgs/typesheader/internal/tsversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeVersionsJSON = `{
    "<4.3.0-0": {
        "*": [
            "ts4.2/*"
        ]
    },
    "<4.4.0-0": {
        "*": [
            "ts4.3/*"
        ]
    },
    "<4.7.0-0": {
        "*": [
            "ts4.6/*"
        ]
    }
}`

func encode(t *testing.T, tv *TypesVersions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tv, "    "))
	return strings.TrimSuffix(buf.String(), "\n")
}

func TestBuildEmpty(t *testing.T) {
	tv, err := Build(nil)
	require.NoError(t, err)
	assert.Nil(t, tv)
	assert.Equal(t, 0, tv.Len())

	tv, err = Build([]core.Version{})
	require.NoError(t, err)
	assert.Nil(t, tv)
}

func TestBuildOneVersion(t *testing.T) {
	tv, err := Build([]core.Version{"4.3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"<4.4.0-0"}, tv.Keys())

	got, ok := tv.Get("<4.4.0-0")
	require.True(t, ok)
	assert.Equal(t, Redirects{"*": {"ts4.3/*"}}, got)

	data, err := tv.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"<4.4.0-0":{"*":["ts4.3/*"]}}`, string(data))
}

func TestBuildOrdersOldToNew(t *testing.T) {
	tests := []struct {
		name  string
		input []core.Version
	}{
		{"old to new", []core.Version{"4.2", "4.3", "4.6"}},
		{"new to old", []core.Version{"4.6", "4.3", "4.2"}},
		{"shuffled", []core.Version{"4.3", "4.6", "4.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv, err := Build(tt.input)
			require.NoError(t, err)
			assert.Equal(t, threeVersionsJSON, encode(t, tv))
		})
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	input := []core.Version{"4.6", "4.3", "4.2"}
	_, err := Build(input)
	require.NoError(t, err)
	assert.Equal(t, []core.Version{"4.6", "4.3", "4.2"}, input)
}

func TestBuildMajorRollover(t *testing.T) {
	tv, err := Build([]core.Version{"4.9", "3.9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"<4.0.0-0", "<5.0.0-0"}, tv.Keys())
}

func TestBuildTooNew(t *testing.T) {
	_, err := Build([]core.Version{"5.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrRedirectTooNew))
	assert.Regexp(t, `ts5\.0 is too new: it covers all versions of typescript`, err.Error())
}

func TestBuildSkipsNewestAlongsideOlder(t *testing.T) {
	tv, err := Build([]core.Version{"5.0", "4.8"})
	require.NoError(t, err)
	assert.Equal(t, []string{"<4.9.0-0"}, tv.Keys())
}

func TestBuildUnknownVersion(t *testing.T) {
	for _, v := range []core.Version{"5.7", "1.0", "04.5", "garbage"} {
		t.Run(string(v), func(t *testing.T) {
			_, err := Build([]core.Version{"4.2", v})
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidVersion))
		})
	}
}

func TestBuildRejectsUnredirectable(t *testing.T) {
	for _, v := range []core.Version{"2.0", "2.9", "3.0"} {
		t.Run(string(v), func(t *testing.T) {
			_, err := Build([]core.Version{v, "4.2"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidVersion))
		})
	}

	tv, err := Build([]core.Version{"3.1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"<3.2.0-0"}, tv.Keys())
}

func TestBuildWithRegistry(t *testing.T) {
	reg, err := tsversion.New(tsversion.Table{Oldest: "3.0", Newest: "3.5", FirstSupported: "3.2"})
	require.NoError(t, err)

	tv, err := Build([]core.Version{"3.4"}, core.WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, []string{"<3.5.0-0"}, tv.Keys())

	_, err = Build([]core.Version{"3.5"}, core.WithRegistry(reg))
	assert.True(t, errors.Is(err, core.ErrRedirectTooNew))
}

// Every key must admit the version it redirects and reject the next one,
// including the next one's prereleases.
func TestRangeKeysBoundVersions(t *testing.T) {
	reg := tsversion.Default()
	all := reg.All()
	for _, v := range all[:len(all)-1] {
		if !reg.IsRedirectable(v) {
			continue
		}
		tv, err := Build([]core.Version{v})
		require.NoError(t, err)
		require.Equal(t, 1, tv.Len())

		c, err := semver.NewConstraint(tv.Keys()[0])
		require.NoError(t, err, "key %q", tv.Keys()[0])

		own, err := v.Semver()
		require.NoError(t, err)
		assert.True(t, c.Check(own), "%s should satisfy %s", own, tv.Keys()[0])

		next, _ := reg.Next(v)
		nextSV, err := next.Semver()
		require.NoError(t, err)
		assert.False(t, c.Check(nextSV), "%s should not satisfy %s", nextSV, tv.Keys()[0])

		beta := semver.MustParse(next.String() + ".0-beta")
		assert.False(t, c.Check(beta), "%s should not satisfy %s", beta, tv.Keys()[0])
	}
}

func TestMarshalNil(t *testing.T) {
	var tv *TypesVersions
	data, err := tv.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
