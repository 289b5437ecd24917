package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures the parser and builders.
type Options struct {
	// Registry decides which TypeScript versions are known. Nil means the
	// caller's default registry.
	Registry VersionRegistry
	Logger   *log.Logger
}

// VersionRegistry is the subset of the version registry the parser and the
// typesVersions builder depend on.
type VersionRegistry interface {
	All() []Version
	Lowest() Version
	Latest() Version
	Next(v Version) (Version, bool)
	IsTypeScriptVersion(s string) bool
	IsRedirectable(v Version) bool
}

// Option configures Options.
type Option func(*Options)

// WithRegistry replaces the version registry.
func WithRegistry(r VersionRegistry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// NewOptions applies opts over the defaults. The logger defaults to a
// discarding logger.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}
