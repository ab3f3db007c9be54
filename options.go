package conf

import (
	"log/slog"

	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/pathspec"
)

// Option defines a function type for configuring a Loader.
type Option func(*Loader)

// WithRegistry replaces the default handler registry.
func WithRegistry(registry *handler.Registry) Option {
	return func(l *Loader) {
		l.registry = registry
	}
}

// WithResolver replaces the default path resolver.
func WithResolver(resolver *pathspec.Resolver) Option {
	return func(l *Loader) {
		l.resolver = resolver
	}
}

// WithLogger sets the logger used for load and save diagnostics.
// A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}
