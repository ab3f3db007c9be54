package conf

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/pathspec"
	"github.com/0xalexb/hjarta-conf/tree"
)

// Loader resolves path specifications, parses each file with the matching handler
// and merges the results. A Loader holds no per-load state and may be reused.
type Loader struct {
	registry *handler.Registry
	resolver *pathspec.Resolver
	logger   *slog.Logger
}

// New creates a Loader. Without options it uses DefaultRegistry and slog.Default().
func New(opts ...Option) *Loader {
	loader := &Loader{}

	for _, apply := range opts {
		apply(loader)
	}

	if loader.logger == nil {
		loader.logger = slog.Default()
	}

	if loader.registry == nil {
		loader.registry = DefaultRegistry()
	}

	if loader.resolver == nil {
		loader.resolver = pathspec.NewResolver(pathspec.WithLogger(loader.logger))
	}

	return loader
}

// Registry returns the handler registry used by the Loader.
func (l *Loader) Registry() *handler.Registry {
	return l.registry
}

// Load resolves spec and merges every resolved file in order. The first failure
// aborts the load; only missing optional entries are skipped.
func (l *Loader) Load(spec pathspec.Spec) (*Config, error) {
	paths, err := l.resolver.Resolve(spec)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration paths: %w", err)
	}

	var merged tree.Value = tree.NewMapping()

	for _, path := range paths {
		value, err := l.parse(path)
		if err != nil {
			return nil, err
		}

		merged = tree.Merge(merged, value)
	}

	l.logger.Info("configuration loaded", slog.Int("files", len(paths)))

	return &Config{root: merged, files: paths, loader: l}, nil
}

// LoadPaths is Load for raw strings; a leading "?" marks an optional path.
func (l *Loader) LoadPaths(raw ...string) (*Config, error) {
	return l.Load(pathspec.Parse(raw...))
}

// Parse reads a single file with the handler registered for its extension.
func (l *Loader) Parse(path string) (tree.Value, error) {
	return l.parse(path)
}

func (l *Loader) parse(path string) (tree.Value, error) {
	ext := handler.Extension(path)

	h, err := l.registry.For(ext, false)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	value, err := h.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	l.logger.Debug("configuration file parsed",
		slog.String("path", path),
		slog.String("format", ext),
	)

	return value, nil
}

// Save writes value to path with the writing handler registered for its extension.
func (l *Loader) Save(value tree.Value, path string) error {
	ext := handler.Extension(path)

	h, err := l.registry.For(ext, true)
	if err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}

	err = h.Write(value, path)
	if err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}

	l.logger.Debug("configuration saved",
		slog.String("path", path),
		slog.String("format", ext),
	)

	return nil
}

// Load merges the files described by raw with a default Loader.
func Load(raw ...string) (*Config, error) {
	return New().LoadPaths(raw...)
}

// Save writes cfg to path with a default Loader.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("saving %q: %w", path, ErrNilConfig)
	}

	return New().Save(cfg.Root(), path)
}
