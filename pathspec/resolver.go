package pathspec

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrFileNotFound is returned when a required path does not exist.
var ErrFileNotFound = errors.New("configuration file not found")

// ErrEmptyDirectory is returned when a directory holds no candidate files.
var ErrEmptyDirectory = errors.New("configuration directory is empty")

// CandidateMarker must appear in a name for a directory entry to be loaded.
const CandidateMarker = "."

// Resolver expands a Spec into existing file paths.
type Resolver struct {
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	resolver := &Resolver{logger: slog.Default()}

	for _, apply := range opts {
		apply(resolver)
	}

	return resolver
}

// Resolve returns the files described by spec in order. An empty spec yields an
// empty list. A missing optional entry is dropped; every other failure aborts.
func (r *Resolver) Resolve(spec Spec) ([]string, error) {
	paths := make([]string, 0, len(spec))

	for _, entry := range spec {
		resolved, err := r.resolvePath(entry.Path)
		if err != nil {
			if entry.Optional && errors.Is(err, ErrFileNotFound) {
				r.logger.Debug("optional configuration path skipped", slog.String("path", entry.Path))

				continue
			}

			return nil, err
		}

		paths = append(paths, resolved...)
	}

	return paths, nil
}

func (r *Resolver) resolvePath(path string) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) || path == "" {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	if !stat.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing directory %q: %w", path, err)
	}

	var matches []string

	for _, entry := range entries {
		if strings.Contains(entry.Name(), CandidateMarker) {
			matches = append(matches, filepath.Join(path, entry.Name()))
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyDirectory, path)
	}

	r.logger.Debug("configuration directory expanded",
		slog.String("path", path),
		slog.Int("files", len(matches)),
	)

	return matches, nil
}
