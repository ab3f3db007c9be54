package handler

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// DistSuffix marks distribution templates such as config.json.dist.
const DistSuffix = "dist"

// Registry is an ordered, read-only list of handlers.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates a registry. Earlier handlers win when two claim the same extension.
func NewRegistry(handlers ...Handler) *Registry {
	list := make([]Handler, 0, len(handlers))

	for _, h := range handlers {
		if h != nil {
			list = append(list, h)
		}
	}

	return &Registry{handlers: list}
}

// For returns the first handler claiming extension. With requireWrite set, handlers
// that cannot write are passed over. Matching is exact and case-sensitive.
func (r *Registry) For(extension string, requireWrite bool) (Handler, error) {
	for _, h := range r.handlers {
		if !slices.Contains(h.Extensions(), extension) {
			continue
		}

		if requireWrite && !h.CanWrite() {
			continue
		}

		return h, nil
	}

	if requireWrite {
		return nil, fmt.Errorf("%w: no writer for extension %q", ErrUnsupportedFormat, extension)
	}

	return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, extension)
}

// Extensions returns every claimed extension in registration order, without duplicates.
func (r *Registry) Extensions() []string {
	var out []string

	for _, h := range r.handlers {
		for _, ext := range h.Extensions() {
			if !slices.Contains(out, ext) {
				out = append(out, ext)
			}
		}
	}

	return out
}

// Extension returns the handler-selection key for path: the part of the file name
// after the last dot, or the part before it when the last one is "dist". Names
// without a dot yield "".
func Extension(path string) string {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) < 2 {
		return ""
	}

	ext := parts[len(parts)-1]
	if ext == DistSuffix {
		ext = parts[len(parts)-2]
	}

	return ext
}
