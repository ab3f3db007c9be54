package conf

import (
	"fmt"

	"github.com/0xalexb/hjarta-conf/tree"
)

// Config is the merged result of a load, wrapped for read access.
type Config struct {
	root   tree.Value
	files  []string
	loader *Loader
}

// NewConfig wraps an existing tree. Save on the result uses a default Loader.
func NewConfig(root tree.Value) *Config {
	if root == nil {
		root = tree.NewMapping()
	}

	return &Config{root: root}
}

// Root returns the merged tree. Callers must not modify it.
func (c *Config) Root() tree.Value {
	return c.root
}

// Files returns the resolved files in the order they were merged.
func (c *Config) Files() []string {
	files := make([]string, len(c.files))
	copy(files, c.files)

	return files
}

// Get returns the value under a dotted key such as "database.hosts.0".
func (c *Config) Get(key string) (tree.Value, bool) {
	return tree.Lookup(c.root, key)
}

// Has reports whether key resolves to a value.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)

	return ok
}

// String returns the scalar under key rendered as text, or fallback when the key
// is missing, null or not a scalar.
func (c *Config) String(key, fallback string) string {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}

	scalar, ok := value.(tree.Scalar)
	if !ok || scalar.IsNull() {
		return fallback
	}

	return scalar.String()
}

// All returns the merged tree as plain Go values (map[string]any, []any, scalars).
func (c *Config) All() any {
	return tree.ToAny(c.root)
}

// Save writes the merged tree to path through the Loader that produced it.
func (c *Config) Save(path string) error {
	if c == nil {
		return fmt.Errorf("saving %q: %w", path, ErrNilConfig)
	}

	loader := c.loader
	if loader == nil {
		loader = New()
	}

	return loader.Save(c.root, path)
}
