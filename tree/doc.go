// Package tree defines the format-independent value every configuration file is
// translated to and from.
//
// A Value is exactly one of three kinds:
//   - Scalar: nil, string, bool, int64 or float64
//   - Sequence: an ordered list of values
//   - *Mapping: string keys to values, insertion order preserved
//
// Merge folds one tree into another. Mappings are merged key by key, sequences are
// concatenated and everything else is replaced by the overriding side:
//
//	base := tree.MustFromAny(map[string]any{"db": map[string]any{"host": "localhost"}})
//	over := tree.MustFromAny(map[string]any{"db": map[string]any{"port": 5432}})
//	merged := tree.Merge(base, over) // {db: {host: localhost, port: 5432}}
//
// Lookup reads a value by dotted key ("db.host", "servers.0.name").
package tree
