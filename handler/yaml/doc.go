// Package yaml implements the YAML configuration handler.
//
// This package uses github.com/goccy/go-yaml. Documents are decoded with ordered
// maps so mapping keys keep their file order, and written back from the same
// ordered representation. Both "yaml" and "yml" extensions are claimed.
//
// DecodeInto unmarshals YAML into a Go value, optionally navigating to a section
// first with goccy/go-yaml PathString. Section keys use the dotted form shared
// with the rest of the module, converted internally:
//   - Empty key "" -> entire document
//   - Single key "key" -> "$.key"
//   - Nested key "api.permissions" -> "$.api.permissions"
//   - Index segment "servers.0" -> "$.servers[0]"
package yaml
