package tree

import (
	"strconv"
	"strings"
)

// KeySeparator separates path segments in dotted keys.
const KeySeparator = "."

// Lookup walks root following a dotted key. Mapping segments match keys exactly,
// sequence segments must be zero-based indexes. An empty key returns root itself.
func Lookup(root Value, key string) (Value, bool) {
	if key == "" {
		return root, root != nil
	}

	current := root

	for _, part := range strings.Split(key, KeySeparator) {
		switch node := current.(type) {
		case *Mapping:
			next, ok := node.Get(part)
			if !ok {
				return nil, false
			}

			current = next
		case Sequence:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}

			current = node[idx]
		default:
			return nil, false
		}
	}

	return current, true
}

// SetPath stores value under a dotted key, creating intermediate mappings.
// Any non-mapping found on the way is replaced by a mapping.
func SetPath(root *Mapping, key string, value Value) {
	parts := strings.Split(key, KeySeparator)
	current := root

	for _, part := range parts[:len(parts)-1] {
		next, ok := current.values[part].(*Mapping)
		if !ok {
			next = NewMapping()
			current.Set(part, next)
		}

		current = next
	}

	current.Set(parts[len(parts)-1], value)
}
