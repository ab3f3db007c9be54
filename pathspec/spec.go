package pathspec

import "strings"

// OptionalMarker prefixes an optional path in the string form accepted by Parse.
const OptionalMarker = '?'

// Entry is one element of a path specification.
type Entry struct {
	Path     string
	Optional bool
}

// Spec is an ordered path specification.
type Spec []Entry

// Required returns an entry whose absence fails resolution.
func Required(path string) Entry {
	return Entry{Path: path}
}

// Optional returns an entry that is skipped when its path does not exist.
func Optional(path string) Entry {
	return Entry{Path: path, Optional: true}
}

// Single returns a Spec holding one required path. The marker is not interpreted.
func Single(path string) Spec {
	return Spec{Required(path)}
}

// Parse builds a Spec from raw strings. A leading OptionalMarker makes the entry
// optional; every leading marker is stripped from the path.
func Parse(raw ...string) Spec {
	spec := make(Spec, 0, len(raw))

	for _, item := range raw {
		if len(item) > 0 && item[0] == OptionalMarker {
			spec = append(spec, Optional(strings.TrimLeft(item, string(OptionalMarker))))

			continue
		}

		spec = append(spec, Required(item))
	}

	return spec
}

// String renders the entry in the form Parse accepts.
func (e Entry) String() string {
	if e.Optional {
		return string(OptionalMarker) + e.Path
	}

	return e.Path
}
