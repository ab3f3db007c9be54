package tree

// Merge combines base and override into a new tree.
//
// Two mappings are merged key by key: keys from base keep their order, keys only in
// override follow in override's order, shared keys are merged recursively. Two
// sequences are concatenated. In every other case override replaces base. A nil
// Value on either side counts as absent. Neither input is modified.
func Merge(base, override Value) Value {
	if override == nil {
		return clone(base)
	}

	switch b := base.(type) {
	case *Mapping:
		if o, ok := override.(*Mapping); ok {
			return mergeMappings(b, o)
		}
	case Sequence:
		if o, ok := override.(Sequence); ok {
			out := make(Sequence, 0, len(b)+len(o))
			out = append(out, clone(b).(Sequence)...)
			out = append(out, clone(o).(Sequence)...)

			return out
		}
	}

	return clone(override)
}

func mergeMappings(base, override *Mapping) *Mapping {
	out := base.Clone()

	override.Range(func(key string, value Value) bool {
		existing, ok := out.Get(key)
		if !ok {
			out.Set(key, clone(value))

			return true
		}

		out.Set(key, Merge(existing, value))

		return true
	})

	return out
}
