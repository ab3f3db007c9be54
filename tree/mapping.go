package tree

// Mapping is a string-keyed collection that remembers insertion order.
// The zero value is not usable; create one with NewMapping.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Len returns the number of keys. A nil mapping has none.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Set stores value under key. Overwriting a key keeps its original position.
func (m *Mapping) Set(key string, value Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}

	delete(m.values, key)

	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)

			break
		}
	}

	return true
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Mapping) Range(fn func(key string, value Value) bool) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy. Scalars are immutable and shared.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()

	m.Range(func(k string, v Value) bool {
		out.Set(k, clone(v))

		return true
	})

	return out
}

func clone(v Value) Value {
	switch val := v.(type) {
	case *Mapping:
		return val.Clone()
	case Sequence:
		out := make(Sequence, len(val))
		for i, item := range val {
			out[i] = clone(item)
		}

		return out
	default:
		return v
	}
}
