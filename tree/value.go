package tree

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnsupportedType is returned by FromAny for Go values that have no tree representation.
var ErrUnsupportedType = errors.New("unsupported value type")

// Value is a node of a configuration tree: Scalar, Sequence or *Mapping.
type Value interface {
	isValue()
}

// Scalar is a leaf value. The wrapped value is nil, string, bool, int64 or float64.
type Scalar struct {
	v any
}

// Sequence is an ordered list of values.
type Sequence []Value

func (Scalar) isValue()   {}
func (Sequence) isValue() {}
func (*Mapping) isValue() {}

// Null returns the null scalar.
func Null() Scalar { return Scalar{} }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{v: s} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{v: b} }

// Int returns an integer scalar.
func Int(i int64) Scalar { return Scalar{v: i} }

// Float returns a floating point scalar.
func Float(f float64) Scalar { return Scalar{v: f} }

// NewScalar wraps a Go scalar, normalising integer and float widths.
// It reports false for anything that is not a scalar.
func NewScalar(v any) (Scalar, bool) {
	switch val := v.(type) {
	case nil:
		return Null(), true
	case string:
		return String(val), true
	case bool:
		return Bool(val), true
	case int:
		return Int(int64(val)), true
	case int8:
		return Int(int64(val)), true
	case int16:
		return Int(int64(val)), true
	case int32:
		return Int(int64(val)), true
	case int64:
		return Int(val), true
	case uint:
		return fromUint(uint64(val)), true
	case uint8:
		return Int(int64(val)), true
	case uint16:
		return Int(int64(val)), true
	case uint32:
		return Int(int64(val)), true
	case uint64:
		return fromUint(val), true
	case float32:
		return Float(float64(val)), true
	case float64:
		return Float(val), true
	default:
		return Scalar{}, false
	}
}

func fromUint(u uint64) Scalar {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}

	return Int(int64(u))
}

// Interface returns the wrapped Go value.
func (s Scalar) Interface() any {
	return s.v
}

// IsNull reports whether the scalar is null.
func (s Scalar) IsNull() bool {
	return s.v == nil
}

// String formats the scalar the way it would appear in a flat config file.
func (s Scalar) String() string {
	switch v := s.v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// FromAny converts generic decoded data (maps, slices, scalars) into a Value.
// Keys of Go maps are sorted so the resulting mapping order is deterministic.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		mapping := NewMapping()

		for _, k := range keys {
			child, err := FromAny(val[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}

			mapping.Set(k, child)
		}

		return mapping, nil
	case []any:
		seq := make(Sequence, 0, len(val))

		for i, item := range val {
			child, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			seq = append(seq, child)
		}

		return seq, nil
	case []string:
		seq := make(Sequence, 0, len(val))
		for _, item := range val {
			seq = append(seq, String(item))
		}

		return seq, nil
	}

	scalar, ok := NewScalar(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	return scalar, nil
}

// MustFromAny is like FromAny but panics on error. Intended for literals in tests and examples.
func MustFromAny(v any) Value {
	val, err := FromAny(v)
	if err != nil {
		panic(err)
	}

	return val
}

// ToAny converts a Value into plain Go data: map[string]any, []any and scalars.
func ToAny(v Value) any {
	switch val := v.(type) {
	case Scalar:
		return val.v
	case Sequence:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToAny(item)
		}

		return out
	case *Mapping:
		if val == nil {
			return map[string]any{}
		}

		out := make(map[string]any, val.Len())
		for _, k := range val.keys {
			out[k] = ToAny(val.values[k])
		}

		return out
	default:
		return nil
	}
}

// Equal reports whether two trees hold the same data. Mapping key order is ignored.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Scalar:
		bv, ok := b.(Scalar)

		return ok && av.v == bv.v
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}

		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}

		return true
	case *Mapping:
		bv, ok := b.(*Mapping)
		if !ok || av.Len() != bv.Len() {
			return false
		}

		for _, k := range av.Keys() {
			other, exists := bv.Get(k)
			if !exists || !Equal(av.values[k], other) {
				return false
			}
		}

		return true
	default:
		return a == nil && b == nil
	}
}
