package value

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface representing one untrusted workspace value.
// Only Null, String, Number, Bool, Array, Object, and Opaque implement it.
// The sanitizer classifies values with an exhaustive type switch, so no
// other implementations may exist.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents a JSON null. An explicit type (rather than a nil Value)
// keeps the classifier's switch total and avoids nil-interface traps.
type Null struct{}

func (Null) value() {}

// String represents a string value.
type String string

func (String) value() {}

// Number represents a numeric value. Workspace state is UI state
// (thresholds, temperatures, chart bounds), so float64 is the native
// representation; integers round-trip exactly up to 2^53.
type Number float64

func (Number) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Array represents an ordered list of values.
type Array []Value

func (Array) value() {}

// Object represents a map of string keys to values.
// Use SortedKeys() for deterministic iteration.
type Object map[string]Value

func (Object) value() {}

// Opaque represents a Go value with no JSON analogue (function, channel,
// arbitrary struct, ...). It carries no payload: the sanitizer rejects it
// on sight, so only the tag matters.
type Opaque struct{}

func (Opaque) value() {}

// SortedKeys returns the object's keys ordered by UTF-16 code units.
// This is the iteration order used by the canonical encoder; for ASCII
// keys it coincides with lexicographic order.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysUTF16)
	return keys
}

// compareKeysUTF16 compares strings by UTF-16 code units.
// Go's native string comparison is byte-wise UTF-8, which orders
// supplementary-plane characters differently; UTF-16 order keeps the
// canonical encoding stable against that edge.
func compareKeysUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	// All compared units equal, shorter string first
	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}

// Clone returns a deep copy of v. Sanitized output must never alias the
// untrusted input it was filtered from, so kept containers are cloned.
func Clone(v Value) Value {
	switch val := v.(type) {
	case Array:
		out := make(Array, len(val))
		for i, elem := range val {
			out[i] = Clone(elem)
		}
		return out
	case Object:
		out := make(Object, len(val))
		for k, elem := range val {
			out[k] = Clone(elem)
		}
		return out
	default:
		// Null, String, Number, Bool, Opaque are immutable
		return v
	}
}
