package sanitize

import "github.com/fintab/deskstate/internal/value"

// isSafe reports whether a value is a safe primitive: null, string,
// number, bool, or an array whose every element is a string, number, or
// bool. Nulls inside arrays are rejected - the per-element check accepts
// only the three primitive types. Objects, nested arrays, and opaque Go
// values are unsafe.
func isSafe(v value.Value) bool {
	switch val := v.(type) {
	case value.Null:
		return true
	case value.String, value.Number, value.Bool:
		return true
	case value.Array:
		for _, elem := range val {
			switch elem.(type) {
			case value.String, value.Number, value.Bool:
			default:
				return false
			}
		}
		return true
	default:
		// value.Object, value.Opaque, nil interface
		return false
	}
}
