package value

import (
	"encoding/json"
	"fmt"
)

// FromJSON decodes raw JSON into a Value. The input is untrusted; any
// syntactically valid JSON decodes successfully, and classification of
// what is safe happens later in the sanitizer.
func FromJSON(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode workspace JSON: %w", err)
	}
	return FromAny(raw), nil
}

// FromAny converts an arbitrary Go value into a Value. JSON-shaped inputs
// (the encoding/json and yaml.v3 decode families) map onto their natural
// variants; anything else becomes Opaque, which the sanitizer rejects.
//
// FromAny is total: it never fails, because the trust boundary must never
// crash on malformed input.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Value:
		return val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case float64:
		return Number(val)
	case float32:
		return Number(val)
	case int:
		return Number(val)
	case int64:
		return Number(val)
	case uint64:
		return Number(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			// Out-of-range number literal; nothing safe to persist
			return Opaque{}
		}
		return Number(f)
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			arr[i] = FromAny(elem)
		}
		return arr
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			obj[k] = FromAny(elem)
		}
		return obj
	default:
		return Opaque{}
	}
}
