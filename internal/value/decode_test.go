package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONObject(t *testing.T) {
	v, err := FromJSON([]byte(`{"name":"gdp","limit":25,"live":true,"note":null,"ids":["a","b"]}`))
	require.NoError(t, err)

	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, String("gdp"), obj["name"])
	assert.Equal(t, Number(25), obj["limit"])
	assert.Equal(t, Bool(true), obj["live"])
	assert.Equal(t, Null{}, obj["note"])
	assert.Equal(t, Array{String("a"), String("b")}, obj["ids"])
}

func TestFromJSONScalars(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{`null`, Null{}},
		{`"x"`, String("x")},
		{`1.25`, Number(1.25)},
		{`false`, Bool(false)},
		{`[]`, Array{}},
		{`{}`, Object{}},
	}
	for _, tt := range tests {
		v, err := FromJSON([]byte(tt.input))
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, v, tt.input)
	}
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"unterminated`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode workspace JSON")
}

func TestFromAnyGoValues(t *testing.T) {
	assert.Equal(t, Number(7), FromAny(7))
	assert.Equal(t, Number(7), FromAny(int64(7)))
	assert.Equal(t, Number(7), FromAny(uint64(7)))
	assert.Equal(t, Number(0.5), FromAny(float32(0.5)))
	assert.Equal(t, Number(2048), FromAny(json.Number("2048")))
}

func TestFromAnyOpaque(t *testing.T) {
	// Non-JSON Go values become Opaque, never an error
	assert.Equal(t, Opaque{}, FromAny(func() {}))
	assert.Equal(t, Opaque{}, FromAny(make(chan int)))
	assert.Equal(t, Opaque{}, FromAny(struct{ X int }{1}))
}

func TestFromAnyNestedMap(t *testing.T) {
	v := FromAny(map[string]any{
		"tab": map[string]any{"count": 3, "raw": func() {}},
	})
	obj := v.(Object)
	inner := obj["tab"].(Object)
	assert.Equal(t, Number(3), inner["count"])
	assert.Equal(t, Opaque{}, inner["raw"])
}

func TestFromAnyPassesThroughValues(t *testing.T) {
	orig := Object{"k": String("v")}
	assert.Equal(t, orig, FromAny(orig))
}
