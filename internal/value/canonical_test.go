package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCanonical(t *testing.T, v Value) string {
	t.Helper()
	data, err := MarshalCanonical(v)
	require.NoError(t, err)
	return string(data)
}

func TestMarshalCanonicalScalars(t *testing.T) {
	assert.Equal(t, `null`, mustCanonical(t, Null{}))
	assert.Equal(t, `"hi"`, mustCanonical(t, String("hi")))
	assert.Equal(t, `true`, mustCanonical(t, Bool(true)))
	assert.Equal(t, `false`, mustCanonical(t, Bool(false)))
}

func TestMarshalCanonicalNumbers(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2048, "2048"},
		{-3, "-3"},
		{0.7, "0.7"},
		{1e6, "1000000"},
		{1e21, "1e+21"},
		{5e-7, "5e-7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustCanonical(t, Number(tt.in)))
	}
}

func TestMarshalCanonicalNonFiniteRejected(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := MarshalCanonical(Number(f))
		require.Error(t, err)
	}
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	assert.Equal(t, `"<a> & <b>"`, mustCanonical(t, String("<a> & <b>")))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "e" + combining acute accent normalizes to precomposed U+00E9
	decomposed := String("café")
	precomposed := String("café")
	assert.Equal(t, mustCanonical(t, precomposed), mustCanonical(t, decomposed))
}

func TestMarshalCanonicalObjectKeyOrder(t *testing.T) {
	obj := Object{
		"zebra": Number(1),
		"apple": Number(2),
		"Mango": Number(3),
	}
	assert.Equal(t, `{"Mango":3,"apple":2,"zebra":1}`, mustCanonical(t, obj))
}

func TestMarshalCanonicalNested(t *testing.T) {
	obj := Object{
		"tabs": Object{
			"chat": Object{
				"temperature": Number(0.7),
				"maxTokens":   Number(2048),
			},
		},
	}
	assert.Equal(t,
		`{"tabs":{"chat":{"maxTokens":2048,"temperature":0.7}}}`,
		mustCanonical(t, obj))
}

func TestMarshalCanonicalArray(t *testing.T) {
	arr := Array{String("a"), Number(1), Bool(false), Null{}}
	assert.Equal(t, `["a",1,false,null]`, mustCanonical(t, arr))
}

func TestMarshalCanonicalOpaqueRejected(t *testing.T) {
	_, err := MarshalCanonical(Opaque{})
	require.Error(t, err)

	_, err = MarshalCanonical(Object{"bad": Opaque{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestMarshalCanonicalStableThroughDecode(t *testing.T) {
	// encode(decode(encode(v))) == encode(v)
	obj := Object{
		"screener": Object{
			"seriesIds":     Array{String("GDP"), String("UNRATE")},
			"minMarketCap":  Number(1e9),
			"sortAscending": Bool(true),
			"sector":        Null{},
		},
	}
	first, err := MarshalCanonical(obj)
	require.NoError(t, err)

	decoded, err := FromJSON(first)
	require.NoError(t, err)

	second, err := MarshalCanonical(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
