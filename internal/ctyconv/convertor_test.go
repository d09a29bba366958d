package ctyconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestConverter_FromCtyValue(t *testing.T) {
	conv := NewConverter()

	testCases := []struct {
		name string
		in   cty.Value
		want any
	}{
		{name: "string", in: cty.StringVal("a"), want: "a"},
		{name: "exact number becomes int64", in: cty.NumberIntVal(3), want: int64(3)},
		{name: "fractional number becomes float64", in: cty.NumberFloatVal(1.5), want: 1.5},
		{name: "bool", in: cty.True, want: true},
		{
			name: "list",
			in:   cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			want: []any{"a", "b"},
		},
		{
			name: "object",
			in:   cty.ObjectVal(map[string]cty.Value{"k": cty.NumberIntVal(1)}),
			want: map[string]any{"k": int64(1)},
		},
		{name: "null", in: cty.NullVal(cty.String), want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := conv.FromCtyValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConverter_ToCtyValue(t *testing.T) {
	conv := NewConverter()

	v, err := conv.ToCtyValue("hello")
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("hello"), v)

	v, err = conv.ToCtyValue(nil)
	require.NoError(t, err)
	assert.Equal(t, cty.NilVal, v)
}

func TestConverter_ToCtyValue_AnyTrees(t *testing.T) {
	conv := NewConverter()

	v, err := conv.ToCtyValue([]any{"a", int(2)})
	require.NoError(t, err)
	assert.Equal(t, cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(2)}), v)

	v, err = conv.ToCtyValue(map[string]any{"k": true})
	require.NoError(t, err)
	assert.Equal(t, cty.ObjectVal(map[string]cty.Value{"k": cty.True}), v)
}
