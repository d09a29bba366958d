// Package ctyconv binds cty values to native Go values. Both manifest
// loaders converge on cty as the canonical value representation, so they
// share this single config.Converter implementation.
package ctyconv

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter implements the config.Converter interface.
type Converter struct{}

// NewConverter creates a new cty converter.
func NewConverter() *Converter {
	return &Converter{}
}

// FromCtyValue converts a manifest value into its native Go representation:
// strings stay strings, numbers become int64 when exact and float64 otherwise,
// bools become bool, and collections become []any / map[string]any recursively.
func (c *Converter) FromCtyValue(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString(), nil

	case ty.Equals(cty.Number):
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty.Equals(cty.Bool):
		return v.True(), nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := c.FromCtyValue(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			gv, err := c.FromCtyValue(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = gv
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported manifest value type %s", ty.FriendlyName())
}

// ToCtyValue converts a native Go value into its corresponding cty.Value.
// Untyped any-trees, which is what YAML decoding produces, are walked
// explicitly; everything else falls back to gocty reflection.
func (c *Converter) ToCtyValue(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NilVal, nil
	case string:
		return cty.StringVal(tv), nil
	case bool:
		return cty.BoolVal(tv), nil
	case int:
		return cty.NumberIntVal(int64(tv)), nil
	case int64:
		return cty.NumberIntVal(tv), nil
	case float64:
		return cty.NumberFloatVal(tv), nil
	case []any:
		if len(tv) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(tv))
		for i, e := range tv {
			cv, err := c.ToCtyValue(e)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case map[string]any:
		if len(tv) == 0 {
			return cty.EmptyObjectVal, nil
		}
		vals := make(map[string]cty.Value, len(tv))
		for k, e := range tv {
			cv, err := c.ToCtyValue(e)
			if err != nil {
				return cty.NilVal, err
			}
			vals[k] = cv
		}
		return cty.ObjectVal(vals), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}
