package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths, translates them into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific value conversion
// implementation. It acts as the bridge between manifest-evaluated values
// and the native Go values handed to renderer callbacks.
type Converter interface {
	// FromCtyValue converts a manifest value (such as a prop default) into
	// its native Go representation.
	FromCtyValue(v cty.Value) (any, error)

	// ToCtyValue converts a native Go value into its equivalent cty.Value
	// for validation against declared prop types.
	ToCtyValue(v any) (cty.Value, error)
}
