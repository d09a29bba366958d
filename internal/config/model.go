package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of everything the
// manifests declare: custom components, theme-scoped overrides, and
// host-native elements.
type Model struct {
	Components map[string][]*ComponentDefinition
	Elements   map[string]*ElementDefinition
}

// NewModel returns an empty model with initialized maps.
func NewModel() *Model {
	return &Model{
		Components: make(map[string][]*ComponentDefinition),
		Elements:   make(map[string]*ElementDefinition),
	}
}

// --- Manifest Models ---

// ComponentDefinition is the format-agnostic representation of a component's
// manifest. More than one definition may claim the same dispatch key (a
// theme override sitting next to a base component, or two packs colliding);
// the resolver treats that as ambiguity at dispatch time, so the model keeps
// every claimant instead of folding them.
type ComponentDefinition struct {
	Key         string
	Theme       string // empty for base components
	Description string
	Lifecycle   *Lifecycle
	Props       map[string]*PropDefinition
}

// Provider names the definition's origin for ambiguity reports: the Go
// handler it binds, qualified by theme when the definition is theme-scoped.
func (d *ComponentDefinition) Provider() string {
	handler := "(unbound)"
	if d.Lifecycle != nil && d.Lifecycle.OnRender != "" {
		handler = d.Lifecycle.OnRender
	}
	if d.Theme != "" {
		return handler + " [theme " + d.Theme + "]"
	}
	return handler
}

// ElementDefinition is the format-agnostic representation of a host-native
// element declaration. Key is the bare local name for host-namespace
// elements, or "<namespace>_<name>" (dashes folded to underscores) for
// custom-namespace ones.
type ElementDefinition struct {
	Key         string
	RenderType  string
	Description string
}

// Lifecycle maps a component's events to Go handler names.
type Lifecycle struct {
	OnRender string
}

// PropDefinition defines a single prop accepted by a component.
type PropDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}
