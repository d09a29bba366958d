package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// --- Component Manifest Schemas ---

// Lifecycle defines the mapping from a component's lifecycle event to a
// registered Go handler function.
type Lifecycle struct {
	OnRender string `hcl:"on_render,optional"`
}

// PropDefinition defines a single prop accepted by a component.
type PropDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
}

// ComponentDefinition represents the HCL manifest for a custom component. The
// label is the dispatch key tags resolve to, e.g. "x_widget_component". A
// non-empty theme label scopes the definition to that theme.
type ComponentDefinition struct {
	Key         string            `hcl:"key,label"`
	Theme       string            `hcl:"theme,optional"`
	Description string            `hcl:"description,optional"`
	Lifecycle   *Lifecycle        `hcl:"lifecycle,block"`
	Props       []*PropDefinition `hcl:"prop,block"`
}

// ElementDefinition represents the HCL manifest for a host-native element.
// The label is the element's lookup key: the bare local name for
// host-namespace elements, or "<namespace>_<name>" for custom-namespace ones.
type ElementDefinition struct {
	Key         string `hcl:"key,label"`
	RenderType  string `hcl:"render_type"`
	Description string `hcl:"description,optional"`
}

// ManifestConfig represents the top-level structure of a manifest file.
type ManifestConfig struct {
	Components []*ComponentDefinition `hcl:"component,block"`
	Elements   []*ElementDefinition   `hcl:"element,block"`
	Body       hcl.Body               `hcl:",remain"`
}
