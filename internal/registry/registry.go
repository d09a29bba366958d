package registry

import (
	"fmt"

	"github.com/vk/treemarkgo/internal/config"
)

// Module is the interface that all component packs must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered renderer handlers and manifest
// definitions for a single application instance.
type Registry struct {
	RendererRegistry  map[string]*RegisteredRenderer
	ComponentRegistry map[string][]*RegisteredComponent
	ElementRegistry   map[string]*config.ElementDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		RendererRegistry:  make(map[string]*RegisteredRenderer),
		ComponentRegistry: make(map[string][]*RegisteredComponent),
		ElementRegistry:   make(map[string]*config.ElementDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded manifest definitions from the
// config model into the registry for easy access during compilation. Prop
// defaults are converted to their native Go form once, here, via conv.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model, conv config.Converter) error {
	for key, defs := range model.Components {
		for _, def := range defs {
			rc := &RegisteredComponent{
				Definition: def,
				Defaults:   make(map[string]any),
			}
			for name, prop := range def.Props {
				if prop.Default == nil {
					continue
				}
				v, err := conv.FromCtyValue(*prop.Default)
				if err != nil {
					return fmt.Errorf("component '%s', prop '%s': cannot convert default value: %w", key, name, err)
				}
				rc.Defaults[name] = v
			}
			r.ComponentRegistry[key] = append(r.ComponentRegistry[key], rc)
		}
	}
	for key, def := range model.Elements {
		r.ElementRegistry[key] = def
	}
	return nil
}

// LookupComponent returns every provider registered for the dispatch key,
// theme-scoped providers included. The resolver rejects multi-provider keys
// at dispatch time; the registry only reports them.
func (r *Registry) LookupComponent(key string) []*RegisteredComponent {
	return r.ComponentRegistry[key]
}

// Element returns the element definition registered under key, or nil.
func (r *Registry) Element(key string) *config.ElementDefinition {
	return r.ElementRegistry[key]
}

// RendererFor resolves the Go renderer bound to a component definition, or
// nil when no handler with that name was registered.
func (r *Registry) RendererFor(c *RegisteredComponent) *RegisteredRenderer {
	if c == nil || c.Definition.Lifecycle == nil {
		return nil
	}
	return r.RendererRegistry[c.Definition.Lifecycle.OnRender]
}
