package hcl

import (
	"fmt"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/schema"
)

// translateComponentDefinition converts the HCL-specific component schema
// into the agnostic model.
func translateComponentDefinition(s *schema.ComponentDefinition) (*config.ComponentDefinition, error) {
	def := &config.ComponentDefinition{
		Key:         s.Key,
		Theme:       s.Theme,
		Description: s.Description,
		Props:       make(map[string]*config.PropDefinition),
	}
	if s.Lifecycle != nil {
		def.Lifecycle = &config.Lifecycle{OnRender: s.Lifecycle.OnRender}
	}

	for _, p := range s.Props {
		translated, err := translatePropDefinition(p, s.Key)
		if err != nil {
			return nil, err
		}
		if _, exists := def.Props[p.Name]; exists {
			return nil, fmt.Errorf("component '%s' declares prop '%s' more than once", s.Key, p.Name)
		}
		def.Props[p.Name] = translated
	}
	return def, nil
}

// translatePropDefinition is a helper that processes a single HCL prop
// block, handling its default value and type parsing.
func translatePropDefinition(p *schema.PropDefinition, ownerKey string) (*config.PropDefinition, error) {
	parsedType, err := typeExprToCtyType(p.Type)
	if err != nil {
		return nil, fmt.Errorf("in component '%s', prop '%s': %w", ownerKey, p.Name, err)
	}

	def := &config.PropDefinition{
		Name:        p.Name,
		Type:        parsedType,
		Description: p.Description,
	}
	// A default is only meaningful if it decoded to a non-null value; its
	// presence is what makes the prop optional.
	if p.Default != nil && !p.Default.IsNull() {
		def.Default = p.Default
		def.Optional = true
	}
	return def, nil
}

// translateElementDefinition converts the HCL-specific element schema into
// the agnostic model.
func translateElementDefinition(s *schema.ElementDefinition) *config.ElementDefinition {
	return &config.ElementDefinition{
		Key:         s.Key,
		RenderType:  s.RenderType,
		Description: s.Description,
	}
}
