package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/treemarkgo/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go code.
// Every component manifest must bind a registered renderer handler, declared
// prop defaults must conform to their declared types, and every element
// declaration must carry a render type.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	referenced := make(map[string]struct{})

	for key, comps := range r.ComponentRegistry {
		if len(comps) > 1 {
			providers := make([]string, len(comps))
			for i, rc := range comps {
				providers[i] = rc.Definition.Provider()
			}
			logger.Warn("Dispatch key has more than one provider; tags resolving to it will fail as ambiguous.",
				"key", key, "providers", providers)
		}

		for _, rc := range comps {
			def := rc.Definition
			if def.Lifecycle == nil || def.Lifecycle.OnRender == "" {
				errs = append(errs, fmt.Sprintf("component '%s': manifest declares no on_render handler", key))
				continue
			}
			referenced[def.Lifecycle.OnRender] = struct{}{}
			if _, ok := r.RendererRegistry[def.Lifecycle.OnRender]; !ok {
				errs = append(errs, fmt.Sprintf("component '%s': manifest references handler '%s' which is not registered in Go", key, def.Lifecycle.OnRender))
			}

			for name, prop := range def.Props {
				if prop.Default == nil || prop.Type == cty.NilType {
					continue
				}
				if prop.Type.Equals(cty.DynamicPseudoType) {
					logger.Warn("Manifest for component has prop with 'type = any', which disables static default checking. Consider using a specific type like 'string', 'number', or 'bool'.",
						"component", key, "prop", name)
					continue
				}
				if _, err := convert.Convert(*prop.Default, prop.Type); err != nil {
					errs = append(errs, fmt.Sprintf("component '%s', prop '%s': default value does not conform to declared type '%s': %v",
						key, name, prop.Type.FriendlyName(), err))
				}
			}
		}
	}

	for key, def := range r.ElementRegistry {
		if def.RenderType == "" {
			errs = append(errs, fmt.Sprintf("element '%s': manifest declares no render_type", key))
		}
	}

	for name := range r.RendererRegistry {
		if _, ok := referenced[name]; !ok {
			logger.Warn("Renderer handler is registered in Go but no manifest references it.", "handler", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
