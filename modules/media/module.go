package media

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
	"github.com/vk/treemarkgo/internal/transform"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRenderImage is the handler for the media:image render lifecycle event.
func OnRenderImage(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	src, _ := props["src"].(string)
	if src == "" {
		return nil, fmt.Errorf("media:image requires a non-empty 'src' prop")
	}

	n := rendertree.New()
	n[rendertree.TypeKey] = "html_tag"
	n[rendertree.TagKey] = "img"
	n.SetAttribute("src", src)
	n.SetAttribute("alt", stringProp(props, "alt", ""))
	n.SetAttribute("class", []string{"media__image"})
	if w := intProp(props, "width", 0); w > 0 {
		n.SetAttribute("width", w)
	}
	return n, nil
}

// OnRenderFigure is the handler for the media:figure render lifecycle event.
// The caption prop may itself contain markup, so it is compiled through the
// live session; component tags inside it resolve against the same registry
// and the recursion guard stays armed across the nested compile.
func OnRenderFigure(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	n := rendertree.New()
	n[rendertree.TypeKey] = "container"
	n.SetAttribute("class", []string{"figure"})

	caption := stringProp(props, "caption", "")
	if caption == "" {
		return n, nil
	}

	s, ok := transform.SessionFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("media:figure rendered outside a compile session")
	}
	compiled, err := s.Compile(ctx, `<span class="figure__caption">`+caption+`</span>`)
	if err != nil {
		return nil, fmt.Errorf("compiling figure caption: %w", err)
	}
	n["caption"] = compiled
	return n, nil
}

// Register registers the pack's handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("OnRenderImage", &registry.RegisteredRenderer{Fn: OnRenderImage})
	r.RegisterRenderer("OnRenderFigure", &registry.RegisteredRenderer{Fn: OnRenderFigure})
}

// stringProp reads a string prop, falling back when it is absent or empty.
func stringProp(props map[string]any, name, fallback string) string {
	if s, ok := props[name].(string); ok && s != "" {
		return s
	}
	return fallback
}

// intProp reads a numeric prop. Manifest defaults arrive as int64 or
// float64; authored attribute values arrive as strings.
func intProp(props map[string]any, name string, fallback int) int {
	switch v := props[name].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
