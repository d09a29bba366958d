package layout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRenderGrid is the handler for the layout:grid render lifecycle event.
// The node it returns carries a deep-embed marker with a single items slot,
// so authored children land inside the slot rather than next to it.
func OnRenderGrid(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	cols := intProp(props, "columns", 2)
	if cols < 1 {
		return nil, fmt.Errorf("layout:grid needs at least one column, got %d", cols)
	}

	items := rendertree.New()
	items[rendertree.TypeKey] = "container"
	items.SetAttribute("class", []string{"grid__items"})

	n := rendertree.New()
	n[rendertree.TypeKey] = "container"
	n.SetAttribute("class", []string{
		"grid",
		"grid--cols-" + strconv.Itoa(cols),
		"grid--gap-" + stringProp(props, "gap", "md"),
	})
	n.SetAttribute("deep-embed", "true")
	n["items"] = items
	return n, nil
}

// OnRenderStack is the handler for the layout:stack render lifecycle event.
func OnRenderStack(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	n := rendertree.New()
	n[rendertree.TypeKey] = "container"
	n.SetAttribute("class", []string{
		"stack",
		"stack--" + stringProp(props, "direction", "column"),
		"stack--align-" + stringProp(props, "align", "stretch"),
	})
	return n, nil
}

// Register registers the pack's handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("OnRenderGrid", &registry.RegisteredRenderer{Fn: OnRenderGrid})
	r.RegisterRenderer("OnRenderStack", &registry.RegisteredRenderer{Fn: OnRenderStack})
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
