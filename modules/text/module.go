package text

import (
	"context"
	"strconv"

	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRenderHeading is the handler for the text:heading render lifecycle event.
func OnRenderHeading(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	level := intProp(props, "level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	n := rendertree.New()
	n[rendertree.TypeKey] = "html_tag"
	n[rendertree.TagKey] = "h" + strconv.Itoa(level)
	if value != "" {
		n[rendertree.ValueKey] = value
	}
	if anchor := stringProp(props, "anchor", ""); anchor != "" {
		n.SetAttribute("id", anchor)
	}
	return n, nil
}

// OnRenderQuote is the handler for the text:quote render lifecycle event.
func OnRenderQuote(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
	n := rendertree.New()
	n[rendertree.TypeKey] = "container"
	n.SetAttribute("class", []string{"quote"})
	if value != "" {
		n[rendertree.ValueKey] = value
	}
	if cite := stringProp(props, "cite", ""); cite != "" {
		src := rendertree.New()
		src[rendertree.TypeKey] = "html_tag"
		src[rendertree.TagKey] = "cite"
		src[rendertree.ValueKey] = cite
		n["source"] = src
	}
	return n, nil
}

// Register registers the pack's handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer("OnRenderHeading", &registry.RegisteredRenderer{Fn: OnRenderHeading})
	r.RegisterRenderer("OnRenderQuote", &registry.RegisteredRenderer{Fn: OnRenderQuote})
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
