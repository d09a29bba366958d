package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// RendererFunc is the signature every component renderer implements. Props
// values are plain strings or boxed references; value is the sanitized
// inline text of the component's tag.
type RendererFunc func(ctx context.Context, props map[string]any, value string) (rendertree.Node, error)

// RegisteredRenderer holds the compiled Go parts of a component's render
// lifecycle function.
type RegisteredRenderer struct {
	Fn RendererFunc
}

// RegisterRenderer registers a Go function for a component's render
// lifecycle event.
func (r *Registry) RegisterRenderer(name string, handler *RegisteredRenderer) {
	if _, exists := r.RendererRegistry[name]; exists {
		panic(fmt.Sprintf("renderer handler with name '%s' already registered", name))
	}
	slog.Debug("Registering renderer handler.", "name", name)
	r.RendererRegistry[name] = handler
}

// RegisteredComponent pairs a manifest definition with its pre-converted
// prop defaults.
type RegisteredComponent struct {
	Definition *config.ComponentDefinition
	Defaults   map[string]any
}
