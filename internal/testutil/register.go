package testutil

import (
	"context"

	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// SimpleModule is a test helper for easily creating a mock pack that
// registers a single renderer handler.
type SimpleModule struct {
	HandlerName string
	Handler     *registry.RegisteredRenderer
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.HandlerName != "" && m.Handler != nil {
		r.RegisterRenderer(m.HandlerName, m.Handler)
	}
}

// NoopModule registers a single "Noop" renderer that returns an empty node.
// It's useful for tests that need manifests passing registry validation but
// whose markup never reaches the renderer.
type NoopModule struct{}

// Register registers the "Noop" renderer handler.
func (m *NoopModule) Register(r *registry.Registry) {
	r.RegisterRenderer("Noop", &registry.RegisteredRenderer{
		Fn: func(ctx context.Context, props map[string]any, value string) (rendertree.Node, error) {
			return rendertree.New(), nil
		},
	})
}
