// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/ctxlog"
	"github.com/vk/treemarkgo/internal/markup"
	"github.com/vk/treemarkgo/internal/refstore"
	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/rendertree"
)

const (
	// deepEmbedAttr marks a render node whose markup children must be
	// bubbled down to the single leaf of its own output instead of being
	// attached at the top. Renderers set it; authors never do.
	deepEmbedAttr = "deep-embed"

	// wrapperTag and wrapperMarker build the synthetic container used to
	// recover multi-root fragments. The marker never survives into output.
	wrapperTag    = "div"
	wrapperMarker = "data-fragment-wrapper"
)

// Messenger receives user-facing diagnostics for recoverable input problems,
// such as markup that cannot be parsed at all.
type Messenger interface {
	Message(ctx context.Context, text string)
}

// slogMessenger routes diagnostics to the context logger, or the process
// default when the caller attached none.
type slogMessenger struct{}

func (slogMessenger) Message(ctx context.Context, text string) {
	if logger, ok := ctxlog.Maybe(ctx); ok {
		logger.Warn(text)
		return
	}
	slog.Warn(text)
}

// Options configure a Compiler. The zero value gives strict compilation with
// HTML escaping, entity normalization and log-backed messaging.
type Options struct {
	// NonStrict renders unresolvable component tags literally instead of
	// failing the compilation.
	NonStrict bool
	// Sanitizer escapes inline text before it reaches renderers and output
	// nodes. Defaults to html.EscapeString.
	Sanitizer func(string) string
	// Messenger receives recoverable-input diagnostics.
	Messenger Messenger
	// Normalizer rewrites raw markup before parsing.
	Normalizer markup.Normalizer
}

// Compiler turns markup strings into render trees using a populated registry.
// It is safe for concurrent use once constructed: every Compile call gets its
// own session, and the registry is never written after population.
type Compiler struct {
	reg       *registry.Registry
	res       resolver
	parser    *markup.Parser
	sanitize  func(string) string
	messenger Messenger
	strict    bool
}

// NewCompiler returns a compiler over reg. The registry must be fully
// populated and validated before the first Compile call.
func NewCompiler(reg *registry.Registry, opts Options) *Compiler {
	sanitize := opts.Sanitizer
	if sanitize == nil {
		sanitize = html.EscapeString
	}
	messenger := opts.Messenger
	if messenger == nil {
		messenger = slogMessenger{}
	}
	return &Compiler{
		reg:       reg,
		res:       resolver{reg: reg},
		parser:    markup.NewParser(opts.Normalizer),
		sanitize:  sanitize,
		messenger: messenger,
		strict:    !opts.NonStrict,
	}
}

// Compile transforms one markup input into a render tree. Unparseable input
// is reported through the messenger and yields an empty node, not an error;
// errors are reserved for transform-level failures, which discard the whole
// tree for this input.
func (c *Compiler) Compile(ctx context.Context, input string) (rendertree.Node, error) {
	s := &Session{
		guard:     NewGuard(),
		refs:      refstore.NewTable(),
		strict:    c.strict,
		messenger: c.messenger,
		compiler:  c,
	}
	return c.compile(ctx, s, input)
}

// CompileAll transforms each input independently and returns the trees in
// input order. The first failing input aborts the batch.
func (c *Compiler) CompileAll(ctx context.Context, inputs []string) ([]rendertree.Node, error) {
	out := make([]rendertree.Node, len(inputs))
	for i, input := range inputs {
		node, err := c.Compile(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = node
	}
	return out, nil
}

// compile is the shared entry for top-level calls and renderer re-entry via
// Session.Compile. Re-entry keeps the session's guard armed, which is how
// cycles across nested renderer invocations are caught.
func (c *Compiler) compile(ctx context.Context, s *Session, input string) (rendertree.Node, error) {
	ctx = withSession(ctx, s)

	root, warnings, err := c.parser.Parse(input)
	logWarnings(ctx, warnings)
	if err != nil {
		var missing *markup.MissingRootError
		if errors.As(err, &missing) {
			return c.compileWrapped(ctx, s, input)
		}
		c.messenger.Message(ctx, err.Error())
		return rendertree.New(), nil
	}

	node, name, err := c.transformNode(ctx, s, root)
	if err != nil {
		return nil, err
	}
	if name != "" {
		return rendertree.Node{name: node}, nil
	}
	return node, nil
}

// compileWrapped retries a fragment that has no single root by parsing it
// inside a synthetic marked container, then returns only the container's
// child slots so neither the wrapper tag nor its marker leak into output.
func (c *Compiler) compileWrapped(ctx context.Context, s *Session, input string) (rendertree.Node, error) {
	wrapped := fmt.Sprintf("<%s %s=%q>%s</%s>", wrapperTag, wrapperMarker, "1", input, wrapperTag)

	root, warnings, err := c.parser.Parse(wrapped)
	logWarnings(ctx, warnings)
	if err != nil {
		c.messenger.Message(ctx, err.Error())
		return rendertree.New(), nil
	}

	node, _, err := c.transformNode(ctx, s, root)
	if err != nil {
		return nil, err
	}

	result := rendertree.New()
	for _, key := range node.ChildKeys() {
		result[key] = node[key]
	}
	return result, nil
}

// transformNode compiles one parsed node and its subtree. The second return
// is the node's slotting name: the value of its name attribute, or "" for a
// positional child.
func (c *Compiler) transformNode(ctx context.Context, s *Session, n *markup.Node) (rendertree.Node, string, error) {
	qt, err := markup.ParseQualifiedTag(n.Tag)
	if err != nil {
		return nil, "", err
	}

	name, _ := n.Attr("name")
	if strings.HasPrefix(name, rendertree.MetaPrefix) {
		return nil, "", &ReservedKeyError{Name: name}
	}

	d, err := c.res.resolve(qt, s.strict)
	if err != nil {
		return nil, "", err
	}

	release := s.guard.Descend(n.Tag)
	defer release()

	var self rendertree.Node
	switch d.kind {
	case dispatchComponent:
		self, err = c.renderComponent(ctx, s, d, n)
		if err != nil {
			return nil, "", err
		}
	case dispatchElement:
		self = c.buildElement(ctx, d.element, n)
	default:
		self = c.buildTag(n)
	}

	var children []childEntry
	for _, child := range n.Children {
		node, childName, err := c.transformNode(ctx, s, child)
		if err != nil {
			return nil, "", err
		}
		children = append(children, childEntry{name: childName, value: node})
	}

	// A node bubbles its children down only when the marker appeared in its
	// built attributes without being authored on the node itself: deep embed
	// is something a component reveals by rendering, not something callers
	// request.
	bubble := !n.HasAttr(deepEmbedAttr)
	if bubble {
		_, present := self.Attributes()[deepEmbedAttr]
		bubble = present
	}

	if err := mergeChildren(self, children, bubble, d.key); err != nil {
		return nil, "", err
	}
	if bubble {
		attrs := self.Attributes()
		delete(attrs, deepEmbedAttr)
		if len(attrs) == 0 {
			delete(self, rendertree.AttributesKey)
		}
	}

	return self, name, nil
}

// renderComponent invokes the resolved renderer under recursion protection.
// Prop values are the component's declared defaults overridden by authored
// attributes, with live reference tokens resolved to their boxed form.
func (c *Compiler) renderComponent(ctx context.Context, s *Session, d dispatch, n *markup.Node) (rendertree.Node, error) {
	handler := c.reg.RendererFor(d.component)
	if handler == nil {
		return nil, fmt.Errorf("component '%s' resolved but no renderer is registered for it (provider %s)",
			d.key, d.component.Definition.Provider())
	}

	release, err := s.guard.Enter(d.key)
	if err != nil {
		return nil, err
	}
	defer release()

	props := make(map[string]any, len(d.component.Defaults)+len(n.Attrs))
	for k, v := range d.component.Defaults {
		props[k] = v
	}
	seen := make(map[string]struct{}, len(n.Attrs))
	for _, a := range n.Attrs {
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		if ref, ok := s.refs.Ref(a.Value); ok {
			props[a.Name] = ref
		} else {
			props[a.Name] = a.Value
		}
	}

	out, err := handler.Fn(ctx, props, c.sanitize(n.Text))
	if err != nil {
		return nil, fmt.Errorf("renderer for '%s' failed: %w", d.key, err)
	}
	if out == nil {
		out = rendertree.New()
	}
	return out, nil
}

// buildTag emits the literal render node for a standard tag, or for any tag
// in non-strict fallback.
func (c *Compiler) buildTag(n *markup.Node) rendertree.Node {
	node := rendertree.Node{
		rendertree.TypeKey: "html_tag",
		rendertree.TagKey:  n.Tag,
	}
	if strings.TrimSpace(n.Text) != "" {
		node[rendertree.ValueKey] = c.sanitize(n.Text)
	}
	for _, a := range n.Attrs {
		attrs := node.EnsureAttributes()
		if _, dup := attrs[a.Name]; dup {
			continue
		}
		if a.Name == "class" {
			attrs[a.Name] = strings.Fields(a.Value)
		} else {
			attrs[a.Name] = a.Value
		}
	}
	return node
}

// buildElement emits the render node for a registered element definition,
// routing attributes between #attributes and promoted #-keys.
func (c *Compiler) buildElement(ctx context.Context, def *config.ElementDefinition, n *markup.Node) rendertree.Node {
	node := rendertree.Node{rendertree.TypeKey: def.RenderType}
	if text := strings.TrimSpace(n.Text); text != "" {
		node[rendertree.ValueKey] = text
	}

	seen := make(map[string]struct{}, len(n.Attrs))
	for _, a := range n.Attrs {
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		switch {
		case a.Name == "attributes":
			var decoded map[string]any
			if err := json.Unmarshal([]byte(a.Value), &decoded); err != nil {
				if logger, ok := ctxlog.Maybe(ctx); ok {
					logger.Debug("Ignoring undecodable attributes JSON.", "tag", n.Tag, "error", err)
				}
				continue
			}
			attrs := node.EnsureAttributes()
			for k, v := range decoded {
				attrs[k] = v
			}
		case a.Name == "class":
			node.SetAttribute("class", strings.Fields(a.Value))
		case keepsAttrSlot(a.Name):
			node.SetAttribute(a.Name, a.Value)
		default:
			node[rendertree.MetaPrefix+a.Name] = a.Value
		}
	}
	return node
}

// keepsAttrSlot reports whether an element attribute stays under #attributes
// instead of being promoted to a #-key: a fixed set of common HTML attributes
// plus everything matching the event-handler convention. The convention is a
// literal substring test, so names like "font" qualify too; that matches how
// these attributes have always been routed.
func keepsAttrSlot(name string) bool {
	switch name {
	case "id", "enctype", "lang":
		return true
	}
	return strings.Contains(name, "on")
}

// logWarnings drops parser warnings into the debug log. Unknown-namespace
// warnings are expected for every component tag, so none of them reach the
// messenger.
func logWarnings(ctx context.Context, warnings []markup.Warning) {
	logger, ok := ctxlog.Maybe(ctx)
	if !ok {
		return
	}
	for _, w := range warnings {
		logger.Debug("Ignoring parser warning.", "warning", w.String())
	}
}
