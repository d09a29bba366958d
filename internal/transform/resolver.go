// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/markup"
	"github.com/vk/treemarkgo/internal/registry"
)

// hostNamespace is reserved for elements the host pipeline renders natively.
// Tags under it resolve through element definitions keyed by bare local name.
const hostNamespace = "host"

type dispatchKind int

const (
	// dispatchBuiltin renders the tag literally as a generic html_tag node.
	// Besides genuine standard tags it is also the non-strict fallback for
	// anything that resolves to nothing.
	dispatchBuiltin dispatchKind = iota
	dispatchElement
	dispatchComponent
)

// dispatch is the outcome of resolving one qualified tag.
type dispatch struct {
	kind      dispatchKind
	key       string
	element   *config.ElementDefinition
	component *registry.RegisteredComponent
}

type resolver struct {
	reg *registry.Registry
}

// resolve decides how a tag is rendered. Precedence: standard tag names in
// the global namespace render literally; then element definitions (host
// namespace by local name, custom namespaces by "<ns>_<name>"); then exactly
// one registered component for the tag's dispatch key. Zero component matches
// fail in strict mode and fall back to a literal tag otherwise; several
// matches are always fatal, since picking one silently would be unsound.
func (r *resolver) resolve(qt markup.QualifiedTag, strict bool) (dispatch, error) {
	if qt.Namespace == markup.GlobalNamespace && atom.Lookup([]byte(qt.Name)) != 0 {
		return dispatch{kind: dispatchBuiltin}, nil
	}
	switch qt.Namespace {
	case markup.GlobalNamespace:
		// Global tags never resolve through element definitions.
	case hostNamespace:
		if def := r.reg.Element(qt.Name); def != nil {
			return dispatch{kind: dispatchElement, element: def}, nil
		}
	default:
		if def := r.reg.Element(elementKey(qt)); def != nil {
			return dispatch{kind: dispatchElement, element: def}, nil
		}
	}

	key := DispatchKey(qt)
	providers := r.reg.LookupComponent(key)
	switch len(providers) {
	case 0:
		if strict {
			return dispatch{}, &UnresolvedComponentError{Tag: qt.String(), DispatchKey: key}
		}
		return dispatch{kind: dispatchBuiltin}, nil
	case 1:
		return dispatch{kind: dispatchComponent, key: key, component: providers[0]}, nil
	default:
		names := make([]string, len(providers))
		for i, p := range providers {
			names[i] = p.Definition.Provider()
		}
		return dispatch{}, &AmbiguousComponentError{DispatchKey: key, Providers: names}
	}
}

// DispatchKey returns the component lookup key for a qualified tag:
// "<namespace>_<name>_component", with the global namespace contributing no
// prefix and dashes folded to underscores throughout.
func DispatchKey(qt markup.QualifiedTag) string {
	name := foldDashes(qt.Name)
	if qt.Namespace == markup.GlobalNamespace {
		return name + "_component"
	}
	return foldDashes(qt.Namespace) + "_" + name + "_component"
}

// elementKey returns the element-definition lookup key for a namespaced tag.
func elementKey(qt markup.QualifiedTag) string {
	return foldDashes(qt.Namespace) + "_" + foldDashes(qt.Name)
}

func foldDashes(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}
