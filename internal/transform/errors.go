// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

import (
	"fmt"
	"strings"

	"github.com/vk/treemarkgo/internal/rendertree"
)

// UnresolvedComponentError reports a tag that resolved to no renderer while
// strict mode was in effect.
type UnresolvedComponentError struct {
	Tag         string // the tag as written, e.g. "x:widget"
	DispatchKey string // the key that was probed, e.g. "x_widget_component"
}

func (e *UnresolvedComponentError) Error() string {
	return fmt.Sprintf("no component registered for tag <%s> (expected dispatch key '%s')", e.Tag, e.DispatchKey)
}

// AmbiguousComponentError reports a dispatch key claimed by more than one
// provider. This is fatal regardless of strict mode: silently picking one
// would be unsound.
type AmbiguousComponentError struct {
	DispatchKey string
	Providers   []string
}

func (e *AmbiguousComponentError) Error() string {
	return fmt.Sprintf("dispatch key '%s' is claimed by %d providers: %s",
		e.DispatchKey, len(e.Providers), strings.Join(e.Providers, ", "))
}

// InfiniteRecursionError reports a renderer that, directly or through nested
// compilations, invoked its own dispatch key again. Chain holds the active
// component keys in invocation order, ending with the key that was about to
// be entered.
type InfiniteRecursionError struct {
	DispatchKey string
	Chain       []string
}

func (e *InfiniteRecursionError) Error() string {
	return fmt.Sprintf("infinite recursion detected for dispatch key '%s': %s",
		e.DispatchKey, strings.Join(e.Chain, " -> "))
}

// ReservedKeyError reports a name attribute that collides with the render
// tree's metadata key space.
type ReservedKeyError struct {
	Name string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("child name '%s' is reserved: names must not begin with '%s'", e.Name, rendertree.MetaPrefix)
}

// AmbiguousDeepEmbedError reports a deep embed whose insertion point could
// not be determined: bubbling down requires an unambiguous single path of
// nested child slots, and the component's output had something else.
type AmbiguousDeepEmbedError struct {
	DispatchKey string
	Slots       []string
}

func (e *AmbiguousDeepEmbedError) Error() string {
	return fmt.Sprintf("deep embed for '%s' is ambiguous: output already holds child slots [%s]",
		e.DispatchKey, strings.Join(e.Slots, ", "))
}
