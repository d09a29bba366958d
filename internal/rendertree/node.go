// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package rendertree

import (
	"sort"
	"strconv"
	"strings"
)

// MetaPrefix marks reserved metadata keys. Child slots must never start with
// it; the transformer enforces that invariant when it merges children.
const MetaPrefix = "#"

// Reserved metadata keys understood by every host pipeline.
const (
	TypeKey       = "#type"
	TagKey        = "#tag"
	ValueKey      = "#value"
	AttributesKey = "#attributes"
)

// Node is a single render-tree vertex. Values are scalars (string), nested
// Nodes, []any collision lists, []string class lists, or map[string]any
// attribute maps. A nil Node is not usable; construct with New.
type Node map[string]any

// New returns an empty render node.
func New() Node {
	return Node{}
}

// IsMetaKey reports whether key belongs to the reserved metadata namespace.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, MetaPrefix)
}

// Type returns the node's "#type" value, or "" when unset.
func (n Node) Type() string {
	s, _ := n[TypeKey].(string)
	return s
}

// Attributes returns the node's "#attributes" map, or nil when unset.
func (n Node) Attributes() map[string]any {
	m, _ := n[AttributesKey].(map[string]any)
	return m
}

// EnsureAttributes returns the node's "#attributes" map, creating it first
// when the node has none yet.
func (n Node) EnsureAttributes() map[string]any {
	if m := n.Attributes(); m != nil {
		return m
	}
	m := make(map[string]any)
	n[AttributesKey] = m
	return m
}

// SetAttribute stores a single attribute value under "#attributes".
func (n Node) SetAttribute(name string, value any) {
	n.EnsureAttributes()[name] = value
}

// ChildKeys returns every non-metadata key of the node, positional keys
// first in numeric order, then named keys sorted lexically. Map iteration
// order is unspecified in Go, so every caller that walks child slots goes
// through this to stay deterministic.
func (n Node) ChildKeys() []string {
	var positional, named []string
	for key := range n {
		if IsMetaKey(key) {
			continue
		}
		if _, err := strconv.Atoi(key); err == nil {
			positional = append(positional, key)
		} else {
			named = append(named, key)
		}
	}
	sort.Slice(positional, func(i, j int) bool {
		a, _ := strconv.Atoi(positional[i])
		b, _ := strconv.Atoi(positional[j])
		return a < b
	})
	sort.Strings(named)
	return append(positional, named...)
}

// ChildCount returns the number of child slots (non-metadata keys).
func (n Node) ChildCount() int {
	count := 0
	for key := range n {
		if !IsMetaKey(key) {
			count++
		}
	}
	return count
}

// NextIndex returns the smallest non-negative integer key not yet used as a
// positional child slot, so appended children never clobber earlier ones.
func (n Node) NextIndex() int {
	next := 0
	for key := range n {
		if IsMetaKey(key) {
			continue
		}
		if i, err := strconv.Atoi(key); err == nil && i >= next {
			next = i + 1
		}
	}
	return next
}
