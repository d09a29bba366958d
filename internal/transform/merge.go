// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

import (
	"strconv"

	"github.com/vk/treemarkgo/internal/rendertree"
)

// childEntry is one transformed child waiting to be slotted into its parent.
// An empty name means the child is positional.
type childEntry struct {
	name  string
	value rendertree.Node
}

// mergeChildren slots children into parent. With bubble set the children are
// not merged at the top: the merger walks down through existing child slots,
// one level at a time, until it reaches a node with no children, and merges
// there. The walk requires exactly one render-node slot at every level —
// anything else leaves no single insertion point and fails with an
// AmbiguousDeepEmbedError naming key.
func mergeChildren(parent rendertree.Node, children []childEntry, bubble bool, key string) error {
	if len(children) == 0 {
		return nil
	}
	if !bubble {
		mergeInto(parent, children)
		return nil
	}
	cur := parent
	for {
		keys := cur.ChildKeys()
		switch len(keys) {
		case 0:
			mergeInto(cur, children)
			return nil
		case 1:
			next, ok := cur[keys[0]].(rendertree.Node)
			if !ok {
				return &AmbiguousDeepEmbedError{DispatchKey: key, Slots: keys}
			}
			cur = next
		default:
			return &AmbiguousDeepEmbedError{DispatchKey: key, Slots: keys}
		}
	}
}

// mergeInto applies the slotting rules at a single level: positional children
// take the next free index; named children land under their name, with
// repeats collapsing into a list in document order.
func mergeInto(parent rendertree.Node, children []childEntry) {
	for _, child := range children {
		if child.name == "" {
			parent[strconv.Itoa(parent.NextIndex())] = child.value
			continue
		}
		existing, taken := parent[child.name]
		if !taken {
			parent[child.name] = child.value
			continue
		}
		if list, ok := existing.([]any); ok {
			parent[child.name] = append(list, child.value)
			continue
		}
		parent[child.name] = []any{existing, child.value}
	}
}
