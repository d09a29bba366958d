// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package markup

// Attr is a single parsed attribute. Attribute order is preserved exactly as
// authored, which is why nodes carry a slice rather than a map.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the parsed markup tree. The parser owns these trees;
// the transformer reads them and must never mutate them.
type Node struct {
	// Tag is the raw tag name as written, possibly "namespace:local".
	Tag string
	// Attrs holds the element's attributes in document order.
	Attrs []Attr
	// Children holds the element's child elements in document order.
	Children []*Node
	// Text is the element's accumulated directly-contained character data.
	Text string
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, even when empty.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}
