// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

// frameKind distinguishes component frames, which participate in cycle
// detection, from plain element frames, which are tracked only so reported
// chains can be filtered down to components.
type frameKind int

const (
	frameElement frameKind = iota
	frameComponent
)

type frame struct {
	kind frameKind
	key  string
}

// Guard tracks the chain of in-flight frames for one top-level compilation.
// It is exclusively owned by that compilation's session; sharing a guard
// across concurrent compilations would produce false-positive cycles.
type Guard struct {
	stack []frame
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Enter pushes a component frame after checking that key is not already
// active. A repeat means a renderer is transitively invoking itself, and
// Enter fails with an InfiniteRecursionError carrying the chain of active
// component keys. The returned release must run on every exit path; callers
// defer it immediately.
func (g *Guard) Enter(key string) (func(), error) {
	for _, f := range g.stack {
		if f.kind == frameComponent && f.key == key {
			return nil, &InfiniteRecursionError{
				DispatchKey: key,
				Chain:       append(g.componentChain(), key),
			}
		}
	}
	g.stack = append(g.stack, frame{kind: frameComponent, key: key})
	return g.pop, nil
}

// Descend pushes a plain element frame. Element frames are never checked for
// cycles: straight recursion through nested markup is legitimate. They exist
// so the stack mirrors the full descent while reported chains stay filtered
// to component keys.
func (g *Guard) Descend(tag string) func() {
	g.stack = append(g.stack, frame{kind: frameElement, key: tag})
	return g.pop
}

// Depth reports how many frames are active.
func (g *Guard) Depth() int {
	return len(g.stack)
}

func (g *Guard) pop() {
	g.stack = g.stack[:len(g.stack)-1]
}

func (g *Guard) componentChain() []string {
	var chain []string
	for _, f := range g.stack {
		if f.kind == frameComponent {
			chain = append(chain, f.key)
		}
	}
	return chain
}
