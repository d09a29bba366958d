// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package transform

import (
	"context"

	"github.com/vk/treemarkgo/internal/refstore"
	"github.com/vk/treemarkgo/internal/rendertree"
)

// Session is the per-compilation state shared between the compiler and the
// renderers it invokes. One session exists per top-level Compile call; nested
// compilations started by renderers reuse it, which is what makes cycles
// across renderer boundaries observable.
type Session struct {
	guard     *Guard
	refs      *refstore.Table
	strict    bool
	messenger Messenger
	compiler  *Compiler
}

// Compile compiles a nested fragment within the current session. The recursion
// guard stays armed across the call, so a renderer that feeds its own tag back
// through Compile fails with an InfiniteRecursionError instead of hanging.
func (s *Session) Compile(ctx context.Context, input string) (rendertree.Node, error) {
	return s.compiler.compile(ctx, s, input)
}

// Box stores a value for the session's lifetime and returns a token that
// survives attribute parsing. Renderers hand the token to markup they emit;
// when it comes back around as an attribute value it resolves to the original
// value rather than a string.
func (s *Session) Box(v any) string {
	return s.refs.Box(v).Token()
}

// Resolve returns the value behind a token minted by Box in this session.
func (s *Session) Resolve(token string) (any, bool) {
	return s.refs.Resolve(token)
}

// Strict reports whether the session fails on unresolvable component tags.
func (s *Session) Strict() bool {
	return s.strict
}

type sessionKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session driving the current renderer
// invocation. Renderers receive it through the context the compiler passes
// them; outside a renderer there is no session.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}
