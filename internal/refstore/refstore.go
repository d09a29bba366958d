// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package refstore boxes non-string values so they can travel through
// string-keyed prop maps without losing their identity. A boxed value is
// replaced by an opaque token of the form "Ref/<id>/"; the owning table
// resolves the token back to the original value.
package refstore

import (
	"strconv"
	"strings"
	"sync"
)

const (
	tokenPrefix = "Ref/"
	tokenSuffix = "/"
)

// Table is a per-compilation store of boxed values. Renderer callbacks may
// fan out, so access is serialized.
type Table struct {
	mu   sync.Mutex
	next uint64
	vals map[uint64]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{vals: make(map[uint64]any)}
}

// Ref is a handle to a boxed value. The zero Ref is invalid.
type Ref struct {
	id    uint64
	table *Table
}

// Box stores v and returns its handle.
func (t *Table) Box(v any) Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	id := t.next
	t.vals[id] = v
	return Ref{id: id, table: t}
}

// Token renders the handle as its wire form, e.g. "Ref/3/". Tokens contain
// no characters that HTML escaping rewrites, so they survive sanitization.
func (r Ref) Token() string {
	return tokenPrefix + strconv.FormatUint(r.id, 10) + tokenSuffix
}

// Value returns the boxed value, or false if the ref does not belong to a
// live table.
func (r Ref) Value() (any, bool) {
	if r.table == nil {
		return nil, false
	}
	return r.table.lookup(r.id)
}

// Resolve parses token and returns the value it refers to. Unknown ids and
// strings that are not exactly one token resolve to nothing.
func (t *Table) Resolve(token string) (any, bool) {
	id, ok := ParseToken(token)
	if !ok {
		return nil, false
	}
	return t.lookup(id)
}

// Ref turns a token back into a live handle. It succeeds only when the token
// parses and its id is boxed in this table, so a literal "Ref/1/" authored in
// markup never becomes a handle by accident.
func (t *Table) Ref(token string) (Ref, bool) {
	id, ok := ParseToken(token)
	if !ok {
		return Ref{}, false
	}
	if _, live := t.lookup(id); !live {
		return Ref{}, false
	}
	return Ref{id: id, table: t}, true
}

// Len reports how many values are boxed.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.vals)
}

func (t *Table) lookup(id uint64) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.vals[id]
	return v, ok
}

// IsToken reports whether s is exactly one boxed-reference token.
func IsToken(s string) bool {
	_, ok := ParseToken(s)
	return ok
}

// ParseToken extracts the id from a token. It accepts only the full
// "Ref/<id>/" form with a decimal id.
func ParseToken(s string) (uint64, bool) {
	body, ok := strings.CutPrefix(s, tokenPrefix)
	if !ok {
		return 0, false
	}
	body, ok = strings.CutSuffix(body, tokenSuffix)
	if !ok || body == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
