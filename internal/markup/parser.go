// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file builds the source-faithful markup tree. It deliberately avoids
// html.Parse: the HTML5 tree constructor invents html/head/body scaffolding
// and relocates content, which would destroy the 1:1 mapping between what an
// author wrote and what the transformer sees. Tokenizing and nesting by hand
// keeps custom tags, namespaces and sibling order exactly as authored.
package markup

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements are HTML tags that never take a closing tag. Start tags for
// these behave like self-closing tags even without the trailing slash.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

// Parser turns markup text into a Node tree. A zero Parser is not usable;
// construct with NewParser.
type Parser struct {
	normalizer Normalizer
}

// NewParser returns a parser using the given normalizer, or the default
// EntityNormalizer when nil.
func NewParser(n Normalizer) *Parser {
	if n == nil {
		n = EntityNormalizer{}
	}
	return &Parser{normalizer: n}
}

// openElement is one entry on the parse stack.
type openElement struct {
	node *Node
	// line is where the element's start tag appeared, for unclosed-tag errors.
	line int
	// declared lists the xmlns prefixes this element introduced, so they can
	// be retired when the element closes.
	declared []string
}

// Parse builds the node tree for a single markup document. The returned
// warnings are non-fatal; a nil error guarantees a non-nil single root.
// Input that parses cleanly but has zero or several top-level elements
// returns a *MissingRootError so the caller can retry with a wrapper.
func (p *Parser) Parse(markup string) (*Node, []Warning, error) {
	src := p.normalizer.Normalize(markup)

	z := html.NewTokenizer(strings.NewReader(src))
	var (
		stack    []openElement
		roots    []*Node
		warnings []Warning
		// namespaces counts live xmlns:prefix declarations by prefix.
		namespaces = map[string]int{}
		line       = 1
		strayText  bool
	)

	for {
		tt := z.Next()
		tokLine := line
		line += bytes.Count(z.Raw(), []byte{'\n'})

		switch tt {
		case html.ErrorToken:
			err := z.Err()
			if !errors.Is(err, io.EOF) {
				return nil, warnings, &ParseError{Message: err.Error(), Line: tokLine}
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				return nil, warnings, &ParseError{
					Message: "unexpected end of input: <" + top.node.Tag + "> is never closed",
					Line:    top.line,
				}
			}
			if len(roots) != 1 || strayText {
				return nil, warnings, &MissingRootError{Roots: len(roots), StrayText: strayText}
			}
			return roots[0], warnings, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			node := &Node{Tag: tok.Data}

			var declared []string
			for _, a := range tok.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: a.Key, Value: a.Val})
				if prefix, ok := strings.CutPrefix(a.Key, "xmlns:"); ok && prefix != "" {
					namespaces[prefix]++
					declared = append(declared, prefix)
				}
			}

			if prefix, _, ok := strings.Cut(tok.Data, ":"); ok && namespaces[prefix] == 0 {
				warnings = append(warnings, Warning{
					Kind:   WarnUnknownNamespace,
					Detail: prefix,
					Line:   tokLine,
				})
			}

			if len(stack) == 0 {
				roots = append(roots, node)
			} else {
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, node)
			}

			_, void := voidElements[tok.Data]
			if tt == html.SelfClosingTagToken || void {
				retireNamespaces(namespaces, declared)
				continue
			}
			stack = append(stack, openElement{node: node, line: tokLine, declared: declared})

		case html.EndTagToken:
			tok := z.Token()
			if len(stack) == 0 {
				return nil, warnings, &ParseError{
					Message: "unexpected closing tag </" + tok.Data + ">",
					Line:    tokLine,
				}
			}
			top := stack[len(stack)-1]
			if top.node.Tag != tok.Data {
				return nil, warnings, &ParseError{
					Message: "mismatched closing tag </" + tok.Data + ">, expected </" + top.node.Tag + ">",
					Line:    tokLine,
				}
			}
			retireNamespaces(namespaces, top.declared)
			stack = stack[:len(stack)-1]

		case html.TextToken:
			text := z.Token().Data
			if len(stack) == 0 {
				if strings.TrimSpace(text) != "" {
					strayText = true
				}
				continue
			}
			stack[len(stack)-1].node.Text += text

		case html.CommentToken, html.DoctypeToken:
			// Neither contributes to the tree.
		}
	}
}

// retireNamespaces drops declarations introduced by a now-closed element.
func retireNamespaces(namespaces map[string]int, declared []string) {
	for _, prefix := range declared {
		if namespaces[prefix] > 0 {
			namespaces[prefix]--
		}
	}
}
