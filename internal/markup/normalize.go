// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Normalizer rewrites raw markup before it reaches the tokenizer. It exists
// as a boundary for hosts whose parsers are stricter than ours: the default
// implementation folds HTML named character references into numeric ones so
// an XML parser limited to the five built-in entities still accepts authored
// text like "&nbsp;".
type Normalizer interface {
	Normalize(markup string) string
}

// NopNormalizer leaves markup untouched. The bundled tokenizer decodes HTML
// entities natively, so normalization is about downstream parser strictness,
// not correctness here.
type NopNormalizer struct{}

// Normalize returns markup unchanged.
func (NopNormalizer) Normalize(markup string) string { return markup }

// EntityNormalizer rewrites HTML named character references into numeric
// character references. The five XML-native entities (amp, lt, gt, quot,
// apos) and anything already numeric pass through untouched.
type EntityNormalizer struct{}

// xmlNative lists the entity names XML parsers understand without a DTD.
var xmlNative = map[string]struct{}{
	"amp": {}, "lt": {}, "gt": {}, "quot": {}, "apos": {},
}

// maxEntityName bounds the scan for a closing ';'. The longest HTML entity
// name is 32 characters ("CounterClockwiseContourIntegral").
const maxEntityName = 32

// Normalize folds named references in markup into numeric ones.
func (EntityNormalizer) Normalize(markup string) string {
	if !strings.Contains(markup, "&") {
		return markup
	}

	var b strings.Builder
	b.Grow(len(markup))

	for i := 0; i < len(markup); {
		c := markup[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}

		name, width := scanEntityName(markup[i:])
		if name == "" {
			b.WriteByte(c)
			i++
			continue
		}
		if _, native := xmlNative[name]; native {
			b.WriteString(markup[i : i+width])
			i += width
			continue
		}

		decoded := html.UnescapeString(markup[i : i+width])
		if decoded == markup[i:i+width] {
			// Not a recognized entity; keep the raw text.
			b.WriteString(decoded)
		} else {
			for _, r := range decoded {
				fmt.Fprintf(&b, "&#%d;", r)
			}
		}
		i += width
	}

	return b.String()
}

// scanEntityName returns the name inside a "&name;" reference starting at
// s[0] == '&', plus the total width including the ampersand and semicolon.
// Numeric references and anything that is not a well-formed reference return
// an empty name.
func scanEntityName(s string) (string, int) {
	for j := 1; j < len(s) && j <= maxEntityName+1; j++ {
		c := s[j]
		switch {
		case c == ';':
			if j == 1 {
				return "", 0
			}
			if s[1] == '#' {
				return "", 0
			}
			return s[1:j], j + 1
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '#':
			// Still inside a candidate name.
		default:
			return "", 0
		}
	}
	return "", 0
}
