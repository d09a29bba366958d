// Package markup turns raw XML/HTML-like markup text into a source-faithful
// node tree for the transformer.
//
// The parser is built on the golang.org/x/net/html tokenizer rather than a
// spec-complete HTML5 tree constructor: the goal is a tree as close to the
// authored source as possible (custom tags kept verbatim, no synthetic
// html/head/body scaffolding), while still honoring the parts of HTML
// tokenization that help authors — self-closing tags, void elements, and
// named-entity decoding.
//
// Tag and attribute names are ASCII-lowercased by tokenization. Namespace
// prefixes ("card:banner") survive inside the tag name and are split later
// by ParseQualifiedTag; a prefix used without an xmlns declaration produces
// an unknown-namespace warning, which callers are free to ignore (component
// namespaces are never declared).
package markup
