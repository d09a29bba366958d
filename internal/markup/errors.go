package markup

import "fmt"

// TagNameError reports a tag name the qualified-name parser cannot split,
// which today means only the empty string.
type TagNameError struct {
	Tag string
}

func (e *TagNameError) Error() string {
	return fmt.Sprintf("invalid tag name %q", e.Tag)
}

// ParseError reports markup the tokenizer or tree builder could not consume.
// Line is 1-based.
type ParseError struct {
	Message string
	Line    int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("markup parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("markup parse error: %s", e.Message)
}

// MissingRootError reports input that is not a single-rooted document: no
// element at all, several sibling elements at the top level, or character
// data outside the root. It is always recoverable — the compiler retries
// with a synthetic wrapper — and is never surfaced to callers.
type MissingRootError struct {
	Roots     int
	StrayText bool
}

func (e *MissingRootError) Error() string {
	switch {
	case e.Roots == 0:
		return "markup has no root element"
	case e.StrayText:
		return fmt.Sprintf("markup has character data outside its %d root element(s)", e.Roots)
	default:
		return fmt.Sprintf("markup has %d root elements, expected exactly one", e.Roots)
	}
}

// WarningKind classifies non-fatal parser diagnostics.
type WarningKind int

const (
	// WarnUnknownNamespace flags a namespace prefix used without an xmlns
	// declaration. Every component tag trips this, so the transformer
	// drops these warnings unconditionally.
	WarnUnknownNamespace WarningKind = iota
)

// Warning is a non-fatal diagnostic emitted while parsing.
type Warning struct {
	Kind   WarningKind
	Detail string
	Line   int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnknownNamespace:
		return fmt.Sprintf("line %d: unknown namespace %q", w.Line, w.Detail)
	default:
		return fmt.Sprintf("line %d: %s", w.Line, w.Detail)
	}
}
