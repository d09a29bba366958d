// Package transform implements the markup-to-render-tree compiler core: the
// recursive driver that resolves qualified tags against the renderer
// registry, invokes component renderers under a recursion guard, and merges
// transformed children into their parents, including the deep-embed
// bubble-down rule.
//
// A Compiler is long-lived and safe for concurrent use once its registry is
// populated. Each top-level Compile call owns a private Session holding the
// per-call state: the recursion guard, the boxed-reference table, the strict
// flag, and the messenger. Renderer callbacks reach the session through
// their context and may re-enter the compiler with Session.Compile, which is
// how cycles across nested renderer invocations become detectable at all.
package transform
