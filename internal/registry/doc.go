// Package registry provides the central "glue" for the component system.
//
// The Registry is responsible for storing mappings between the string identifiers
// used in manifests (e.g., "OnRenderCard") and the actual compiled Go renderer
// functions that implement the component's logic. It also holds the parsed,
// format-agnostic component and element definitions from the manifests
// themselves.
//
// During application startup, the registry is populated and then validated to
// ensure that the Go code and the public-facing manifests are perfectly in
// sync, preventing a wide class of runtime errors. Once compilation begins,
// the registry is read-only.
package registry
