// Package config defines the format-agnostic manifest model for the
// compiler, along with the core interfaces (Loader, Converter) for loading
// component and element declarations from various sources.
//
// The `config.Model` is the single source of truth for the `registry` and
// `transform` packages. Concrete implementations of the interfaces, such as
// for HCL and YAML, are provided in separate packages.
package config
