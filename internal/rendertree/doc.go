// Package rendertree defines the nested, attributed tree structure produced
// by the markup compiler and handed to a host rendering pipeline.
//
// A render tree is deliberately schema-less: it is a string-keyed map whose
// keys are either reserved metadata keys (prefixed with '#', e.g. "#type",
// "#attributes") or child slots (positional "0", "1", ... or names supplied
// by the author). Hosts walk the tree and interpret the metadata keys; this
// package only guarantees the structural conventions, never the meaning a
// host assigns to them.
package rendertree
