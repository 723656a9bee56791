// Package model defines the typed field descriptor handed to form renderers.
// Validation rules expose canonical identifiers (maxItems, in) with string
// parameters so renderers can map them onto HTML attributes or runtime
// validators without sacrificing deterministic JSON snapshots. The UIHints map
// carries renderer-facing directives such as `widget` and `input`.
package model
