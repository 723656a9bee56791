// Package sites provides the site registry that backs the Sites Field: a
// concurrency-safe in-memory store loaded from JSON or YAML, an adapter that
// exposes the registry as a selection.OptionProvider, search helpers, and a
// small net/http handler that returns JSON options for form inputs.
//
// The registry order is the option order. Providers read the registry on every
// call so values stored against an older site list are re-evaluated against
// the current one.
package sites
