// Package selection normalizes, serializes and validates a single- or
// multi-select value bound to a reference option list that may change between
// the moment a value was stored and the moment it is loaded again.
//
// The engine is pure: every function receives the live option list (or an
// OptionProvider at the field layer) and never caches it. Raw input arrives as
// a Raw tagged union built by FromAny; Normalize always produces a well-formed
// Value, pushing rejection decisions into Validate.
package selection
