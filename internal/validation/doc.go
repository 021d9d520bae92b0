// Package validation checks outgoing requests before they are sent.
//
// Each operation has a rule table mapping a field to a predicate and the
// error kind reported when the predicate fails. Validation is pure: it never
// performs I/O, never mutates its input, and returns the same result for the
// same input. All violated rules are reported together in a single
// *domain.ValidationError.
package validation
