// Package flow provides a minimal fluent Chain[T] for synchronous
// composition of dependent validations.
//
// A chain short-circuits on the first failure: later steps never run against
// a rejected candidate and nothing accumulates across steps. For collecting
// every violation of independent checks use CheckAll or the apply package.
//
// Key operations:
// - Start/FromCandidate: create a Chain from a Result[T] or a raw value
// - Then/Check: compose result-returning functions or leaf validators
// - CheckAll: apply many validators to the current candidate, accumulating
// - Map: transform the accepted candidate
// - Tag: augment recorded error contexts with provenance
// - Ensure: trigger side effects without changing the result
// - Finally/Collapse: reduce to a concrete value via handlers
package flow
