// Package match provides predicates and extractors for branching on
// Result[T] values in calling code.
//
// It adds no behavior of its own: everything is expressible through the
// Result accessors, these helpers only make the common branches read well.
// FailureWithMessage answers nested-message queries through the failure's
// message index, so matching a deeply augmented message stays a single
// lookup.
package match
