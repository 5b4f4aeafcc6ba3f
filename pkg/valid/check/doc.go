// Package check contains leaf validators producing Result[T] values for the
// combinators in apply and flow.
//
// Each validator returns the candidate unchanged on success and a failure
// tagged with a package message constant and the "check" context otherwise.
// Struct bridges go-playground/validator tag-based validation into the same
// result type, accumulating every field error.
package check
