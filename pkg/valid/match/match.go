package match

import (
	"github.com/ib-77/valid3/pkg/valid"
)

// Success extracts the accepted candidate.
func Success[T any](r valid.Result[T]) (T, bool) {
	if r.IsSuccess() {
		return r.Candidate(), true
	}
	var zero T
	return zero, false
}

// SuccessOf reports whether r succeeded with exactly want.
func SuccessOf[T comparable](r valid.Result[T], want T) bool {
	return r.IsSuccess() && r.Candidate() == want
}

// Failure extracts the recorded errors. Note an empty-error failure reports
// true with an empty slice.
func Failure[T any](r valid.Result[T]) ([]valid.Error, bool) {
	if r.IsFailure() {
		return r.Errors(), true
	}
	return nil, false
}

// FailureWithMessage reports whether r failed with an error carrying the
// message m at any nesting depth.
func FailureWithMessage[T any](r valid.Result[T], m any) bool {
	return r.IsFailure() && r.HasMessage(m)
}

// FirstError returns the earliest recorded error.
func FirstError[T any](r valid.Result[T]) (valid.Error, bool) {
	if r.IsSuccess() {
		return valid.Error{}, false
	}
	errs := r.Errors()
	if len(errs) == 0 {
		return valid.Error{}, false
	}
	return errs[0], true
}
