package apply

import (
	"github.com/ib-77/valid3/pkg/valid"
)

// Pure lifts a value into a successful Result; the applicative unit.
func Pure[T any](v T) valid.Result[T] {
	return valid.Success(v)
}

// Seq applies a wrapped function to a wrapped argument:
//   - both failed: combined failure, rf's errors first
//   - only rf failed: rf's errors pass through
//   - only ra failed: ra's errors pass through
//   - both ok: Success of rf's function applied to ra's candidate
func Seq[A, B any](rf valid.Result[func(A) B], ra valid.Result[A]) valid.Result[B] {
	switch {
	case rf.IsFailure() && ra.IsFailure():
		return valid.Combine(valid.FailFrom[func(A) B, B](rf), valid.FailFrom[A, B](ra))
	case rf.IsFailure():
		return valid.FailFrom[func(A) B, B](rf)
	case ra.IsFailure():
		return valid.FailFrom[A, B](ra)
	default:
		return valid.Success(rf.Candidate()(ra.Candidate()))
	}
}

// AndThen chains a dependent validation: f runs only on an accepted
// candidate. Unlike Seq a failed r passes through untouched, so nothing
// accumulates across an AndThen chain.
func AndThen[A, B any](r valid.Result[A], f func(A) valid.Result[B]) valid.Result[B] {
	if r.IsFailure() {
		return valid.FailFrom[A, B](r)
	}
	return f(r.Candidate())
}

// AugmentContexts pairs extra with every error's context on a failed Result,
// keeping the previous context nested inside. Success passes through.
func AugmentContexts[T any](r valid.Result[T], extra any) valid.Result[T] {
	return valid.MapFailure(r, func(e valid.Error) valid.Error {
		return e.WrapContext(extra)
	})
}

// AugmentMessages pairs extra with every error's message on a failed Result.
func AugmentMessages[T any](r valid.Result[T], extra any) valid.Result[T] {
	return valid.MapFailure(r, func(e valid.Error) valid.Error {
		return e.WrapMessage(extra)
	})
}

// OverrideContexts replaces every error's context, discarding the old value.
func OverrideContexts[T any](r valid.Result[T], value any) valid.Result[T] {
	return valid.MapFailure(r, func(e valid.Error) valid.Error {
		return e.WithContext(value)
	})
}

// OverrideMessages replaces every error's message, discarding the old value.
func OverrideMessages[T any](r valid.Result[T], value any) valid.Result[T] {
	return valid.MapFailure(r, func(e valid.Error) valid.Error {
		return e.WithMessage(value)
	})
}
