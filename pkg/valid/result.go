package valid

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	candidate T
	errs      []Error
	msgIndex  map[any]struct{}
	isSuccess bool
}

func Success[T any](candidate T) Result[T] {
	return Result[T]{
		candidate: candidate,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps the given errors into a failed Result and builds its message
// index. Zero errors is legal: such a Result still reports IsFailure and acts
// as a neutral element for Combine.
func Fail[T any](errs ...Error) Result[T] {
	es := make([]Error, len(errs))
	copy(es, errs)
	return Result[T]{
		errs:      es,
		msgIndex:  buildMessageIndex(es),
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom retypes a failed Result, keeping its errors, message index, id
// and creation time. Calling it on a success is a contract violation.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("valid: FailFrom on a success")
	}
	return Result[Out]{
		errs:      from.errs,
		msgIndex:  from.msgIndex,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Candidate() T {
	return r.candidate
}

func (r Result[T]) Errors() []Error {
	es := make([]Error, len(r.errs))
	copy(es, r.errs)
	return es
}

// Err joins every recorded error into a single error value.
// Nil on success and on an empty-error failure.
func (r Result[T]) Err() error {
	if r.isSuccess || len(r.errs) == 0 {
		return nil
	}
	joined := make([]error, len(r.errs))
	for i, e := range r.errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// HasMessage reports whether some recorded error carries the message m at any
// nesting depth. The lookup hits the message index built at construction, the
// nested tags are not re-scanned.
func (r Result[T]) HasMessage(m any) bool {
	if r.isSuccess {
		return false
	}
	_, ok := r.msgIndex[m]
	return ok
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MapSuccess transforms the accepted candidate. A failed Result passes
// through with its errors intact and f is never called.
func MapSuccess[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.isSuccess {
		return FailFrom[A, B](r)
	}
	return Success(f(r.candidate))
}

// MapFailure rewrites every recorded error, rebuilding the message index.
// A success passes through and g is never called.
func MapFailure[T any](r Result[T], g func(Error) Error) Result[T] {
	if r.isSuccess {
		return r
	}
	es := make([]Error, len(r.errs))
	for i, e := range r.errs {
		es[i] = g(e)
	}
	return Fail[T](es...)
}

// Combine concatenates the errors of two failed Results, f1's errors first,
// insertion order preserved. Calling it with a success panics.
func Combine[T any](f1, f2 Result[T]) Result[T] {
	if f1.isSuccess || f2.isSuccess {
		panic("valid: Combine on a success")
	}
	es := make([]Error, 0, len(f1.errs)+len(f2.errs))
	es = append(es, f1.errs...)
	es = append(es, f2.errs...)
	return Fail[T](es...)
}

func buildMessageIndex(errs []Error) map[any]struct{} {
	idx := make(map[any]struct{}, len(errs))
	for _, e := range errs {
		indexTag(idx, e.message)
	}
	return idx
}

// indexTag records the tag itself and, for Pair tags, every part at every
// depth.
func indexTag(idx map[any]struct{}, tag any) {
	idx[tag] = struct{}{}
	if p, ok := tag.(Pair); ok {
		indexTag(idx, p.Outer)
		indexTag(idx, p.Inner)
	}
}
