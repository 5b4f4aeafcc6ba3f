package valid

import "fmt"

// Error records one concrete cause of rejection: the candidate that was
// rejected, an opaque message tag saying why, and an opaque context tag
// saying where it was raised. Tags must be comparable values; composite tags
// built by wrapping are Pair values.
type Error struct {
	candidate any
	message   any
	context   any
}

func NewError(candidate, message, context any) Error {
	return Error{candidate: candidate, message: message, context: context}
}

func (e Error) Candidate() any {
	return e.candidate
}

func (e Error) Message() any {
	return e.message
}

func (e Error) Context() any {
	return e.context
}

func (e Error) Error() string {
	if IsNil(e.context) {
		return fmt.Sprintf("%v: %v", e.candidate, e.message)
	}
	return fmt.Sprintf("%v: %v (%v)", e.candidate, e.message, e.context)
}

// WithMessage replaces the message tag, discarding the previous one.
func (e Error) WithMessage(m any) Error {
	return Error{candidate: e.candidate, message: m, context: e.context}
}

// WithContext replaces the context tag, discarding the previous one.
func (e Error) WithContext(c any) Error {
	return Error{candidate: e.candidate, message: e.message, context: c}
}

// WrapMessage pairs extra with the existing message tag. The previous tag
// stays reachable as the Inner part of the resulting Pair.
func (e Error) WrapMessage(extra any) Error {
	return Error{candidate: e.candidate, message: Pair{Outer: extra, Inner: e.message}, context: e.context}
}

// WrapContext pairs extra with the existing context tag.
func (e Error) WrapContext(extra any) Error {
	return Error{candidate: e.candidate, message: e.message, context: Pair{Outer: extra, Inner: e.context}}
}

// Pair is the composite tag produced by wrapping: Outer is the newer
// annotation, Inner the tag it was applied to. Repeated wrapping builds a
// left-nested chain, innermost tag first in wrap order.
type Pair struct {
	Outer any
	Inner any
}

// Index marks the zero-based position of a failing candidate inside a batch.
type Index int

func (i Index) String() string {
	return fmt.Sprintf("index(%d)", int(i))
}
