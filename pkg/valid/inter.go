package valid

import "time"

type CandidateProvider[T any] interface {
	// Candidate returns the accepted value
	Candidate() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrors defines an interface for types that carry either an accepted
// candidate or the recorded causes of its rejection
type WithErrors[T any] interface {
	CandidateProvider[T]
	// Err returns the joined error if validation failed
	Err() error
	// Errors returns the recorded error records in insertion order
	Errors() []Error
	// IsSuccess returns true if the candidate was accepted
	IsSuccess() bool
	// IsFailure returns true if the candidate was rejected
	IsFailure() bool
}

// MessageLookup extends WithErrors with message-index membership queries
type MessageLookup[T any] interface {
	WithErrors[T]
	// HasMessage returns true if some error carries m at any nesting depth
	HasMessage(m any) bool
}
