package check

import (
	"cmp"
	"regexp"

	"github.com/google/uuid"

	"github.com/ib-77/valid3/pkg/valid"
)

// Validator checks a single candidate and reports it back unchanged on
// success.
type Validator[T any] func(T) valid.Result[T]

// Message tags attached by the leaf validators.
const (
	MsgZeroValue   = "zero value"
	MsgEmptyString = "empty string"
	MsgTooShort    = "too short"
	MsgTooLong     = "too long"
	MsgOutOfRange  = "out of range"
	MsgNotPositive = "not positive"
	MsgNotOneOf    = "not an allowed value"
	MsgNoMatch     = "no match"
	MsgNotUUID     = "not a uuid"
)

const checkContext = "check"

func reject[T any](candidate T, message any) valid.Result[T] {
	return valid.Fail[T](valid.NewError(candidate, message, checkContext))
}

func NotZero[T comparable]() Validator[T] {
	return func(c T) valid.Result[T] {
		var zero T
		if c == zero {
			return reject(c, MsgZeroValue)
		}
		return valid.Success(c)
	}
}

func NonEmptyString() Validator[string] {
	return func(c string) valid.Result[string] {
		if c == "" {
			return reject(c, MsgEmptyString)
		}
		return valid.Success(c)
	}
}

func MinLen(n int) Validator[string] {
	return func(c string) valid.Result[string] {
		if len(c) < n {
			return reject(c, MsgTooShort)
		}
		return valid.Success(c)
	}
}

func MaxLen(n int) Validator[string] {
	return func(c string) valid.Result[string] {
		if len(c) > n {
			return reject(c, MsgTooLong)
		}
		return valid.Success(c)
	}
}

// InRange accepts candidates in the inclusive range [lo, hi].
func InRange[T cmp.Ordered](lo, hi T) Validator[T] {
	return func(c T) valid.Result[T] {
		if c < lo || c > hi {
			return reject(c, MsgOutOfRange)
		}
		return valid.Success(c)
	}
}

// Positive accepts candidates strictly above the zero value of T.
func Positive[T cmp.Ordered]() Validator[T] {
	return func(c T) valid.Result[T] {
		var zero T
		if c <= zero {
			return reject(c, MsgNotPositive)
		}
		return valid.Success(c)
	}
}

func OneOf[T comparable](allowed ...T) Validator[T] {
	return func(c T) valid.Result[T] {
		for _, a := range allowed {
			if c == a {
				return valid.Success(c)
			}
		}
		return reject(c, MsgNotOneOf)
	}
}

func MatchRegexp(re *regexp.Regexp) Validator[string] {
	return func(c string) valid.Result[string] {
		if !re.MatchString(c) {
			return reject(c, MsgNoMatch)
		}
		return valid.Success(c)
	}
}

func UUID() Validator[string] {
	return func(c string) valid.Result[string] {
		if _, err := uuid.Parse(c); err != nil {
			return reject(c, MsgNotUUID)
		}
		return valid.Success(c)
	}
}
