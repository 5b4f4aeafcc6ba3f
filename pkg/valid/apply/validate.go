package apply

import (
	"errors"

	"github.com/ib-77/valid3/pkg/valid"
)

// ErrNoValidators reports a misconfigured ValidateAll call. It is returned
// out-of-band: an empty validator set says nothing about the candidate, so
// the outcome is neither a success nor a failure.
var ErrNoValidators = errors.New("valid: no validators supplied")

// Sequence turns a list of results into a result of a list. The output
// succeeds iff every input succeeded, candidates in input order; otherwise
// every failure's errors are combined in input order, successes contributing
// nothing. The fold is iterative, call depth does not grow with input size.
func Sequence[A any](results []valid.Result[A]) valid.Result[[]A] {
	acc := Pure(make([]A, 0, len(results)))
	for _, r := range results {
		step := valid.MapSuccess(acc, func(xs []A) func(A) []A {
			return func(a A) []A { return append(xs, a) }
		})
		acc = Seq(step, r)
	}
	return acc
}

// SequenceOf validates every candidate with fn, tagging each failure's
// messages with the zero-based position before sequencing, so a combined
// failure can point at the offending element.
func SequenceOf[A, B any](candidates []A, fn func(A) valid.Result[B]) valid.Result[[]B] {
	results := make([]valid.Result[B], len(candidates))
	for i, c := range candidates {
		results[i] = AugmentMessages(fn(c), valid.Index(i))
	}
	return Sequence(results)
}

// ValidateAll runs every validator against the same candidate. On success the
// original candidate is returned, not the per-validator outputs. Failures are
// position-tagged and combined. An empty validator set yields ErrNoValidators.
func ValidateAll[T any](candidate T, validators ...func(T) valid.Result[T]) (valid.Result[T], error) {
	if len(validators) == 0 {
		return valid.Result[T]{}, ErrNoValidators
	}

	results := make([]valid.Result[T], len(validators))
	for i, v := range validators {
		results[i] = AugmentMessages(v(candidate), valid.Index(i))
	}

	seq := Sequence(results)
	if seq.IsFailure() {
		return valid.FailFrom[[]T, T](seq), nil
	}
	return valid.Success(candidate), nil
}

// ValidateSlice is the dynamic-arity variant of ValidateN: build receives the
// accepted candidates as a []any in validation order. With no validations the
// result is Success of build applied to an empty slice.
func ValidateSlice[R any](build func(args []any) R, validations []valid.Result[any]) valid.Result[R] {
	return valid.MapSuccess(Sequence(validations), build)
}

// Validate2 applies build to two validated arguments. The build runs only if
// every argument was accepted; otherwise the errors of every failed argument
// are combined in declaration order.
func Validate2[A, B, R any](build func(A, B) R,
	ra valid.Result[A], rb valid.Result[B]) valid.Result[R] {

	cur := Pure(func(a A) func(B) R {
		return func(b B) R { return build(a, b) }
	})
	return Seq(Seq(cur, ra), rb)
}

func Validate3[A, B, C, R any](build func(A, B, C) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return build(a, b, c) }
		}
	})
	return Seq(Seq(Seq(cur, ra), rb), rc)
}

func Validate4[A, B, C, D, R any](build func(A, B, C, D) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R { return build(a, b, c, d) }
			}
		}
	})
	return Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd)
}

func Validate5[A, B, C, D, E, R any](build func(A, B, C, D, E) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D], re valid.Result[E]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R { return build(a, b, c, d, e) }
				}
			}
		}
	})
	return Seq(Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd), re)
}

func Validate6[A, B, C, D, E, F, R any](build func(A, B, C, D, E, F) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D], re valid.Result[E], rf valid.Result[F]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) func(E) func(F) R {
		return func(b B) func(C) func(D) func(E) func(F) R {
			return func(c C) func(D) func(E) func(F) R {
				return func(d D) func(E) func(F) R {
					return func(e E) func(F) R {
						return func(f F) R { return build(a, b, c, d, e, f) }
					}
				}
			}
		}
	})
	return Seq(Seq(Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd), re), rf)
}

func Validate7[A, B, C, D, E, F, G, R any](build func(A, B, C, D, E, F, G) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D], re valid.Result[E], rf valid.Result[F],
	rg valid.Result[G]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) func(E) func(F) func(G) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) R {
			return func(c C) func(D) func(E) func(F) func(G) R {
				return func(d D) func(E) func(F) func(G) R {
					return func(e E) func(F) func(G) R {
						return func(f F) func(G) R {
							return func(g G) R { return build(a, b, c, d, e, f, g) }
						}
					}
				}
			}
		}
	})
	return Seq(Seq(Seq(Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd), re), rf), rg)
}

func Validate8[A, B, C, D, E, F, G, H, R any](build func(A, B, C, D, E, F, G, H) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D], re valid.Result[E], rf valid.Result[F],
	rg valid.Result[G], rh valid.Result[H]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) func(H) R {
			return func(c C) func(D) func(E) func(F) func(G) func(H) R {
				return func(d D) func(E) func(F) func(G) func(H) R {
					return func(e E) func(F) func(G) func(H) R {
						return func(f F) func(G) func(H) R {
							return func(g G) func(H) R {
								return func(h H) R { return build(a, b, c, d, e, f, g, h) }
							}
						}
					}
				}
			}
		}
	})
	return Seq(Seq(Seq(Seq(Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd), re), rf), rg), rh)
}

func Validate9[A, B, C, D, E, F, G, H, I, R any](build func(A, B, C, D, E, F, G, H, I) R,
	ra valid.Result[A], rb valid.Result[B], rc valid.Result[C],
	rd valid.Result[D], re valid.Result[E], rf valid.Result[F],
	rg valid.Result[G], rh valid.Result[H], ri valid.Result[I]) valid.Result[R] {

	cur := Pure(func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) func(H) func(I) R {
			return func(c C) func(D) func(E) func(F) func(G) func(H) func(I) R {
				return func(d D) func(E) func(F) func(G) func(H) func(I) R {
					return func(e E) func(F) func(G) func(H) func(I) R {
						return func(f F) func(G) func(H) func(I) R {
							return func(g G) func(H) func(I) R {
								return func(h H) func(I) R {
									return func(i I) R { return build(a, b, c, d, e, f, g, h, i) }
								}
							}
						}
					}
				}
			}
		}
	})
	return Seq(Seq(Seq(Seq(Seq(Seq(Seq(Seq(Seq(cur, ra), rb), rc), rd), re), rf), rg), rh), ri)
}
