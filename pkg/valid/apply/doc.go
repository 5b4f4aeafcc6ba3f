// Package apply contains the applicative combinators that drive error
// accumulation over Result[T]. Every operation is a pure, synchronous
// function; validation failures travel by return value only.
//
// Highlights:
// - Pure/Seq: the applicative unit and the accumulating apply operator
// - AndThen: monadic bind for dependent steps (short-circuits, no accumulation)
// - Validate2..Validate9: build a record from independently validated fields,
//   collecting the errors of every failed field in declaration order
// - Sequence/SequenceOf: turn lists of results into results of lists, with
//   positional tagging of failures
// - ValidateAll: run many validators against one candidate
// - AugmentContexts/AugmentMessages, OverrideContexts/OverrideMessages:
//   rewrite failure provenance without touching successes
package apply
