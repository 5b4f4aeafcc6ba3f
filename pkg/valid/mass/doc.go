// Package mass implements channel-based batch validation on top of the pure
// combinators. The engine applied to each candidate stays a pure function;
// this package only adds the fan-out/fan-in plumbing, worker control, and
// cancellation handling around it.
//
// Common usage:
// - ToChan/ToChanResults: feed candidates into a pipeline
// - Run: validate every incoming result on a fixed number of lines
// - Collect: drain a result channel into a slice
// - SequenceOf: concurrent analog of apply.SequenceOf, reassembling results
//   in input order
//
// Worker counts can also travel on the context via WithWorkerOptions.
package mass
