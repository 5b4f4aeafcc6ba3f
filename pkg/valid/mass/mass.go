package mass

import (
	"context"
	"sync"

	"github.com/ib-77/valid3/pkg/valid"
	"github.com/ib-77/valid3/pkg/valid/apply"
	"github.com/ib-77/valid3/pkg/valid/check"
)

// MsgCancelled tags candidates left unprocessed when the context is
// cancelled mid-batch.
const MsgCancelled = "cancelled"

const massContext = "mass"

// locomotive pulls results off inputCh, validates accepted candidates and
// pushes the outcome to outCh until the input closes or ctx is done.
// Incoming failures pass through untouched.
func locomotive[T any](ctx context.Context, inputCh <-chan valid.Result[T], outCh chan<- valid.Result[T],
	v check.Validator[T], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			out := in
			if in.IsSuccess() {
				out = v(in.Candidate())
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- out:
			}
		}
	}
}

// Run validates every incoming Result on a pool of lines workers. Output
// order follows completion, not input order; use SequenceOf when positions
// matter.
func Run[T any](ctx context.Context, inputCh <-chan valid.Result[T],
	v check.Validator[T], lines int) <-chan valid.Result[T] {

	if lines <= 0 {
		lines = GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan valid.Result[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, v, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// SequenceOf is the concurrent analog of apply.SequenceOf: candidates are
// validated on lines workers and reassembled in input order, producing the
// same result the sequential version would. Candidates left unprocessed on
// cancellation fail with MsgCancelled.
func SequenceOf[A, B any](ctx context.Context, candidates []A,
	fn func(A) valid.Result[B], lines int) valid.Result[[]B] {

	if lines <= 0 {
		lines = GetWorkerMaxCount(ctx, 1)
	}

	type job struct {
		pos       int
		candidate A
	}
	type slot struct {
		pos int
		res valid.Result[B]
	}

	jobs := make(chan job)
	outcomes := make(chan slot)
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case outcomes <- slot{pos: j.pos, res: fn(j.candidate)}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, c := range candidates {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- job{pos: i, candidate: c}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]valid.Result[B], len(candidates))
	done := make([]bool, len(candidates))
	for s := range outcomes {
		results[s.pos] = s.res
		done[s.pos] = true
	}

	for i := range results {
		if !done[i] {
			results[i] = valid.Fail[B](valid.NewError(candidates[i], MsgCancelled, massContext))
		}
		results[i] = apply.AugmentMessages(results[i], valid.Index(i))
	}

	return apply.Sequence(results)
}
