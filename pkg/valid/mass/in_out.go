package mass

import (
	"context"
	"sync"

	"github.com/ib-77/valid3/pkg/valid"
)

// ToChan feeds values into a channel, stopping early when ctx is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds values as successful Results.
func ToChanResults[T any](ctx context.Context, values ...T) <-chan valid.Result[T] {
	in := make(chan valid.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- valid.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a result channel into a slice, stopping on ctx done.
func Collect[T any](ctx context.Context, out <-chan valid.Result[T]) []valid.Result[T] {
	res := make([]valid.Result[T], 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
