package flow

import (
	"context"

	"github.com/ib-77/valid3/pkg/valid"
	"github.com/ib-77/valid3/pkg/valid/apply"
	"github.com/ib-77/valid3/pkg/valid/check"
)

type Chain[T any] struct {
	ctx context.Context
	res valid.Result[T]
}

func Start[T any](ctx context.Context, r valid.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromCandidate[T any](ctx context.Context, c T) Chain[T] {
	return Start(ctx, valid.Success(c))
}

func (c Chain[T]) Result() valid.Result[T] {
	return c.res
}

// Then composes a dependent validation returning valid.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) valid.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Candidate())}
}

// Check applies a leaf validator to the current candidate
func (c Chain[T]) Check(v check.Validator[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: v(c.res.Candidate())}
}

// CheckAll applies every validator to the current candidate, accumulating
// all failures in declaration order. An empty validator set leaves the chain
// untouched.
func (c Chain[T]) CheckAll(vs ...check.Validator[T]) Chain[T] {
	if c.res.IsFailure() || len(vs) == 0 {
		return c
	}

	fns := make([]func(T) valid.Result[T], len(vs))
	for i, v := range vs {
		fns[i] = v
	}

	res, err := apply.ValidateAll(c.res.Candidate(), fns...)
	if err != nil {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: res}
}

// Map transforms the accepted candidate to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: valid.Success(onSuccess(c.ctx, c.res.Candidate()))}
}

// Tag augments every recorded error's context with extra, keeping the old
// context nested inside. A successful chain passes through.
func (c Chain[T]) Tag(extra any) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: apply.AugmentContexts(c.res, extra)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, []valid.Error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Errors())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Candidate())
	}
	return c
}

// Finally collapses the chain to a final value of the candidate type
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, []valid.Error) T,
) T {
	return Collapse(c, onSuccess, onFailure)
}

// ThenTo switches the chain to a new candidate type, delegating to
// apply.AndThen semantics
func ThenTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) valid.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: apply.AndThen(c.res, func(t T) valid.Result[U] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// Collapse reduces the chain to a concrete value via handlers
func Collapse[T, U any](c Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []valid.Error) U) U {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Candidate())
	}
	return onFailure(c.ctx, c.res.Errors())
}
