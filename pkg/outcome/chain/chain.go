package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

func Start[T any](ctx context.Context, o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, out: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then composes functions that already return outcome.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T]) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: onSuccess(c.ctx, c.out.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Try(func() (T, error) {
		return try(c.ctx, c.out.Value())
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Success(onSuccess(c.ctx, c.out.Value()))}
}

// MapCatching is Map with the transform run behind the safe boundary
func (c Chain[T]) MapCatching(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Call(func() T {
		return onSuccess(c.ctx, c.out.Value())
	})}
}

// Recover turns a failure back into a success value; a successful chain
// passes through unchanged
func (c Chain[T]) Recover(onFailure func(ctx context.Context, err error) T) Chain[T] {
	if c.out.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Success(onFailure(c.ctx, c.out.Err()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.out.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.out.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.out.Value())
	}
	return c
}

// Or returns the first successful chain of the two; when both fail, the
// receiver's failure wins
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.out.IsSuccess() {
		return c
	}
	if alternative.out.IsSuccess() {
		return alternative
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	if c.out.IsSuccess() {
		return onSuccess(c.ctx, c.out.Value())
	}
	return onFailure(c.ctx, c.out.Err())
}
