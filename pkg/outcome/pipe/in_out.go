package pipe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// FromValues emits each value as a success on an unbuffered channel and
// closes it. Emission stops early when the context is cancelled.
func FromValues[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	in := make(chan outcome.Outcome[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains the channel into a slice, returning once it is closed.
func Collect[T any](ch <-chan outcome.Outcome[T]) []outcome.Outcome[T] {
	res := make([]outcome.Outcome[T], 0)
	for v := range ch {
		res = append(res, v)
	}
	return res
}
