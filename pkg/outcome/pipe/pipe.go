package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"golang.org/x/time/rate"
)

// Stage processes one outcome into another. Stages built with the lifts in
// this package carry failures forward without invoking the wrapped function.
type Stage[In, Out any] func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out]

// Run fans the input channel out over the given number of worker lines and
// funnels stage results into a single output channel, which is closed once
// all lines finish.
func Run[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	stage Stage[In, Out], lines int) <-chan outcome.Outcome[Out] {
	return run(ctx, in, stage, nil, lines)
}

// RunLimited is Run with every element gated on the limiter before the stage
// executes. All lines share the limiter. A limiter wait that fails (context
// cancelled or deadline past) emits a failure for that element.
func RunLimited[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	stage Stage[In, Out], limiter *rate.Limiter, lines int) <-chan outcome.Outcome[Out] {
	return run(ctx, in, stage, limiter, lines)
}

func run[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	stage Stage[In, Out], limiter *rate.Limiter, lines int) <-chan outcome.Outcome[Out] {

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go work(ctx, in, out, stage, limiter, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out],
	stage Stage[In, Out], limiter *rate.Limiter, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			failRemaining(ctx, in, out)
			return
		case v, ok := <-in:
			if !ok {
				return
			}

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					out <- outcome.Failure[Out](err)
					continue
				}
			}

			select {
			case out <- stage(ctx, v):
			case <-ctx.Done():
				failRemaining(ctx, in, out)
				return
			}
		}
	}
}

// failRemaining converts inputs left on the channel into failures carrying
// the context error, so a cancelled pipeline still emits one outcome per
// input.
func failRemaining[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out]) {
	for range in {
		out <- outcome.Failure[Out](ctx.Err())
	}
}

// MapStage lifts a plain transform into a stage.
func MapStage[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.Map(in, func(v In) Out {
			return f(ctx, v)
		})
	}
}

// TryStage lifts an error-returning function into a stage.
func TryStage[In, Out any](try func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		if in.IsFailure() {
			return outcome.Failure[Out](in.Err())
		}
		return outcome.Try(func() (Out, error) {
			return try(ctx, in.Value())
		})
	}
}

// TeeStage lifts a side effect on successful values into a pass-through stage.
func TeeStage[T any](onSuccess func(ctx context.Context, v T)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return in.OnSuccess(func(v T) {
			onSuccess(ctx, v)
		})
	}
}
