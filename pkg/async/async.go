package async

import (
	"context"
	"errors"
	"runtime/debug"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Async runs fn(ctx, param) in its own goroutine. A pre-canceled context
// completes the future with ctx.Err() without calling fn; a panic inside fn
// completes it with a *PanicError.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll waits for every future and returns their results in order,
// together with the first error encountered. It never returns before all
// futures are complete.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var firstErr error

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}

// Map applies fn to every item on at most workers goroutines and returns
// the outputs at the items' positions. Worker w handles items w, w+workers,
// w+2*workers and so on. Processing stops at the first error of a worker;
// Map returns the first error in worker order.
func Map[T, U any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (U, error)) ([]U, error) {
	results := make([]U, len(items))
	if len(items) == 0 {
		return results, nil
	}
	workers = min(max(workers, 1), len(items))

	futures := make([]*Future[struct{}], workers)
	for w := range workers {
		futures[w] = Async(ctx, w, func(ctx context.Context, start int) (struct{}, error) {
			for i := start; i < len(items); i += workers {
				if err := ctx.Err(); err != nil {
					return struct{}{}, err
				}
				res, err := fn(ctx, items[i])
				if err != nil {
					return struct{}{}, err
				}
				results[i] = res
			}
			return struct{}{}, nil
		})
	}

	if _, err := WaitAll(futures...); err != nil {
		return results, err
	}
	return results, nil
}

// AsPanic extracts a *PanicError from err.
func AsPanic(err error) (*PanicError, bool) {
	var p *PanicError
	ok := errors.As(err, &p)
	return p, ok
}
