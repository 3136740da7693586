// Package async provides small generic helpers for running work on
// goroutines and collecting the results.
//
// Async starts a function and returns a Future; Await blocks for its
// result. WaitAll gathers many futures in order. Map fans a slice out over a
// fixed number of workers and writes every output at its input position, so
// the result is independent of scheduling. It backs parallel evaluation of
// collection elements in the validator package.
//
// A panic inside an async function does not crash the process: the future
// completes with a *PanicError holding the recovered value and stack, which
// the caller may re-raise on its own goroutine.
//
// # Usage
//
//	lengths, err := async.Map(ctx, names, 4, func(_ context.Context, s string) (int, error) {
//	    return len(s), nil
//	})
package async
