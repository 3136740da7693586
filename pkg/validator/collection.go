package validator

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/dmitrymomot/konform/pkg/async"
	"github.com/dmitrymomot/konform/pkg/logger"
)

// SizeOption bounds the number of elements of a validated collection.
type SizeOption func(*sizeBounds)

type sizeBounds struct {
	min, max       int
	hasMin, hasMax bool
}

// MinSize requires at least n elements (inclusive).
func MinSize(n int) SizeOption {
	return func(s *sizeBounds) {
		s.min, s.hasMin = n, true
	}
}

// MaxSize allows at most n elements (inclusive).
func MaxSize(n int) SizeOption {
	return func(s *sizeBounds) {
		s.max, s.hasMax = n, true
	}
}

func SizeBetween(min, max int) SizeOption {
	return func(s *sizeBounds) {
		MinSize(min)(s)
		MaxSize(max)(s)
	}
}

// Each validates every element of the slice returned by items with a fresh
// builder per element. Failing elements are folded into one Group named
// name on the parent builder; size violations are recorded as Simple
// reasons independently of it.
func Each[T, A any](b *Builder[T], name string, items func(T) []A, decls func(*Builder[A]), opts ...SizeOption) {
	eachValue(b, name, items(b.value), decls, opts)
}

// EachSeq is Each for any iterable collection.
func EachSeq[T, A any](b *Builder[T], name string, items func(T) iter.Seq[A], decls func(*Builder[A]), opts ...SizeOption) {
	eachValue(b, name, slices.Collect(items(b.value)), decls, opts)
}

// EachMap validates the values of a map, visiting them in key order so the
// resulting report is stable.
func EachMap[T any, K cmp.Ordered, V any](b *Builder[T], name string, items func(T) map[K]V, decls func(*Builder[V]), opts ...SizeOption) {
	m := items(b.value)
	values := make([]V, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		values = append(values, m[k])
	}
	eachValue(b, name, values, decls, opts)
}

func eachValue[T, A any](b *Builder[T], name string, values []A, decls func(*Builder[A]), opts []SizeOption) {
	if b.err != nil {
		return
	}

	var bounds sizeBounds
	for _, opt := range opts {
		opt(&bounds)
	}

	size := len(values)
	if bounds.hasMin && size < bounds.min {
		b.add(Simple{Text: fmt.Sprintf("%s must have at least %d elements", name, bounds.min)})
	}
	if bounds.hasMax && size > bounds.max {
		b.add(Simple{Text: fmt.Sprintf("%s must have no more than %d elements", name, bounds.max)})
	}

	results, err := validateElements(values, decls, b.opts.child())
	if err != nil {
		b.abort(name, err)
		return
	}

	var elements []Element
	for i, res := range results {
		if !res.WasSuccessful() {
			elements = append(elements, Element{Index: i, Member: values[i], Reasons: res.reasons})
		}
	}
	if len(elements) == 0 {
		return
	}
	b.add(Group{Name: name, Elements: elements})

	if b.debugEnabled() {
		indexes := make([]int, len(elements))
		for i, el := range elements {
			indexes[i] = el.Index
		}
		b.opts.logger.DebugContext(b.opts.ctx, "collection members failed",
			logger.Component("validator"),
			logger.Collection(name),
			logger.FailureCount(len(elements)),
			logger.Indexes(indexes...),
		)
	}
}

// validateElements returns one result per value, in input order. It stops
// early with the context error once the pass context is done.
func validateElements[A any](values []A, decls func(*Builder[A]), o *options) ([]*Result[A], error) {
	if o.parallelism <= 1 || len(values) < 2 {
		results := make([]*Result[A], len(values))
		for i, v := range values {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			res, err := run(v, decls, o)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	results, err := async.Map(o.ctx, values, o.parallelism,
		func(_ context.Context, v A) (*Result[A], error) {
			return run(v, decls, o)
		})
	if p, ok := async.AsPanic(err); ok {
		panic(p.Value)
	}
	return results, err
}
