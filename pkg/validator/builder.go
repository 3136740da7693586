package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/konform/pkg/logger"
)

// Builder accumulates the failures of a single validation pass over one
// value. It is created by Validate, mutated only inside the declarations
// function and finalized exactly once.
type Builder[T any] struct {
	value     T
	reasons   Reasons
	opts      *options
	finalized bool
	err       error
}

// Validate runs decls against value and returns the outcome. Every
// declared check runs; failures never short-circuit the pass.
//
//	res := validator.Validate(emp, func(b *validator.Builder[Employee]) {
//	    b.Require("should be 18 or older", func(e Employee) bool { return e.Age >= 18 })
//	    b.Apply(validator.MinLen("name", emp.Name, 1))
//	})
func Validate[T any](value T, decls func(*Builder[T]), opts ...Option) *Result[T] {
	res, _ := run(value, decls, newOptions(context.Background(), opts))
	return res
}

// ValidateContext is Validate bound to ctx. The context reaches the logger
// (so context extractors can enrich failure records) and the collection
// workers. Once ctx is done, remaining collection members are skipped and
// the context error is returned instead of a result.
func ValidateContext[T any](ctx context.Context, value T, decls func(*Builder[T]), opts ...Option) (*Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := run(value, decls, newOptions(ctx, opts))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func run[T any](value T, decls func(*Builder[T]), o *options) (*Result[T], error) {
	b := &Builder[T]{value: value, opts: o}
	if decls != nil {
		decls(b)
	}
	return b.Result(), b.err
}

// Value returns the value under validation.
func (b *Builder[T]) Value() T {
	return b.value
}

// Context returns the context of the pass. It is never nil.
func (b *Builder[T]) Context() context.Context {
	return b.opts.ctx
}

// Require records requirement as failed when pred returns false for the
// bound value. Panics with ErrEmptyRequirement on empty text.
func (b *Builder[T]) Require(requirement string, pred func(T) bool) {
	b.Check(requirement, pred(b.value))
}

// Check records requirement as failed when ok is false.
func (b *Builder[T]) Check(requirement string, ok bool) {
	if requirement == "" {
		panic(ErrEmptyRequirement)
	}
	if !ok {
		b.add(Simple{Text: requirement})
	}
}

// Apply evaluates every rule and records the requirement of each failing one.
func (b *Builder[T]) Apply(rules ...Rule) {
	for _, rule := range rules {
		b.Check(rule.Requirement, rule.Check())
	}
}

// Result finalizes the builder. Panics with ErrAlreadyFinalized when called twice.
func (b *Builder[T]) Result() *Result[T] {
	if b.finalized {
		panic(ErrAlreadyFinalized)
	}
	b.finalized = true

	if b.reasons.IsEmpty() {
		return Success(b.value)
	}

	res := Failure(b.value, b.reasons)
	if b.err == nil {
		b.logFailure()
	}
	return res
}

func (b *Builder[T]) add(reason Reason) {
	if b.finalized {
		panic(ErrAlreadyFinalized)
	}
	b.reasons.Add(reason)
}

// abort stops collection work for the rest of the pass.
func (b *Builder[T]) abort(collection string, err error) {
	if b.err != nil {
		return
	}
	b.err = err
	if b.opts.nested || !b.debugEnabled() {
		return
	}
	b.opts.logger.DebugContext(b.opts.ctx, "validation interrupted",
		logger.Component("validator"),
		logger.Collection(collection),
		logger.Error(err),
	)
}

func (b *Builder[T]) debugEnabled() bool {
	return b.opts.logger.Enabled(b.opts.ctx, slog.LevelDebug)
}

func (b *Builder[T]) logFailure() {
	if b.opts.nested || !b.debugEnabled() {
		return
	}
	b.opts.logger.DebugContext(b.opts.ctx, "validation failed",
		logger.Component("validator"),
		logger.Source(Display(b.value)),
		logger.FailureCount(b.reasons.Len()),
		logger.Requirements(b.reasons.Texts()...),
	)
}
