package validator

import (
	"context"
	"log/slog"
)

// Option configures a validation pass.
type Option func(*options)

type options struct {
	ctx         context.Context
	logger      *slog.Logger
	parallelism int
	nested      bool
}

func newOptions(ctx context.Context, opts []Option) *options {
	o := &options{
		ctx:         ctx,
		logger:      slog.New(slog.DiscardHandler),
		parallelism: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger logs failed top-level passes at debug level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism validates collection elements on up to n goroutines.
// Values below 1 mean sequential evaluation. Predicates must be safe for
// concurrent use when n > 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = max(n, 1)
	}
}

// child returns the options used by per-element builders.
func (o *options) child() *options {
	c := *o
	c.nested = true
	return &c
}
