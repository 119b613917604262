// Package walker handles the depth-limited, ignore-aware directory descent
package walker

import (
	"context"

	"github.com/bethropolis/treee/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger   utils.Logger
	MaxDepth int
	Context  context.Context
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:   &utils.NoopLogger{},
		MaxDepth: -1, // No limit
		Context:  context.Background(),
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithMaxDepth bounds the descent. Depth is counted in directory levels
// below the root: the root's direct children sit at depth 0. A negative
// value disables the limit.
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		opts.MaxDepth = depth
	}
}

// WithContext sets the context for cancellation
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}
