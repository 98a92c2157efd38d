// SPDX-License-Identifier: MIT
// Package enumerate defines options and sentinel errors shared by Walk,
// Iterator and All.

package enumerate

import (
	"context"
	"errors"
)

// ErrStop may be returned by a Walk visitor to end the traversal early.
// Walk then returns nil.
var ErrStop = errors.New("enumerate: stop")

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked before every pairing attempt.
	// Defaults to context.Background().
	Ctx context.Context

	// Limit, if positive, stops the traversal after Limit brackets.
	// Default is 0 (no limit).
	Limit int
}

// DefaultOptions returns Options with a background context and no limit.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Limit: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit stops the traversal after n brackets; n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
