package lattice

import (
	"context"

	"go.uber.org/zap"
)

const (
	// DefaultMaxOrder bounds the group order Build accepts.
	DefaultMaxOrder = 20000
	// DefaultMaxSubgroups bounds the number of subgroups Build enumerates.
	DefaultMaxSubgroups = 10000
)

type options struct {
	ctx          context.Context
	logger       *zap.Logger
	maxOrder     int
	maxSubgroups int
	generic      bool
}

// Option configures Build.
type Option func(*options)

func defaultOptions() options {
	return options{
		ctx:          context.Background(),
		logger:       zap.NewNop(),
		maxOrder:     DefaultMaxOrder,
		maxSubgroups: DefaultMaxSubgroups,
	}
}

// WithContext makes the generic enumeration stop once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug output. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxOrder sets the largest group order accepted; values ≤ 0 remove the bound.
func WithMaxOrder(n int) Option {
	return func(o *options) { o.maxOrder = n }
}

// WithMaxSubgroups caps the number of subgroups; values ≤ 0 remove the bound.
func WithMaxSubgroups(n int) Option {
	return func(o *options) { o.maxSubgroups = n }
}

// WithGenericEnumeration forces the arena enumeration even for cyclic groups.
func WithGenericEnumeration() Option {
	return func(o *options) { o.generic = true }
}
