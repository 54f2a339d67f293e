package cyclegraph

import "go.uber.org/zap"

// DefaultMaxOrder bounds the group order Build accepts.
const DefaultMaxOrder = 20000

type options struct {
	logger   *zap.Logger
	maxOrder int
}

// Option configures Build.
type Option func(*options)

// WithLogger sets the debug logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxOrder sets the largest accepted group order; ≤ 0 removes the bound.
func WithMaxOrder(n int) Option {
	return func(o *options) { o.maxOrder = n }
}
