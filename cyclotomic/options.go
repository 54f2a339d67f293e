package cyclotomic

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/layout"
)

// DefaultMaxModulus bounds the accepted modulus unless WithMaxModulus is used.
const DefaultMaxModulus = 20000

type options struct {
	logger       *zap.Logger
	maxModulus   int
	maxSubgroups int
	concurrency  int
	engine       layout.Engine
	lattice      bool
	cycleGraph   bool
}

// Option configures Compute and ComputeMany.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		logger:       zap.NewNop(),
		maxModulus:   DefaultMaxModulus,
		maxSubgroups: lattice.DefaultMaxSubgroups,
		concurrency:  runtime.GOMAXPROCS(0),
		lattice:      true,
		cycleGraph:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}

	return o
}

// WithLogger sets the logger passed down to every stage. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxModulus sets the largest accepted n; ≤ 0 removes the bound.
func WithMaxModulus(n int) Option {
	return func(o *options) { o.maxModulus = n }
}

// WithMaxSubgroups caps the lattice enumeration; ≤ 0 removes the bound.
func WithMaxSubgroups(n int) Option {
	return func(o *options) { o.maxSubgroups = n }
}

// WithConcurrency bounds the number of moduli ComputeMany evaluates at once.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithLayout plugs a layout engine run on every cycle graph.
func WithLayout(e layout.Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithoutLattice skips the subgroup lattice.
func WithoutLattice() Option {
	return func(o *options) { o.lattice = false }
}

// WithoutCycleGraph skips the cycle graph, and with it the layout.
func WithoutCycleGraph() Option {
	return func(o *options) { o.cycleGraph = false }
}
