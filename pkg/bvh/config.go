package bvh

import "fmt"

// Default tree-shape parameters. See WithInnerSize, WithLeafSize,
// WithParallelCutoffDepth for what each controls.
const (
	DefaultInnerSize           = 2
	DefaultLeafSize            = 4
	DefaultParallelCutoffDepth = 4
)

// TreeConfig controls how Build shapes a tree: the fanout of inner
// nodes, how many primitives a leaf may hold before it must split, and
// how deep recursive build forks onto the worker pool before continuing
// sequentially on the calling goroutine.
type TreeConfig struct {
	innerSize           int
	leafSize            int
	parallelCutoffDepth int
}

// Option configures a TreeConfig. Grounded on the functional-options
// pattern used throughout the example pack's graph and matrix builders.
type Option func(*TreeConfig)

// WithInnerSize sets the fanout of inner nodes: the number of contiguous
// groups each range is partitioned into at every split. Larger values
// produce shallower, wider trees. Panics if n < 2.
func WithInnerSize(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("bvh: inner size must be >= 2, got %d", n))
	}

	return func(c *TreeConfig) { c.innerSize = n }
}

// WithLeafSize sets the maximum number of primitives a leaf node may
// hold before the builder keeps splitting it. Panics if n < 1.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("bvh: leaf size must be >= 1, got %d", n))
	}

	return func(c *TreeConfig) { c.leafSize = n }
}

// WithParallelCutoffDepth sets the recursion depth below which Build
// stops forking new tasks onto the pool and continues sequentially on
// the calling goroutine. Panics if d < 0.
func WithParallelCutoffDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("bvh: parallel cutoff depth must be >= 0, got %d", d))
	}

	return func(c *TreeConfig) { c.parallelCutoffDepth = d }
}

// NewTreeConfig resolves opts against the package defaults.
func NewTreeConfig(opts ...Option) TreeConfig {
	c := TreeConfig{
		innerSize:           DefaultInnerSize,
		leafSize:            DefaultLeafSize,
		parallelCutoffDepth: DefaultParallelCutoffDepth,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// InnerSize returns the configured inner-node fanout.
func (c TreeConfig) InnerSize() int { return c.innerSize }

// LeafSize returns the configured maximum leaf occupancy.
func (c TreeConfig) LeafSize() int { return c.leafSize }

// ParallelCutoffDepth returns the configured fork cutoff depth.
func (c TreeConfig) ParallelCutoffDepth() int { return c.parallelCutoffDepth }
