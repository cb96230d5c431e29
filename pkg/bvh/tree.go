package bvh

import (
	"github.com/flier/bvh/pkg/bvh/partition"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/xsync"
)

// Tree is a bounding-volume hierarchy over an external slice of opaque
// primitives P. It does not own or copy the caller's primitives: IDs is a
// permutation of their original indices, and PrimitiveAABBs holds each
// primitive's AABB in the same permuted order, so a leaf's range indexes
// both arrays consistently. Callers recover the original primitive via
// their own slice indexed by IDs[i].
//
// Nodes is laid out as an implicit n-ary heap (see Node): node k's
// children always occupy the fixed run starting at InnerSize*k+1, so
// most trees carry some EmptyAxis slots wherever a range split into
// fewer than InnerSize non-empty groups.
type Tree[P any, I geom.Index, R geom.Float] struct {
	PrimitiveAABBs []geom.AABB[R]
	Nodes          []Node[I, R]
	IDs            []I
}

// Clear resets t to the empty tree, releasing its backing arrays.
func (t *Tree[P, I, R]) Clear() {
	t.PrimitiveAABBs = nil
	t.Nodes = nil
	t.IDs = nil
}

// Empty reports whether t holds no primitives.
func (t *Tree[P, I, R]) Empty() bool { return len(t.IDs) == 0 }

// Root returns the index of the root node. Only meaningful when t is not
// Empty.
func (t *Tree[P, I, R]) Root() int { return 0 }

// Build constructs a Tree over primitives, using aabbOf to derive each
// primitive's bounding box, cfg to shape the tree, strat to select the
// split positions of each range along its longest axis, and exec to fork
// recursive build tasks in parallel down to cfg.ParallelCutoffDepth.
//
// strat operates over primitive positions (ints), not coordinates
// directly: Build supplies a less closure that looks up each position's
// axis coordinate, so any Strategy[int] from pkg/bvh/partition works
// unmodified here.
func Build[P any, I geom.Index, R geom.Float](
	primitives []P,
	aabbOf func(P) geom.AABB[R],
	cfg TreeConfig,
	strat partition.Strategy[int],
	exec *xsync.Executor,
) (*Tree[P, I, R], error) {
	n := len(primitives)
	if n == 0 {
		return &Tree[P, I, R]{}, nil
	}

	aabbs := make([]geom.AABB[R], n)
	xsync.ParallelFor(exec, n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			aabbs[i] = aabbOf(primitives[i])
		}
	})

	ids := make([]I, n)
	xsync.ParallelIota(exec, ids)

	return RebuildFromAABBs[P, I, R](aabbs, ids, cfg, strat, exec), nil
}

// RebuildFromAABBs builds a fresh node topology over already-computed
// aabbs and ids, without needing the original primitives or an aabbOf
// accessor. ModTree.RebuildMain uses this to rebuild Main's topology
// from its compacted, already-cached AABBs after churn, and Build itself
// is a thin wrapper that computes aabbs/ids before delegating here.
func RebuildFromAABBs[P any, I geom.Index, R geom.Float](
	aabbs []geom.AABB[R],
	ids []I,
	cfg TreeConfig,
	strat partition.Strategy[int],
	exec *xsync.Executor,
) *Tree[P, I, R] {
	n := len(aabbs)
	if n == 0 {
		return &Tree[P, I, R]{}
	}

	nodes := make([]Node[I, R], heapCapacity(n, cfg.LeafSize(), cfg.InnerSize()))
	for i := range nodes {
		nodes[i].Axis = EmptyAxis
	}

	b := &builder[P, I, R]{
		aabbs: aabbs,
		ids:   ids,
		cfg:   cfg,
		strat: strat,
		exec:  exec,
		nodes: nodes,
		scratch: &xsync.Pool[partitionScratch[I, R]]{
			Reset: func(s *partitionScratch[I, R]) {
				s.positions = s.positions[:0]
				s.aabbs = s.aabbs[:0]
				s.ids = s.ids[:0]
			},
		},
	}

	b.build(0, 0, n, 0)

	return &Tree[P, I, R]{
		PrimitiveAABBs: aabbs,
		Nodes:          b.nodes,
		IDs:            ids,
	}
}

// heapCapacity bounds the node count of a complete InnerSize-ary heap
// tall enough to hold n primitives at leafSize occupancy per leaf,
// tracking §4.2 step 2's "preallocate to the maximum possible size"
// instruction. Because partitionRange always splits a range into exactly
// the requested position counts (an nth-element selection guarantees the
// counts on either side regardless of how the data is distributed), the
// tree's actual depth never exceeds this estimate, so the fixed
// InnerSize*k+1 addressing scheme never indexes past the end of nodes.
func heapCapacity(n, leafSize, innerSize int) int {
	if innerSize < 2 {
		innerSize = 2
	}

	if leafSize < 1 {
		leafSize = 1
	}

	depth := 0
	remaining := n

	for remaining > leafSize {
		remaining = (remaining + innerSize - 1) / innerSize
		depth++
	}

	// one extra level of slack against rounding in the proportional
	// group split, plus the usual geometric-series node count for an
	// InnerSize-ary heap of height depth+1.
	total, level := 1, 1

	for i := 0; i < depth+1; i++ {
		level *= innerSize
		total += level
	}

	return total
}

// builder holds the mutable state threaded through recursive build
// calls. Sibling subtrees never touch the same node slot: nodes is
// preallocated once to heapCapacity before build starts, and every
// node's heap position is a pure function of its parent's position and
// InnerSize, so concurrently forked children always write to disjoint
// indices without needing to grow or reslice the shared array.
type builder[P any, I geom.Index, R geom.Float] struct {
	aabbs []geom.AABB[R]
	ids   []I
	cfg   TreeConfig
	strat partition.Strategy[int]
	exec  *xsync.Executor
	nodes []Node[I, R]

	// scratch pools the position/AABB/ID buffers partitionRange needs to
	// reorder a range: every forked build goroutine calls partitionRange
	// independently, so a shared xsync.Pool lets them reuse one another's
	// backing arrays across sibling ranges instead of each range allocating
	// its own scratch slices from scratch.
	scratch *xsync.Pool[partitionScratch[I, R]]
}

// partitionScratch holds the reusable buffers behind one partitionRange
// call: positions indexes the range under reordering, and aabbs/ids stage
// the reordered values before they're copied back in place.
type partitionScratch[I geom.Index, R geom.Float] struct {
	positions []int
	aabbs     []geom.AABB[R]
	ids       []I
}

// build fills in the node at nodeIdx for range [lo,hi), partitioning it
// into cfg.InnerSize groups along its longest axis and recursing into
// each non-empty one at the fixed heap position cfg.InnerSize*nodeIdx+1.
// Below cfg.ParallelCutoffDepth, the child subtrees build on the calling
// goroutine; above it, they fork onto exec via ForkAll.
func (b *builder[P, I, R]) build(nodeIdx, lo, hi int, depth int) {
	bounds := b.rangeBounds(lo, hi)

	if hi-lo <= b.cfg.LeafSize() {
		b.nodes[nodeIdx] = Node[I, R]{
			Bounds: bounds,
			Axis:   LeafAxis,
			Data:   [2]I{I(lo), I(hi - lo)},
		}

		return
	}

	axis := bounds.LongestAxis()
	innerSize := b.cfg.InnerSize()

	boundaries := b.splitGroups(lo, hi, axis, innerSize)

	type span struct{ lo, hi int }

	var children []span

	for i := 0; i < innerSize; i++ {
		if boundaries[i] < boundaries[i+1] {
			children = append(children, span{boundaries[i], boundaries[i+1]})
		}
	}

	firstChild := innerSize*nodeIdx + 1

	b.nodes[nodeIdx] = Node[I, R]{
		Bounds: bounds,
		Axis:   int8(axis),
		Data:   [2]I{I(firstChild), I(len(children))},
	}

	if depth >= b.cfg.ParallelCutoffDepth() {
		for i, c := range children {
			b.build(firstChild+i, c.lo, c.hi, depth+1)
		}

		return
	}

	tasks := make([]func(), len(children))

	for i, c := range children {
		i, c := i, c
		tasks[i] = func() { b.build(firstChild+i, c.lo, c.hi, depth+1) }
	}

	b.exec.ForkAll(tasks...)
}

// rangeBounds returns the union of aabbs[lo:hi].
func (b *builder[P, I, R]) rangeBounds(lo, hi int) geom.AABB[R] {
	bounds := b.aabbs[lo]
	for i := lo + 1; i < hi; i++ {
		bounds = bounds.Union(b.aabbs[i])
	}

	return bounds
}

// splitGroups partitions [lo,hi) into `groups` contiguous runs of
// (roughly) equal length along axis, returning the groups+1 boundary
// positions (boundaries[0] == lo, boundaries[groups] == hi). It recurses
// by bisecting the group-count space exactly as partitionRange bisects
// the position space, so each interior boundary costs one nth-element
// selection over a shrinking subrange — the same asymptotic cost as the
// strict binary split this generalizes.
func (b *builder[P, I, R]) splitGroups(lo, hi, axis, groups int) []int {
	boundaries := make([]int, groups+1)
	boundaries[0] = lo
	boundaries[groups] = hi

	b.splitRange(lo, hi, axis, boundaries, 0, groups)

	return boundaries
}

func (b *builder[P, I, R]) splitRange(lo, hi, axis int, boundaries []int, i0, i1 int) {
	if i1-i0 <= 1 {
		return
	}

	mid := i0 + (i1-i0)/2

	frac := float64(mid-i0) / float64(i1-i0)
	split := lo + int(float64(hi-lo)*frac+0.5)

	if split < lo {
		split = lo
	}

	if split > hi {
		split = hi
	}

	if split > lo && split < hi {
		b.partitionRange(lo, hi, split, axis)
	}

	boundaries[mid] = split

	b.splitRange(lo, split, axis, boundaries, i0, mid)
	b.splitRange(split, hi, axis, boundaries, mid, i1)
}

// partitionRange reorders aabbs[lo:hi] and ids[lo:hi] in lockstep so that
// index mid holds the primitive whose axis-th center coordinate is the
// (mid-lo)-th smallest of the range, with everything before it no greater
// and everything after it no less.
func (b *builder[P, I, R]) partitionRange(lo, hi, mid, axis int) {
	n := hi - lo

	s := b.scratch.Get()
	defer b.scratch.Put(s)

	if cap(s.positions) < n {
		s.positions = make([]int, n)
	} else {
		s.positions = s.positions[:n]
	}

	for i := range s.positions {
		s.positions[i] = lo + i
	}

	less := func(a, c int) bool {
		return b.aabbs[a].Center().At(axis) < b.aabbs[c].Center().At(axis)
	}

	b.strat.Select(s.positions, mid-lo, less)

	if cap(s.aabbs) < n {
		s.aabbs = make([]geom.AABB[R], n)
	} else {
		s.aabbs = s.aabbs[:n]
	}

	if cap(s.ids) < n {
		s.ids = make([]I, n)
	} else {
		s.ids = s.ids[:n]
	}

	for i, pos := range s.positions {
		s.aabbs[i] = b.aabbs[pos]
		s.ids[i] = b.ids[pos]
	}

	copy(b.aabbs[lo:hi], s.aabbs)
	copy(b.ids[lo:hi], s.ids)
}
