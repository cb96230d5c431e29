package modtree

import (
	"github.com/flier/bvh/pkg/bvh"
	"github.com/flier/bvh/pkg/bvh/partition"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/xsync"
)

// ModTree pairs a well-balanced, infrequently-rebuilt Main tree with a
// small Delta tree rebuilt from scratch on every Update call. DeltaIDs
// maps Delta's build-local positions back to the caller's stable
// external IDs, mirroring the indirection Main.IDs gives for free
// (Main's IDs ARE the stable external IDs, since Main is never
// re-permuted relative to the caller's own ID space except by Compact,
// which preserves every surviving ID's value, only its position).
type ModTree[P any, I geom.Index, R geom.Float] struct {
	Main     *bvh.Tree[P, I, R]
	Delta    *bvh.Tree[P, I, R]
	DeltaIDs []I
}

// New creates an empty ModTree.
func New[P any, I geom.Index, R geom.Float]() *ModTree[P, I, R] {
	return &ModTree[P, I, R]{
		Main:  &bvh.Tree[P, I, R]{},
		Delta: &bvh.Tree[P, I, R]{},
	}
}

// Update implements the two-stage incremental maintenance algorithm:
// first Main is compacted in place to drop primitives keepIf rejects,
// then a fresh Delta is built over newObjects/newIDs. Main's topology is
// left unchanged by compaction (dead leaf slots simply shrink towards
// zero occupancy); call RebuildMain periodically to restore balance once
// enough churn has accumulated.
func (mt *ModTree[P, I, R]) Update(
	newObjects []P,
	newIDs []I,
	keepIf func(I) bool,
	aabbOf func(P) geom.AABB[R],
	cfg bvh.TreeConfig,
	strat partition.Strategy[int],
	exec *xsync.Executor,
) error {
	mt.Compact(keepIf, exec)

	delta, err := bvh.Build[P, I, R](newObjects, aabbOf, cfg, strat, exec)
	if err != nil {
		return err
	}

	mt.Delta = delta
	mt.DeltaIDs = append([]I(nil), newIDs...)

	return nil
}

// leafSpan names a leaf node's slot and the primitive range it claims in
// Main's PrimitiveAABBs/IDs arrays.
type leafSpan struct {
	nodeIdx      int
	first, count int
}

// Compact removes every primitive whose ID fails keepIf from Main,
// shrinking each leaf's occupied range in place without altering the
// tree's topology. Leaves may end up with zero primitives; they remain
// valid (empty) leaves until RebuildMain restores balance.
func (mt *ModTree[P, I, R]) Compact(keepIf func(I) bool, exec *xsync.Executor) {
	if mt.Main.Empty() {
		return
	}

	leaves := collectLeaves[P, I, R](mt.Main)
	if len(leaves) == 0 {
		return
	}

	kept := make([][]int, len(leaves))

	xsync.ParallelFor(exec, len(leaves), func(_, lo, hi int) {
		for li := lo; li < hi; li++ {
			span := leaves[li]
			var local []int

			for i := span.first; i < span.first+span.count; i++ {
				if keepIf(mt.Main.IDs[i]) {
					local = append(local, i)
				}
			}

			kept[li] = local
		}
	})

	total := 0
	offsets := make([]int, len(leaves))

	for li, local := range kept {
		offsets[li] = total
		total += len(local)
	}

	newAABBs := make([]geom.AABB[R], total)
	newIDs := make([]I, total)

	xsync.ParallelFor(exec, len(leaves), func(_, lo, hi int) {
		for li := lo; li < hi; li++ {
			local := kept[li]
			base := offsets[li]

			for j, pos := range local {
				newAABBs[base+j] = mt.Main.PrimitiveAABBs[pos]
				newIDs[base+j] = mt.Main.IDs[pos]
			}

			mt.Main.Nodes[leaves[li].nodeIdx].Data = [2]I{I(base), I(len(local))}
		}
	})

	mt.Main.PrimitiveAABBs = newAABBs
	mt.Main.IDs = newIDs
}

// RebuildMain discards Main's current topology and rebuilds a balanced
// tree from its (already compacted) cached AABBs and IDs. Use this once
// Compact's accumulated empty leaves have degraded query performance
// enough to justify the cost of a full rebuild.
func (mt *ModTree[P, I, R]) RebuildMain(cfg bvh.TreeConfig, strat partition.Strategy[int], exec *xsync.Executor) {
	mt.Main = bvh.RebuildFromAABBs[P, I, R](mt.Main.PrimitiveAABBs, mt.Main.IDs, cfg, strat, exec)
}

// collectLeaves walks t's nodes depth-first, child-index order, and
// returns every leaf's slot and primitive range. Traversal order always
// matches increasing position order in PrimitiveAABBs/IDs, since Build
// partitions each range into InnerSize contiguous, non-overlapping groups
// in split-axis order, recursively, with no gaps between them.
func collectLeaves[P any, I geom.Index, R geom.Float](t *bvh.Tree[P, I, R]) []leafSpan {
	var leaves []leafSpan

	var walk func(idx int)
	walk = func(idx int) {
		if idx < 0 || idx >= len(t.Nodes) {
			return
		}

		n := t.Nodes[idx]
		if n.IsEmpty() {
			return
		}

		if n.IsLeaf() {
			first, count := n.LeafRange()
			leaves = append(leaves, leafSpan{nodeIdx: idx, first: int(first), count: int(count)})
			return
		}

		first, count := int(n.FirstChild()), int(n.ChildCount())
		for i := 0; i < count; i++ {
			walk(first + i)
		}
	}

	walk(t.Root())

	return leaves
}
