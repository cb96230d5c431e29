package nearness

import (
	"math"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/opt"
	"github.com/flier/bvh/pkg/xsync"
)

// ParallelBestPair runs the parallel dual-tree nearness search: the top
// cutoffDepth levels of the node-pair tree are expanded sequentially
// into a frontier, which is then split across exec's workers via
// ParallelApply. Each worker descends its assigned frontier items
// sequentially, pruning against a shared running best beta and a shared
// running aabb_max, both held in an xsync.CASBest and updated via
// compare-and-swap; each worker records its own best candidate in its
// own xsync.LocalValue slot, and the final result is the minimum over
// all workers' candidates.
//
// Splitting a worker's own "best found" state into per-worker slots
// avoids synchronizing the result itself on every leaf-pair candidate;
// only the prune thresholds (beta, aabb_max) need CAS updates, since
// every worker only ever races to install a *better* bound, never to
// read back an authoritative final value until Reduce runs after every
// worker has returned.
func ParallelBestPair[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	aabbMetrics AABBPairMetric[R],
	leafMetric LeafPairMetric[I, R],
	exec *xsync.Executor,
	cutoffDepth int,
) opt.Option[PairResult[I, R]] {
	if a.Tree.Empty() || b.Tree.Empty() {
		return opt.None[PairResult[I, R]]()
	}

	beta := xsync.NewCASBest(math.MaxFloat64)
	aabbMax := xsync.NewCASBest(math.MaxFloat64)
	better := func(candidate, current float64) bool { return candidate < current }

	frontier := expandFrontier(a, b, aabbMetrics, cutoffDepth)

	locals := xsync.NewLocalValue(exec.Workers(), opt.None[PairResult[I, R]]())

	xsync.ParallelApply(exec, frontier, func(worker int, item pairItem[R]) {
		result := locals.Get(worker)
		descendSequential(a, b, item.nodeA, item.nodeB, aabbMetrics, leafMetric, beta, aabbMax, better, result)
	})

	return locals.Reduce(func(x, y opt.Option[PairResult[I, R]]) opt.Option[PairResult[I, R]] {
		switch {
		case x.IsNone():
			return y
		case y.IsNone():
			return x
		case x.Unwrap().Metric <= y.Unwrap().Metric:
			return x
		default:
			return y
		}
	})
}

// expandFrontier descends from (rootA, rootB) breadth-first, expanding
// every interior side at each step (a leaf side stays as it is), down to
// cutoffDepth levels (or until a pair
// of leaves is reached, whichever comes first), and returns the
// resulting set of node-pair tasks for the parallel fan-out.
func expandFrontier[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	aabbMetrics AABBPairMetric[R],
	cutoffDepth int,
) []pairItem[R] {
	type queued struct{ nodeA, nodeB, depth int }

	queue := []queued{{a.Tree.Root(), b.Tree.Root(), 0}}

	var frontier []pairItem[R]

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		na := a.Tree.Nodes[q.nodeA]
		nb := b.Tree.Nodes[q.nodeB]

		minD2, minMaxD2 := aabbMetrics(boundsOf(a.Frame, na.Bounds), boundsOf(b.Frame, nb.Bounds))

		if q.depth >= cutoffDepth || (na.IsLeaf() && nb.IsLeaf()) {
			frontier = append(frontier, pairItem[R]{q.nodeA, q.nodeB, minD2, minMaxD2})
			continue
		}

		for _, ca := range sidesOf(na, q.nodeA) {
			for _, cb := range sidesOf(nb, q.nodeB) {
				queue = append(queue, queued{ca, cb, q.depth + 1})
			}
		}
	}

	return frontier
}

// descendSequential runs a plain recursive dual-tree nearness descent
// from (nodeA, nodeB), pruning against the shared beta/aabbMax bounds
// and writing its best find into result (this worker's own slot).
func descendSequential[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	nodeA, nodeB int,
	aabbMetrics AABBPairMetric[R],
	leafMetric LeafPairMetric[I, R],
	beta, aabbMax *xsync.CASBest,
	better func(candidate, current float64) bool,
	result *opt.Option[PairResult[I, R]],
) {
	na := a.Tree.Nodes[nodeA]
	nb := b.Tree.Nodes[nodeB]

	minD2, minMaxD2 := aabbMetrics(boundsOf(a.Frame, na.Bounds), boundsOf(b.Frame, nb.Bounds))

	if float64(minD2) > beta.Load() {
		return
	}

	if float64(minD2) > aabbMax.Load() {
		return
	}

	aabbMax.UpdateIfBetter(float64(minMaxD2), better)

	if na.IsLeaf() && nb.IsLeaf() {
		firstA, countA := na.LeafRange()
		firstB, countB := nb.LeafRange()

		for i := int(firstA); i < int(firstA)+int(countA); i++ {
			for j := int(firstB); j < int(firstB)+int(countB); j++ {
				mp := leafMetric(a.Tree.IDs[i], b.Tree.IDs[j])

				if beta.UpdateIfBetter(float64(mp.Metric), better) {
					*result = opt.Some(PairResult[I, R]{
						IDA: a.Tree.IDs[i], IDB: b.Tree.IDs[j],
						Metric: mp.Metric, PointA: mp.PointA, PointB: mp.PointB,
					})
				}
			}
		}

		return
	}

	for _, ca := range sidesOf(na, nodeA) {
		for _, cb := range sidesOf(nb, nodeB) {
			descendSequential(a, b, ca, cb, aabbMetrics, leafMetric, beta, aabbMax, better, result)
		}
	}
}
