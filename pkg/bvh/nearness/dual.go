package nearness

import (
	"container/heap"
	"sort"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/opt"
)

// pairItem is one work item of the dual-tree priority queue: a node-pair
// keyed by its minD2 lower bound, carrying its minMaxD2 upper bound too
// so the caller can track the running aabb_max without recomputing it.
type pairItem[R geom.Float] struct {
	nodeA, nodeB    int
	minD2, minMaxD2 R
}

type pairHeap[R geom.Float] []pairItem[R]

func (h pairHeap[R]) Len() int            { return len(h) }
func (h pairHeap[R]) Less(i, j int) bool  { return h[i].minD2 < h[j].minD2 }
func (h pairHeap[R]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pairHeap[R]) Push(x interface{}) { *h = append(*h, x.(pairItem[R])) }
func (h *pairHeap[R]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// BestPair runs the best-first, priority-queue dual-tree nearness
// search: always expand the node pair with the smallest min_d2,
// maintaining a running best metric beta and a running aabb_max (the
// smallest min_max_d2 observed), pruning any pair whose min_d2 exceeds
// either bound.
func BestPair[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	aabbMetrics AABBPairMetric[R],
	leafMetric LeafPairMetric[I, R],
) opt.Option[PairResult[I, R]] {
	if a.Tree.Empty() || b.Tree.Empty() {
		return opt.None[PairResult[I, R]]()
	}

	pq := &pairHeap[R]{}
	heap.Init(pq)

	rootMinD2, rootMinMaxD2 := aabbMetrics(
		boundsOf(a.Frame, a.Tree.Nodes[a.Tree.Root()].Bounds),
		boundsOf(b.Frame, b.Tree.Nodes[b.Tree.Root()].Bounds),
	)
	heap.Push(pq, pairItem[R]{a.Tree.Root(), b.Tree.Root(), rootMinD2, rootMinMaxD2})

	var best opt.Option[PairResult[I, R]]

	var beta, aabbMax R

	hasBeta, hasAabbMax := false, false

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pairItem[R])

		if hasBeta && item.minD2 > beta {
			break
		}

		if hasAabbMax && item.minD2 > aabbMax {
			continue
		}

		na := a.Tree.Nodes[item.nodeA]
		nb := b.Tree.Nodes[item.nodeB]

		if na.IsLeaf() && nb.IsLeaf() {
			firstA, countA := na.LeafRange()
			firstB, countB := nb.LeafRange()

			for i := int(firstA); i < int(firstA)+int(countA); i++ {
				for j := int(firstB); j < int(firstB)+int(countB); j++ {
					mp := leafMetric(a.Tree.IDs[i], b.Tree.IDs[j])

					if !hasBeta || mp.Metric < beta {
						beta = mp.Metric
						hasBeta = true
						best = opt.Some(PairResult[I, R]{
							IDA: a.Tree.IDs[i], IDB: b.Tree.IDs[j],
							Metric: mp.Metric, PointA: mp.PointA, PointB: mp.PointB,
						})
					}
				}
			}

			continue
		}

		for _, ca := range sidesOf(na, item.nodeA) {
			for _, cb := range sidesOf(nb, item.nodeB) {
				boundsA := boundsOf(a.Frame, a.Tree.Nodes[ca].Bounds)
				boundsB := boundsOf(b.Frame, b.Tree.Nodes[cb].Bounds)
				minD2, minMaxD2 := aabbMetrics(boundsA, boundsB)

				if !hasAabbMax || minMaxD2 < aabbMax {
					aabbMax = minMaxD2
					hasAabbMax = true
				}

				if hasBeta && minD2 > beta {
					continue
				}

				if hasAabbMax && minD2 > aabbMax {
					continue
				}

				heap.Push(pq, pairItem[R]{ca, cb, minD2, minMaxD2})
			}
		}
	}

	return best
}

// sidesOf returns n's children in heap order, or {nodeIdx} itself when n
// is a leaf, so a mixed leaf/interior node pair only expands the
// interior side.
func sidesOf[I geom.Index, R geom.Float](n interface {
	IsLeaf() bool
	FirstChild() I
	ChildCount() I
}, nodeIdx int) []int {
	if n.IsLeaf() {
		return []int{nodeIdx}
	}

	first, count := int(n.FirstChild()), int(n.ChildCount())
	out := make([]int, count)

	for i := range out {
		out[i] = first + i
	}

	return out
}

// pairResultMaxHeap is a bounded max-heap over PairResult, the dual-tree
// analog of resultMaxHeap.
type pairResultMaxHeap[I geom.Index, R geom.Float] struct {
	items []PairResult[I, R]
}

func (h *pairResultMaxHeap[I, R]) Len() int { return len(h.items) }
func (h *pairResultMaxHeap[I, R]) Less(i, j int) bool {
	return h.items[i].Metric > h.items[j].Metric
}
func (h *pairResultMaxHeap[I, R]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *pairResultMaxHeap[I, R]) Push(x interface{}) {
	h.items = append(h.items, x.(PairResult[I, R]))
}
func (h *pairResultMaxHeap[I, R]) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]

	return v
}

// KNearestPair is the k-nearest variant of BestPair: a bounded max-heap
// of size k replaces the single running best.
func KNearestPair[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	k int,
	radius opt.Option[R],
	aabbMetrics AABBPairMetric[R],
	leafMetric LeafPairMetric[I, R],
) []PairResult[I, R] {
	if a.Tree.Empty() || b.Tree.Empty() || k <= 0 {
		return nil
	}

	h := &pairResultMaxHeap[I, R]{}
	heap.Init(h)

	var beta, aabbMax R

	hasBeta, hasAabbMax := false, false

	if radius.IsSome() {
		r := radius.Unwrap()
		beta = r * r
		hasBeta = true
	}

	pq := &pairHeap[R]{}
	heap.Init(pq)

	rootMinD2, rootMinMaxD2 := aabbMetrics(
		boundsOf(a.Frame, a.Tree.Nodes[a.Tree.Root()].Bounds),
		boundsOf(b.Frame, b.Tree.Nodes[b.Tree.Root()].Bounds),
	)
	heap.Push(pq, pairItem[R]{a.Tree.Root(), b.Tree.Root(), rootMinD2, rootMinMaxD2})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pairItem[R])

		if hasBeta && item.minD2 > beta {
			break
		}

		if hasAabbMax && item.minD2 > aabbMax {
			continue
		}

		na := a.Tree.Nodes[item.nodeA]
		nb := b.Tree.Nodes[item.nodeB]

		if na.IsLeaf() && nb.IsLeaf() {
			firstA, countA := na.LeafRange()
			firstB, countB := nb.LeafRange()

			for i := int(firstA); i < int(firstA)+int(countA); i++ {
				for j := int(firstB); j < int(firstB)+int(countB); j++ {
					mp := leafMetric(a.Tree.IDs[i], b.Tree.IDs[j])

					if hasBeta && mp.Metric > beta {
						continue
					}

					candidate := PairResult[I, R]{
						IDA: a.Tree.IDs[i], IDB: b.Tree.IDs[j],
						Metric: mp.Metric, PointA: mp.PointA, PointB: mp.PointB,
					}

					switch {
					case h.Len() < k:
						heap.Push(h, candidate)
					case mp.Metric < h.items[0].Metric:
						h.items[0] = candidate
						heap.Fix(h, 0)
					}

					if h.Len() == k {
						hasBeta = true
						beta = h.items[0].Metric
					}
				}
			}

			continue
		}

		for _, ca := range sidesOf(na, item.nodeA) {
			for _, cb := range sidesOf(nb, item.nodeB) {
				boundsA := boundsOf(a.Frame, a.Tree.Nodes[ca].Bounds)
				boundsB := boundsOf(b.Frame, b.Tree.Nodes[cb].Bounds)
				minD2, minMaxD2 := aabbMetrics(boundsA, boundsB)

				if !hasAabbMax || minMaxD2 < aabbMax {
					aabbMax = minMaxD2
					hasAabbMax = true
				}

				if hasBeta && minD2 > beta {
					continue
				}

				if hasAabbMax && minD2 > aabbMax {
					continue
				}

				heap.Push(pq, pairItem[R]{ca, cb, minD2, minMaxD2})
			}
		}
	}

	out := make([]PairResult[I, R], h.Len())
	copy(out, h.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Metric < out[j].Metric })

	return out
}
