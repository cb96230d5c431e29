package nearness

import (
	"container/heap"
	"sort"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/opt"
)

// boundsOf resolves n's bounds into f's parent space, skipping the
// transform entirely when f is the identity frame.
func boundsOf[R geom.Float](f *geom.Frame[R], bounds geom.AABB[R]) geom.AABB[R] {
	if f.IsIdentity() {
		return bounds
	}

	return bounds.Transform(f.Forward())
}

// nodeItem is one work item of the single-tree priority queue: a node id
// keyed by its aabb_metric.
type nodeItem[R geom.Float] struct {
	node int
	key  R
}

type nodeHeap[R geom.Float] []nodeItem[R]

func (h nodeHeap[R]) Len() int            { return len(h) }
func (h nodeHeap[R]) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h nodeHeap[R]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[R]) Push(x interface{}) { *h = append(*h, x.(nodeItem[R])) }
func (h *nodeHeap[R]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// Best runs the best-first, priority-queue single-tree nearness search:
// always expand the node with the smallest aabb_metric, maintaining a
// running best metric beta that prunes any item whose key exceeds it.
// Terminates when the queue empties or beta reaches exactly zero (a
// coincident hit, which cannot be improved on).
func Best[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	aabbMetric AABBMetric[R],
	leafMetric LeafMetric[I, R],
) opt.Option[Result[I, R]] {
	if f.Tree.Empty() {
		return opt.None[Result[I, R]]()
	}

	pq := &nodeHeap[R]{}
	heap.Init(pq)
	heap.Push(pq, nodeItem[R]{
		node: f.Tree.Root(),
		key:  aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[f.Tree.Root()].Bounds)),
	})

	var best opt.Option[Result[I, R]]

	var beta R

	hasBest := false

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem[R])

		if hasBest && item.key > beta {
			break
		}

		n := f.Tree.Nodes[item.node]

		if n.IsLeaf() {
			first, count := n.LeafRange()

			for i := int(first); i < int(first)+int(count); i++ {
				id := f.Tree.IDs[i]
				mp := leafMetric(id)

				if !hasBest || mp.Metric < beta {
					beta = mp.Metric
					hasBest = true
					best = opt.Some(Result[I, R]{ID: id, Metric: mp.Metric, Point: mp.Point})

					if beta == 0 {
						return best
					}
				}
			}

			continue
		}

		first, count := int(n.FirstChild()), int(n.ChildCount())

		for i := 0; i < count; i++ {
			c := first + i
			key := aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[c].Bounds))
			if !hasBest || key <= beta {
				heap.Push(pq, nodeItem[R]{node: c, key: key})
			}
		}
	}

	return best
}

// BestByLevel runs the sort-by-level variant: instead of a global heap,
// an explicit LIFO stack is kept, sorting only the children of the node
// just expanded so the nearest of them pops first. Empirically comparable to Best on
// shallow trees, with better cache locality since the stack never grows
// to hold the whole frontier at once.
func BestByLevel[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	aabbMetric AABBMetric[R],
	leafMetric LeafMetric[I, R],
) opt.Option[Result[I, R]] {
	if f.Tree.Empty() {
		return opt.None[Result[I, R]]()
	}

	stack := []nodeItem[R]{{
		node: f.Tree.Root(),
		key:  aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[f.Tree.Root()].Bounds)),
	}}

	var best opt.Option[Result[I, R]]

	var beta R

	hasBest := false

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if hasBest && top.key > beta {
			continue
		}

		n := f.Tree.Nodes[top.node]

		if n.IsLeaf() {
			first, count := n.LeafRange()

			for i := int(first); i < int(first)+int(count); i++ {
				id := f.Tree.IDs[i]
				mp := leafMetric(id)

				if !hasBest || mp.Metric < beta {
					beta = mp.Metric
					hasBest = true
					best = opt.Some(Result[I, R]{ID: id, Metric: mp.Metric, Point: mp.Point})

					if beta == 0 {
						return best
					}
				}
			}

			continue
		}

		first, count := int(n.FirstChild()), int(n.ChildCount())

		items := make([]nodeItem[R], count)
		for i := 0; i < count; i++ {
			c := first + i
			items[i] = nodeItem[R]{node: c, key: aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[c].Bounds))}
		}

		// push farthest first so the nearest child ends up on top and is
		// popped next.
		sort.Slice(items, func(i, j int) bool { return items[i].key > items[j].key })

		for _, item := range items {
			if !hasBest || item.key <= beta {
				stack = append(stack, item)
			}
		}
	}

	return best
}

// resultMaxHeap is a bounded max-heap over Result, used by KNearest to
// hold the k best candidates seen so far with the current k-th best
// (soon to be evicted if a closer candidate arrives) at the root.
type resultMaxHeap[I geom.Index, R geom.Float] struct {
	items []Result[I, R]
}

func (h *resultMaxHeap[I, R]) Len() int { return len(h.items) }
func (h *resultMaxHeap[I, R]) Less(i, j int) bool {
	return h.items[i].Metric > h.items[j].Metric
}
func (h *resultMaxHeap[I, R]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *resultMaxHeap[I, R]) Push(x interface{}) {
	h.items = append(h.items, x.(Result[I, R]))
}
func (h *resultMaxHeap[I, R]) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]

	return v
}

// KNearest runs the k-nearest variant of the single-tree search: the
// running best is a bounded max-heap of size k rather than a single
// value; a candidate below the heap's top displaces it. radius, if
// Some, seeds beta at radius^2 so the query is doubly bounded. The
// result is sorted ascending by metric.
func KNearest[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	k int,
	radius opt.Option[R],
	aabbMetric AABBMetric[R],
	leafMetric LeafMetric[I, R],
) []Result[I, R] {
	if f.Tree.Empty() || k <= 0 {
		return nil
	}

	h := &resultMaxHeap[I, R]{}
	heap.Init(h)

	var beta R

	hasBeta := false

	if radius.IsSome() {
		r := radius.Unwrap()
		beta = r * r
		hasBeta = true
	}

	pq := &nodeHeap[R]{}
	heap.Init(pq)
	heap.Push(pq, nodeItem[R]{
		node: f.Tree.Root(),
		key:  aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[f.Tree.Root()].Bounds)),
	})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem[R])

		if hasBeta && item.key > beta {
			break
		}

		n := f.Tree.Nodes[item.node]

		if n.IsLeaf() {
			first, count := n.LeafRange()

			for i := int(first); i < int(first)+int(count); i++ {
				id := f.Tree.IDs[i]
				mp := leafMetric(id)

				if hasBeta && mp.Metric > beta {
					continue
				}

				switch {
				case h.Len() < k:
					heap.Push(h, Result[I, R]{ID: id, Metric: mp.Metric, Point: mp.Point})
				case mp.Metric < h.items[0].Metric:
					h.items[0] = Result[I, R]{ID: id, Metric: mp.Metric, Point: mp.Point}
					heap.Fix(h, 0)
				}

				if h.Len() == k {
					hasBeta = true
					beta = h.items[0].Metric
				}
			}

			continue
		}

		first, count := int(n.FirstChild()), int(n.ChildCount())

		for i := 0; i < count; i++ {
			c := first + i
			key := aabbMetric(boundsOf(f.Frame, f.Tree.Nodes[c].Bounds))
			if !hasBeta || key <= beta {
				heap.Push(pq, nodeItem[R]{node: c, key: key})
			}
		}
	}

	out := make([]Result[I, R], h.Len())
	copy(out, h.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Metric < out[j].Metric })

	return out
}
