package search

import (
	"github.com/flier/bvh/pkg/bvh"
	"github.com/flier/bvh/pkg/geom"
)

// NodeTest reports whether bounds, already resolved into the query's
// space, pass the query: a node whose bounds pass is descended into, and
// a primitive in an entered leaf is visited only if its own AABB passes.
type NodeTest[R geom.Float] func(bounds geom.AABB[R]) bool

// Overlaps builds a NodeTest admitting nodes whose bounds intersect query.
func Overlaps[R geom.Float](query geom.AABB[R]) NodeTest[R] {
	return func(bounds geom.AABB[R]) bool { return bounds.Intersects(query) }
}

// Contains builds a NodeTest admitting nodes whose bounds contain point.
func Contains[R geom.Float](point geom.Vector[R]) NodeTest[R] {
	return func(bounds geom.AABB[R]) bool { return bounds.Contains(point) }
}

// ContainedBy builds a NodeTest admitting nodes fully enclosed by query,
// for queries that want the reverse containment direction from Overlaps
// (query contains the primitive, rather than the primitive's cell
// containing a point).
func ContainedBy[R geom.Float](query geom.AABB[R]) NodeTest[R] {
	return func(bounds geom.AABB[R]) bool {
		return query.Contains(bounds.Min) && query.Contains(bounds.Max)
	}
}

// PairTest reports whether two bounds, one from each side of a dual- or
// self-tree search, pass the query: a node pair that passes is descended
// into together, and a primitive pair from two entered leaves is visited
// only if the two primitives' own AABBs pass.
type PairTest[R geom.Float] func(a, b geom.AABB[R]) bool

// PairOverlaps builds a PairTest admitting node pairs whose bounds
// intersect.
func PairOverlaps[R geom.Float]() PairTest[R] {
	return func(a, b geom.AABB[R]) bool { return a.Intersects(b) }
}

// boundsOf resolves n's bounds into f's parent space, skipping the
// transform entirely when f is the identity frame.
func boundsOf[R geom.Float](f *geom.Frame[R], bounds geom.AABB[R]) geom.AABB[R] {
	if f.IsIdentity() {
		return bounds
	}

	return bounds.Transform(f.Forward())
}

// childrenOf returns the node indices a dual- or self-tree recursion
// should expand on this side of a pair: n's own children in heap order
// when n is interior, or the single-element {nodeIdx} when n is a leaf —
// so a mixed leaf/interior pair only expands the interior side, and a
// leaf/leaf pair is caught by the caller before it ever calls this.
func childrenOf[I geom.Index, R geom.Float](n bvh.Node[I, R], nodeIdx int) []int {
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
