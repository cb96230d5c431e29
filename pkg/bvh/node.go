package bvh

import "github.com/flier/bvh/pkg/geom"

const (
	// LeafAxis marks a node as a leaf: Data holds [firstPrimitiveIndex, count].
	LeafAxis int8 = -1

	// EmptyAxis marks an unused slot in the implicit n-ary heap: node k's
	// cfg.InnerSize children always occupy the fixed run starting at
	// cfg.InnerSize*k+1, but a node whose range split into fewer than
	// cfg.InnerSize non-empty groups leaves the tail of that run
	// EmptyAxis-tagged and never recurses into it. Genuinely reachable
	// any time InnerSize > 2 or a range doesn't divide evenly, not just
	// on bugs.
	EmptyAxis int8 = -2
)

// Node is one entry of a Tree's flattened node array, laid out as an
// implicit n-ary heap: node 0 is the root, and the children of node k
// occupy the fixed run [InnerSize*k+1, InnerSize*k+1+InnerSize) — Data[0]
// still caches the first child's index redundantly, since a node doesn't
// otherwise know its own position k or the tree's configured InnerSize.
// Axis tags which of the two union states Data is in:
//   - Axis in [0, R's dimension): interior node, split along that axis;
//     Data holds (firstChildNodeIndex, childCount).
//   - Axis == LeafAxis: leaf node; Data holds (firstPrimitiveIndex, count).
//   - Axis == EmptyAxis: unused heap slot.
type Node[I geom.Index, R geom.Float] struct {
	Bounds geom.AABB[R]
	Axis   int8
	Data   [2]I
}

// IsLeaf reports whether n is a leaf node.
func (n Node[I, R]) IsLeaf() bool { return n.Axis == LeafAxis }

// IsEmpty reports whether n is an unwritten slot.
func (n Node[I, R]) IsEmpty() bool { return n.Axis == EmptyAxis }

// IsInner reports whether n is an interior (split) node.
func (n Node[I, R]) IsInner() bool { return n.Axis >= 0 }

// FirstChild returns the node index of n's first child. Only valid when
// IsInner() is true; subsequent children, if any, follow at consecutive
// indices up to ChildCount.
func (n Node[I, R]) FirstChild() I { return n.Data[0] }

// ChildCount returns n's number of children, in [1, cfg.InnerSize].
// Only valid when IsInner() is true.
func (n Node[I, R]) ChildCount() I { return n.Data[1] }

// Child returns the node index of n's i-th child, i in [0, ChildCount()).
// Only valid when IsInner() is true.
func (n Node[I, R]) Child(i int) I { return n.Data[0] + I(i) }

// LeafRange returns the first primitive index and count of a leaf node.
// Only valid when IsLeaf() is true.
func (n Node[I, R]) LeafRange() (first, count I) { return n.Data[0], n.Data[1] }
