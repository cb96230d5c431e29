package search

import (
	"sync/atomic"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/xsync"
)

// Self runs a self-tree search: every unordered pair of primitives in f
// admitted by test is visited exactly once, never a primitive against
// itself. This is the all-pairs variant of Dual for a tree against
// itself, exploiting the invariant that Build's range splitting leaves
// every node's primitive range either identical to, or strictly before,
// any other node's range at the same or a sibling position — so
// recursing from (root, root) and, at a same-node pair, only ever
// pairing a node's children (c_i, c_j) for i <= j (never the symmetric
// (c_j, c_i)) visits every unordered node pair exactly once.
//
// visit returning true requests an abort, exactly as in Dual.
func Self[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	test PairTest[R],
	visit func(idA, idB I) bool,
	abort func() bool,
	exec *xsync.Executor,
	cutoffDepth int,
) bool {
	if f.Tree.Empty() {
		return false
	}

	if abort == nil {
		abort = func() bool { return false }
	}

	var aborted atomic.Bool

	selfRecurse(f, f.Tree.Root(), f.Tree.Root(), test, visit, abort, &aborted, exec, 0, cutoffDepth)

	return aborted.Load()
}

func selfRecurse[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	nodeA, nodeB int,
	test PairTest[R],
	visit func(idA, idB I) bool,
	abort func() bool,
	aborted *atomic.Bool,
	exec *xsync.Executor,
	depth, cutoff int,
) {
	if aborted.Load() || abort() {
		return
	}

	na := f.Tree.Nodes[nodeA]
	nb := f.Tree.Nodes[nodeB]

	if !test(boundsOf(f.Frame, na.Bounds), boundsOf(f.Frame, nb.Bounds)) {
		return
	}

	if na.IsLeaf() && nb.IsLeaf() {
		firstA, countA := na.LeafRange()

		if nodeA == nodeB {
			for i := int(firstA); i < int(firstA)+int(countA); i++ {
				for j := i + 1; j < int(firstA)+int(countA); j++ {
					if !test(boundsOf(f.Frame, f.Tree.PrimitiveAABBs[i]), boundsOf(f.Frame, f.Tree.PrimitiveAABBs[j])) {
						continue
					}

					if visit(f.Tree.IDs[i], f.Tree.IDs[j]) {
						aborted.Store(true)
						return
					}
				}
			}

			return
		}

		firstB, countB := nb.LeafRange()

		for i := int(firstA); i < int(firstA)+int(countA); i++ {
			for j := int(firstB); j < int(firstB)+int(countB); j++ {
				if !test(boundsOf(f.Frame, f.Tree.PrimitiveAABBs[i]), boundsOf(f.Frame, f.Tree.PrimitiveAABBs[j])) {
					continue
				}

				if visit(f.Tree.IDs[i], f.Tree.IDs[j]) {
					aborted.Store(true)
					return
				}
			}
		}

		return
	}

	var tasks []func()

	if nodeA == nodeB {
		// na's children pair up with themselves: (c_i, c_j) for i <= j,
		// never the symmetric (c_j, c_i), the same upper-triangle
		// invariant the leaf case above exploits one level down.
		children := childrenOf[I, R](na, nodeA)

		for i, ci := range children {
			for _, cj := range children[i:] {
				ci, cj := ci, cj
				tasks = append(tasks, func() {
					selfRecurse(f, ci, cj, test, visit, abort, aborted, exec, depth+1, cutoff)
				})
			}
		}
	} else {
		childrenA := childrenOf[I, R](na, nodeA)
		childrenB := childrenOf[I, R](nb, nodeB)

		for _, ca := range childrenA {
			for _, cb := range childrenB {
				ca, cb := ca, cb
				tasks = append(tasks, func() {
					selfRecurse(f, ca, cb, test, visit, abort, aborted, exec, depth+1, cutoff)
				})
			}
		}
	}

	if depth < cutoff {
		exec.ForkAll(tasks...)
	} else {
		for _, t := range tasks {
			t()
		}
	}
}

// SelfMod runs a self-tree search over a mod-tree, combining main and
// delta the same way SingleMod does: all-pairs within Main, all pairs
// between Main and Delta (via Dual, since those two halves never share a
// node), and all-pairs within Delta, short-circuited on abort.
func SelfMod[P any, I geom.Index, R geom.Float](
	f *form.ModForm[P, I, R],
	test PairTest[R],
	visit func(idA, idB I) bool,
	abort func() bool,
	exec *xsync.Executor,
	cutoffDepth int,
) bool {
	if Self(f.MainForm(), test, visit, abort, exec, cutoffDepth) {
		return true
	}

	if Dual(f.MainForm(), f.DeltaForm(), test, visit, abort, exec, cutoffDepth) {
		return true
	}

	return Self(f.DeltaForm(), test, visit, abort, exec, cutoffDepth)
}
