package search

import (
	"sync/atomic"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/xsync"
)

// Dual runs a dual-tree search between a and b: descending into a node
// pair exactly when test admits their bounds, and calling visit once per
// accepted primitive pair once both sides have reached a leaf (a pair is
// accepted when test also admits the two primitives' own AABBs). visit
// returning true requests an abort, flipping a shared flag that every
// in-flight and future recursive step observes on entry (alongside the
// caller-supplied abort, checked the same way) and that Dual's own return
// value reports.
//
// At each interior/interior step both sides split, producing the full
// cross product of a's and b's children as tasks; down to cutoffDepth
// recursion levels, those tasks fork onto exec via ForkAll, so visit
// must be safe to call concurrently from multiple goroutines. Past
// cutoffDepth, they all run sequentially on the calling goroutine.
func Dual[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
	test PairTest[R],
	visit func(idA, idB I) bool,
	abort func() bool,
	exec *xsync.Executor,
	cutoffDepth int,
) bool {
	if a.Tree.Empty() || b.Tree.Empty() {
		return false
	}

	if abort == nil {
		abort = func() bool { return false }
	}

	var aborted atomic.Bool

	dualRecurse(a, b, a.Tree.Root(), b.Tree.Root(), test, visit, abort, &aborted, exec, 0, cutoffDepth)

	return aborted.Load()
}

func dualRecurse[PA, PB any, I geom.Index, R geom.Float](
	a *form.Form[PA, I, R],
	b *form.Form[PB, I, R],
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

	na := a.Tree.Nodes[nodeA]
	nb := b.Tree.Nodes[nodeB]

	if !test(boundsOf(a.Frame, na.Bounds), boundsOf(b.Frame, nb.Bounds)) {
		return
	}

	if na.IsLeaf() && nb.IsLeaf() {
		firstA, countA := na.LeafRange()
		firstB, countB := nb.LeafRange()

		for i := int(firstA); i < int(firstA)+int(countA); i++ {
			for j := int(firstB); j < int(firstB)+int(countB); j++ {
				if !test(boundsOf(a.Frame, a.Tree.PrimitiveAABBs[i]), boundsOf(b.Frame, b.Tree.PrimitiveAABBs[j])) {
					continue
				}

				if visit(a.Tree.IDs[i], b.Tree.IDs[j]) {
					aborted.Store(true)
					return
				}
			}
		}

		return
	}

	childrenA := childrenOf[I, R](na, nodeA)
	childrenB := childrenOf[I, R](nb, nodeB)

	tasks := make([]func(), 0, len(childrenA)*len(childrenB))

	for _, ca := range childrenA {
		for _, cb := range childrenB {
			ca, cb := ca, cb
			tasks = append(tasks, func() {
				dualRecurse(a, b, ca, cb, test, visit, abort, aborted, exec, depth+1, cutoff)
			})
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

// DualMod runs a dual-tree search between two mod-trees, combining their
// main and delta halves with the four-way union: main x main, main x
// delta, delta x main, delta x delta, short-circuited on the shared
// abort flag — once any of the four sub-searches aborts, the remaining
// ones are skipped entirely.
func DualMod[PA, PB any, I geom.Index, R geom.Float](
	a *form.ModForm[PA, I, R],
	b *form.ModForm[PB, I, R],
	test PairTest[R],
	visit func(idA, idB I) bool,
	abort func() bool,
	exec *xsync.Executor,
	cutoffDepth int,
) bool {
	pairs := []struct {
		a *form.Form[PA, I, R]
		b *form.Form[PB, I, R]
	}{
		{a.MainForm(), b.MainForm()},
		{a.MainForm(), b.DeltaForm()},
		{a.DeltaForm(), b.MainForm()},
		{a.DeltaForm(), b.DeltaForm()},
	}

	for _, p := range pairs {
		if Dual(p.a, p.b, test, visit, abort, exec, cutoffDepth) {
			return true
		}
	}

	return false
}
