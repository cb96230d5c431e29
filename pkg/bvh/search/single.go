package search

import (
	"github.com/timandy/routine"

	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
)

// stackTLS caches the LIFO work stack's backing array per goroutine, so
// repeated single-tree queries issued from the same goroutine (the common
// case for a per-frame broad-phase loop) reuse one buffer instead of
// allocating a fresh stack on every call. The element type is plain int
// node indices, shared by every instantiation of Single regardless of
// P, I or R.
var stackTLS = routine.NewThreadLocal[[]int]()

func acquireStack() []int {
	if s := stackTLS.Get(); s != nil {
		stackTLS.Set(nil)

		return s[:0]
	}

	return make([]int, 0, 64)
}

func releaseStack(s []int) {
	stackTLS.Set(s)
}

// Single runs a single-tree search over f: starting from the root, a node
// is descended (or, for a leaf, entered) exactly when test admits its
// bounds, and inside an entered leaf a primitive is accepted when test
// also admits its own AABB. visit is called once per accepted primitive,
// in storage order within each leaf; returning true from visit aborts the
// search early, and Single reports whether that happened.
//
// Traversal is iterative, driven by an explicit LIFO stack local to this
// call, rather than recursive: single-tree queries are expected to run on
// a hot path (e.g. per-frame broad-phase queries) where avoiding a Go
// call-stack frame per tree level matters more than the clarity a
// recursive walk would offer. The stack's backing array is goroutine-local
// and reused across calls, so only the first query issued by a given
// goroutine actually allocates it.
func Single[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	test NodeTest[R],
	visit func(id I) bool,
) (aborted bool) {
	if f.Tree.Empty() {
		return false
	}

	stack := append(acquireStack(), f.Tree.Root())
	defer func() { releaseStack(stack) }()

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := f.Tree.Nodes[idx]

		if !test(boundsOf(f.Frame, n.Bounds)) {
			continue
		}

		if n.IsLeaf() {
			first, count := n.LeafRange()

			for i := int(first); i < int(first)+int(count); i++ {
				if !test(boundsOf(f.Frame, f.Tree.PrimitiveAABBs[i])) {
					continue
				}

				if visit(f.Tree.IDs[i]) {
					return true
				}
			}

			continue
		}

		first, count := int(n.FirstChild()), int(n.ChildCount())
		for i := 0; i < count; i++ {
			stack = append(stack, first+i)
		}
	}

	return false
}

// SingleMod runs a single-tree search over a mod-tree: Main is searched
// first, then Delta, with the caller-visible abort returning as soon as
// either run aborts.
func SingleMod[P any, I geom.Index, R geom.Float](
	f *form.ModForm[P, I, R],
	test NodeTest[R],
	visit func(id I) bool,
) bool {
	if Single(f.MainForm(), test, visit) {
		return true
	}

	return Single(f.DeltaForm(), test, visit)
}
