package raycast

import (
	"github.com/flier/bvh/pkg/bvh/form"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/opt"
)

// Config bounds the parametric range of a ray cast.
type Config[R geom.Float] struct {
	MinT, MaxT R
}

// Hit is the closest primitive intersection found along a ray.
type Hit[I geom.Index, R geom.Float] struct {
	ID I
	T  R
}

// Cast finds the closest primitive ray intersects within cfg's range.
// hitFn reports whether ray actually hits a given primitive and, if so,
// at what parametric distance; Cast keeps only the smallest such t seen
// and uses it as a shrinking max_t to prune later node and primitive
// tests.
//
// Traversal is recursive and single-threaded: at every inner node the
// children are visited in near-to-far order, relative to the ray's
// direction sign on that node's split axis, maximizing the chance max_t
// has already shrunk by the time the farthest siblings are slab-tested.
func Cast[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	ray geom.Ray[R],
	cfg Config[R],
	hitFn func(ray geom.Ray[R], id I) (t R, ok bool),
) opt.Option[Hit[I, R]] {
	if f.Tree.Empty() {
		return opt.None[Hit[I, R]]()
	}

	localRay := ray

	if !f.Frame.IsIdentity() {
		if inv, err := f.Frame.Inverse(); err == nil {
			localRay = ray.Transform(inv)
		}
	}

	invDir := reciprocal(localRay.Direction)

	state := &castState[I, R]{maxT: cfg.MaxT}

	castRecurse(f, localRay, invDir, cfg.MinT, hitFn, state, f.Tree.Root())

	return state.hit
}

// reciprocal returns the componentwise reciprocal of v. IEEE 754 division
// maps a zero component to +Inf or -Inf according to its sign without any
// special-casing, which is exactly the epsilon-safe behavior the slab
// test needs for rays parallel to an axis.
func reciprocal[R geom.Float](v geom.Vector[R]) geom.Vector[R] {
	dim := v.Dim()
	comps := make([]R, dim)

	for i := 0; i < dim; i++ {
		comps[i] = 1 / v.At(i)
	}

	return geom.NewVector(dim, comps...)
}

// slabTest reports whether ray, using the precomputed invDir, enters
// bounds at or before it exits, within [minT, maxT].
func slabTest[R geom.Float](bounds geom.AABB[R], ray geom.Ray[R], invDir geom.Vector[R], minT, maxT R) bool {
	tEntry, tExit := minT, maxT

	for i := 0; i < bounds.Dim(); i++ {
		inv := invDir.At(i)

		t0 := (bounds.Min.At(i) - ray.Origin.At(i)) * inv
		t1 := (bounds.Max.At(i) - ray.Origin.At(i)) * inv

		if inv < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tEntry {
			tEntry = t0
		}

		if t1 < tExit {
			tExit = t1
		}

		if tEntry > tExit {
			return false
		}
	}

	return true
}

type castState[I geom.Index, R geom.Float] struct {
	maxT R
	hit  opt.Option[Hit[I, R]]
}

func castRecurse[P any, I geom.Index, R geom.Float](
	f *form.Form[P, I, R],
	ray geom.Ray[R],
	invDir geom.Vector[R],
	minT R,
	hitFn func(ray geom.Ray[R], id I) (t R, ok bool),
	state *castState[I, R],
	nodeIdx int,
) {
	n := f.Tree.Nodes[nodeIdx]

	if !slabTest(n.Bounds, ray, invDir, minT, state.maxT) {
		return
	}

	if n.IsLeaf() {
		first, count := n.LeafRange()

		for i := int(first); i < int(first)+int(count); i++ {
			id := f.Tree.IDs[i]

			t, ok := hitFn(ray, id)
			if ok && t >= minT && t <= state.maxT {
				state.maxT = t
				state.hit = opt.Some(Hit[I, R]{ID: id, T: t})
			}
		}

		return
	}

	// children are laid out in split-axis order (group 0 holds the
	// smallest axis coordinates); visiting them near-side-first relative
	// to the ray's direction sign means whichever child narrows max_t
	// first is visited first, maximizing the chance later children get
	// pruned by the slab test before their subtrees are entered.
	first, count := int(n.FirstChild()), int(n.ChildCount())

	if invDir.At(int(n.Axis)) < 0 {
		for i := count - 1; i >= 0; i-- {
			castRecurse(f, ray, invDir, minT, hitFn, state, first+i)
		}
	} else {
		for i := 0; i < count; i++ {
			castRecurse(f, ray, invDir, minT, hitFn, state, first+i)
		}
	}
}
