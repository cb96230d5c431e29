package geom

// AABB is an axis-aligned bounding box: the pair (Min, Max) of D-vectors,
// with the invariant Min[i] <= Max[i] on every axis for any AABB inserted
// into a tree. Empty AABBs are never produced by the build path; this
// package does not guard against one being constructed by hand.
type AABB[R Float] struct {
	Min, Max Vector[R]
}

// NewAABB builds an AABB from min and max corners. Does not validate
// min <= max; callers that need that invariant checked should do so
// themselves, per spec's "caller bug, undefined behavior" error policy
// for degenerate AABBs.
func NewAABB[R Float](min, max Vector[R]) AABB[R] {
	return AABB[R]{Min: min, Max: max}
}

// Dim returns the AABB's dimension.
func (b AABB[R]) Dim() int { return b.Min.Dim() }

// Center returns (Min+Max)/2.
func (b AABB[R]) Center() Vector[R] {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Diagonal returns Max-Min.
func (b AABB[R]) Diagonal() Vector[R] {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis index along which Diagonal() is largest,
// the split axis spec's tree build chooses at every interior node.
func (b AABB[R]) LongestAxis() int {
	diag := b.Diagonal()

	axis := 0
	best := diag.At(0)

	for i := 1; i < diag.Dim(); i++ {
		if diag.At(i) > best {
			best = diag.At(i)
			axis = i
		}
	}

	return axis
}

// Union returns the smallest AABB enclosing both b and o.
func (b AABB[R]) Union(o AABB[R]) AABB[R] {
	dim := b.Dim()
	min := Vector[R]{}
	max := Vector[R]{}

	for i := 0; i < dim; i++ {
		lo := b.Min.At(i)
		if o.Min.At(i) < lo {
			lo = o.Min.At(i)
		}

		hi := b.Max.At(i)
		if o.Max.At(i) > hi {
			hi = o.Max.At(i)
		}

		min = min.Set(i, lo)
		max = max.Set(i, hi)
	}

	min.setDim(dim)
	max.setDim(dim)

	return AABB[R]{Min: min, Max: max}
}

// setDim is an unexported helper so Union (and other methods that build a
// Vector component-by-component via Set) can fix up dim once, rather than
// threading it through NewVector and re-copying every component.
func (v *Vector[R]) setDim(dim int) { v.dim = dim }

// Contains reports whether p lies within b on every axis (inclusive).
func (b AABB[R]) Contains(p Vector[R]) bool {
	for i := 0; i < b.Dim(); i++ {
		if p.At(i) < b.Min.At(i) || p.At(i) > b.Max.At(i) {
			return false
		}
	}

	return true
}

// Intersects reports whether b and o overlap on every axis.
func (b AABB[R]) Intersects(o AABB[R]) bool {
	for i := 0; i < b.Dim(); i++ {
		if b.Max.At(i) < o.Min.At(i) || o.Max.At(i) < b.Min.At(i) {
			return false
		}
	}

	return true
}

// DistSq returns the squared distance between the closest points of b and
// o; zero if they overlap on every axis.
func (b AABB[R]) DistSq(o AABB[R]) R {
	var sum R

	for i := 0; i < b.Dim(); i++ {
		var d R
		if b.Max.At(i) < o.Min.At(i) {
			d = o.Min.At(i) - b.Max.At(i)
		} else if o.Max.At(i) < b.Min.At(i) {
			d = b.Min.At(i) - o.Max.At(i)
		}

		sum += d * d
	}

	return sum
}

// MinMaxDistSq returns an upper bound on the squared distance between the
// closest pair of points drawn one from b and one from o.
//
// The value returned is the squared distance between the two farthest
// points of b and o (per axis, the larger of |b.Max-o.Min| and
// |o.Max-b.Min|). Any point inside b and any point inside o are at most
// that far apart, so whatever primitives the two boxes enclose, their
// nearest pair is bounded from above by it and pruning stays sound.
// This is looser than the classical per-axis corner-combination bound,
// but it is simple to get right and cheap to compute.
func (b AABB[R]) MinMaxDistSq(o AABB[R]) R {
	var sum R

	for i := 0; i < b.Dim(); i++ {
		d := absR(b.Max.At(i) - o.Min.At(i))
		if e := absR(o.Max.At(i) - b.Min.At(i)); e > d {
			d = e
		}

		sum += d * d
	}

	return sum
}

func absR[R Float](v R) R {
	if v < 0 {
		return -v
	}

	return v
}

// Transform returns the smallest AABB enclosing t applied to every corner
// of b. Implemented via Arvo's method (transform the box's center and
// half-extent directly from the matrix rows) so cost is O(D^2) rather
// than enumerating all 2^D corners.
func (b AABB[R]) Transform(t Transformation[R]) AABB[R] {
	dim := b.Dim()
	center := b.Center()
	half := b.Diagonal().Scale(0.5)

	newCenter := t.TransformPoint(center)

	newHalf := Vector[R]{}
	newHalf.setDim(dim)

	for i := 0; i < dim; i++ {
		var extent R
		for j := 0; j < dim; j++ {
			extent += absR(t.At(i, j)) * half.At(j)
		}

		newHalf = newHalf.Set(i, extent)
	}

	return AABB[R]{
		Min: newCenter.Sub(newHalf),
		Max: newCenter.Add(newHalf),
	}
}
