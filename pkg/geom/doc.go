// Package geom provides the fixed-dimension scalar and linear-algebra
// scaffolding the BVH engine is built on: vectors and points, axis-aligned
// bounding boxes (AABBs), affine transformations, frames (a transformation
// plus its lazily cached inverse), rays, and planes.
//
// Every type here is a plain value type (arithmetic and dot/cross/length
// operators only); geom knows nothing about trees, primitives, or
// traversal. Dimension D is a runtime int rather than a type parameter,
// since Go generics cannot parameterize array length by a type argument:
// values are backed by a fixed-capacity [MaxDim]R array sliced to D,
// which keeps Vector and Point comparable, allocation-free value types
// for the 2D/3D cases this engine is exercised against while still
// supporting any D up to MaxDim.
package geom

// MaxDim is the largest dimension a Vector, Point, AABB, or
// Transformation in this package can represent.
const MaxDim = 8
