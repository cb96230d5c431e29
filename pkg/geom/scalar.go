package geom

// Float is the scalar type R: a configurable floating-point type,
// typically 32- or 64-bit IEEE-754.
//
// This mirrors github.com/flier/bvh/pkg/xiter.Number, narrowed to the
// floating-point cases, since distances and metrics in this package are
// never meaningfully represented by an integer type.
type Float interface {
	~float32 | ~float64
}

// Index is the index type I: a configurable signed integer type wide
// enough to count all primitives, nodes, and delta entries in a tree.
type Index interface {
	~int32 | ~int64
}
