package nearness

import "github.com/flier/bvh/pkg/geom"

// MetricPoint is a leaf_metric result for the single-tree case: the
// exact distance-like metric between a query and one primitive, plus the
// point on (or representing) that primitive realizing it.
type MetricPoint[R geom.Float] struct {
	Metric R
	Point  geom.Vector[R]
}

// MetricPointPair is a leaf_metric result for the dual-tree case.
type MetricPointPair[R geom.Float] struct {
	Metric         R
	PointA, PointB geom.Vector[R]
}

// AABBMetric is a squared-distance-like lower bound from a query to a
// node's region, used to order and prune the single-tree search.
type AABBMetric[R geom.Float] func(bounds geom.AABB[R]) R

// LeafMetric computes the exact candidate distance between a query and a
// specific primitive.
type LeafMetric[I geom.Index, R geom.Float] func(id I) MetricPoint[R]

// AABBPairMetric returns a lower bound min_d2 on the distance between any
// pair drawn from a's and b's regions, and min_max_d2, an upper bound on
// the best achievable pair distance, used to prune dual-tree nearness.
type AABBPairMetric[R geom.Float] func(a, b geom.AABB[R]) (minD2, minMaxD2 R)

// LeafPairMetric computes the exact candidate distance between two
// specific primitives, one from each tree.
type LeafPairMetric[I geom.Index, R geom.Float] func(idA, idB I) MetricPointPair[R]

// Result is a single-tree nearness hit.
type Result[I geom.Index, R geom.Float] struct {
	ID     I
	Metric R
	Point  geom.Vector[R]
}

// PairResult is a dual-tree nearness hit.
type PairResult[I geom.Index, R geom.Float] struct {
	IDA, IDB       I
	Metric         R
	PointA, PointB geom.Vector[R]
}
