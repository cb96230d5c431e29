package xsync

import (
	"slices"

	"github.com/flier/bvh/pkg/xiter"
)

// LocalVector is a per-worker append-only buffer, conceptually an array of
// Workers() empty vectors. PushBack appends to the caller's worker's
// vector with no synchronization; Merge concatenates the per-worker
// vectors into a single owned slice in worker-id order, preserving
// insertion order within each worker's sub-vector.
//
// A LocalVector is scoped to a single parallel region: callers must not
// retain one across two unrelated ParallelApply/ParallelFor calls unless
// they have merged it first, since nothing clears the buckets between
// regions.
type LocalVector[T any] struct {
	buckets [][]T
}

// NewLocalVector creates a LocalVector with one empty bucket per worker.
func NewLocalVector[T any](workers int) *LocalVector[T] {
	return &LocalVector[T]{buckets: make([][]T, workers)}
}

// PushBack appends val to worker's bucket. Concurrent calls with distinct
// worker ids never touch the same bucket and require no synchronization.
func (v *LocalVector[T]) PushBack(worker int, val T) {
	v.buckets[worker] = append(v.buckets[worker], val)
}

// Len returns the total number of elements pushed across all workers.
func (v *LocalVector[T]) Len() int {
	n := 0
	for _, b := range v.buckets {
		n += len(b)
	}

	return n
}

// Merge concatenates every worker's bucket, in worker-id order, into a
// single freshly allocated slice.
func (v *LocalVector[T]) Merge() []T {
	out := make([]T, 0, v.Len())
	for _, b := range v.buckets {
		out = append(out, b...)
	}

	return out
}

// LocalValue is a per-worker single value, conceptually an array of
// Workers() values initialized to a caller-supplied seed. Get returns a
// pointer to the caller's worker's value for in-place mutation with no
// synchronization; Reduce folds the per-worker values with a caller
// supplied binary operation, which must be associative for the result to
// be deterministic (Reduce does not check this).
type LocalValue[T any] struct {
	values []T
}

// NewLocalValue creates a LocalValue with every worker's slot initialized
// to seed.
func NewLocalValue[T any](workers int, seed T) *LocalValue[T] {
	values := make([]T, workers)
	for i := range values {
		values[i] = seed
	}

	return &LocalValue[T]{values: values}
}

// Get returns a pointer to worker's value.
func (v *LocalValue[T]) Get(worker int) *T {
	return &v.values[worker]
}

// Reduce folds the Workers() values with op, in worker-id order.
func (v *LocalValue[T]) Reduce(op func(a, b T) T) T {
	return xiter.Reduce(slices.Values(v.values), op)
}
