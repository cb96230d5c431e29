// Package xsync provides the concurrency primitives that back every
// parallel traversal and build operation in this module: a fixed-size
// worker pool, per-worker accumulators (LocalVector, LocalValue), parallel
// array operations (ParallelApply, ParallelFor, ParallelCopy, ParallelIota),
// and a lock-free "update if strictly better" cell (CASBest) used to track
// running best-so-far metrics during parallel nearness search.
//
// None of the types here know anything about geometry or trees; they are
// the same kind of small, composable concurrency building blocks a caller
// would reach for when parallelizing any array-shaped workload.
package xsync
