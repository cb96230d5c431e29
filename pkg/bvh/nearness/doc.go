// Package nearness implements best-only and k-nearest proximity queries
// against one bvh.Tree (single-tree nearness, nearest primitive to a
// query) or between two (dual-tree nearness, nearest primitive pair).
// Single-tree nearness is offered in a priority-queue best-first variant
// and a sort-by-level stack variant; dual-tree nearness has the
// priority-queue variant only. k-nearest replaces the running best with
// a bounded max-heap. A parallel dual-tree variant fans the search out
// onto an xsync.Executor, tracking the shared best metric through
// xsync.CASBest and per-worker candidates through xsync.LocalValue.
package nearness
