// Package search implements the single-tree, dual-tree, and self-tree
// traversal algorithms over bvh.Tree (via pkg/bvh/form.Form): descend
// wherever a caller-supplied node test admits a node's bounds, visiting
// primitive pairs (or singles) at the leaves. Dual-tree and self-tree
// traversal fork their node-pair split (the cross product of both sides'
// children, or its upper triangle for a self-tree node paired with
// itself) onto an xsync.Executor down to a configurable depth.
package search
