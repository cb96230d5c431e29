// Package modtree implements the incremental "main + delta" maintenance
// strategy for a bvh.Tree under primitive churn: rather than rebuilding
// the whole tree on every insert/remove batch, a ModTree compacts dead
// entries out of its (expensive, well-balanced) main tree in place and
// rebuilds only a small (cheap) delta tree over the newly inserted
// primitives. Search algorithms that know about ModTree visit both trees
// and combine results, amortizing the cost of a full rebuild across many
// update batches.
package modtree
