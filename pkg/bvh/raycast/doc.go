// Package raycast implements single-threaded ray casting against a
// bvh.Tree (via pkg/bvh/form.Form): a shrinking max_t bound prunes both
// node and primitive tests as better hits are found, and children are
// visited near-side-first so max_t shrinks as early as possible.
package raycast
