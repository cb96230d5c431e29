// Package bvh implements a parallel bounding-volume hierarchy over
// axis-aligned bounding boxes in N-dimensional space: Build constructs a
// Tree from a slice of opaque primitives plus an AABB accessor, splitting
// each range into up to cfg.InnerSize contiguous groups along the longest
// axis using a pluggable pkg/bvh/partition.Strategy, and forking the
// recursive build for each group onto a pkg/xsync.Executor down to a
// configurable depth. Each range split reuses its position/AABB/ID scratch
// buffers from a pkg/xsync.Pool shared across the whole build.
package bvh
