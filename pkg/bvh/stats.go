package bvh

// Stats reports a snapshot of a tree's shape, gathered by walking its
// node array once. Grounded on the example pack's Graph.Stats()
// introspection accessor: scan the backing catalog once and report
// derived counts rather than maintaining running counters on every
// mutation.
type Stats struct {
	NodeCount      int
	LeafCount      int
	InnerCount     int
	PrimitiveCount int
	MaxDepth       int
}

// Stats walks t's node array and reports its current shape. O(NodeCount).
func (t *Tree[P, I, R]) Stats() Stats {
	var s Stats

	if len(t.Nodes) == 0 {
		return s
	}

	s.PrimitiveCount = len(t.IDs)

	var walk func(idx int, depth int)
	walk = func(idx int, depth int) {
		if idx < 0 || idx >= len(t.Nodes) {
			return
		}

		n := t.Nodes[idx]
		if n.IsEmpty() {
			return
		}

		s.NodeCount++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}

		if n.IsLeaf() {
			s.LeafCount++
			return
		}

		s.InnerCount++

		first, count := int(n.FirstChild()), int(n.ChildCount())
		for i := 0; i < count; i++ {
			walk(first+i, depth+1)
		}
	}

	walk(0, 0)

	return s
}
