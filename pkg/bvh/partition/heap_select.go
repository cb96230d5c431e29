package partition

import "container/heap"

// HeapSelect finds the k-th smallest element by maintaining a max-heap
// over the indices of the k+1 smallest elements seen so far, evicting
// the current largest whenever a smaller candidate arrives. Good when k
// is small relative to len(s), since cost is O(n log k) rather than the
// other strategies' O(n) average or worst case over the whole range;
// poor when k sits near the middle of a large range.
type HeapSelect[T any] struct{}

// Select implements Strategy.
func (HeapSelect[T]) Select(s []T, k int, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}

	h := &maxIndexHeap[T]{s: s, less: less}

	for i := range s {
		if h.Len() <= k {
			heap.Push(h, i)
		} else if less(s[i], s[h.idx[0]]) {
			h.idx[0] = i
			heap.Fix(h, 0)
		}
	}

	selected := make([]bool, len(s))
	for _, i := range h.idx {
		selected[i] = true
	}

	tmp := make([]T, len(s))
	front, back := 0, k+1

	for i, v := range s {
		if selected[i] {
			tmp[front] = v
			front++
		} else {
			tmp[back] = v
			back++
		}
	}

	copy(s, tmp)
	insertionSort(s, 0, k+1, less)
}

// maxIndexHeap is a container/heap.Interface over indices into s, with
// Less inverted so the root index always names the current largest
// retained element.
type maxIndexHeap[T any] struct {
	s    []T
	idx  []int
	less func(a, b T) bool
}

func (h *maxIndexHeap[T]) Len() int { return len(h.idx) }
func (h *maxIndexHeap[T]) Less(i, j int) bool {
	return h.less(h.s[h.idx[j]], h.s[h.idx[i]])
}
func (h *maxIndexHeap[T]) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *maxIndexHeap[T]) Push(x interface{}) {
	h.idx = append(h.idx, x.(int))
}
func (h *maxIndexHeap[T]) Pop() interface{} {
	old := h.idx
	n := len(old)
	v := old[n-1]
	h.idx = old[:n-1]
	return v
}
