package partition

// Strategy selects the k-th smallest element of s in place, according to
// less, rearranging s so that s[k] lands in its sorted position with
// every element before it no greater and every element after it no less.
//
// Implementations must tolerate k == 0, k == len(s)-1, and len(s) <= 1.
type Strategy[T any] interface {
	Select(s []T, k int, less func(a, b T) bool)
}

// insertionSort sorts s[lo:hi] in place. Used by every strategy below as
// the base case once a range gets small enough that partitioning
// overhead no longer pays for itself.
func insertionSort[T any](s []T, lo, hi int, less func(a, b T) bool) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// medianOfThreeIndex returns whichever of a, b, c indexes the median
// element by less, without moving anything.
func medianOfThreeIndex[T any](s []T, a, b, c int, less func(x, y T) bool) int {
	if less(s[a], s[b]) {
		if less(s[b], s[c]) {
			return b
		}
		if less(s[a], s[c]) {
			return c
		}
		return a
	}

	if less(s[a], s[c]) {
		return a
	}
	if less(s[b], s[c]) {
		return c
	}
	return b
}

// lomutoPartition partitions s[lo:hi] around s[pivotIdx], returning the
// pivot's final index. Elements before the returned index compare less
// than the pivot; elements at or after compare greater-or-equal.
func lomutoPartition[T any](s []T, lo, hi, pivotIdx int, less func(a, b T) bool) int {
	pivot := s[pivotIdx]
	s[pivotIdx], s[hi-1] = s[hi-1], s[pivotIdx]

	store := lo
	for i := lo; i < hi-1; i++ {
		if less(s[i], pivot) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}

	s[store], s[hi-1] = s[hi-1], s[store]

	return store
}
