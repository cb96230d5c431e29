package partition

// MedianOfMedians is the classic linear-worst-case selection algorithm:
// split the range into groups of 5, find each group's median by
// insertion sort, recursively find the median of those medians, and use
// it as the partition pivot. Guarantees O(n) time even on adversarial
// input, at a higher constant factor than quickselect-style strategies.
type MedianOfMedians[T any] struct{}

// Select implements Strategy.
func (mm MedianOfMedians[T]) Select(s []T, k int, less func(a, b T) bool) {
	mm.selectRange(s, 0, len(s), k, less)
}

// selectRange operates on the half-open range [lo, hi) of s.
func (mm MedianOfMedians[T]) selectRange(s []T, lo, hi, k int, less func(a, b T) bool) {
	for {
		n := hi - lo
		if n <= 1 {
			return
		}
		if n <= 5 {
			insertionSort(s, lo, hi, less)
			return
		}

		pivotIdx := mm.medianOfMediansPivot(s, lo, hi, less)
		p := lomutoPartition(s, lo, hi, pivotIdx, less)

		switch {
		case k < p:
			hi = p
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// medianOfMediansPivot groups s[lo:hi] into blocks of 5, sorts each block
// in place, moves each block's median to the front of a scratch prefix,
// and recursively selects the median of those medians.
func (mm MedianOfMedians[T]) medianOfMediansPivot(s []T, lo, hi int, less func(a, b T) bool) int {
	write := lo

	for start := lo; start < hi; start += 5 {
		end := start + 5
		if end > hi {
			end = hi
		}

		insertionSort(s, start, end, less)

		medianOffset := (end - start) / 2
		s[write], s[start+medianOffset] = s[start+medianOffset], s[write]
		write++
	}

	mid := lo + (write-lo)/2
	mm.selectRange(s, lo, write, mid, less)

	return mid
}
