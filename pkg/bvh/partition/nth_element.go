package partition

// NthElement is the default strategy: a Hoare-style quickselect using a
// median-of-three pivot, falling back to insertion sort below a small
// threshold. Expected linear time, quadratic worst case on adversarial
// input — the strategy to reach for when input is not attacker
// controlled and simplicity matters more than a worst-case guarantee.
type NthElement[T any] struct{}

const nthElementInsertionThreshold = 16

// Select implements Strategy.
func (NthElement[T]) Select(s []T, k int, less func(a, b T) bool) {
	lo, hi := 0, len(s)

	for hi-lo > 1 {
		if hi-lo <= nthElementInsertionThreshold {
			insertionSort(s, lo, hi, less)
			return
		}

		mid := lo + (hi-lo)/2
		pivotIdx := medianOfThreeIndex(s, lo, mid, hi-1, less)

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
