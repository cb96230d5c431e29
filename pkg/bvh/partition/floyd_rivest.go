package partition

import "math"

// FloydRivest implements the Floyd-Rivest selection algorithm: it samples
// a subrange to estimate tight bounds around the target rank before
// partitioning, which in practice beats plain quickselect by a wide
// margin on large ranges at the cost of more bookkeeping on small ones.
type FloydRivest[T any] struct{}

// floydRivestSampleThreshold is the range size above which sampling pays
// for itself; the original paper uses 600, tuned down here for arrays
// far smaller than the paper's target (a single BVH node's primitives).
const floydRivestSampleThreshold = 20

// Select implements Strategy.
func (fr FloydRivest[T]) Select(s []T, k int, less func(a, b T) bool) {
	fr.selectRange(s, 0, len(s)-1, k, less)
}

// selectRange is the Floyd-Rivest recursion: narrow [left,right] toward a
// sampled window around k, then three-way partition the (un-narrowed)
// range around s[k], shrinking left/right toward k until they meet.
func (fr FloydRivest[T]) selectRange(s []T, left, right, k int, less func(a, b T) bool) {
	for right > left {
		if right-left > floydRivestSampleThreshold {
			n := float64(right - left + 1)
			i := float64(k - left + 1)
			z := math.Log(n)
			sampleSize := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*sampleSize*(n-sampleSize)/n)

			if i < n/2 {
				sd = -sd
			}

			newLeft := maxInt(left, k-int(i*sampleSize/n+sd))
			newRight := minInt(right, k+int((n-i)*sampleSize/n+sd))

			fr.selectRange(s, newLeft, newRight, k, less)
		}

		t := s[k]
		i, j := left, right
		s[left], s[k] = s[k], s[left]

		if less(t, s[right]) {
			s[left], s[right] = s[right], s[left]
		}

		for i < j {
			s[i], s[j] = s[j], s[i]
			i++
			j--

			for less(s[i], t) {
				i++
			}
			for less(t, s[j]) {
				j--
			}
		}

		if equalBy(s[left], t, less) {
			s[left], s[j] = s[j], s[left]
		} else {
			j++
			s[j], s[right] = s[right], s[j]
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func equalBy[T any](a, b T, less func(x, y T) bool) bool {
	return !less(a, b) && !less(b, a)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
