package partition

import (
	"github.com/dolthub/maphash"
)

// MedianOf3Random defends against adversarial, already-partitioned input
// by drawing its three sample indices from a hash of a per-call counter
// rather than fixed offsets, using dolthub/maphash's generic Hasher for
// the per-process-random seed it already carries. The result is a
// non-adaptive pivot choice: an adversary who can see the algorithm
// cannot predict which elements will be sampled without knowing the
// process's seed.
type MedianOf3Random[T any] struct{}

const medianOf3RandomInsertionThreshold = 16

var medianOf3RandomHasher = maphash.NewHasher[uint64]()

// Select implements Strategy.
func (MedianOf3Random[T]) Select(s []T, k int, less func(a, b T) bool) {
	lo, hi := 0, len(s)
	var counter uint64

	for hi-lo > 1 {
		if hi-lo <= medianOf3RandomInsertionThreshold {
			insertionSort(s, lo, hi, less)
			return
		}

		n := hi - lo
		a := lo + int(nextRandomIndex(&counter)%uint64(n))
		b := lo + int(nextRandomIndex(&counter)%uint64(n))
		c := lo + int(nextRandomIndex(&counter)%uint64(n))

		pivotIdx := medianOfThreeIndex(s, a, b, c, less)
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

// nextRandomIndex hashes and advances counter, yielding a new
// pseudo-random value seeded by the process-wide random seed
// maphash.NewHasher draws at startup.
func nextRandomIndex(counter *uint64) uint64 {
	*counter++
	return medianOf3RandomHasher.Hash(*counter)
}
