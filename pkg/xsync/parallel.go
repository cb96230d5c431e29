package xsync

import "sync"

// ParallelApply partitions items into contiguous blocks, one per worker,
// and calls f(worker, item) for every element. f must be safe to call
// concurrently; ParallelApply makes no ordering guarantee across workers.
func ParallelApply[T any](e *Executor, items []T, f func(worker int, item T)) {
	ParallelFor(e, len(items), func(worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			f(worker, items[i])
		}
	})
}

// ParallelFor splits the index range [0, n) into at most Workers()
// contiguous blocks and runs f(worker, lo, hi) for each non-empty block,
// one per goroutine, blocking until every block has completed.
//
// Blocks are assigned to workers in order, so the same (worker, lo, hi)
// triples are produced for the same (n, Workers()) pair regardless of
// scheduling order; only the relative completion order of blocks is
// unspecified.
func ParallelFor(e *Executor, n int, f func(worker, lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := e.Workers()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		f(0, 0, n)
		return
	}

	block := (n + workers - 1) / workers

	var wg sync.WaitGroup

	for worker := 0; worker < workers; worker++ {
		lo := worker * block
		hi := lo + block
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)

		go func(worker, lo, hi int) {
			defer wg.Done()

			f(worker, lo, hi)
		}(worker, lo, hi)
	}

	wg.Wait()
}

// ParallelCopy copies src into dst in parallel blocks. dst must have
// length >= len(src).
func ParallelCopy[T any](e *Executor, dst, src []T) {
	ParallelFor(e, len(src), func(_, lo, hi int) {
		copy(dst[lo:hi], src[lo:hi])
	})
}

// Integer is the constraint satisfied by index types ParallelIota can fill.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ParallelIota fills dst with the identity permutation 0..len(dst) in
// parallel, as required by Tree.Build to seed its ids array.
func ParallelIota[I Integer](e *Executor, dst []I) {
	ParallelFor(e, len(dst), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = I(i)
		}
	})
}
