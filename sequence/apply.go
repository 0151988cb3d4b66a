package sequence

import "github.com/sunxfancy/graphbolt"

func applySerial[T any](s, e int, apply func(v T, i int), done func() bool, g graphbolt.Accessor[T]) {
	for j := s; j < e; j++ {
		if done() {
			return
		}
		apply(g(j), j)
	}
}

// Apply invokes apply for every element of the virtual sequence g over
// [s, e), blocks running in parallel and each block walking its elements in
// index order. Before each element, done is consulted; once it reports
// true, the calling block stops early. There is no cross-block
// cancellation: blocks observe done independently, so elements of other
// blocks may still be applied after done first reports true. done is
// invoked concurrently and must be safe for that.
func Apply[T any](s, e int, apply func(v T, i int), done func() bool, g graphbolt.Accessor[T]) {
	l := nblocks(e-s, scanBlockSize)
	if l <= 1 {
		applySerial(s, e, apply, done, g)
		return
	}
	blockedFor(s, e, scanBlockSize, func(_, low, high int) {
		applySerial(low, high, apply, done, g)
	})
}

// ApplySlice is Apply over a materialized slice.
func ApplySlice[T any](a []T, apply func(v T, i int), done func() bool) {
	Apply(0, len(a), apply, done, func(i int) T { return a[i] })
}
