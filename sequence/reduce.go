package sequence

import (
	"fmt"

	"github.com/sunxfancy/graphbolt"
	"github.com/sunxfancy/graphbolt/mem"
)

// reduceSerial folds [s, e) in strictly increasing index order, seeded by
// the first element. The range must be non-empty.
func reduceSerial[T any](s, e int, f graphbolt.Combiner[T], g graphbolt.Accessor[T]) T {
	r := g(s)
	for j := s + 1; j < e; j++ {
		r = f(r, g(j))
	}
	return r
}

// Reduce folds the virtual sequence g over [s, e) with the associative
// combiner f. The result equals the sequential left-to-right fold of the
// sequence under f, regardless of the block size used internally: elements
// within a block are combined in index order, and the per-block partial
// results are themselves combined in block order by a recursive reduction.
//
// Reduce panics on an empty range; with no identity element supplied there
// is no well-defined result. Use MapReduce or a scan when a zero is
// available.
func Reduce[T any](s, e int, f graphbolt.Combiner[T], g graphbolt.Accessor[T]) T {
	if e <= s {
		panic(fmt.Sprintf("sequence: reduce over empty range %v:%v", s, e))
	}
	l := nblocks(e-s, scanBlockSize)
	if l <= 1 {
		return reduceSerial(s, e, f, g)
	}
	sums := mem.Alloc[T](l)
	blockedFor(s, e, scanBlockSize, func(i, low, high int) {
		sums[i] = reduceSerial(low, high, f, g)
	})
	return Reduce(0, l, f, func(i int) T { return sums[i] })
}

// ReduceSlice folds the slice a with the associative combiner f. It panics
// if a is empty.
func ReduceSlice[T any](a []T, f graphbolt.Combiner[T]) T {
	return Reduce(0, len(a), f, func(i int) T { return a[i] })
}

// MapReduce applies g to every element of a and folds the mapped values
// with the associative combiner f, seeded by zero. An empty slice returns
// zero.
func MapReduce[In, Out any](a []In, f graphbolt.Combiner[Out], g func(In) Out, zero Out) Out {
	if len(a) == 0 {
		return zero
	}
	return f(zero, Reduce(0, len(a), f, func(i int) Out { return g(a[i]) }))
}

// PlusReduce sums the slice a. An empty slice sums to zero.
func PlusReduce[T graphbolt.Number](a []T) T {
	if len(a) == 0 {
		var zero T
		return zero
	}
	return ReduceSlice(a, func(x, y T) T { return x + y })
}

// SumFlags counts the true entries of flags, using the batched per-block
// count. An empty slice counts to zero.
func SumFlags(flags []bool) int {
	n := len(flags)
	l := nblocks(n, packBlockSize)
	if l <= 1 {
		return countFlagsSerial(flags)
	}
	sums := mem.Alloc[int](l)
	blockedFor(0, n, packBlockSize, func(i, low, high int) {
		sums[i] = countFlagsSerial(flags[low:high])
	})
	return PlusReduce(sums)
}
