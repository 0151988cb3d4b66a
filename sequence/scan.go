package sequence

import (
	"fmt"

	"github.com/sunxfancy/graphbolt"
	"github.com/sunxfancy/graphbolt/mem"
)

// scanSerial computes a strictly serial scan of [s, e) into out, seeded by
// zero, and returns the total. In exclusive mode, out[i] is written before
// element i is folded in; in inclusive mode it is written after. back walks
// the range from its high end to its low end.
func scanSerial[T any](
	out []T, s, e int,
	f graphbolt.Combiner[T], g graphbolt.Accessor[T],
	zero T, inclusive, back bool,
) T {
	r := zero
	if inclusive {
		if back {
			for i := e - 1; i >= s; i-- {
				r = f(r, g(i))
				out[i] = r
			}
		} else {
			for i := s; i < e; i++ {
				r = f(r, g(i))
				out[i] = r
			}
		}
	} else {
		if back {
			for i := e - 1; i >= s; i-- {
				t := g(i)
				out[i] = r
				r = f(r, t)
			}
		} else {
			for i := s; i < e; i++ {
				t := g(i)
				out[i] = r
				r = f(r, t)
			}
		}
	}
	return r
}

// Scan computes a parallel prefix combination of the virtual sequence g
// over [s, e), writing one output per index into out and returning the
// total combination over the whole range regardless of mode.
//
// With inclusive false, out[i] is the combination of zero and all elements
// with index < i, in original index order, for every i; with inclusive
// true, element i is included. With back true, the scan runs from the high
// end of the range to the low end, mirroring the forward scan with the
// index direction flipped.
//
// Two parallel phases, separated by barriers: each block is first folded
// serially into a per-block sums array; the sums array is scanned
// exclusively by recursion to obtain each block's prefix; each block then
// serially re-walks its elements seeded by its prefix. Small inputs are
// handled by a fully serial scan.
//
// An empty range returns zero and writes nothing. Scan panics if out is
// too short to hold the scanned range.
func Scan[T any](
	out []T, s, e int,
	f graphbolt.Combiner[T], g graphbolt.Accessor[T],
	zero T, inclusive, back bool,
) T {
	n := e - s
	if n <= 0 {
		return zero
	}
	if len(out) < e {
		panic(fmt.Sprintf("sequence: scan output length %v shorter than range %v:%v", len(out), s, e))
	}
	l := nblocks(n, scanBlockSize)
	if l <= 2 {
		return scanSerial(out, s, e, f, g, zero, inclusive, back)
	}
	sums := mem.Alloc[T](l)
	blockedFor(s, e, scanBlockSize, func(i, low, high int) {
		sums[i] = reduceSerial(low, high, f, g)
	})
	total := Scan(sums, 0, l, f, func(i int) T { return sums[i] }, zero, false, back)
	blockedFor(s, e, scanBlockSize, func(i, low, high int) {
		scanSerial(out, low, high, f, g, sums[i], inclusive, back)
	})
	return total
}

// ScanSlice computes the exclusive forward scan of in into out and returns
// the total. in and out may be the same slice. It panics if out is shorter
// than in.
func ScanSlice[T any](in, out []T, f graphbolt.Combiner[T], zero T) T {
	return Scan(out, 0, len(in), f, func(i int) T { return in[i] }, zero, false, false)
}

// ScanInclusive computes the inclusive forward scan of in into out and
// returns the total.
func ScanInclusive[T any](in, out []T, f graphbolt.Combiner[T], zero T) T {
	return Scan(out, 0, len(in), f, func(i int) T { return in[i] }, zero, true, false)
}

// ScanBack computes the exclusive backward scan of in into out and returns
// the total: out[i] is the combination of zero and all elements with index
// > i, in decreasing index order.
func ScanBack[T any](in, out []T, f graphbolt.Combiner[T], zero T) T {
	return Scan(out, 0, len(in), f, func(i int) T { return in[i] }, zero, false, true)
}

// ScanInclusiveBack computes the inclusive backward scan of in into out and
// returns the total.
func ScanInclusiveBack[T any](in, out []T, f graphbolt.Combiner[T], zero T) T {
	return Scan(out, 0, len(in), f, func(i int) T { return in[i] }, zero, true, true)
}

// PlusScan computes the exclusive forward plus-scan of in into out and
// returns the sum of all elements.
func PlusScan[T graphbolt.Number](in, out []T) T {
	var zero T
	return ScanSlice(in, out, func(x, y T) T { return x + y }, zero)
}

// PlusScanInclusive computes the inclusive forward plus-scan of in into out
// and returns the sum of all elements.
func PlusScanInclusive[T graphbolt.Number](in, out []T) T {
	var zero T
	return ScanInclusive(in, out, func(x, y T) T { return x + y }, zero)
}
