package sequence

import (
	"unsafe"

	"github.com/sunxfancy/graphbolt"
	"github.com/sunxfancy/graphbolt/mem"
	"github.com/sunxfancy/graphbolt/parallel"
)

// countFlagsSerial counts the true entries of fl. When the length is a
// multiple of 512 and the base address is 4-byte aligned, four flag bytes
// are summed at a time as a 32-bit word, accumulating at most 255 per lane
// before the lanes are folded; otherwise a plain per-element count is used.
func countFlagsSerial(fl []bool) int {
	n := len(fl)
	r := 0
	if n >= 128 && n&511 == 0 && uintptr(unsafe.Pointer(unsafe.SliceData(fl)))&3 == 0 {
		words := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(fl))), n>>2)
		for k := 0; k < n>>9; k++ {
			var rr uint32
			for _, w := range words[k<<7 : (k+1)<<7] {
				rr += w
			}
			r += int(rr&255) + int(rr>>8&255) + int(rr>>16&255) + int(rr>>24&255)
		}
	} else {
		for _, b := range fl {
			if b {
				r++
			}
		}
	}
	return r
}

// packSerial compacts the flagged elements of [s, e) into out in index
// order. A nil out is allocated to exactly the flagged count first.
func packSerial[T any](out []T, flags []bool, s, e int, g graphbolt.Accessor[T]) Sequence[T] {
	if out == nil {
		out = mem.Alloc[T](countFlagsSerial(flags[s:e]))
	}
	k := 0
	for i := s; i < e; i++ {
		if flags[i] {
			out[k] = g(i)
			k++
		}
	}
	return Sequence[T]{Data: out[:k]}
}

// Pack compacts the elements of the virtual sequence g over [s, e) whose
// flag is true into out, preserving input order within and across blocks
// (stable compaction). flags must have one entry per input index. If out is
// nil, a buffer of exactly the flagged count is allocated and ownership of
// the returned sequence transfers to the caller.
//
// Per block in parallel, the true flags are counted; an exclusive plus-scan
// of the per-block counts yields each block's output write offset and the
// grand total; each block then serially re-walks its elements, writing
// every flagged one at its offset. The returned sequence's length equals
// the number of true flags.
func Pack[T any](out []T, flags []bool, s, e int, g graphbolt.Accessor[T]) Sequence[T] {
	l := nblocks(e-s, packBlockSize)
	if l <= 2 {
		return packSerial(out, flags, s, e, g)
	}
	sums := mem.Alloc[int](l)
	blockedFor(s, e, packBlockSize, func(i, low, high int) {
		sums[i] = countFlagsSerial(flags[low:high])
	})
	m := PlusScan(sums, sums)
	if out == nil {
		out = mem.Alloc[T](m)
	}
	blockedFor(s, e, packBlockSize, func(i, low, high int) {
		packSerial(out[sums[i]:], flags, low, high, g)
	})
	return Sequence[T]{Data: out[:m]}
}

// PackSlice compacts the flagged elements of in into out and returns the
// number of elements written. out must hold at least as many elements as
// there are true flags.
func PackSlice[T any](in, out []T, flags []bool) int {
	return Pack(out, flags, 0, len(in), func(i int) T { return in[i] }).Len()
}

// PackIndex returns the indices of the true entries of flags, in increasing
// order, in an engine-allocated sequence.
func PackIndex(flags []bool) Sequence[int] {
	return Pack[int](nil, flags, 0, len(flags), func(i int) int { return i })
}

// Filter compacts the elements of in satisfying p into out and returns the
// number of elements written. The flags buffer is engine-allocated scratch,
// invisible to the caller; use FilterFlags to supply one.
func Filter[T any](in, out []T, p graphbolt.Predicate[T]) int {
	return FilterFlags(in, out, mem.Alloc[bool](len(in)), p)
}

// FilterFlags is Filter with a caller-supplied flags buffer of the same
// length as in: the flags are computed as p(in[i]) for every i in parallel,
// then the flagged elements are packed into out.
func FilterFlags[T any](in, out []T, flags []bool, p graphbolt.Predicate[T]) int {
	parallel.Each(0, len(in), 0, func(i int) {
		flags[i] = p(in[i])
	})
	return PackSlice(in, out, flags)
}
