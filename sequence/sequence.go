// Package sequence provides block-decomposed parallel primitives over
// sequences: associative reduction, prefix computation (scan), stable
// compaction (pack/filter), and early-exit application.
//
// Every primitive operates on either a materialized slice or a virtual
// sequence described by an accessor function mapping an index to a value.
// The index range is divided into contiguous, disjoint blocks of a fixed
// size; each block is processed by a strictly serial pass, the blocks run in
// parallel, and a synchronous barrier separates the parallel phases of an
// operation. Block decomposition is an implementation detail: the output of
// every primitive is identical to that of the corresponding sequential
// algorithm, independent of how many blocks were used or how parallel
// execution interleaved. The only requirement is that combiners are
// associative; commutativity is never assumed.
package sequence

import (
	"github.com/sunxfancy/graphbolt/parallel"
)

const (
	// scanBlockSize is the block size used by reduce, scan, and apply;
	// packBlockSize is the larger block size used by pack and filter. Both
	// are powers of two, so recursion depth stays logarithmic in the input
	// size.
	scanBlockSize = 1 << 10
	packBlockSize = 2 * scanBlockSize
)

// A Sequence is a contiguous buffer plus a logical length. Sequences
// returned by Pack, PackIndex, and the Filter variants with an unallocated
// destination are engine-allocated; ownership transfers to the caller on
// return, and the caller releases the buffer with Free.
type Sequence[T any] struct {
	Data []T
}

// Len returns the logical length of the sequence.
func (s Sequence[T]) Len() int {
	return len(s.Data)
}

// Free releases the sequence's buffer reference, returning it to the
// collector. The sequence must not be used afterwards.
func (s *Sequence[T]) Free() {
	s.Data = nil
}

// nblocks returns the number of blocks of size bsize covering n elements.
func nblocks(n, bsize int) int {
	if n <= 0 {
		return 0
	}
	return 1 + (n-1)/bsize
}

// blockedFor partitions [s, e) into contiguous blocks of at most bsize
// elements and invokes body for each block in parallel, passing the block
// index and the block's sub-range. It returns only after every block has
// completed.
func blockedFor(s, e, bsize int, body func(block, low, high int)) {
	l := nblocks(e-s, bsize)
	parallel.Each(0, l, 0, func(i int) {
		low := s + i*bsize
		high := low + bsize
		if high > e {
			high = e
		}
		body(i, low, high)
	})
}
