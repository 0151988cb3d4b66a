// Package mem provides cache-line-aligned allocation and parallel element
// construction for the buffers used by parallel algorithms.
//
// Every buffer returned by this package is aligned to, and sized as a
// multiple of, the cache line size. Consumers that vectorize or rely on this
// alignment for correctness can depend on that guarantee. Allocation failure
// is fatal: the runtime's out-of-memory condition is not recovered anywhere
// in this package.
package mem

import (
	"os"
	"unsafe"

	"github.com/sunxfancy/graphbolt/parallel"
)

// CacheLineSize is the alignment and size granularity, in bytes, of every
// buffer returned by this package.
const CacheLineSize = 64

const (
	// Element counts above this threshold are constructed, cleared, or
	// copied in parallel; below it, the dispatch overhead exceeds the
	// benefit and a serial pass is used instead.
	serialThreshold = 2048

	// Stride used by the pre-touch pass, matching the transparent huge page
	// size on common configurations.
	touchStride = 1 << 21
)

// Alloc allocates a buffer for n elements of type T, rounded up to a
// multiple of the cache line size and aligned to it. No per-element
// construction pass is run beyond the runtime's zeroing.
func Alloc[T any](n int) []T {
	return aligned[T](n, CacheLineSize)
}

// AllocTouched allocates like Alloc, then strides through the buffer at
// large-page intervals in parallel to pre-fault it and populate the TLB on
// systems backed by huge pages. On Linux the buffer is page-aligned and the
// kernel is advised to back it with transparent huge pages. This is an
// optimization hint, not a correctness requirement.
func AllocTouched[T any](n int) []T {
	s := aligned[T](n, uintptr(os.Getpagesize()))
	if n == 0 {
		return s
	}
	var zero T
	bytes := uintptr(n) * unsafe.Sizeof(zero)
	if bytes == 0 {
		return s
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), bytes)
	adviseHugePages(raw)
	strides := (len(raw) + touchStride - 1) / touchStride
	parallel.Each(0, strides, 0, func(i int) {
		raw[i*touchStride] = 0
	})
	return s
}

// New allocates an aligned buffer for n elements and constructs every
// element with init, in parallel above the construction threshold and
// serially below it. A nil init leaves the zero values in place.
func New[T any](n int, init func(i int) T) []T {
	s := Alloc[T](n)
	if init == nil {
		return s
	}
	if n > serialThreshold {
		parallel.Each(0, n, 0, func(i int) {
			s[i] = init(i)
		})
	} else {
		for i := range s {
			s[i] = init(i)
		}
	}
	return s
}

// Clear resets every element of s to the zero value, in parallel above the
// construction threshold and serially below it. For element types holding
// references this releases them for the collector, which is what destruction
// amounts to in a garbage-collected setting.
func Clear[T any](s []T) {
	var zero T
	if len(s) > serialThreshold {
		parallel.Each(0, len(s), 0, func(i int) {
			s[i] = zero
		})
	} else {
		for i := range s {
			s[i] = zero
		}
	}
}

// Copy returns an aligned copy of src, copying in parallel above the
// construction threshold.
func Copy[T any](src []T) []T {
	dst := Alloc[T](len(src))
	if len(src) > serialThreshold {
		parallel.Range(0, len(src), 0, func(low, high int) {
			copy(dst[low:high], src[low:high])
		})
	} else {
		copy(dst, src)
	}
	return dst
}

// Log2Up returns the log base 2 of i, rounded up.
func Log2Up(i uint64) int {
	a := 0
	for b := i - 1; b > 0; b >>= 1 {
		a++
	}
	return a
}

// aligned allocates space for n elements inside a padded byte block and
// returns the slice starting at the first boundary with the requested
// alignment. The returned slice keeps the whole block reachable, so the
// collector reclaims it exactly when the caller drops the slice.
func aligned[T any](n int, align uintptr) []T {
	if n < 0 {
		panic("mem: negative allocation size")
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return make([]T, n)
	}
	bytes := roundUp(uintptr(n)*size, align)
	buf := make([]byte, bytes+align)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := (align - base%align) % align
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf[off:]))), n)
}

func roundUp(v, to uintptr) uintptr {
	return (v + to - 1) / to * to
}
