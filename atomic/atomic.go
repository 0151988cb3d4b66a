// Package atomic provides lock-free single-word atomic update primitives
// over element types of natively lock-free widths: 1, 4, or 8 bytes.
//
// All primitives in this package are lock-free retry loops: a caller
// repeatedly attempts an atomic update until it succeeds, without ever
// blocking. Progress is guaranteed for the system as a whole (some attempt
// eventually succeeds), but there is no fairness or starvation guarantee for
// any specific caller. Equality of competing values is decided on their bit
// patterns, not through their type's comparison semantics.
package atomic

import (
	"cmp"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/sunxfancy/graphbolt"
)

// CompareAndSwap atomically replaces *p with new if and only if the current
// value equals old, and reports whether the replacement took place.
//
// It is supported only for element types that are 1, 4, or 8 bytes wide,
// since no native atomic instruction exists at other granularities;
// attempting it on any other width panics. The 1-byte form is implemented
// through a compare-and-swap on the containing aligned 32-bit word.
func CompareAndSwap[T any](p *T, old, new T) bool {
	switch unsafe.Sizeof(*p) {
	case 1:
		return cas8(
			(*uint8)(unsafe.Pointer(p)),
			*(*uint8)(unsafe.Pointer(&old)),
			*(*uint8)(unsafe.Pointer(&new)),
		)
	case 4:
		return atomic.CompareAndSwapUint32(
			(*uint32)(unsafe.Pointer(p)),
			*(*uint32)(unsafe.Pointer(&old)),
			*(*uint32)(unsafe.Pointer(&new)),
		)
	case 8:
		return atomic.CompareAndSwapUint64(
			(*uint64)(unsafe.Pointer(p)),
			*(*uint64)(unsafe.Pointer(&old)),
			*(*uint64)(unsafe.Pointer(&new)),
		)
	default:
		panic(fmt.Sprintf("atomic: unsupported element width: %v bytes", unsafe.Sizeof(*p)))
	}
}

// Load atomically reads *p, with the same width constraints as
// CompareAndSwap.
func Load[T any](p *T) (v T) {
	switch unsafe.Sizeof(*p) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = load8((*uint8)(unsafe.Pointer(p)))
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = atomic.LoadUint32((*uint32)(unsafe.Pointer(p)))
	case 8:
		*(*uint64)(unsafe.Pointer(&v)) = atomic.LoadUint64((*uint64)(unsafe.Pointer(p)))
	default:
		panic(fmt.Sprintf("atomic: unsupported element width: %v bytes", unsafe.Sizeof(*p)))
	}
	return
}

// WriteMin atomically lowers *p to v: it retries a compare-and-swap until
// either the stored value is already <= v, or the swap succeeds. It reports
// whether this call installed its value. After any number of concurrent
// WriteMin calls have returned, the stored value is the minimum of the
// initial value and all proposed values.
func WriteMin[T cmp.Ordered](p *T, v T) bool {
	for {
		c := Load(p)
		if c <= v {
			return false
		}
		if CompareAndSwap(p, c, v) {
			return true
		}
	}
}

// WriteMax atomically raises *p to v, symmetric to WriteMin.
func WriteMax[T cmp.Ordered](p *T, v T) bool {
	for {
		c := Load(p)
		if c >= v {
			return false
		}
		if CompareAndSwap(p, c, v) {
			return true
		}
	}
}

// WriteAdd atomically adds v to *p through a read-modify-compare-and-swap
// retry loop.
func WriteAdd[T graphbolt.Number](p *T, v T) {
	for {
		c := Load(p)
		if CompareAndSwap(p, c, c+v) {
			return
		}
	}
}

// FetchAndAdd atomically adds v to *p and returns the value *p held
// immediately before the update.
func FetchAndAdd[T graphbolt.Number](p *T, v T) T {
	for {
		c := Load(p)
		if CompareAndSwap(p, c, c+v) {
			return c
		}
	}
}

// WriteMul atomically multiplies *p by v through a read-modify-compare-and-
// swap retry loop.
func WriteMul[T graphbolt.Number](p *T, v T) {
	for {
		c := Load(p)
		if CompareAndSwap(p, c, c*v) {
			return
		}
	}
}

// cas8 emulates a single-byte compare-and-swap on the containing aligned
// 32-bit word. Neighboring bytes are re-read on each attempt, so concurrent
// updates to them only cause a retry, never a lost update.
func cas8(p *uint8, old, new uint8) bool {
	addr := uintptr(unsafe.Pointer(p))
	word := (*uint32)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) &^ 3))
	shift := (addr & 3) * 8
	mask := uint32(0xff) << shift
	for {
		cur := atomic.LoadUint32(word)
		if uint8(cur>>shift) != old {
			return false
		}
		next := (cur &^ mask) | uint32(new)<<shift
		if atomic.CompareAndSwapUint32(word, cur, next) {
			return true
		}
	}
}

func load8(p *uint8) uint8 {
	addr := uintptr(unsafe.Pointer(p))
	word := (*uint32)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) &^ 3))
	shift := (addr & 3) * 8
	return uint8(atomic.LoadUint32(word) >> shift)
}
