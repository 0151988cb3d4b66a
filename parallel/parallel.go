// Package parallel provides the fork-join execution primitives consumed by
// the other graphbolt subpackages: executing the iterations of a bounded
// index range possibly concurrently, with an implicit join before returning,
// and process-wide worker-count configuration.
//
// All functions in this package are strict fork-join: they return only after
// every invocation of the supplied function has completed, and they give no
// ordering guarantee among invocations. There is no partial-completion
// observability and no cancellation.
package parallel

import (
	"fmt"
	"sync"

	"github.com/sunxfancy/graphbolt/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when all
// thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic value,
// annotated with the stack trace of the goroutine it was recovered in.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		Do(thunks[:half]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

// Range receives a range, a batch count n, and a range function f, divides
// the range into batches, and invokes the range function for each of these
// batches in parallel, covering the half-open interval from low to high,
// including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high. The
// batches are determined by dividing up the size of the range (high - low)
// by n. If n is 0, a reasonable default is used that takes the process-wide
// worker count into account.
//
// The range function is invoked for each batch in its own goroutine, with
// 0 <= low <= high, and Range returns only when all range functions have
// terminated.
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with the
// left-most recovered panic value.
func Range(
	low, high, n int,
	f func(low, high int),
) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				recur(mid, high, n-half)
			}()
			recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// Each receives a range, a batch count n, and a per-index function f,
// divides the range into batches, and invokes f for every index i in the
// half-open interval from low to high, possibly concurrently, with an
// implicit join before returning. Within a batch, indices are visited in
// increasing order; among batches there is no ordering guarantee.
//
// Each panics if high < low, or if n < 0, and propagates panics from f the
// way Range does.
func Each(low, high, n int, f func(i int)) {
	Range(low, high, n, func(low, high int) {
		for i := low; i < high; i++ {
			f(i)
		}
	})
}
