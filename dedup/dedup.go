// Package dedup provides a race-based single-winner-per-key selection
// primitive built on compare-and-swap, used to remove duplicate keys from a
// batch of candidate entries in parallel.
package dedup

import (
	"github.com/sunxfancy/graphbolt"
	"github.com/sunxfancy/graphbolt/atomic"
	"github.com/sunxfancy/graphbolt/parallel"
)

// Sentinel returns the reserved "no value" constant of the key type K: its
// maximum representable value. The sentinel is globally reserved to mean
// "absent/invalid"; no component or caller may use it as a real key.
func Sentinel[K graphbolt.Unsigned]() K {
	var zero K
	return ^zero
}

// RemoveDuplicates keeps exactly one entry per distinct key among the m
// candidate entries 0..m-1 and invalidates the rest.
//
// key(i) returns a pointer to entry i's key, which is either a value in
// [0, len(flags)) or the sentinel, meaning "already invalid, skip". flags
// must be pre-cleared to the sentinel by the caller; it is restored to
// all-sentinel before RemoveDuplicates returns, so it is reusable across
// calls without caller cleanup. Neither precondition is validated.
//
// In a first parallel phase, every valid-keyed entry whose flag slot is
// still the sentinel attempts a single compare-and-swap writing its own
// index into the slot. Concurrent attempts on the same key race; exactly
// one succeeds per key, but which entry wins is unspecified under true
// concurrency. In particular, it is not necessarily the one with the
// lowest index. In a second parallel phase, each valid-keyed entry
// re-checks its key's flag: the winner clears the slot back to the
// sentinel, and every loser overwrites its own key with the sentinel.
//
// On return, for every key value that appeared in any entry, exactly one
// surviving entry holds that key.
func RemoveDuplicates[K graphbolt.Unsigned](key func(i int) *K, flags []K, m int) {
	sentinel := Sentinel[K]()
	parallel.Each(0, m, 0, func(i int) {
		k := *key(i)
		if k != sentinel && atomic.Load(&flags[k]) == sentinel {
			atomic.CompareAndSwap(&flags[k], sentinel, K(i))
		}
	})
	parallel.Each(0, m, 0, func(i int) {
		kp := key(i)
		if k := *kp; k != sentinel {
			// Only the winner's compare-and-swap can succeed; every loser
			// overwrites its own key, which no other entry touches.
			if !atomic.CompareAndSwap(&flags[k], K(i), sentinel) {
				*kp = sentinel
			}
		}
	})
}
