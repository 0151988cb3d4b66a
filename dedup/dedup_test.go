package dedup_test

import (
	"math/rand"
	"testing"

	"github.com/sunxfancy/graphbolt/dedup"
	"github.com/sunxfancy/graphbolt/mem"
)

func TestRemoveDuplicates(t *testing.T) {
	sentinel := dedup.Sentinel[uint32]()
	keys := []uint32{2, 2, 1, 2, 1}
	flags := []uint32{sentinel, sentinel, sentinel}

	dedup.RemoveDuplicates(func(i int) *uint32 { return &keys[i] }, flags, len(keys))

	survivors := map[uint32]int{}
	for _, k := range keys {
		if k != sentinel {
			survivors[k]++
		}
	}
	if len(survivors) != 2 || survivors[1] != 1 || survivors[2] != 1 {
		t.Errorf("keys after deduplication: %v", keys)
	}
	for i, f := range flags {
		if f != sentinel {
			t.Errorf("flags[%v] is %v, not restored to the sentinel", i, f)
		}
	}
}

func TestRemoveDuplicatesParallel(t *testing.T) {
	const (
		m = 200000
		n = 100
	)
	sentinel := dedup.Sentinel[uint32]()
	keys := mem.New(m, func(int) uint32 { return uint32(rand.Intn(n)) })
	appeared := make([]bool, n)
	for _, k := range keys {
		appeared[k] = true
	}
	flags := mem.New(n, func(int) uint32 { return sentinel })

	key := func(i int) *uint32 { return &keys[i] }
	dedup.RemoveDuplicates(key, flags, m)

	counts := make([]int, n)
	for i, k := range keys {
		if k != sentinel {
			if k >= n {
				t.Fatalf("entry %v holds out-of-range key %v", i, k)
			}
			counts[k]++
		}
	}
	for k, c := range counts {
		switch {
		case appeared[k] && c != 1:
			t.Errorf("key %v has %v survivors, want exactly 1", k, c)
		case !appeared[k] && c != 0:
			t.Errorf("key %v has %v survivors but never appeared", k, c)
		}
	}
	for i, f := range flags {
		if f != sentinel {
			t.Fatalf("flags[%v] is %v, not restored to the sentinel", i, f)
		}
	}

	// The flags array must be reusable without caller cleanup.
	keys2 := mem.New(4, func(i int) uint32 { return uint32(i % 2) })
	dedup.RemoveDuplicates(func(i int) *uint32 { return &keys2[i] }, flags, len(keys2))
	alive := 0
	for _, k := range keys2 {
		if k != sentinel {
			alive++
		}
	}
	if alive != 2 {
		t.Errorf("second run kept %v entries, want 2", alive)
	}
}

func TestRemoveDuplicatesUint64(t *testing.T) {
	sentinel := dedup.Sentinel[uint64]()
	keys := []uint64{5, 5, 5, 5}
	flags := mem.New(6, func(int) uint64 { return sentinel })
	dedup.RemoveDuplicates(func(i int) *uint64 { return &keys[i] }, flags, len(keys))
	alive := 0
	for _, k := range keys {
		if k != sentinel {
			if k != 5 {
				t.Errorf("surviving key is %v, want 5", k)
			}
			alive++
		}
	}
	if alive != 1 {
		t.Errorf("%v survivors for a single distinct key", alive)
	}
}

func TestSentinel(t *testing.T) {
	if dedup.Sentinel[uint32]() != ^uint32(0) {
		t.Error("uint32 sentinel is not the maximum representable value")
	}
	if dedup.Sentinel[uint8]() != 255 {
		t.Error("uint8 sentinel is not the maximum representable value")
	}
}
