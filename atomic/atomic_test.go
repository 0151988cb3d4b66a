package atomic_test

import (
	"math/rand"
	"testing"

	"github.com/sunxfancy/graphbolt/atomic"
	"github.com/sunxfancy/graphbolt/parallel"
)

func TestCompareAndSwap(t *testing.T) {
	v64 := int64(40)
	if !atomic.CompareAndSwap(&v64, 40, 42) {
		t.Error("8-byte swap with matching old value failed")
	}
	if atomic.CompareAndSwap(&v64, 40, 0) {
		t.Error("8-byte swap with stale old value succeeded")
	}
	if v64 != 42 {
		t.Errorf("stored value is %v, want 42", v64)
	}

	v32 := uint32(7)
	if !atomic.CompareAndSwap(&v32, 7, 8) || v32 != 8 {
		t.Errorf("4-byte swap: stored value is %v, want 8", v32)
	}

	f := float64(1.5)
	if !atomic.CompareAndSwap(&f, 1.5, 2.5) || f != 2.5 {
		t.Errorf("float swap: stored value is %v, want 2.5", f)
	}
}

func TestCompareAndSwapByte(t *testing.T) {
	bytes := [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	for i := range bytes {
		if !atomic.CompareAndSwap(&bytes[i], uint8(i), uint8(i)+10) {
			t.Errorf("1-byte swap at offset %v failed", i)
		}
	}
	for i, b := range bytes {
		if b != uint8(i)+10 {
			t.Errorf("byte %v is %v, want %v; neighbor bytes must stay intact", i, b, i+10)
		}
	}

	flag := false
	if !atomic.CompareAndSwap(&flag, false, true) || !flag {
		t.Error("bool swap failed")
	}
}

func TestCompareAndSwapUnsupportedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for a 2-byte element")
		}
	}()
	v := int16(1)
	atomic.CompareAndSwap(&v, 1, 2)
}

func TestWriteMinConcurrent(t *testing.T) {
	const n = 100000
	proposals := make([]int64, n)
	min := int64(1 << 62)
	for i := range proposals {
		proposals[i] = rand.Int63()
		if proposals[i] < min {
			min = proposals[i]
		}
	}
	stored := int64(1 << 62)
	parallel.Each(0, n, 0, func(i int) {
		atomic.WriteMin(&stored, proposals[i])
	})
	if stored != min {
		t.Errorf("stored value is %v, want %v", stored, min)
	}
}

func TestWriteMaxConcurrent(t *testing.T) {
	const n = 100000
	stored := uint32(0)
	parallel.Each(1, n+1, 0, func(i int) {
		atomic.WriteMax(&stored, uint32(i))
	})
	if stored != n {
		t.Errorf("stored value is %v, want %v", stored, n)
	}
}

func TestFetchAndAddConcurrent(t *testing.T) {
	const n = 100000
	counter := int64(0)
	seen := make([]bool, n)
	parallel.Each(0, n, 0, func(i int) {
		seen[atomic.FetchAndAdd(&counter, 1)] = true
	})
	if counter != n {
		t.Errorf("counter is %v, want %v", counter, n)
	}
	for i, s := range seen {
		if !s {
			t.Fatalf("pre-update value %v never returned", i)
		}
	}
}

func TestWriteAddConcurrent(t *testing.T) {
	const n = 100000
	sum := uint64(0)
	parallel.Each(1, n+1, 0, func(i int) {
		atomic.WriteAdd(&sum, uint64(i))
	})
	if want := uint64(n) * (n + 1) / 2; sum != want {
		t.Errorf("sum is %v, want %v", sum, want)
	}
}

func TestWriteMul(t *testing.T) {
	v := int64(1)
	for i := 0; i < 10; i++ {
		atomic.WriteMul(&v, 2)
	}
	if v != 1024 {
		t.Errorf("value is %v, want 1024", v)
	}
}
