package parallel_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sunxfancy/graphbolt/parallel"
)

func TestRangeCoversEveryIndexOnce(t *testing.T) {
	const n = 100001
	counts := make([]int32, n)
	parallel.Range(0, n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %v visited %v times", i, c)
		}
	}
}

func TestEachCoversEveryIndexOnce(t *testing.T) {
	const n = 64 * 1024
	counts := make([]int32, n)
	parallel.Each(0, n, 0, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %v visited %v times", i, c)
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	invoked := int32(0)
	parallel.Range(5, 5, 0, func(low, high int) {
		atomic.AddInt32(&invoked, 1)
		if low != high {
			t.Errorf("non-empty batch %v:%v for empty range", low, high)
		}
	})
	if invoked != 1 {
		t.Errorf("range function invoked %v times", invoked)
	}
}

func TestRangeInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for an inverted range")
		}
	}()
	parallel.Range(10, 0, 0, func(low, high int) {})
}

func TestRangePanicPropagation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("panic in a batch did not propagate")
		}
	}()
	parallel.Range(0, 1<<20, 0, func(low, high int) {
		if low <= 1<<19 && 1<<19 < high {
			panic("boom")
		}
	})
}

func TestSetWorkers(t *testing.T) {
	prev := parallel.Workers()
	defer parallel.SetWorkers(prev)
	if got := parallel.SetWorkers(1); got != prev {
		t.Errorf("SetWorkers returned %v, want previous setting %v", got, prev)
	}
	if parallel.Workers() != 1 {
		t.Errorf("worker count is %v after SetWorkers(1)", parallel.Workers())
	}
	if parallel.SetWorkers(0) != 1 {
		t.Error("SetWorkers(0) changed the worker count")
	}
}

func ExampleDo() {
	var fib func(int) int
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		if n < 20 {
			return fib(n-1) + fib(n-2)
		}
		var n1, n2 int
		parallel.Do(
			func() { n1 = fib(n - 1) },
			func() { n2 = fib(n - 2) },
		)
		return n1 + n2
	}

	fmt.Println(fib(30))

	// Output:
	// 832040
}

func ExampleEach() {
	squares := make([]int, 8)
	parallel.Each(0, len(squares), 0, func(i int) {
		squares[i] = i * i
	})
	fmt.Println(squares)

	// Output:
	// [0 1 4 9 16 25 36 49]
}
