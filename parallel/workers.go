package parallel

import "runtime"

// Workers returns the process-wide worker count used to derive default batch
// counts for the parallel primitives.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// SetWorkers sets the process-wide worker count and returns the previous
// setting. If n is <= 0, the current setting is left unchanged.
//
// The worker count is meant to be established once at startup. Mutating it
// while parallel operations are in flight is unsupported and unsynchronized.
func SetWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return runtime.GOMAXPROCS(n)
}
