// Package hash provides deterministic integer avalanche mixers, used to
// scatter keys for load balancing or symmetry breaking in parallel
// algorithms. The mixers are fixed-point pseudorandom permutations of the
// input's bit pattern: deterministic, stateless, not collision-free, and not
// cryptographic.
package hash

// Int32 mixes a 32-bit integer through a sequence of add, xor, and shift
// rounds, producing an avalanche-style permutation of its bits.
func Int32(a uint32) uint32 {
	a = (a + 0x7ed55d16) + (a << 12)
	a = (a ^ 0xc761c23c) ^ (a >> 19)
	a = (a + 0x165667b1) + (a << 5)
	a = (a + 0xd3a2646c) ^ (a << 9)
	a = (a + 0xfd7046c5) + (a << 3)
	a = (a ^ 0xb55a4f09) ^ (a >> 16)
	return a
}

// Int64 is the 64-bit variant of Int32.
func Int64(a uint64) uint64 {
	a = (a + 0x7ed55d166bef7a1d) + (a << 12)
	a = (a ^ 0xc761c23c510fa2dd) ^ (a >> 9)
	a = (a + 0x165667b183a9c0e1) + (a << 59)
	a = (a + 0xd3a2646cab3487e3) ^ (a << 49)
	a = (a + 0xfd7046c5ef9ab54c) + (a << 3)
	a = (a ^ 0xb55a4f090dd4a67b) ^ (a >> 32)
	return a
}

// Mix64 mixes a 64-bit integer with a multiply/xorshift scheme (after
// Numerical Recipes). It disperses low-entropy inputs somewhat better than
// Int64 at the cost of two multiplications.
func Mix64(u uint64) uint64 {
	v := u*3935559000370003845 + 2691343689449507681
	v ^= v >> 21
	v ^= v << 37
	v ^= v >> 4
	v *= 4768777513237032717
	v ^= v << 20
	v ^= v >> 41
	v ^= v << 5
	return v
}
