package graphbolt

type (
	// A Combiner is an associative binary operation over T. Associativity is
	// required for the block-decomposed algorithms in graphbolt/sequence to
	// produce results equivalent to a sequential left-to-right fold;
	// commutativity is not required. Associativity is the caller's
	// responsibility and is not validated.
	Combiner[T any] func(x, y T) T

	// An Accessor maps an index to the element's value, abstracting over
	// physical storage. It must be pure: the algorithms may invoke it more
	// than once per index, from multiple goroutines, in unspecified order.
	// Accessors enable reducing, scanning, or packing virtual or derived
	// sequences (for example per-vertex degree lookups) without
	// materializing an array.
	Accessor[T any] func(i int) T

	// A Predicate reports whether an element is selected.
	Predicate[T any] func(v T) bool
)

// Number is the constraint satisfied by the built-in numeric types, used by
// the plus-reduce, plus-scan, and write-add families.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Unsigned is the constraint satisfied by the built-in unsigned integer
// types, used as the key domain of graphbolt/dedup. The maximum value of the
// key type is globally reserved as the sentinel meaning "absent/invalid" and
// is never a valid key.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
