// Package graphbolt provides shared-memory parallel algorithmic primitives:
// associative reduction, prefix computation (scan), stable stream compaction
// (pack/filter), lock-free single-word atomic updates, deterministic integer
// hashing, and cache-aligned parallel memory allocation. It is the substrate
// on which parallel graph and data algorithms are built.
//
// Graphbolt provides the following subpackages:
//
// graphbolt/parallel provides the fork-join execution primitives consumed by
// all other subpackages: running a bounded index range possibly concurrently
// with an implicit join, and process-wide worker-count configuration.
//
// graphbolt/sequence provides block-decomposed parallel reduce, scan,
// pack/filter, and early-exit apply over both materialized slices and virtual
// sequences described by accessor functions.
//
// graphbolt/atomic provides lock-free compare-and-swap, write-min, write-max,
// write-add, and fetch-and-add over natively lock-free word widths.
//
// graphbolt/hash provides deterministic integer avalanche mixers for
// pseudorandom bucketing and symmetry breaking.
//
// graphbolt/mem provides cache-line-aligned allocation and parallel element
// construction and copying.
//
// graphbolt/dedup provides a race-based single-winner-per-key deduplication
// primitive built on compare-and-swap.
//
// All parallel phases are strict fork-join: every primitive returns only
// after all of its parallel sub-work has completed, and phases never overlap.
// There is no cancellation or timeout anywhere in this library; invalid
// arguments and unsupported operations panic rather than returning errors.
package graphbolt
