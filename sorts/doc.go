// Package sorts implements three classic in-memory sorting algorithms —
// insertion sort, quicksort, and merge sort — plus the linear merge step
// and a sortedness check.
//
// # Overview
//
// Every operation comes in two flavors: a plain form constrained to
// [cmp.Ordered] element types, and a Func form taking an
// [github.com/amp-labs/amp-sort/order.Less] comparator for everything
// else (custom types, reversed or locale-aware orderings, instrumented
// comparisons).
//
// The in-place/allocating split is deliberate and part of the contract:
//
//   - [Insertion] and [Quick] mutate the caller's slice directly and
//     return nothing.
//   - [Merge] never touches its input; it allocates and returns a new
//     slice, which also makes it the only sorter here that requires
//     elements to be cheaply copyable.
//
// Postcondition for all three: the output is in non-decreasing order and
// is a permutation of the input.
//
//	Algorithm   Time (avg)   Time (worst)   Space      Stable
//	Insertion   O(n²)        O(n²)          O(1)       yes
//	Quick       O(n log n)   O(n²)          O(log n)   no
//	Merge       O(n log n)   O(n log n)     O(n)       yes
//
// # Concurrency
//
// Every function here is single-threaded and synchronous. Nothing in this
// package shares state between calls, so distinct slices may be sorted
// from distinct goroutines without synchronization.
package sorts
