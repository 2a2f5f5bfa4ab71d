package sorts

import (
	"cmp"

	"github.com/amp-labs/amp-sort/order"
)

// Quick sorts v in place into non-decreasing order using quicksort. It is
// [QuickFunc] with the natural < ordering.
func Quick[T cmp.Ordered](v []T) {
	QuickFunc(v, order.Ordered[T]())
}

// QuickFunc sorts v in place into non-decreasing order using quicksort
// with the given comparator.
//
// The pivot is always the first element. That choice is deterministic and
// easy to reason about, but it makes already-sorted and reverse-sorted
// input the worst case: partitioning degenerates and the running time
// becomes O(n²) instead of the O(n log n) average. Callers feeding it
// adversarial input and wanting guaranteed n log n should reach for
// [Merge] instead.
//
// Partitioning splits the slice into a front region of elements strictly
// less than the pivot and a back region of elements greater or equal,
// with the pivot landing on the boundary. The pivot's own index is never
// part of either recursive call, which is what guarantees termination.
// Recursion always descends into the smaller partition and loops on the
// larger one, so stack depth stays O(log n) even in the degenerate case.
//
// Not stable: partitioning reorders equal elements.
func QuickFunc[T any](v []T, less order.Less[T]) {
	for len(v) > 1 {
		p := partition(v, less)

		// Recurse into the smaller side, loop on the larger.
		if p < len(v)-(p+1) {
			QuickFunc(v[:p], less)
			v = v[p+1:]
		} else {
			QuickFunc(v[p+1:], less)
			v = v[:p]
		}
	}
}

// partition reorders v around the pivot v[0] and returns the pivot's
// final index. Afterwards v[:p] holds elements strictly less than the
// pivot and v[p+1:] holds elements greater or equal.
func partition[T any](v []T, less order.Less[T]) int {
	pivot := v[0]
	smaller := 0

	for i := 1; i < len(v); i++ {
		if less(v[i], pivot) {
			smaller++
			v[smaller], v[i] = v[i], v[smaller]
		}
	}

	// Move the pivot from the front onto the boundary.
	v[0], v[smaller] = v[smaller], v[0]

	return smaller
}
