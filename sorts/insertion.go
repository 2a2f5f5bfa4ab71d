package sorts

import (
	"cmp"

	"github.com/amp-labs/amp-sort/order"
)

// Insertion sorts v in place into non-decreasing order using insertion
// sort. It is [InsertionFunc] with the natural < ordering.
func Insertion[T cmp.Ordered](v []T) {
	InsertionFunc(v, order.Ordered[T]())
}

// InsertionFunc sorts v in place into non-decreasing order using
// insertion sort with the given comparator.
//
// On each pass i the prefix v[:i] is already sorted; v[i] is bubbled left
// by adjacent swaps until it no longer compares strictly less than its
// left neighbor. Because equal elements never swap, the sort is stable.
//
// O(n²) worst and average case, O(n) on nearly sorted input. Empty and
// single-element slices are no-ops.
func InsertionFunc[T any](v []T, less order.Less[T]) {
	for i := range v {
		// Invariant: v[:i] is sorted. Bubble v[i] left to its spot.
		for j := i; j > 0 && less(v[j], v[j-1]); j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}
