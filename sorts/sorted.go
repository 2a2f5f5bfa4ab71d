package sorts

import (
	"cmp"

	"github.com/amp-labs/amp-sort/order"
)

// IsSorted reports whether v is in non-decreasing order. It is
// [IsSortedFunc] with the natural < ordering.
func IsSorted[T cmp.Ordered](v []T) bool {
	return IsSortedFunc(v, order.Ordered[T]())
}

// IsSortedFunc reports whether v is in non-decreasing order according to
// less. It scans adjacent pairs and returns false at the first pair that
// is out of order. Empty and single-element slices are vacuously sorted:
// the loop below starts at index 1, so it never probes len(v)-1 as a
// bound and needs no separate empty-slice guard.
func IsSortedFunc[T any](v []T, less order.Less[T]) bool {
	for i := 1; i < len(v); i++ {
		if less(v[i], v[i-1]) {
			return false
		}
	}

	return true
}
