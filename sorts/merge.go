package sorts

import (
	"cmp"

	"github.com/amp-labs/amp-sort/order"
)

// Merge returns a new slice containing the elements of v in non-decreasing
// order, using merge sort. It is [MergeFunc] with the natural < ordering.
func Merge[T cmp.Ordered](v []T) []T {
	return MergeFunc(v, order.Ordered[T]())
}

// MergeFunc returns a new slice containing the elements of v in
// non-decreasing order, sorted by the given comparator using top-down
// merge sort. The input is never mutated; the result is always freshly
// allocated (non-nil even for empty input) and shares no storage with v.
//
// The slice is split at the midpoint, each half is sorted recursively,
// and the two sorted halves are combined with [MergeSortedFunc]. Ties go
// to the left half, so the sort is stable.
//
// O(n log n) time regardless of input order, O(n) auxiliary space per
// merge level.
func MergeFunc[T any](v []T, less order.Less[T]) []T {
	if len(v) < 2 {
		out := make([]T, len(v))
		copy(out, v)

		return out
	}

	mid := len(v) / 2
	left := MergeFunc(v[:mid], less)
	right := MergeFunc(v[mid:], less)

	return MergeSortedFunc(left, right, less)
}

// MergeSorted merges two slices that are already in non-decreasing order
// into one sorted slice. It is [MergeSortedFunc] with the natural <
// ordering.
func MergeSorted[T cmp.Ordered](xs, ys []T) []T {
	return MergeSortedFunc(xs, ys, order.Ordered[T]())
}

// MergeSortedFunc merges two already-sorted slices into a new sorted
// slice in linear time via a two-pointer walk: at each step the smaller
// of the two cursor elements is appended and that cursor advances; once
// one input runs out, the rest of the other is appended wholesale.
//
// Ties are taken from xs, which is what makes [MergeFunc] stable. If
// either input is not sorted by less, the output order is unspecified.
func MergeSortedFunc[T any](xs, ys []T, less order.Less[T]) []T {
	result := make([]T, 0, len(xs)+len(ys))

	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		if less(ys[j], xs[i]) {
			result = append(result, ys[j])
			j++
		} else {
			result = append(result, xs[i])
			i++
		}
	}

	result = append(result, xs[i:]...)
	result = append(result, ys[j:]...)

	return result
}
