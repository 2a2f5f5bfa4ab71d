package order

import "go.uber.org/atomic"

// Counting wraps a Less so that every invocation increments the returned
// counter. It's used by the benchmark harness to report how many
// comparisons each algorithm performed, but works anywhere a Less does.
//
// The counter is atomic, so a single Counting predicate can be shared by
// concurrent sorts; the counts will simply accumulate together.
func Counting[T any](less Less[T]) (Less[T], *atomic.Int64) {
	count := atomic.NewInt64(0)

	counting := func(a, b T) bool {
		count.Inc()

		return less(a, b)
	}

	return counting, count
}
