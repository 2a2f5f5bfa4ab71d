package order

// Sortable is the interface for types that carry their own ordering.
// LessThan must implement a strict weak ordering, like [Less].
type Sortable[T any] interface {
	LessThan(other T) bool
}
