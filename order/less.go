package order

import "cmp"

// Less reports whether a should sort strictly before b.
//
// A Less must describe a strict weak ordering: irreflexive (Less(a, a) is
// false) and transitive. The sorters in this module never need more than
// that; "a ≤ b" is always derived as !Less(b, a).
type Less[T any] func(a, b T) bool

// Ordered returns a Less for any ordered primitive type, using the
// built-in < operator.
func Ordered[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// BySortable returns a Less that delegates to the type's LessThan method.
func BySortable[T Sortable[T]]() Less[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}

// Reverse returns a Less that orders elements in the opposite direction of
// the given one.
//
// Note the argument swap rather than negation: !less(a, b) would report
// "greater or equal", which is not a strict ordering and would break the
// stability guarantees of the sorters.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}
