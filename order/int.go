package order

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, so slices of Int can be
// sorted through [BySortable] without writing a comparator.
//
// Example:
//
//	values := []order.Int{5, 3, 7}
//	sorts.InsertionFunc(values, order.BySortable[order.Int]())
//	// values is now 3, 5, 7
//
// To convert back to a regular int, use a type conversion:
//
//	var v order.Int = 42
//	regularInt := int(v)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
