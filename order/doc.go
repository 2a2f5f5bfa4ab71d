// Package order defines the comparison vocabulary shared by the sorting
// algorithms in this module.
//
// # Overview
//
// The central type is [Less], a strict less-than predicate. Every sorter in
// [github.com/amp-labs/amp-sort/sorts] has a Func variant that accepts a
// Less, so any ordering expressible as a predicate — reversed, natural,
// locale-collated, instrumented — works with every algorithm.
//
// For types that carry their own ordering, the package also defines the
// [Sortable] interface (a LessThan method) along with wrapper types for
// common primitives: [Int], [String], and [Byte]. Use [BySortable] to turn
// the interface form into a Less.
//
// # Usage
//
//	// Sort descending.
//	sorts.QuickFunc(values, order.Reverse(order.Ordered[int]()))
//
//	// Sort file names the way a human would read them ("file2" < "file10").
//	sorts.InsertionFunc(names, order.Natural())
//
//	// Count how many comparisons a sort performs.
//	less, count := order.Counting(order.Ordered[int]())
//	sorts.QuickFunc(values, less)
//	fmt.Println(count.Load())
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// # Thread Safety
//
// Less values returned by this package are safe for concurrent use, with
// two exceptions: [Collated] wraps a collator that is not safe for
// concurrent use, so a Collated predicate must not be shared between
// sorts running on different goroutines; and the predicate returned by
// [Counting] shares a counter, so concurrent sorts through the same
// predicate will pool their counts.
package order
