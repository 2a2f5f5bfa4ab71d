package order

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated returns a Less that orders strings according to the collation
// rules of the given language (so, for example, "é" sorts next to "e"
// under language.French rather than after "z").
//
// The underlying collator is not safe for concurrent use; do not share a
// Collated predicate between sorts running on different goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Less[string] {
	c := collate.New(tag, opts...)

	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}
