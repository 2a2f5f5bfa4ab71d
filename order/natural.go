package order

import "facette.io/natsort"

// Natural returns a Less that orders strings the way a human reads them:
// runs of digits compare by numeric value instead of lexicographically,
// so "file2" sorts before "file10".
func Natural() Less[string] {
	return func(a, b string) bool {
		// natsort.Compare reports less-or-equal, not strict less-than;
		// equal strings must not compare as less.
		return a != b && natsort.Compare(a, b)
	}
}
