// Package verify checks sorting outputs: that a result still holds
// exactly the elements it started with, no matter their order.
//
// Sortedness itself is checked by
// [github.com/amp-labs/amp-sort/sorts.IsSorted]; this package covers the
// other half of the sorting postcondition, permutation preservation.
package verify

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns an order-independent fingerprint of the multiset of
// values in v: each element is hashed individually with xxh3 and the
// hashes are combined with wrapping addition, so any permutation of v
// yields the same fingerprint.
//
// Equal fingerprints do not prove equal multisets (hash collisions can
// conspire), but differing fingerprints prove the multisets differ. The
// benchmark harness uses this as a cheap before/after corruption check;
// tests that need certainty should use [SameElements].
func Fingerprint(v []int) uint64 {
	var buf [8]byte

	var sum uint64

	for _, x := range v {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		sum += xxh3.Hash(buf[:])
	}

	return sum
}

// SameElements reports whether a and b contain exactly the same elements
// with the same multiplicities, in any order. It sorts copies of both
// inputs and compares them, so it costs O(n log n) and never mutates its
// arguments.
func SameElements[T cmp.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)

	return slices.Equal(as, bs)
}
