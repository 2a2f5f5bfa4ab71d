// Package randarr generates random integer slices for use as sorting
// test and benchmark fixtures. No guarantee is made about the order of
// the output; producing unordered data is the whole point.
package randarr

import (
	"errors"
	"math/rand/v2"
	"time"
)

var (
	// ErrNegativeLength is returned when a negative slice length is requested.
	ErrNegativeLength = errors.New("length must be non-negative")

	// ErrEmptyRange is returned when the requested value range [min, max)
	// contains no values, i.e. max <= min.
	ErrEmptyRange = errors.New("empty value range")
)

// Generator produces random slices from a seedable PCG source.
//
// A Generator is deterministic for a given seed, so fixtures can be
// reproduced across runs. It is not safe for concurrent use; give each
// goroutine its own Generator.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with the given value. Two Generators
// built from the same seed produce identical sequences.
func New(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// NewFromTime returns a Generator seeded from the current time, for
// callers that don't care about reproducibility.
func NewFromTime() *Generator {
	return New(uint64(time.Now().UnixNano()))
}

// Ints returns a new slice of n integers drawn independently and
// uniformly from the half-open range [minVal, maxVal). The half-open
// convention matches math/rand and makes "values below the slice length"
// spell as Ints(n, 0, n).
//
// Returns ErrNegativeLength if n < 0 and ErrEmptyRange if maxVal <= minVal
// (unless n is 0, in which case the range is never consulted and an empty
// slice is returned).
func (g *Generator) Ints(n, minVal, maxVal int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	if n == 0 {
		return []int{}, nil
	}

	if maxVal <= minVal {
		return nil, ErrEmptyRange
	}

	// The span is computed in uint64: a signed maxVal-minVal overflows for
	// extreme bounds (e.g. minVal = math.MinInt with a positive maxVal).
	// The wrap-around converting back is two's complement arithmetic that
	// lands each value in [minVal, maxVal).
	span := uint64(maxVal) - uint64(minVal)

	v := make([]int, n)
	for i := range v {
		v[i] = minVal + int(g.rng.Uint64N(span))
	}

	return v, nil
}
