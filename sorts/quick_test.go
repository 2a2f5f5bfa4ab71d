package sorts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sort/order"
	"github.com/amp-labs/amp-sort/randarr"
	"github.com/amp-labs/amp-sort/sorts"
	"github.com/amp-labs/amp-sort/verify"
)

func TestQuick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{
			name:     "empty",
			input:    []int{},
			expected: []int{},
		},
		{
			name:     "single element",
			input:    []int{7},
			expected: []int{7},
		},
		{
			name:     "two elements out of order",
			input:    []int{2, 1},
			expected: []int{1, 2},
		},
		{
			name:     "ten items",
			input:    []int{3, 2, 0, 5, 8, 9, 6, 3, 2, 0},
			expected: []int{0, 0, 2, 2, 3, 3, 5, 6, 8, 9},
		},
		{
			name:     "presorted",
			input:    []int{0, 0, 2, 2, 3, 3, 5, 6, 8, 9},
			expected: []int{0, 0, 2, 2, 3, 3, 5, 6, 8, 9},
		},
		{
			name:     "reverse sorted",
			input:    []int{9, 8, 6, 5, 3, 3, 2, 2, 0, 0},
			expected: []int{0, 0, 2, 2, 3, 3, 5, 6, 8, 9},
		},
		{
			name:     "all equal",
			input:    []int{4, 4, 4, 4},
			expected: []int{4, 4, 4, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sorts.Quick(tt.input)

			assert.Equal(t, tt.expected, tt.input)
		})
	}
}

// Already-sorted input is the worst case for the first-element pivot:
// every partition is maximally unbalanced. The smaller-side-first
// recursion must keep the stack shallow even then.
func TestQuick_AdversarialSortedInput(t *testing.T) {
	t.Parallel()

	// Big enough that naive one-sided recursion would need an n-deep
	// stack, small enough that the O(n²) comparison count stays fast.
	const n = 10_000

	input := make([]int, n)
	for i := range input {
		input[i] = i
	}

	sorts.Quick(input)

	assert.True(t, sorts.IsSorted(input))
}

func TestQuick_PreservesElements(t *testing.T) {
	t.Parallel()

	gen := randarr.New(42)

	input, err := gen.Ints(1000, 0, 100)
	require.NoError(t, err)

	snapshot := make([]int, len(input))
	copy(snapshot, input)

	sorts.Quick(input)

	assert.True(t, sorts.IsSorted(input))
	assert.True(t, verify.SameElements(snapshot, input))
}

func TestQuickFunc_Reverse(t *testing.T) {
	t.Parallel()

	input := []int{3, 2, 0, 5, 8}

	sorts.QuickFunc(input, order.Reverse(order.Ordered[int]()))

	assert.Equal(t, []int{8, 5, 3, 2, 0}, input)
}
