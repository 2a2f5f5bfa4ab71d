package sorts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-sort/sorts"
	"github.com/amp-labs/amp-sort/verify"
)

func TestMerge(t *testing.T) {
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
			name:     "odd length",
			input:    []int{5, 1, 4},
			expected: []int{1, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sorts.Merge(tt.input)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []int{3, 2, 0, 5, 8, 9, 6, 3, 2, 0}

	result := sorts.Merge(input)

	assert.Equal(t, []int{3, 2, 0, 5, 8, 9, 6, 3, 2, 0}, input)
	assert.True(t, verify.SameElements(input, result))

	// The result must be independently owned storage.
	result[0] = -1
	assert.Equal(t, 3, input[0])
}

func TestMerge_EmptyReturnsNewSlice(t *testing.T) {
	t.Parallel()

	result := sorts.Merge([]int{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMergeSorted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		xs       []int
		ys       []int
		expected []int
	}{
		{
			name:     "interleaved",
			xs:       []int{5, 8, 9},
			ys:       []int{0, 2, 3, 6},
			expected: []int{0, 2, 3, 5, 6, 8, 9},
		},
		{
			name:     "left empty",
			xs:       []int{},
			ys:       []int{1, 2},
			expected: []int{1, 2},
		},
		{
			name:     "right empty",
			xs:       []int{1, 2},
			ys:       []int{},
			expected: []int{1, 2},
		},
		{
			name:     "both empty",
			xs:       []int{},
			ys:       []int{},
			expected: []int{},
		},
		{
			name:     "disjoint ranges",
			xs:       []int{4, 5, 6},
			ys:       []int{1, 2, 3},
			expected: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "duplicates across inputs",
			xs:       []int{1, 3, 3},
			ys:       []int{3, 4},
			expected: []int{1, 3, 3, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sorts.MergeSorted(tt.xs, tt.ys))
		})
	}
}

type tagged struct {
	key int
	id  int
}

func lessByKey(a, b tagged) bool {
	return a.key < b.key
}

func TestMergeSortedFunc_TiesTakenFromLeft(t *testing.T) {
	t.Parallel()

	xs := []tagged{{key: 1, id: 0}, {key: 2, id: 1}}
	ys := []tagged{{key: 1, id: 2}, {key: 2, id: 3}}

	result := sorts.MergeSortedFunc(xs, ys, lessByKey)

	expected := []tagged{
		{key: 1, id: 0},
		{key: 1, id: 2},
		{key: 2, id: 1},
		{key: 2, id: 3},
	}
	assert.Equal(t, expected, result)
}

func TestMergeFunc_Stable(t *testing.T) {
	t.Parallel()

	input := []tagged{
		{key: 2, id: 0},
		{key: 1, id: 1},
		{key: 2, id: 2},
		{key: 1, id: 3},
		{key: 2, id: 4},
		{key: 1, id: 5},
	}

	result := sorts.MergeFunc(input, lessByKey)

	expected := []tagged{
		{key: 1, id: 1},
		{key: 1, id: 3},
		{key: 1, id: 5},
		{key: 2, id: 0},
		{key: 2, id: 2},
		{key: 2, id: 4},
	}
	assert.Equal(t, expected, result)
}
