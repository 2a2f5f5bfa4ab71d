package sorts_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/randarr"
	"github.com/amp-labs/amp-sort/sorts"
)

const benchSize = 1000

func benchFixture(b *testing.B) []int {
	b.Helper()

	fixture, err := randarr.New(1).Ints(benchSize, 0, benchSize)
	if err != nil {
		b.Fatal(err)
	}

	return fixture
}

func BenchmarkInsertion(b *testing.B) {
	fixture := benchFixture(b)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := slices.Clone(fixture)
		b.StartTimer()

		sorts.Insertion(v)
	}
}

func BenchmarkQuick(b *testing.B) {
	fixture := benchFixture(b)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := slices.Clone(fixture)
		b.StartTimer()

		sorts.Quick(v)
	}
}

func BenchmarkMerge(b *testing.B) {
	fixture := benchFixture(b)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sorts.Merge(fixture)
	}
}
