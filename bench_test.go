package kdtree

import (
	"fmt"
	"testing"

	"github.com/hupe1980/kdtree/testutil"
)

func BenchmarkBuild(b *testing.B) {
	for _, size := range []int{1_000, 10_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			points := toPoints(testutil.NewRNG(4711).UniformPoints(size, 3, 0, 100))

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := Build(3, points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := testutil.NewRNG(4711)
	points := toPoints(rng.UniformPoints(b.N, 3, 0, 100))
	tree, _ := New[float64](3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Insert(points[i])
	}
}

func BenchmarkContains(b *testing.B) {
	points := toPoints(testutil.NewRNG(4711).UniformPoints(100_000, 3, 0, 100))
	tree, _ := Build(3, points)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Contains(points[i%len(points)])
	}
}

func BenchmarkNearestNeighbors(b *testing.B) {
	rng := testutil.NewRNG(4711)
	tree, _ := Build(3, toPoints(rng.UniformPoints(100_000, 3, 0, 100)))
	queries := toPoints(rng.UniformPoints(1_000, 3, 0, 100))

	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tree.NearestNeighbors(queries[i%len(queries)], n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
