package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 3, 0, 100)

	require.Len(t, p, 8)
	for _, pt := range p {
		require.Len(t, pt, 3)
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 100.0)
		}
	}
}

func TestUniformPointsDoNotAlias(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(2, 2, 0, 1)
	p[0] = append(p[0], 42)

	assert.Len(t, p[1], 2)
	assert.NotEqual(t, 42.0, p[1][0])
}

func TestRoundedPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.RoundedPoints(50, 2, 0, 10, 1)

	for _, pt := range p {
		for _, v := range pt {
			assert.Equal(t, math.Round(v), v)
			assert.LessOrEqual(t, v, 10.0)
		}
	}
}

func TestIntPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.IntPoints(20, 4, 5)

	require.Len(t, p, 20)
	for _, pt := range p {
		require.Len(t, pt, 4)
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 5)
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.UniformPoints(1, 10, 0, 1)

	rng.Reset()
	p2 := rng.UniformPoints(1, 10, 0, 1)

	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestUnique(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}, {1, 2}, {1, 3}}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {1, 3}}, Unique(in))
}

func TestExactNearest(t *testing.T) {
	points := [][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}

	got := ExactNearest([]float64{6, 3}, points, 3)

	require.Len(t, got, 3)
	assert.InDelta(t, math.Sqrt2, got[0].Distance, 1e-9)
	assert.InDelta(t, math.Sqrt2, got[1].Distance, 1e-9)
	assert.InDelta(t, math.Sqrt(8), got[2].Distance, 1e-9)
	assert.Equal(t, []float64{8, 1}, got[2].Point)

	t.Run("MoreThanAvailable", func(t *testing.T) {
		assert.Len(t, ExactNearest([]float64{0, 0}, points, 100), len(points))
	})

	t.Run("Integers", func(t *testing.T) {
		got := ExactNearest([]uint{0, 0}, [][]uint{{3, 4}, {1, 1}}, 1)
		require.Len(t, got, 1)
		assert.Equal(t, []uint{1, 1}, got[0].Point)
	})
}

func TestSameDistances(t *testing.T) {
	assert.True(t, SameDistances([]float64{1, 2, 2}, []float64{2, 1, 2}, 1e-9))
	assert.False(t, SameDistances([]float64{1, 2}, []float64{1, 2, 3}, 1e-9))
	assert.False(t, SameDistances([]float64{1, 2}, []float64{1, 2.5}, 1e-9))
}
