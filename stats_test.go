package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	tree, err := Build(2, []Point[int]{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
	require.NoError(t, err)

	assert.Equal(t, Stats{Size: 6, Height: 3, Leaves: 3, Dimension: 2}, tree.Stats())

	empty, _ := New[int](4)
	assert.Equal(t, Stats{Dimension: 4}, empty.Stats())
}

func TestPoints(t *testing.T) {
	input := []Point[int]{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
	tree, err := Build(2, input)
	require.NoError(t, err)

	points := tree.Points()
	assert.ElementsMatch(t, input, points)

	// Pre-order starts at the root.
	assert.Equal(t, Point[int]{7, 2}, points[0])

	points[0][0] = 100
	ok, _ := tree.Contains(Point[int]{7, 2})
	assert.True(t, ok)
}

func TestAll(t *testing.T) {
	tree, err := Build(2, []Point[int]{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}})
	require.NoError(t, err)

	var seen []Point[int]
	for p := range tree.All() {
		seen = append(seen, p)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []Point[int]{{7, 2}, {5, 4}}, seen)
}
