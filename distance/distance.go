package distance

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coordinate is the numeric type a single axis value may have.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredEuclidean[T Coordinate](a, b []T) float64 {
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return sum
}

// Euclidean calculates the Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean[T Coordinate](a, b []T) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// AxisGap returns the absolute difference of a and b on a single axis.
// This is the distance from a to the splitting hyperplane through b.
func AxisGap[T Coordinate](a, b []T, axis int) float64 {
	return math.Abs(float64(a[axis]) - float64(b[axis]))
}
