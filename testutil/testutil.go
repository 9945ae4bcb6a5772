package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kdtree/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformPoints generates points with coordinates in range [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// RoundedPoints generates points in [minVal, maxVal] with every coordinate
// rounded to a multiple of step. Coarse steps produce many shared axis values,
// and occasionally identical points.
func (r *RNG) RoundedPoints(num, dimensions int, minVal, maxVal, step float64) [][]float64 {
	points := r.UniformPoints(num, dimensions, minVal, maxVal)
	for _, p := range points {
		for j := range p {
			p[j] = minVal + math.Round((p[j]-minVal)/step)*step
		}
	}
	return points
}

// IntPoints generates integer points with coordinates in [0, maxVal).
func (r *RNG) IntPoints(num, dimensions, maxVal int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]int, num)
	for i := range points {
		p := make([]int, dimensions)
		for j := range p {
			p[j] = r.rand.Intn(maxVal)
		}
		points[i] = p
	}

	return points
}

// Unique returns points with exact duplicates removed, keeping first occurrences.
func Unique[S ~[]T, T distance.Coordinate](points []S) []S {
	out := make([]S, 0, len(points))
	for _, p := range points {
		if !slices.ContainsFunc(out, func(q S) bool { return slices.Equal(p, q) }) {
			out = append(out, p)
		}
	}
	return out
}

// Match is a ground truth nearest-neighbor entry.
type Match[S any] struct {
	Distance float64
	Point    S
}

// ExactNearest returns the n points closest to q by brute force, sorted by
// ascending Euclidean distance.
func ExactNearest[S ~[]T, T distance.Coordinate](q S, points []S, n int) []Match[S] {
	qf := toFloat64(q)

	matches := make([]Match[S], len(points))
	for i, p := range points {
		matches[i] = Match[S]{
			Distance: floats.Distance(qf, toFloat64(p), 2),
			Point:    p,
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches[:min(n, len(matches))]
}

// Distances extracts the distances of matches.
func Distances[S any](matches []Match[S]) []float64 {
	out := make([]float64, len(matches))
	for i, m := range matches {
		out[i] = m.Distance
	}
	return out
}

// SameDistances reports whether want and got hold the same distances up to
// order, comparing each pair within tol.
func SameDistances(want, got []float64, tol float64) bool {
	if len(want) != len(got) {
		return false
	}
	w := slices.Clone(want)
	g := slices.Clone(got)
	slices.Sort(w)
	slices.Sort(g)
	return floats.EqualApprox(w, g, tol)
}

func toFloat64[T distance.Coordinate](p []T) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}
	return out
}
