// Package testutil provides testing utilities for kdtree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points, computing exact
// nearest neighbors, and comparing neighbor sets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 2, 0, 100)
//
// # Exact Search (Ground Truth)
//
//	truth := testutil.ExactNearest(query, points, n)
//
// # Result Verification
//
//	ok := testutil.SameDistances(truth, got, 1e-9)
package testutil
