// Package distance provides point distance calculations for the k-d tree.
//
// All functions are generic over Coordinate, so integer and floating point
// coordinates share one implementation. Arithmetic is carried out in float64
// after widening each coordinate, which keeps unsigned differences from
// wrapping around.
//
// # Supported Metrics
//
//   - Euclidean: square root of the summed squared per-axis differences
//   - SquaredEuclidean: the same sum without the square root
//
// # Usage
//
//	d := distance.Euclidean([]float64{2, 3}, []float64{6, 3}) // 4
//	gap := distance.AxisGap(query, splitPoint, axis)
package distance
