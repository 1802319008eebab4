// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric containers used by the
// discrepancy engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Mask, a boolean matrix of the same shape used to accumulate
//     inadmissibility decisions.
//   - Element-wise kernels (Axpy, Scale, Minimum, ReplaceNaN, Transpose)
//     that never hide allocations and always iterate i→j.
//
// NaN is a legal value everywhere in this package: downstream it means
// "forbidden pair" or "undefined distance", so Dense does not reject it.
//
// See example_test.go for usage patterns.
package matrix
