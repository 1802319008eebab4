// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise kernels the discrepancy aggregator is built
//     from: scaled accumulation, scaling, NaN substitution, element-wise
//     minimum and transposition.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) on the flat row-major buffer.
//   - Functions that return a matrix always allocate a fresh one; functions
//     documented as in-place only touch their first argument.

package matrix

import "math"

const (
	ctxAxpy       = "Axpy"
	ctxReplaceNaN = "ReplaceNaN"
	ctxMinimum    = "Minimum"
	ctxTranspose  = "Transpose"
	ctxApply      = "Apply"
)

// Axpy accumulates dst += alpha*src in place.
// MAIN DESCRIPTION:
//   - Scaled accumulation used to build the weighted distance sum.
//
// Behavior highlights:
//   - NaN in src propagates into dst (IEEE arithmetic, no special casing).
//   - src is never mutated.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch if shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Axpy(dst *Dense, alpha float64, src *Dense) error {
	if err := validateDensePair(dst, src); err != nil {
		return matrixErrorf(ctxAxpy, err)
	}
	for k, v := range src.data {
		dst.data[k] += alpha * v
	}

	return nil
}

// ReplaceNaN returns a copy of m where every NaN is replaced by v.
// The input is left untouched so callers can keep the raw values.
// Complexity: O(r*c) time and space.
func ReplaceNaN(m *Dense, v float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxReplaceNaN, ErrNilMatrix)
	}
	out := m.clone()
	for k, x := range out.data {
		if math.IsNaN(x) {
			out.data[k] = v
		}
	}

	return out, nil
}

// Minimum returns the element-wise minimum of a and b.
// If either operand is NaN at a position, the result is NaN there.
// Complexity: O(r*c).
func Minimum(a, b *Dense) (*Dense, error) {
	if err := validateDensePair(a, b); err != nil {
		return nil, matrixErrorf(ctxMinimum, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		// math.Min returns NaN when either argument is NaN.
		out.data[k] = math.Min(a.data[k], b.data[k])
	}

	return out, nil
}

// Transpose returns the c×r transpose of m.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Apply returns a new matrix with fn applied to every element.
// Complexity: O(r*c).
func Apply(m *Dense, fn func(float64) float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxApply, ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, x := range m.data {
		out.data[k] = fn(x)
	}

	return out, nil
}

// validateDensePair checks presence and equal shape of two Dense operands.
func validateDensePair(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return ValidateSameShape(a, b)
}
