package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/discrepancy/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestAxpy verifies scaled accumulation and NaN propagation.
func TestAxpy(t *testing.T) {
	dst := mustRows(t, [][]float64{{1, 1}, {1, 1}})
	src := mustRows(t, [][]float64{{1, 2}, {math.NaN(), 4}})

	require.NoError(t, matrix.Axpy(dst, 0.5, src))
	got := dst.ToRows()
	assert.Equal(t, 1.5, got[0][0])
	assert.Equal(t, 2.0, got[0][1])
	assert.True(t, math.IsNaN(got[1][0]), "NaN in src must propagate")
	assert.Equal(t, 3.0, got[1][1])

	// src is untouched
	v, _ := src.At(0, 1)
	assert.Equal(t, 2.0, v)
}

// TestAxpyErrors covers nil and shape violations.
func TestAxpyErrors(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})

	assert.ErrorIs(t, matrix.Axpy(nil, 1, a), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.Axpy(a, 1, b), matrix.ErrDimensionMismatch)
}

// TestReplaceNaN checks substitution happens on a copy only.
func TestReplaceNaN(t *testing.T) {
	m := mustRows(t, [][]float64{{math.NaN(), 1}})
	out, err := matrix.ReplaceNaN(m, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}}, out.ToRows())

	v, _ := m.At(0, 0)
	assert.True(t, math.IsNaN(v), "input must keep its NaN")
}

// TestMinimum checks element-wise min and NaN behavior.
func TestMinimum(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 5}, {math.NaN(), 2}})
	b := mustRows(t, [][]float64{{3, 4}, {0, 2}})

	out, err := matrix.Minimum(a, b)
	require.NoError(t, err)
	got := out.ToRows()
	assert.Equal(t, 1.0, got[0][0])
	assert.Equal(t, 4.0, got[0][1])
	assert.True(t, math.IsNaN(got[1][0]))
	assert.Equal(t, 2.0, got[1][1])

	_, err = matrix.Minimum(a, mustRows(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose checks shape swap and index mapping.
func TestTranspose(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestApply checks a fresh matrix is returned.
func TestApply(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2}})
	out, err := matrix.Apply(m, math.Abs)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, out.ToRows())
	assert.Equal(t, [][]float64{{1, -2}}, m.ToRows())
}

// TestValidators covers the shared guards.
func TestValidators(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})

	assert.NoError(t, matrix.ValidateSameShape(m, m))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
