// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	ctxMask      = "Mask"
	ctxMarkWhere = "Mask.MarkWhere"
	ctxApplyTo   = "Mask.ApplyTo"
)

// Mask is a row-major boolean matrix. A true cell marks a pair that has
// been ruled out; once set, a cell is never cleared (logical OR semantics).
type Mask struct {
	r, c int
	data []bool
}

// NewMask creates an r×c mask with every cell false.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxMask, ErrInvalidDimensions)
	}

	return &Mask{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// Rows returns the row count.
func (k *Mask) Rows() int { return k.r }

// Cols returns the column count.
func (k *Mask) Cols() int { return k.c }

// At reports whether (row, col) is marked.
func (k *Mask) At(row, col int) (bool, error) {
	if row < 0 || row >= k.r || col < 0 || col >= k.c {
		return false, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return k.data[row*k.c+col], nil
}

// Count returns the number of marked cells.
func (k *Mask) Count() int {
	n := 0
	for _, b := range k.data {
		if b {
			n++
		}
	}

	return n
}

// MarkWhere ORs pred(m[i,j]) into the mask for every cell of m.
// m is read only. Returns the number of newly marked cells.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrDimensionMismatch if m's shape differs from the mask.
//
// Complexity: O(r*c).
func (k *Mask) MarkWhere(m *Dense, pred func(float64) bool) (int, error) {
	if m == nil {
		return 0, matrixErrorf(ctxMarkWhere, ErrNilMatrix)
	}
	if m.r != k.r || m.c != k.c {
		return 0, matrixErrorf(ctxMarkWhere, ErrDimensionMismatch)
	}
	added := 0
	for idx, v := range m.data {
		if !k.data[idx] && pred(v) {
			k.data[idx] = true
			added++
		}
	}

	return added, nil
}

// ApplyTo overwrites every marked cell of m with NaN, in place.
// Complexity: O(r*c).
func (k *Mask) ApplyTo(m *Dense) error {
	if m == nil {
		return matrixErrorf(ctxApplyTo, ErrNilMatrix)
	}
	if m.r != k.r || m.c != k.c {
		return matrixErrorf(ctxApplyTo, ErrDimensionMismatch)
	}
	nan := math.NaN()
	for idx, b := range k.data {
		if b {
			m.data[idx] = nan
		}
	}

	return nil
}
