package covariate

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cast"
)

// Values holds the raw cells of one covariate for one unit group.
// A cell is missing (nil or NaN), a label (string or []byte) or numeric
// (anything spf13/cast can turn into a float64).
type Values []any

// Floats builds Values from float64 cells.
func Floats(xs ...float64) Values {
	out := make(Values, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}

// Labels builds Values from string cells.
func Labels(xs ...string) Values {
	out := make(Values, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}

// IsMissing reports whether v is a missing cell.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}

	return false
}

// IsLabel reports whether v is a label (non-numeric) cell.
func IsLabel(v any) bool {
	switch v.(type) {
	case string, []byte:
		return true
	}

	return false
}

// HasLabel reports whether any cell of vs is a label.
func (vs Values) HasLabel() bool {
	for _, v := range vs {
		if IsLabel(v) {
			return true
		}
	}

	return false
}

// Floats coerces every cell to float64. Missing cells become NaN.
//
// Errors:
//   - ErrNotNumeric (wrapped with the cell index) for label cells or
//     values spf13/cast cannot convert.
func (vs Values) Floats() ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if IsMissing(v) {
			out[i] = math.NaN()
			continue
		}
		if IsLabel(v) {
			return nil, fmt.Errorf("cell %d (%v): %w", i, v, ErrNotNumeric)
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("cell %d (%v): %w", i, err, ErrNotNumeric)
		}
		out[i] = f
	}

	return out, nil
}

// key returns the canonical label of a non-missing cell.
// []byte and numeric cells are rendered through spf13/cast so that the
// label "3" and the number 3 share a level.
func key(v any) (string, error) {
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrNotNumeric)
	}

	return s, nil
}

// Distinct returns the sorted distinct labels of vs and whether a missing
// cell was seen.
func (vs Values) Distinct() (labels []string, missing bool, err error) {
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if IsMissing(v) {
			missing = true
			continue
		}
		k, err := key(v)
		if err != nil {
			return nil, false, err
		}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			labels = append(labels, k)
		}
	}
	sort.Strings(labels) // map order never leaks into level indices

	return labels, missing, nil
}

// Cardinality counts distinct values of vs, missing counted as one value.
func (vs Values) Cardinality() (int, error) {
	labels, missing, err := vs.Distinct()
	if err != nil {
		return 0, err
	}
	n := len(labels)
	if missing {
		n++
	}

	return n, nil
}
