package covariate

import "fmt"

// Encoder maps labels to integer levels.
//
// Levels are assigned to the fitted labels in lexicographic order
// (0..L-1). Missing cells map to the "unknown" level L, which always
// exists, so an encoded column only ever holds values in [0, L].
//
// The mapping depends only on the set of labels, never on input order
// or map iteration, so encoding is reproducible across calls.
type Encoder struct {
	labels  []string       // sorted distinct labels
	index   map[string]int // label → level
	missing bool           // a missing cell was seen during fit
}

// FitEncoder builds an Encoder on the union of the given columns.
// Passing a single column reproduces per-column (independent) encoding.
//
// Complexity: O(N log N) for N cells in total.
func FitEncoder(columns ...Values) (*Encoder, error) {
	var all Values
	for _, c := range columns {
		all = append(all, c...)
	}
	labels, missing, err := all.Distinct()
	if err != nil {
		return nil, fmt.Errorf("FitEncoder: %w", err)
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	return &Encoder{labels: labels, index: index, missing: missing}, nil
}

// UnknownLevel is the level assigned to missing cells.
func (e *Encoder) UnknownLevel() int { return len(e.labels) }

// Cardinality is the number of distinct values seen during fit,
// counting missing as one value when it occurred.
func (e *Encoder) Cardinality() int {
	if e.missing {
		return len(e.labels) + 1
	}

	return len(e.labels)
}

// Encode turns vs into level indices.
//
// Errors:
//   - ErrUnknownLabel when a cell was not seen during fit.
func (e *Encoder) Encode(vs Values) ([]float64, error) {
	out := make([]float64, len(vs))
	unknown := float64(e.UnknownLevel())
	for i, v := range vs {
		if IsMissing(v) {
			out[i] = unknown
			continue
		}
		k, err := key(v)
		if err != nil {
			return nil, fmt.Errorf("Encode: cell %d: %w", i, err)
		}
		l, ok := e.index[k]
		if !ok {
			return nil, fmt.Errorf("Encode: cell %d (%q): %w", i, k, ErrUnknownLabel)
		}
		out[i] = float64(l)
	}

	return out, nil
}
