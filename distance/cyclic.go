package distance

import (
	"math"

	"github.com/katalvlaran/discrepancy/covariate"
	"github.com/katalvlaran/discrepancy/matrix"
)

// Cyclic returns the n×m matrix of shortest circular differences between
// treated and control on a scale of levels positions.
//
// Values are truncated toward zero before comparison. A NaN or infinite
// value yields NaN for its row (treated) or column (control).
//
// Errors:
//   - ErrInvalidLevels if levels <= 0.
//   - ErrEmptyInput if either sequence is empty.
//
// Complexity: O(n·m) time, three n·m buffers.
func Cyclic(treated, control []float64, levels int) (*matrix.Dense, error) {
	if levels <= 0 {
		return nil, distanceErrorf("Cyclic", ErrInvalidLevels)
	}
	if len(treated) == 0 || len(control) == 0 {
		return nil, distanceErrorf("Cyclic", ErrEmptyInput)
	}
	L := float64(levels)
	t, c := reduce(treated, L), reduce(control, L)

	forward, err := Signed(t, c)
	if err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}
	backward, err := Signed(c, t)
	if err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}
	wrap := func(x float64) float64 { return wrapMod(x, L) }
	if forward, err = matrix.Apply(forward, wrap); err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}
	if backward, err = matrix.Apply(backward, wrap); err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}
	// backward is m×n; align it with forward before taking the minimum.
	backward, err = matrix.Transpose(backward)
	if err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}
	out, err := matrix.Minimum(forward, backward)
	if err != nil {
		return nil, distanceErrorf("Cyclic", err)
	}

	return out, nil
}

// CyclicValues is Cyclic over raw cells.
//
// If either column holds a label, label columns are first encoded to level
// indices with a covariate.Encoder (see EncodingPolicy); missing cells land
// on the encoder's unknown level. Otherwise cells are coerced to float64
// and passed to Cyclic unchanged.
func CyclicValues(treated, control covariate.Values, levels int, opts ...Option) (*matrix.Dense, error) {
	return cyclicValues(treated, control, levels, gatherOptions(opts...).encoding)
}

func cyclicValues(treated, control covariate.Values, levels int, policy EncodingPolicy) (*matrix.Dense, error) {
	if !treated.HasLabel() && !control.HasLabel() {
		t, err := treated.Floats()
		if err != nil {
			return nil, distanceErrorf("CyclicValues: treated", err)
		}
		c, err := control.Floats()
		if err != nil {
			return nil, distanceErrorf("CyclicValues: control", err)
		}

		return Cyclic(t, c, levels)
	}
	t, c, err := encodePair(treated, control, policy, false)
	if err != nil {
		return nil, distanceErrorf("CyclicValues", err)
	}

	return Cyclic(t, c, levels)
}

// encodePair turns a treated/control pair into level indices.
//
// SharedEncoding fits one encoder on both columns and encodes both.
// IndependentEncoding fits one encoder per column; a purely numeric column
// is left numeric, except the treated column when forceTreated is set.
func encodePair(treated, control covariate.Values, policy EncodingPolicy, forceTreated bool) (t, c []float64, err error) {
	if policy == SharedEncoding {
		enc, err := covariate.FitEncoder(treated, control)
		if err != nil {
			return nil, nil, err
		}
		if t, err = enc.Encode(treated); err != nil {
			return nil, nil, err
		}
		if c, err = enc.Encode(control); err != nil {
			return nil, nil, err
		}

		return t, c, nil
	}
	if t, err = encodeAlone(treated, forceTreated); err != nil {
		return nil, nil, err
	}
	if c, err = encodeAlone(control, false); err != nil {
		return nil, nil, err
	}

	return t, c, nil
}

// encodeAlone encodes one column against its own labels.
func encodeAlone(vs covariate.Values, force bool) ([]float64, error) {
	if !force && !vs.HasLabel() {
		return vs.Floats()
	}
	enc, err := covariate.FitEncoder(vs)
	if err != nil {
		return nil, err
	}

	return enc.Encode(vs)
}

// reduce returns a copy of xs truncated toward zero and wrapped into
// [0, L), so later differences stay within (-L, L) and cannot overflow.
func reduce(xs []float64, L float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = wrapMod(math.Trunc(x), L)
	}

	return out
}

// wrapMod maps x into [0, L). NaN and ±Inf map to NaN.
func wrapMod(x, L float64) float64 {
	r := math.Mod(x, L)
	if r < 0 {
		r += L
	}
	if r == 0 {
		return 0 // normalise -0
	}

	return r
}
