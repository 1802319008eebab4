package distance

import (
	"fmt"

	"github.com/katalvlaran/discrepancy/covariate"
	"github.com/katalvlaran/discrepancy/matrix"
)

// Resolved is the outcome of kind resolution for one treated/control pair.
type Resolved struct {
	Kind     covariate.Kind // Continuous, Cyclic or Categorical, never Auto
	Levels   int            // modulo base for Cyclic and Categorical; 0 for Continuous
	Encoding EncodingPolicy // label encoding that Levels was counted under
}

// Resolve decides once how a covariate is compared.
//
// Rules:
//   - An explicit kind on either column wins over Auto.
//   - Two explicit kinds must agree; cyclic columns must agree on Levels.
//   - Auto on both sides: any label in the treated column makes the
//     covariate Categorical, otherwise it is Continuous. Labels that appear
//     only in the control column do not trigger the categorical path.
//   - Categorical level count: distinct values (missing counts as one) of
//     both columns under SharedEncoding, of the treated column under
//     IndependentEncoding.
//
// Errors:
//   - Column.Validate failures.
//   - ErrKindMismatch for conflicting explicit kinds.
func Resolve(treated, control covariate.Column, opts ...Option) (Resolved, error) {
	o := gatherOptions(opts...)
	if err := treated.Validate(); err != nil {
		return Resolved{}, distanceErrorf("Resolve: treated", err)
	}
	if err := control.Validate(); err != nil {
		return Resolved{}, distanceErrorf("Resolve: control", err)
	}

	kind, err := resolveKind(treated, control)
	if err != nil {
		return Resolved{}, err
	}

	switch kind {
	case covariate.Cyclic:
		levels := treated.Levels
		if treated.Kind != covariate.Cyclic {
			levels = control.Levels
		}
		return Resolved{Kind: kind, Levels: levels, Encoding: o.encoding}, nil
	case covariate.Categorical:
		var enc *covariate.Encoder
		if o.encoding == SharedEncoding {
			enc, err = covariate.FitEncoder(treated.Values, control.Values)
		} else {
			enc, err = covariate.FitEncoder(treated.Values)
		}
		if err != nil {
			return Resolved{}, distanceErrorf("Resolve", err)
		}
		return Resolved{Kind: kind, Levels: enc.Cardinality(), Encoding: o.encoding}, nil
	default:
		return Resolved{Kind: covariate.Continuous}, nil
	}
}

// resolveKind merges the declared kinds of both columns.
func resolveKind(treated, control covariate.Column) (covariate.Kind, error) {
	tk, ck := treated.Kind, control.Kind
	switch {
	case tk == covariate.Auto && ck == covariate.Auto:
		if treated.Values.HasLabel() {
			return covariate.Categorical, nil
		}
		return covariate.Continuous, nil
	case tk == covariate.Auto:
		return ck, nil
	case ck == covariate.Auto:
		return tk, nil
	case tk != ck:
		return covariate.Auto, fmt.Errorf("Resolve: %s vs %s: %w", tk, ck, ErrKindMismatch)
	case tk == covariate.Cyclic && treated.Levels != control.Levels:
		return covariate.Auto, fmt.Errorf("Resolve: levels %d vs %d: %w", treated.Levels, control.Levels, ErrKindMismatch)
	}

	return tk, nil
}

// Covariate computes the n×m distance matrix of one covariate.
//
// MAIN DESCRIPTION:
//   - Resolve the covariate's kind, then route to Continuous, CyclicValues
//     or the categorical path (labels always encoded, compared cyclically
//     with one level per distinct value).
//
// Errors:
//   - Resolve failures.
//   - covariate.ErrNotNumeric when a continuous column holds labels.
//
// Complexity: O(n·m) plus O(N log N) encoding for label columns.
func Covariate(treated, control covariate.Column, opts ...Option) (*matrix.Dense, error) {
	res, err := Resolve(treated, control, opts...)
	if err != nil {
		return nil, distanceErrorf("Covariate", err)
	}

	return Compute(res, treated.Values, control.Values)
}

// Compute runs the primitive selected by an earlier Resolve.
// It lets callers resolve once and reuse the decision. Labels are encoded
// under res.Encoding, the policy Levels was counted with.
func Compute(res Resolved, treated, control covariate.Values) (*matrix.Dense, error) {
	switch res.Kind {
	case covariate.Continuous:
		t, err := treated.Floats()
		if err != nil {
			return nil, distanceErrorf("Compute: treated", err)
		}
		c, err := control.Floats()
		if err != nil {
			return nil, distanceErrorf("Compute: control", err)
		}
		return Continuous(t, c)
	case covariate.Cyclic:
		return cyclicValues(treated, control, res.Levels, res.Encoding)
	case covariate.Categorical:
		t, c, err := encodePair(treated, control, res.Encoding, true)
		if err != nil {
			return nil, distanceErrorf("Compute", err)
		}
		return Cyclic(t, c, res.Levels)
	}

	return nil, distanceErrorf("Compute", covariate.ErrInvalidKind)
}
