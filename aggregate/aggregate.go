package aggregate

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/discrepancy/covariate"
	"github.com/katalvlaran/discrepancy/distance"
	"github.com/katalvlaran/discrepancy/matrix"
)

// Unset returns the "not set" threshold marker (NaN).
func Unset() float64 { return math.NaN() }

// IsUnset reports whether threshold t is the "not set" marker.
func IsUnset(t float64) bool { return math.IsNaN(t) }

// Result is the full outcome of Evaluate.
type Result struct {
	// Matrix is the n×m discrepancy matrix; NaN marks inadmissible pairs.
	Matrix *matrix.Dense

	// Mask is true for every inadmissible pair.
	Mask *matrix.Mask

	// Resolved holds the per-covariate kind decision; the zero value
	// (Kind Auto) marks a skipped covariate.
	Resolved []distance.Resolved

	// Exclusions counts, per covariate, the pairs it ruled out that no
	// earlier covariate had already ruled out.
	Exclusions []int
}

// Participating returns the indices of covariates with a set threshold.
func (r *Result) Participating() []int {
	var out []int
	for i, res := range r.Resolved {
		if res.Kind != covariate.Auto {
			out = append(out, i)
		}
	}

	return out
}

// Compute returns the n×m discrepancy matrix of treated against control.
//
// MAIN DESCRIPTION:
//   - Weighted mean of per-covariate distances over ALL k covariates,
//     with NaN wherever any covariate's threshold rules the pair out.
//
// Inputs:
//   - treated, control: covariate tables with the same column count k.
//   - thresholds: length k; Unset() skips a covariate, t ≥ 0 is a maximum
//     distance, t < 0 makes |t| a minimum distance.
//   - scaling: length k positive weights, or nil for unit weights.
//
// Errors:
//   - ErrNilTable, ErrEmptyTable, ErrDimensionMismatch, ErrInvalidScaling
//     before any distance is computed.
//   - distance.Covariate failures, wrapped with the covariate index.
func Compute(treated, control *covariate.Table, thresholds, scaling []float64, opts ...Option) (*matrix.Dense, error) {
	res, err := Evaluate(treated, control, thresholds, scaling, opts...)
	if err != nil {
		return nil, err
	}

	return res.Matrix, nil
}

// Admissible returns only the inadmissibility mask (true = forbidden).
func Admissible(treated, control *covariate.Table, thresholds, scaling []float64, opts ...Option) (*matrix.Mask, error) {
	res, err := Evaluate(treated, control, thresholds, scaling, opts...)
	if err != nil {
		return nil, err
	}

	return res.Mask, nil
}

// Evaluate computes the discrepancy matrix together with its mask and
// per-covariate diagnostics.
//
// Implementation:
//   - Stage 1: validate tables and vector lengths (fail fast).
//   - Stage 2: D = 0 (n×m), mask = false (n×m).
//   - Stage 3: for every covariate with a set threshold, in index order:
//     raw = distance.Covariate; D += scaling·raw; test = raw with NaN→0;
//     OR the threshold violation of test into mask.
//   - Stage 4: D /= k (total covariate count).
//   - Stage 5: D[mask] = NaN.
//
// Complexity:
//   - Time O(n·m·k). Space O(n·m) sequential, O(n·m·k) with parallelism > 1.
func Evaluate(treated, control *covariate.Table, thresholds, scaling []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validate(treated, control, thresholds, scaling); err != nil {
		return nil, aggregateErrorf("Evaluate", err)
	}

	n, m, k := treated.NumRows(), control.NumRows(), treated.NumColumns()
	D, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, aggregateErrorf("Evaluate", err)
	}
	mask, err := matrix.NewMask(n, m)
	if err != nil {
		return nil, aggregateErrorf("Evaluate", err)
	}
	acc := &accumulator{
		sum:        D,
		mask:       mask,
		thresholds: thresholds,
		scaling:    scaling,
		exclusions: make([]int, k),
	}
	resolved := make([]distance.Resolved, k)

	if o.parallelism > 1 {
		if err = evaluateParallel(treated, control, thresholds, resolved, acc, o); err != nil {
			return nil, aggregateErrorf("Evaluate", err)
		}
	} else {
		for i := 0; i < k; i++ {
			if IsUnset(thresholds[i]) {
				continue
			}
			raw, r, err := covariateDistance(treated, control, i, o.distance)
			if err != nil {
				return nil, aggregateErrorf("Evaluate", err)
			}
			resolved[i] = r
			if err = acc.add(i, raw); err != nil {
				return nil, aggregateErrorf("Evaluate", err)
			}
		}
	}

	// Divide by the total covariate count, skipped covariates included.
	total := float64(k)
	if D, err = matrix.Apply(D, func(x float64) float64 { return x / total }); err != nil {
		return nil, aggregateErrorf("Evaluate", err)
	}
	if err = mask.ApplyTo(D); err != nil {
		return nil, aggregateErrorf("Evaluate", err)
	}

	return &Result{Matrix: D, Mask: mask, Resolved: resolved, Exclusions: acc.exclusions}, nil
}

// evaluateParallel computes participating covariates on a bounded errgroup
// pool, then accumulates them in index order.
func evaluateParallel(treated, control *covariate.Table, thresholds []float64, resolved []distance.Resolved, acc *accumulator, o Options) error {
	k := len(thresholds)
	raws := make([]*matrix.Dense, k)

	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for i := 0; i < k; i++ {
		if IsUnset(thresholds[i]) {
			continue
		}
		i := i
		g.Go(func() error {
			raw, r, err := covariateDistance(treated, control, i, o.distance)
			if err != nil {
				return err
			}
			// each goroutine owns slot i
			raws[i], resolved[i] = raw, r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, raw := range raws {
		if raw == nil {
			continue
		}
		if err := acc.add(i, raw); err != nil {
			return err
		}
	}

	return nil
}

// covariateDistance resolves and computes covariate i.
func covariateDistance(treated, control *covariate.Table, i int, opts []distance.Option) (*matrix.Dense, distance.Resolved, error) {
	tc, err := treated.Column(i)
	if err != nil {
		return nil, distance.Resolved{}, err
	}
	cc, err := control.Column(i)
	if err != nil {
		return nil, distance.Resolved{}, err
	}
	r, err := distance.Resolve(tc, cc, opts...)
	if err != nil {
		return nil, distance.Resolved{}, fmt.Errorf("covariate %d: %w", i, err)
	}
	raw, err := distance.Compute(r, tc.Values, cc.Values)
	if err != nil {
		return nil, distance.Resolved{}, fmt.Errorf("covariate %d: %w", i, err)
	}

	return raw, r, nil
}

// accumulator owns the running sum and mask of one Evaluate call.
type accumulator struct {
	sum        *matrix.Dense
	mask       *matrix.Mask
	thresholds []float64
	scaling    []float64 // nil means unit weights
	exclusions []int
}

// add folds covariate i's raw distance into the sum and the mask.
// raw itself is never modified.
func (a *accumulator) add(i int, raw *matrix.Dense) error {
	w := 1.0
	if a.scaling != nil {
		w = a.scaling[i]
	}
	if err := matrix.Axpy(a.sum, w, raw); err != nil {
		return fmt.Errorf("covariate %d: %w", i, err)
	}

	// Missing values never rule a pair out on their own.
	test, err := matrix.ReplaceNaN(raw, 0)
	if err != nil {
		return fmt.Errorf("covariate %d: %w", i, err)
	}
	t := a.thresholds[i]
	var violates func(float64) bool
	if t >= 0 {
		violates = func(d float64) bool { return d > t }
	} else {
		limit := math.Abs(t)
		violates = func(d float64) bool { return d <= limit }
	}
	added, err := a.mask.MarkWhere(test, violates)
	if err != nil {
		return fmt.Errorf("covariate %d: %w", i, err)
	}
	a.exclusions[i] = added

	return nil
}

// validate enforces every shape contract before any work is done.
func validate(treated, control *covariate.Table, thresholds, scaling []float64) error {
	if treated == nil || control == nil {
		return ErrNilTable
	}
	if treated.NumColumns() == 0 || treated.NumRows() == 0 ||
		control.NumColumns() == 0 || control.NumRows() == 0 {
		return ErrEmptyTable
	}
	k := treated.NumColumns()
	if control.NumColumns() != k {
		return fmt.Errorf("control has %d covariates, treated %d: %w", control.NumColumns(), k, ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(thresholds, k); err != nil {
		return fmt.Errorf("%d thresholds for %d covariates: %w (%w)", len(thresholds), k, ErrDimensionMismatch, err)
	}
	if scaling == nil {
		return nil
	}
	if err := matrix.ValidateVecLen(scaling, k); err != nil {
		return fmt.Errorf("%d scaling weights for %d covariates: %w (%w)", len(scaling), k, ErrDimensionMismatch, err)
	}
	for i, w := range scaling {
		if IsUnset(thresholds[i]) {
			continue
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("covariate %d weight %g: %w", i, w, ErrInvalidScaling)
		}
	}

	return nil
}
