package distance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/discrepancy/covariate"
	"github.com/katalvlaran/discrepancy/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCovariate_AutoContinuous routes numeric columns to Continuous.
func TestCovariate_AutoContinuous(t *testing.T) {
	D, err := distance.Covariate(
		covariate.NewColumn("x", covariate.Floats(1, 5)),
		covariate.NewColumn("x", covariate.Values{2, 3}),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 2}}, D.ToRows())
}

// TestCovariate_AutoCategorical routes treated labels to the categorical path.
func TestCovariate_AutoCategorical(t *testing.T) {
	tr := covariate.NewColumn("day", covariate.Labels("mon", "tue"))
	co := covariate.NewColumn("day", covariate.Labels("tue", "mon"))

	res, err := distance.Resolve(tr, co)
	require.NoError(t, err)
	assert.Equal(t, distance.Resolved{Kind: covariate.Categorical, Levels: 2}, res)

	D, err := distance.Covariate(tr, co)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, D.ToRows())
}

// TestCovariate_ControlOnlyLabels documents the treated-only inference:
// labels in the control column alone keep the continuous path, which then
// refuses the label cells.
func TestCovariate_ControlOnlyLabels(t *testing.T) {
	tr := covariate.NewColumn("x", covariate.Floats(1, 2))
	co := covariate.NewColumn("x", covariate.Values{"a", 2})

	res, err := distance.Resolve(tr, co)
	require.NoError(t, err)
	assert.Equal(t, covariate.Continuous, res.Kind)

	_, err = distance.Covariate(tr, co)
	assert.ErrorIs(t, err, covariate.ErrNotNumeric)
}

// TestCovariate_ExplicitKindWins lets a tagged column override Auto.
func TestCovariate_ExplicitKindWins(t *testing.T) {
	tr := covariate.CyclicColumn("weekday", 7, covariate.Floats(0))
	co := covariate.NewColumn("weekday", covariate.Floats(6))

	res, err := distance.Resolve(tr, co)
	require.NoError(t, err)
	assert.Equal(t, distance.Resolved{Kind: covariate.Cyclic, Levels: 7}, res)

	D, err := distance.Covariate(tr, co)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}}, D.ToRows())

	// control-side tag works the same way
	res, err = distance.Resolve(co, tr)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Levels)
}

// TestCovariate_KindMismatch rejects conflicting explicit tags.
func TestCovariate_KindMismatch(t *testing.T) {
	_, err := distance.Covariate(
		covariate.ContinuousColumn("x", 1),
		covariate.CategoricalColumn("x", covariate.Labels("a")),
	)
	assert.ErrorIs(t, err, distance.ErrKindMismatch)

	_, err = distance.Covariate(
		covariate.CyclicColumn("m", 12, covariate.Floats(1)),
		covariate.CyclicColumn("m", 7, covariate.Floats(1)),
	)
	assert.ErrorIs(t, err, distance.ErrKindMismatch)
}

// TestCovariate_InvalidColumn surfaces column validation errors.
func TestCovariate_InvalidColumn(t *testing.T) {
	_, err := distance.Covariate(covariate.NewColumn("x", nil), covariate.ContinuousColumn("x", 1))
	assert.ErrorIs(t, err, covariate.ErrEmptyColumn)
}

// TestCovariate_CategoricalNumericCodes encodes numeric codes as labels
// instead of comparing them modulo the level count.
func TestCovariate_CategoricalNumericCodes(t *testing.T) {
	D, err := distance.Covariate(
		covariate.CategoricalColumn("site", covariate.Values{10, 20}),
		covariate.CategoricalColumn("site", covariate.Values{20, 30}),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {0, 1}}, D.ToRows())
}

// TestCovariate_LevelCountPolicy compares union and treated-only level counts.
func TestCovariate_LevelCountPolicy(t *testing.T) {
	tr := covariate.NewColumn("c", covariate.Labels("a", "a", "b"))
	co := covariate.NewColumn("c", covariate.Values{"c", "d", nil})

	shared, err := distance.Resolve(tr, co)
	require.NoError(t, err)
	assert.Equal(t, 5, shared.Levels, "a, b, c, d and missing")

	legacy, err := distance.Resolve(tr, co, distance.WithIndependentEncoding())
	require.NoError(t, err)
	assert.Equal(t, 2, legacy.Levels, "treated column only")
	assert.Equal(t, distance.IndependentEncoding, legacy.Encoding)

	// the last option wins, and WithSharedEncoding matches the default
	back, err := distance.Resolve(tr, co, distance.WithIndependentEncoding(), distance.WithSharedEncoding())
	require.NoError(t, err)
	assert.Equal(t, shared, back)
	assert.Equal(t, distance.SharedEncoding, back.Encoding)
}

// TestCompute_UsesResolvedEncoding encodes labels under the policy recorded
// by Resolve, so the level count and the codes always agree.
func TestCompute_UsesResolvedEncoding(t *testing.T) {
	tr := covariate.NewColumn("c", covariate.Labels("a", "b"))
	co := covariate.NewColumn("c", covariate.Labels("c", "d", "e"))

	res, err := distance.Resolve(tr, co, distance.WithSharedEncoding())
	require.NoError(t, err)
	require.Equal(t, 5, res.Levels)

	// union a=0 b=1 c=2 d=3 e=4 on a ring of 5
	D, err := distance.Compute(res, tr.Values, co.Values)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{2, 2, 1},
		{1, 2, 2},
	}, D.ToRows())

	viaCovariate, err := distance.Covariate(tr, co)
	require.NoError(t, err)
	assert.Equal(t, D.ToRows(), viaCovariate.ToRows())
}

// TestCovariate_CategoricalZeroIffEqual checks the equal/unequal pattern
// for random label columns under the shared encoding.
func TestCovariate_CategoricalZeroIffEqual(t *testing.T) {
	pool := []any{"north", "south", "east", "west", nil}
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		tr := make(covariate.Values, 1+rng.Intn(6))
		co := make(covariate.Values, 1+rng.Intn(6))
		for i := range tr {
			tr[i] = pool[rng.Intn(4)] // treated always has a label
		}
		for j := range co {
			co[j] = pool[rng.Intn(len(pool))]
		}

		D, err := distance.Covariate(covariate.NewColumn("dir", tr), covariate.NewColumn("dir", co))
		require.NoError(t, err)
		rows := D.ToRows()
		for i := range tr {
			for j := range co {
				same := tr[i] == co[j]
				assert.Equal(t, same, rows[i][j] == 0, "pair (%v, %v)", tr[i], co[j])
			}
		}
	}
}

// TestCovariate_ContinuousMissing propagates NaN for missing cells.
func TestCovariate_ContinuousMissing(t *testing.T) {
	D, err := distance.Covariate(
		covariate.ContinuousColumn("x", 1, 2),
		covariate.NewColumn("x", covariate.Values{nil, 4}),
	)
	require.NoError(t, err)
	rows := D.ToRows()
	assert.True(t, math.IsNaN(rows[0][0]))
	assert.Equal(t, 3.0, rows[0][1])
	assert.True(t, math.IsNaN(rows[1][0]))
	assert.Equal(t, 2.0, rows[1][1])
}

// TestCompute_InvalidKind refuses an unresolved decision.
func TestCompute_InvalidKind(t *testing.T) {
	_, err := distance.Compute(distance.Resolved{}, covariate.Floats(1), covariate.Floats(1))
	assert.ErrorIs(t, err, covariate.ErrInvalidKind)
}
