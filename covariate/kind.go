package covariate

// Kind tags how a covariate is compared.
//
//   - Auto       : infer from the treated column: any label ⇒ Categorical,
//     otherwise Continuous.
//   - Continuous : absolute difference of real values.
//   - Cyclic     : shortest circular difference modulo Column.Levels.
//   - Categorical: labels encoded to levels and compared cyclically with
//     one level per distinct value, which yields 0 for equal and
//     non-zero for different categories.
type Kind int

const (
	// Auto defers the decision to the data.
	Auto Kind = iota

	// Continuous covariates are real-valued and non-cyclic.
	Continuous

	// Cyclic covariates wrap modulo an explicit level count.
	Cyclic

	// Categorical covariates are unordered labels.
	Categorical
)

var kindNames = [...]string{"auto", "continuous", "cyclic", "categorical"}

// String returns the lowercase name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= Auto && k <= Categorical }
