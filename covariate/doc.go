// Package covariate models the per-unit measurements compared by the
// discrepancy engine.
//
// A covariate is one attribute measured on every unit of a group. The
// package provides:
//
//   - Kind, an explicit tag {Auto, Continuous, Cyclic, Categorical} resolved
//     once per covariate instead of re-inspecting raw values at every call.
//   - Column and Table, columnar containers aligned by row with the unit group.
//   - Values, raw untyped cells with coercion helpers (numeric cells go
//     through spf13/cast, labels stay labels, nil/NaN are "missing").
//   - Encoder, a deterministic label→level mapping: distinct labels sorted
//     lexicographically, missing cells on a trailing "unknown" level.
//
// Example:
//
//	day := covariate.CyclicColumn("weekday", 7, covariate.Floats(0, 3, 6))
//	colour := covariate.CategoricalColumn("colour", covariate.Values{"red", "blue", nil})
//	tbl, err := covariate.NewTable(day, colour)
package covariate
