// Package discrepancy is the covariate-distance engine behind treated/control
// pair matching in observational studies.
//
// 🚀 What does it do?
//
//	Given a covariate table for treated units and one for control units,
//	it returns one n×m matrix: entry (i,j) is the weighted mean distance
//	between treated unit i and control unit j, or NaN when the pair is not
//	admissible. Any optimal-assignment solver that treats NaN as a
//	forbidden edge can consume it directly.
//
// ✨ Key features:
//   - three covariate kinds: continuous, cyclic (day of week, month...) and
//     unordered categorical labels
//   - explicit kind tags per column, with data-driven inference as fallback
//   - per-covariate maximum- or minimum-distance admissibility thresholds
//   - deterministic label encoding, shared across both groups by default
//   - optional bounded parallel evaluation with bit-identical results
//
// Under the hood:
//
//	matrix/     : row-major Dense matrix, boolean Mask, element-wise kernels
//	covariate/  : Kind, Column, Table, raw-cell coercion, label Encoder
//	distance/   : Continuous, Cyclic, CyclicValues and the Covariate dispatcher
//	aggregate/  : thresholds, scaling and the aggregate discrepancy matrix
//
// See examples/ for an end-to-end program.
//
//	go get github.com/katalvlaran/discrepancy
package discrepancy
