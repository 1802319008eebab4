// SPDX-License-Identifier: MIT

// Package aggregate builds the treated×control discrepancy matrix consumed
// by pair-matching solvers.
//
// 🚀 What it computes
//
//	For every treated unit i and control unit j:
//
//	  D[i][j] = ( Σ_{covariates c with a threshold} scaling[c] · d_c(i,j) ) / k
//
//	where d_c is the per-covariate distance from package distance and k is
//	the TOTAL number of covariates, skipped ones included. A pair is
//	inadmissible, and D[i][j] is NaN, as soon as one covariate rules it out:
//
//	  threshold ≥ 0 : d_c(i,j) >  threshold    (too far apart)
//	  threshold < 0 : d_c(i,j) ≤ |threshold|   (too close, e.g. self-matches)
//
//	A NaN threshold (Unset) removes the covariate from both the sum and the
//	admissibility test. Missing covariate values never rule a pair out on
//	their own: the admissibility test reads NaN distances as 0, while the
//	raw NaN still flows into the weighted sum.
//
// ⚙️ Usage:
//
//	thresholds := []float64{10, aggregate.Unset(), -0.5}
//	D, err := aggregate.Compute(treated, control, thresholds, nil)
//
// Options:
//   - WithParallelism(n)       : evaluate up to n covariates concurrently.
//   - WithDistanceOptions(...) : forward encoding policy to the dispatcher.
//
// Complexity: O(n·m·k) time, O(n·m) working memory when sequential.
package aggregate
