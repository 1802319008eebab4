// SPDX-License-Identifier: MIT

// Package distance computes pairwise treated×control distance matrices for
// a single covariate.
//
// What it provides:
//
//   - Continuous: |t_i − c_j| for real-valued covariates.
//   - Signed    : t_i − c_j, the raw pairwise difference.
//   - Cyclic    : shortest circular difference modulo a level count
//     (day of week, month, hour...).
//   - CyclicValues: Cyclic over raw cells, encoding label columns to
//     level indices first.
//   - Covariate : the dispatcher: resolves a covariate's Kind once and
//     routes to the right primitive.
//
// Every function returns a freshly allocated *matrix.Dense of shape
// len(treated)×len(control); row i is treated unit i, column j is control
// unit j. Missing values propagate as NaN and are never errors.
//
// Cyclic algorithm:
//  1. Truncate every value to an integer level.
//  2. forward[i][j]  = (t_i − c_j) mod L, wrapped into [0, L).
//  3. backward[j][i] = (c_j − t_i) mod L, computed on its own, not negated.
//  4. out[i][j] = min(forward[i][j], backward[j][i]) ∈ [0, L/2].
//
// Complexity: O(n·m) time and memory for every primitive.
package distance
