// SPDX-License-Identifier: MIT

// Package summary computes descriptive statistics over numeric datasets:
// count, mean, min, max and population standard deviation (Summarize), plus
// quantiles, quartiles and threshold counts for reporting surfaces.
//
// Conventions (stable, documented, tested):
//   - Standard deviation is the population form (divisor = Count). With one
//     sample it is exactly 0, never NaN. No sample-flavored twin is offered;
//     one definition, one source of truth.
//   - Quantiles follow the R-7 linear-interpolation convention (the default
//     in numpy and spreadsheets): position p·(n−1) interpolated between the
//     two nearest order statistics.
//   - Threshold counts are strict (> above, < below); values equal to the
//     threshold belong to neither side.
//
// Contract:
//   - Inputs are never mutated; quantile helpers sort a private copy.
//   - Every statistic over an empty dataset fails with ErrEmptyDataset
//     (a statistic of nothing is undefined — there is no "zero" Stats).
//   - NaN/Inf values are not filtered; they flow through IEEE-754 arithmetic
//     exactly as the underlying kernels propagate them.
//   - Pure functions, no global state, no randomness: same input ⇒ same output.
//
// Complexity: Summarize and the counters are O(n); quantile helpers are
// O(n log n) due to the private sorted copy.
package summary
