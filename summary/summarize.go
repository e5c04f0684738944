// SPDX-License-Identifier: MIT
// Package: vizlath/summary
//
// summarize.go — the five-number descriptive summary.
//
// Purpose:
//   - Provide the one canonical Summarize over a dataset, delegating the
//     numeric kernels to gonum (stat.Mean, stat.PopStdDev, floats.Min/Max).
//
// Determinism & Performance:
//   - Pure function over the input slice; fixed traversal inside gonum.
//   - O(n) time, O(1) extra space; the input is never mutated.

package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the descriptive record of xs.
//
// Implementation:
//   - Stage 1: Reject empty input (ErrEmptyDataset) before touching kernels;
//     gonum's extrema panic on empty slices and must never be reached.
//   - Stage 2: Delegate mean/extrema/spread to gonum kernels.
//
// Behavior highlights:
//   - StdDev is the population form: Σ(x−mean)²/n under the root. A single
//     sample yields exactly 0. All-identical samples yield exactly 0.
//   - For any non-empty dataset, Min ≤ Mean ≤ Max holds (NaN-free inputs).
//
// Inputs:
//   - xs: samples in any order; NaN/Inf are propagated, not filtered.
//
// Returns:
//   - Stats: the five-number record.
//
// Errors:
//   - ErrEmptyDataset when len(xs) == 0 (the zero Stats is returned alongside).
//
// Complexity:
//   - Time O(n), Space O(1).
func Summarize(xs []float64) (Stats, error) {
	// Stage 1 (Validate): a statistic of nothing is undefined.
	if len(xs) == 0 {
		return Stats{}, summaryErrorf(opSummarize, "no samples: %w", ErrEmptyDataset)
	}

	// Stage 2 (Kernels): each is a single deterministic pass.
	return Stats{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		StdDev: stat.PopStdDev(xs, nil),
	}, nil
}

// CountAbove returns how many samples are strictly greater than threshold.
// An empty dataset counts zero — this is a counter, not a statistic, so it
// has no empty-input error.
//
// Complexity: O(n).
func CountAbove(xs []float64, threshold float64) int {
	n := 0
	for _, v := range xs {
		if v > threshold {
			n++
		}
	}
	return n
}

// CountBelow returns how many samples are strictly less than threshold.
// Together with CountAbove it partitions a dataset: above + below + ties
// (values equal to threshold) == len(xs).
//
// Complexity: O(n).
func CountBelow(xs []float64, threshold float64) int {
	n := 0
	for _, v := range xs {
		if v < threshold {
			n++
		}
	}
	return n
}
