// SPDX-License-Identifier: MIT
// Package: vizlath/summary
//
// quantile.go — R-7 linear-interpolation quantiles and quartile bundles.
//
// Convention:
//   - R-7 (Hyndman–Fan type 7): position h = p·(n−1) over the sorted order
//     statistics, linearly interpolated between floor(h) and ceil(h). This is
//     the default convention of numpy and spreadsheets, so downstream reports
//     agree with what analysts expect. gonum's stat.Quantile exposes only the
//     Empirical and LinInterp cumulant kinds, which step/interpolate over the
//     empirical CDF and disagree with R-7 on small samples (e.g. the median
//     of {1,2,3,4} would not be 2.5) — hence the in-package position formula.
//
// Contract:
//   - Inputs are never mutated: quantiles sort a private copy.
//   - Empty input ⇒ ErrEmptyDataset; p ∉ [0,1] or NaN ⇒ ErrBadQuantile.

package summary

import (
	"math"
	"sort"
)

// Quantile returns the p-th R-7 quantile of xs (p in [0, 1]).
// p = 0 yields the minimum, p = 1 the maximum, p = 0.5 the median.
//
// Errors:
//   - ErrEmptyDataset when len(xs) == 0.
//   - ErrBadQuantile when p is NaN or outside [0, 1].
//
// Complexity: O(n log n) time, O(n) space (private sorted copy).
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, summaryErrorf(opQuantile, "no samples: %w", ErrEmptyDataset)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, summaryErrorf(opQuantile, "p must be in [0,1], got %v: %w", p, ErrBadQuantile)
	}

	sorted := sortedCopy(xs)
	return quantileSorted(sorted, p), nil
}

// QuartilesOf returns Q1, the median and Q3 of xs, sharing one sorted copy
// across the three cuts.
//
// Errors:
//   - ErrEmptyDataset when len(xs) == 0.
//
// Complexity: O(n log n) time, O(n) space.
func QuartilesOf(xs []float64) (Quartiles, error) {
	if len(xs) == 0 {
		return Quartiles{}, summaryErrorf(opQuartilesOf, "no samples: %w", ErrEmptyDataset)
	}

	sorted := sortedCopy(xs)
	return Quartiles{
		Q1:     quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q3:     quantileSorted(sorted, 0.75),
	}, nil
}

// sortedCopy clones xs and sorts the clone ascending; the input is untouched.
func sortedCopy(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)
	return cp
}

// quantileSorted evaluates the R-7 position formula over pre-sorted samples.
// Callers guarantee len(sorted) > 0 and p ∈ [0, 1].
func quantileSorted(sorted []float64, p float64) float64 {
	// h is the fractional index of the quantile among the order statistics.
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
