// SPDX-License-Identifier: MIT
// Package: vizlath/summary
//
// errors.go — sentinel errors for the summary package.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • Context is attached at call sites via summaryErrorf + %w.
//   • Statistics never panic: empty input and bad parameters surface as
//     wrapped sentinels.

package summary

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates that a statistic was requested over zero samples.
// Count, mean, extrema and spread are undefined on an empty dataset, so every
// operation in this package rejects it up front.
// Usage: if errors.Is(err, summary.ErrEmptyDataset) { /* nothing to report */ }.
var ErrEmptyDataset = errors.New("summary: empty dataset")

// ErrBadQuantile indicates a quantile probability outside the closed
// interval [0, 1] (NaN included).
// Usage: if errors.Is(err, summary.ErrBadQuantile) { /* fix p */ }.
var ErrBadQuantile = errors.New("summary: quantile out of range")

// Canonical operation names used as error-message prefixes.
const (
	opSummarize   = "Summarize"
	opQuantile    = "Quantile"
	opQuartilesOf = "QuartilesOf"
)

// summaryErrorf builds "<op>: <formatted message>". The format string runs
// through fmt.Errorf, so %w keeps wrapped sentinels reachable for errors.Is.
func summaryErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf(op+": "+format, args...)
}
