// SPDX-License-Identifier: MIT
// Package: vizlath/summary
//
// types.go — result records returned by the statistics operations.

package summary

// Stats is the five-number descriptive record computed by Summarize.
// It is a plain value: compare it, copy it, embed it in reports.
type Stats struct {
	Count  int     // number of samples
	Mean   float64 // arithmetic mean
	Min    float64 // smallest sample
	Max    float64 // largest sample
	StdDev float64 // population standard deviation (divisor = Count)
}

// Quartiles carries the three quartile cuts of a dataset, computed with the
// same R-7 interpolation as Quantile (Q1 = 0.25, Median = 0.5, Q3 = 0.75).
type Quartiles struct {
	Q1     float64
	Median float64
	Q3     float64
}
