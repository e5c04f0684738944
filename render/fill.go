// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// fill.go — geometry of the above-threshold fill runs.
//
// Purpose:
//   - Partition a series into maximal runs of samples strictly above the
//     threshold and turn each run into a closed polygon ring whose base lies
//     on the rule, with entry/exit points linearly interpolated at the
//     crossings.
//
// Contract:
//   - Strict comparison (> threshold), matching summary.CountAbove: samples
//     equal to the threshold belong to no run.
//   - NaN samples are never "above"; they terminate runs, and a run bordered
//     by a non-finite neighbor gets a vertical edge instead of garbage
//     interpolation.
//   - Pure functions over the input; O(n) time, output-sized allocations.

package render

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// span is a maximal run xs[start..end] (inclusive) strictly above the rule.
type span struct {
	start, end int
}

// aboveSpans scans xs once and collects every maximal above-threshold run.
func aboveSpans(xs []float64, threshold float64) []span {
	var spans []span
	start := -1
	for i, v := range xs {
		// NaN compares false here, so it closes a run like any low sample.
		if v > threshold {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, span{start: start, end: i - 1})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: len(xs) - 1})
	}
	return spans
}

// crossingX interpolates the x at which the segment (x0,y0)-(x1,y1) meets
// the threshold. Exactly one endpoint is above the rule at every call site,
// so t lands in [0,1] for finite samples; non-finite arithmetic (a NaN/Inf
// neighbor) falls back to fallbackX, which callers set to the in-run sample
// so the fill gets a vertical edge there.
func crossingX(x0, y0, x1, y1, threshold, fallbackX float64) float64 {
	t := (threshold - y0) / (y1 - y0)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fallbackX
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return x0 + t*(x1-x0)
}

// fillRings builds one closed polygon ring per above-threshold run. Each
// ring starts and ends on the rule (entry crossing → run samples → exit
// crossing); the polygon plotter closes the base segment along the rule.
// Series boundaries produce vertical edges. Returns nil when nothing is
// above the threshold.
func fillRings(xs []float64, threshold float64) []plotter.XYs {
	spans := aboveSpans(xs, threshold)
	if len(spans) == 0 {
		return nil
	}

	rings := make([]plotter.XYs, 0, len(spans))
	for _, s := range spans {
		ring := make(plotter.XYs, 0, s.end-s.start+3)

		// Entry point on the rule.
		if s.start == 0 {
			ring = append(ring, plotter.XY{X: 0, Y: threshold})
		} else {
			x := crossingX(
				float64(s.start-1), xs[s.start-1],
				float64(s.start), xs[s.start],
				threshold, float64(s.start),
			)
			ring = append(ring, plotter.XY{X: x, Y: threshold})
		}

		// The run itself.
		for i := s.start; i <= s.end; i++ {
			ring = append(ring, plotter.XY{X: float64(i), Y: xs[i]})
		}

		// Exit point on the rule.
		if s.end == len(xs)-1 {
			ring = append(ring, plotter.XY{X: float64(s.end), Y: threshold})
		} else {
			x := crossingX(
				float64(s.end), xs[s.end],
				float64(s.end+1), xs[s.end+1],
				threshold, float64(s.end),
			)
			ring = append(ring, plotter.XY{X: x, Y: threshold})
		}

		rings = append(rings, ring)
	}
	return rings
}
