// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// histogram.go — the distribution view of a dataset.

package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/vizlath/summary"
)

// Histogram renders the value distribution of xs with the given bin count.
// bins <= 0 picks ⌈√n⌉ automatically. Threshold, HighlightAbove and Annotate
// are series-chart concerns and are ignored here; callers typically also
// swap XLabel/YLabel to "Value"/"Count".
//
// Errors:
//   - ErrInvalidChart for config defects.
//   - summary.ErrEmptyDataset for empty input.
//
// The input is never mutated.
func Histogram(xs []float64, bins int, cfg ChartConfig) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, renderErrorf(opHistogram, "no samples: %w", summary.ErrEmptyDataset)
	}
	if bins <= 0 {
		bins = autoBins(len(xs))
	}

	pal := paletteFor(cfg.Scheme)
	p := plot.New()
	applyScheme(p, pal)
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = cfg.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.Text = cfg.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.Add(newGrid(pal))

	h, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return nil, renderErrorf(opHistogram, "binning %d samples into %d bins: %w", len(xs), bins, err)
	}
	h.FillColor = pal.fill
	h.LineStyle.Color = pal.line
	p.Add(h)

	return &Chart{plot: p, cfg: cfg}, nil
}

// autoBins is the √n rule, never fewer than one bin.
func autoBins(n int) int {
	b := int(math.Ceil(math.Sqrt(float64(n))))
	if b < 1 {
		return 1
	}
	return b
}
