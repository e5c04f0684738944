// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// series.go — the threshold-highlighted line chart.
//
// Assembly order (fixed, deterministic):
//   - Stage 1: validate config, reject empty input.
//   - Stage 2: figure chrome (palette, titles, grid, axis limits).
//   - Stage 3: plotters — fill runs under the line, the line, the rule.
//   - Stage 4: Mean/Std annotation from package summary.
//
// Determinism:
//   - Plotters are added in a fixed order and gonum/plot draws them in
//     insertion order, so the same input always yields the same figure.

package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/vizlath/summary"
)

// Series renders xs as a line chart over implicit indices 0..n−1.
//
// With cfg.HighlightAbove it draws a dashed rule at cfg.Threshold and fills
// every run strictly above it (entry/exit linearly interpolated at the
// crossings). With cfg.Annotate it adds a "Mean / Std" block in the
// upper-left, computed by summary.Summarize.
//
// Errors:
//   - ErrInvalidChart for config defects.
//   - summary.ErrEmptyDataset for empty input.
//
// The input is never mutated.
func Series(xs []float64, cfg ChartConfig) (*Chart, error) {
	// Stage 1: validation first, empty-input second (config defects are the
	// caller's nearer mistake).
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, renderErrorf(opSeries, "no samples: %w", summary.ErrEmptyDataset)
	}
	st, err := summary.Summarize(xs)
	if err != nil {
		return nil, renderErrorf(opSeries, "summarizing input: %w", err)
	}

	// Stage 2: figure chrome.
	pal := paletteFor(cfg.Scheme)
	p := plot.New()
	applyScheme(p, pal)
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = cfg.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.Text = cfg.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(9)
	p.Add(newGrid(pal))

	// Pin the x-range to the data: index charts read better without padding.
	if len(xs) > 1 {
		p.X.Min = 0
		p.X.Max = float64(len(xs) - 1)
	}

	// Stage 3a: fill runs go in first so the line draws on top of them.
	if cfg.HighlightAbove {
		if rings := fillRings(xs, cfg.Threshold); len(rings) > 0 {
			args := make([]plotter.XYer, len(rings))
			for i, r := range rings {
				args[i] = r
			}
			poly, perr := plotter.NewPolygon(args...)
			if perr != nil {
				return nil, renderErrorf(opSeries, "building fill polygons: %w", perr)
			}
			poly.Color = pal.fill
			poly.LineStyle.Color = pal.fill
			p.Add(poly)
			p.Legend.Add(fmt.Sprintf("Above %g", cfg.Threshold), poly)
		}
	}

	// Stage 3b: the series line.
	line, err := plotter.NewLine(indexedXYs(xs))
	if err != nil {
		return nil, renderErrorf(opSeries, "building line: %w", err)
	}
	line.LineStyle.Color = pal.line
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Data Series", line)

	// Stage 3c: the dashed threshold rule across the full index range.
	if cfg.HighlightAbove {
		rule, rerr := plotter.NewLine(plotter.XYs{
			{X: 0, Y: cfg.Threshold},
			{X: float64(len(xs) - 1), Y: cfg.Threshold},
		})
		if rerr != nil {
			return nil, renderErrorf(opSeries, "building threshold rule: %w", rerr)
		}
		rule.LineStyle.Color = pal.threshold
		rule.LineStyle.Width = vg.Points(1.5)
		rule.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(rule)
		p.Legend.Add(fmt.Sprintf("Threshold (%g)", cfg.Threshold), rule)
	}

	// Stage 4: the Mean/Std block, anchored top-left at the data extent.
	if cfg.Annotate {
		if aerr := addStatsLabel(p, pal, cfg, st, len(xs)); aerr != nil {
			return nil, renderErrorf(opSeries, "building annotation: %w", aerr)
		}
	}

	return &Chart{plot: p, cfg: cfg}, nil
}

// indexedXYs pairs each sample with its index: (0,xs[0]) … (n−1,xs[n−1]).
func indexedXYs(xs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i, v := range xs {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

// newGrid builds the dashed background grid in the palette's grid tone.
func newGrid(pal palette) *plotter.Grid {
	g := plotter.NewGrid()
	for _, ls := range []*draw.LineStyle{&g.Vertical, &g.Horizontal} {
		ls.Color = pal.grid
		ls.Width = vg.Points(0.5)
		ls.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	}
	return g
}

// addStatsLabel renders "Mean: … / Std: …" just inside the upper-left corner
// of the data region (2% in from the left, at the top of the drawn extent).
func addStatsLabel(p *plot.Plot, pal palette, cfg ChartConfig, st summary.Stats, n int) error {
	yTop := st.Max
	if cfg.HighlightAbove && cfg.Threshold > yTop {
		yTop = cfg.Threshold
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0.02 * float64(n-1), Y: yTop}},
		Labels: []string{fmt.Sprintf("Mean: %.2f\nStd: %.2f", st.Mean, st.StdDev)},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = pal.text
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].YAlign = draw.YTop
	}
	p.Add(labels)
	return nil
}
