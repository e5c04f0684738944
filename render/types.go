// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// types.go — chart configuration, color schemes and the Chart handle.
//
// Contents:
//   • Scheme      — palette selector (Light | Dark) with String/Parse.
//   • ChartConfig — flat, by-value chart configuration with Validate.
//   • Chart       — handle over an assembled plot; encoding methods hang
//                   off it (see encode.go).
//   • Default*    — single source of truth for DefaultChartConfig.

package render

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot"
)

// Scheme selects the chart palette. Unlike dataset.Distribution, the zero
// value is a valid, safe default (Light): a zero-value ChartConfig renders
// legibly, it just renders plainly.
type Scheme int

const (
	// Light is the default palette: white background, blue series line,
	// translucent green threshold fill, red dashed rule.
	Light Scheme = iota

	// Dark inverts the chrome for dark surfaces and brightens the series
	// colors accordingly.
	Dark
)

// String returns the canonical lower-case name of the scheme.
func (s Scheme) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseScheme maps a case-insensitive name onto its Scheme. "default" is
// accepted as an alias for "light". Unknown names wrap ErrInvalidChart.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "default":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, renderErrorf(opParse, "unknown scheme %q (want %q or %q): %w", s, Light, Dark, ErrInvalidChart)
	}
}

// DEFAULTS — single source of truth for DefaultChartConfig.
const (
	// DefaultTitle, DefaultXLabel and DefaultYLabel name the default series
	// chart axes over implicit sample indices.
	DefaultTitle  = "Random Data Visualization"
	DefaultXLabel = "Index"
	DefaultYLabel = "Value"

	// DefaultWidthIn / DefaultHeightIn set the figure size in inches.
	DefaultWidthIn  = 10.0
	DefaultHeightIn = 6.0

	// DefaultDPI is the raster density used by PNG encoding.
	DefaultDPI = 150

	// DefaultThreshold is the rule above which series runs are filled. It
	// sits just under the dataset package's default Gaussian level, so the
	// out-of-the-box pairing makes the fill rendering clearly visible.
	DefaultThreshold = 195.0
)

// ChartConfig describes one chart. It is a plain value object: copy it,
// adjust fields, pass it by value. The zero value is renderable but blank;
// start from DefaultChartConfig.
//
// Threshold semantics (Series charts only; Histogram ignores them):
//   - HighlightAbove=true draws a dashed horizontal rule at Threshold and
//     fills every run where the series is strictly above it.
//   - Annotate=true draws a "Mean / Std" text block in the upper-left,
//     computed by package summary.
type ChartConfig struct {
	Title  string // chart title
	XLabel string // x-axis label
	YLabel string // y-axis label

	WidthIn  float64 // figure width in inches; must be > 0
	HeightIn float64 // figure height in inches; must be > 0
	DPI      int     // raster density for PNG encoding; must be > 0

	Threshold      float64 // rule level for highlighting
	HighlightAbove bool    // draw the rule and fill runs above it
	Annotate       bool    // draw the Mean/Std annotation block

	Scheme Scheme // palette; zero value is Light
}

// DefaultChartConfig returns the canonical starting configuration: a 10×6in
// light-scheme figure at 150 DPI with the threshold rule, fill and
// annotation enabled.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:          DefaultTitle,
		XLabel:         DefaultXLabel,
		YLabel:         DefaultYLabel,
		WidthIn:        DefaultWidthIn,
		HeightIn:       DefaultHeightIn,
		DPI:            DefaultDPI,
		Threshold:      DefaultThreshold,
		HighlightAbove: true,
		Annotate:       true,
		Scheme:         Light,
	}
}

// Validate checks the ChartConfig invariants: positive figure dimensions
// (NaN rejected), positive DPI and a known scheme. Every failure wraps
// ErrInvalidChart.
func (c ChartConfig) Validate() error {
	if !(c.WidthIn > 0) {
		return renderErrorf(opValidate, "width must be > 0 inches, got %v: %w", c.WidthIn, ErrInvalidChart)
	}
	if !(c.HeightIn > 0) {
		return renderErrorf(opValidate, "height must be > 0 inches, got %v: %w", c.HeightIn, ErrInvalidChart)
	}
	if c.DPI <= 0 {
		return renderErrorf(opValidate, "dpi must be > 0, got %d: %w", c.DPI, ErrInvalidChart)
	}
	if c.Scheme != Light && c.Scheme != Dark {
		return renderErrorf(opValidate, "unknown scheme %d: %w", int(c.Scheme), ErrInvalidChart)
	}
	return nil
}

// Chart is the assembled, still-mutable result of Series or Histogram.
// Encoding methods (PNG, DataURI, Markdown, SavePNG) live in encode.go.
type Chart struct {
	plot *plot.Plot
	cfg  ChartConfig
}

// Plot exposes the underlying gonum plot for callers that want to tweak the
// figure beyond what ChartConfig covers before encoding it.
func (c *Chart) Plot() *plot.Plot { return c.plot }

// Config returns the configuration the chart was assembled with.
func (c *Chart) Config() ChartConfig { return c.cfg }

// palette bundles the colors one scheme applies to a figure.
type palette struct {
	background color.Color // figure background
	text       color.Color // title, axis and annotation text
	chrome     color.Color // axis lines and tick marks
	grid       color.Color // background grid lines
	line       color.Color // series line
	fill       color.Color // above-threshold fill
	threshold  color.Color // threshold rule
}

// paletteFor maps a Scheme onto its concrete colors. Series colors carry the
// alpha baked in (line 80%, fill 40%, rule 70%, grid 30%).
func paletteFor(s Scheme) palette {
	if s == Dark {
		return palette{
			background: color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
			text:       color.NRGBA{R: 0xe8, G: 0xea, B: 0xed, A: 0xff},
			chrome:     color.NRGBA{R: 0x9a, G: 0xa0, B: 0xa6, A: 0xff},
			grid:       color.NRGBA{R: 0xe8, G: 0xea, B: 0xed, A: 0x4d},
			line:       color.NRGBA{R: 0x8a, G: 0xb4, B: 0xf8, A: 0xcc},
			fill:       color.NRGBA{R: 0x81, G: 0xc9, B: 0x95, A: 0x66},
			threshold:  color.NRGBA{R: 0xf2, G: 0x8b, B: 0x82, A: 0xb2},
		}
	}
	return palette{
		background: color.White,
		text:       color.Black,
		chrome:     color.Black,
		grid:       color.NRGBA{A: 0x4d},
		line:       color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xcc},
		fill:       color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0x66},
		threshold:  color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xb2},
	}
}

// applyScheme paints the figure chrome: background, title, axes, ticks and
// legend text. Series colors are applied where the plotters are built.
func applyScheme(p *plot.Plot, pal palette) {
	p.BackgroundColor = pal.background
	p.Title.TextStyle.Color = pal.text
	p.Legend.TextStyle.Color = pal.text

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = pal.text
		ax.LineStyle.Color = pal.chrome
		ax.Tick.LineStyle.Color = pal.chrome
		ax.Tick.Label.Color = pal.text
	}
}
