// Package render turns numeric datasets into annotated charts and encodes
// them for files, terminals and markdown surfaces.
//
// 📈 What it draws:
//
//	Series    — a line chart over implicit indices 0..n−1, with an optional
//	            dashed threshold rule, green-filled runs where the series
//	            exceeds the threshold, and a Mean/Std annotation derived
//	            from package summary.
//	Histogram — the distribution view of the same data.
//
// ✨ Encoding surfaces (all hang off the assembled *Chart):
//   - PNG()      — raster bytes at the configured DPI.
//   - DataURI()  — "data:image/png;base64,…" for inline embedding.
//   - Markdown() — an <img> tag wrapping the data URI.
//   - SavePNG()  — write the raster to disk.
//   - QuickSeries — one-liner: default config, straight to a file.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vizlath/render"
//
//	cfg := render.DefaultChartConfig() // 10×6in, 150 DPI, threshold 195
//	chart, err := render.Series(ds, cfg)
//	if err != nil { ... }
//	err = chart.SavePNG("chart.png")
//
// Determinism:
//   - Chart assembly and PNG encoding carry no timestamps and no randomness:
//     the same dataset and config encode byte-identical PNGs on every call.
//   - Inputs are never mutated.
//
// All drawing is delegated to gonum.org/v1/plot; this package owns the
// threshold-run geometry, palettes and encoding glue.
package render
