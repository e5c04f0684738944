// Package vizlath is your in-memory playground for generating random
// datasets, describing them, and turning them into threshold charts —
// from seeded draws to inline markdown embeds.
//
// 🚀 What is vizlath?
//
//	A small, deterministic-on-request toolkit that brings together:
//		• Generation: uniform & normal datasets with validated configs,
//		  seeded reproducibility and substream fan-out (DeriveSeed)
//		• Summary: count / mean / min / max, population std deviation,
//		  interpolated quantiles, threshold counts
//		• Rendering: threshold-highlighted line charts & histograms with
//		  light/dark palettes — PNG, data-URI and markdown outputs
//		• CLI: vizlath chart and vizlath stats for shell pipelines
//
// ✨ Why choose vizlath?
//
//   - Reproducible – same seed, same bytes: the datasets AND the PNGs
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest errors – sentinel-wrapped, errors.Is-friendly, never a panic
//     on user input
//   - Composable – every stage speaks plain []float64; use any one alone
//
// Under the hood, everything is organized under three subpackages:
//
//	dataset/ — Config, Distribution, Generate, DeriveSeed
//	summary/ — Stats, Quartiles, Summarize, Quantile, CountAbove/Below
//	render/  — ChartConfig, Series, Histogram, PNG/DataURI/Markdown
//
// Quick example:
//
//	cfg := dataset.DefaultConfig() // Normal(200, 1), 100 samples
//	cfg.Seed = 42                  // same seed ⇒ same dataset, every run
//	xs, _ := dataset.Generate(cfg)
//	st, _ := summary.Summarize(xs)
//	fmt.Printf("mean %.2f ± %.2f\n", st.Mean, st.StdDev)
//	_ = render.QuickSeries(xs, "chart.png")
//
// Dive into README.md for full examples and the CLI walkthrough.
//
//	go get github.com/katalvlaran/vizlath
package vizlath
