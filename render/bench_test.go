package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizlath/render"
)

// benchSeries builds a sawtooth series crossing the default threshold every
// few samples, which keeps the fill-run machinery busy.
func benchSeries(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 195 + 3*math.Sin(float64(i)/4)
	}
	return xs
}

// BenchmarkFillRings measures the run-partitioning geometry alone.
func BenchmarkFillRings(b *testing.B) {
	xs := benchSeries(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = render.ExportedFillRings(xs, 195)
	}
}

// BenchmarkSeries measures chart assembly without rasterization.
func BenchmarkSeries(b *testing.B) {
	xs := benchSeries(1_000)
	cfg := render.DefaultChartConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := render.Series(xs, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkChartPNG measures the raster encode of a small prepared chart.
func BenchmarkChartPNG(b *testing.B) {
	cfg := render.DefaultChartConfig()
	cfg.WidthIn, cfg.HeightIn, cfg.DPI = 4, 3, 72

	chart, err := render.Series(benchSeries(256), cfg)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chart.PNG(); err != nil {
			b.Fatal(err)
		}
	}
}
