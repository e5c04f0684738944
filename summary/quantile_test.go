package summary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizlath/dataset"
	"github.com/katalvlaran/vizlath/summary"
)

// TestQuantile_R7Convention pins the interpolation convention on small,
// hand-checkable datasets.
func TestQuantile_R7Convention(t *testing.T) {
	t.Parallel()

	oneToFive := []float64{1, 2, 3, 4, 5}
	cases := []struct {
		name string
		xs   []float64
		p    float64
		want float64
	}{
		{"min", oneToFive, 0, 1},
		{"q1 lands on an order statistic", oneToFive, 0.25, 2},
		{"median odd", oneToFive, 0.5, 3},
		{"q3 lands on an order statistic", oneToFive, 0.75, 4},
		{"max", oneToFive, 1, 5},
		{"median even interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"q1 interpolates", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"single element ignores p", []float64{9}, 0.73, 9},
		{"unsorted input is sorted privately", []float64{5, 1, 4, 2, 3}, 0.5, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := summary.Quantile(tc.xs, tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestQuantile_Errors covers the two failure classes: empty input and
// out-of-range probabilities.
func TestQuantile_Errors(t *testing.T) {
	t.Parallel()

	_, err := summary.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, summary.ErrEmptyDataset)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = summary.Quantile([]float64{1, 2, 3}, p)
		assert.ErrorIs(t, err, summary.ErrBadQuantile, "p=%v must be rejected", p)
	}
}

// TestQuartilesOf_Known pins the quartile bundle of 1..5: {2, 3, 4}.
func TestQuartilesOf_Known(t *testing.T) {
	t.Parallel()

	q, err := summary.QuartilesOf([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, q.Q1, 1e-12)
	assert.InDelta(t, 3.0, q.Median, 1e-12)
	assert.InDelta(t, 4.0, q.Q3, 1e-12)
}

// TestQuartilesOf_Ordering checks Q1 ≤ Median ≤ Q3 over generated data and
// agreement with the single-cut Quantile.
func TestQuartilesOf_Ordering(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Generate(dataset.Config{
		Samples: 777, Dist: dataset.Normal, Mean: 0, StdDev: 3, Seed: 42,
	})
	require.NoError(t, err)

	q, err := summary.QuartilesOf(ds)
	require.NoError(t, err)
	assert.LessOrEqual(t, q.Q1, q.Median)
	assert.LessOrEqual(t, q.Median, q.Q3)

	median, err := summary.Quantile(ds, 0.5)
	require.NoError(t, err)
	assert.Equal(t, median, q.Median, "bundle and single cut must agree exactly")
}

// TestQuartilesOf_Empty verifies the error class and zero record.
func TestQuartilesOf_Empty(t *testing.T) {
	t.Parallel()

	q, err := summary.QuartilesOf([]float64{})
	assert.ErrorIs(t, err, summary.ErrEmptyDataset)
	assert.Equal(t, summary.Quartiles{}, q)
}

// TestQuantile_DoesNotMutateInput pins the private-copy contract.
func TestQuantile_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	xs := []float64{9, 7, 8, 5, 6}
	before := append([]float64(nil), xs...)

	_, err := summary.Quantile(xs, 0.5)
	require.NoError(t, err)
	assert.Equal(t, before, xs, "Quantile must sort a copy, not the input")
}
