package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/vizlath/render"
)

// TestFillRings_NothingAbove verifies that a series entirely at or below the
// rule produces no rings (ties are excluded by the strict comparison).
func TestFillRings_NothingAbove(t *testing.T) {
	t.Parallel()

	assert.Nil(t, render.ExportedFillRings([]float64{1, 2, 3}, 5))
	assert.Nil(t, render.ExportedFillRings([]float64{5, 5, 5}, 5), "ties are not above")
	assert.Nil(t, render.ExportedFillRings(nil, 5))
}

// TestFillRings_AllAbove checks the boundary handling when the whole series
// is one run: vertical edges at both ends, base points on the rule.
func TestFillRings_AllAbove(t *testing.T) {
	t.Parallel()

	rings := render.ExportedFillRings([]float64{7, 9, 8}, 5)
	require.Len(t, rings, 1)

	want := plotter.XYs{
		{X: 0, Y: 5}, // entry on the rule at the left boundary
		{X: 0, Y: 7},
		{X: 1, Y: 9},
		{X: 2, Y: 8},
		{X: 2, Y: 5}, // exit on the rule at the right boundary
	}
	assert.Equal(t, want, rings[0])
}

// TestFillRings_InterpolatedCrossings pins the linear interpolation at run
// boundaries: a spike crossing the rule halfway between samples.
func TestFillRings_InterpolatedCrossings(t *testing.T) {
	t.Parallel()

	// Segment (0,0)-(1,10) meets the rule y=5 at x=0.5; (1,10)-(2,0) at x=1.5.
	rings := render.ExportedFillRings([]float64{0, 10, 0}, 5)
	require.Len(t, rings, 1)

	want := plotter.XYs{
		{X: 0.5, Y: 5},
		{X: 1, Y: 10},
		{X: 1.5, Y: 5},
	}
	assert.Equal(t, want, rings[0])
}

// TestFillRings_TieNeighborsSnapToSamples verifies the degenerate
// interpolation when a neighbor sits exactly on the rule: the crossing lands
// on that sample's x.
func TestFillRings_TieNeighborsSnapToSamples(t *testing.T) {
	t.Parallel()

	rings := render.ExportedFillRings([]float64{5, 6, 5}, 5)
	require.Len(t, rings, 1)

	want := plotter.XYs{
		{X: 0, Y: 5},
		{X: 1, Y: 6},
		{X: 2, Y: 5},
	}
	assert.Equal(t, want, rings[0])
}

// TestFillRings_MultipleRuns checks that disjoint excursions produce one
// ring each, in index order.
func TestFillRings_MultipleRuns(t *testing.T) {
	t.Parallel()

	rings := render.ExportedFillRings([]float64{0, 10, 0, 10, 0}, 5)
	require.Len(t, rings, 2)
	assert.Equal(t, 1.0, rings[0][1].X, "first run peaks at index 1")
	assert.Equal(t, 3.0, rings[1][1].X, "second run peaks at index 3")
}

// TestFillRings_NaNBreaksRuns verifies that NaN samples terminate runs and
// that no NaN coordinate ever leaks into the geometry (vertical-edge
// fallback at the in-run sample).
func TestFillRings_NaNBreaksRuns(t *testing.T) {
	t.Parallel()

	rings := render.ExportedFillRings([]float64{6, math.NaN(), 7}, 5)
	require.Len(t, rings, 2, "the NaN sample must split the runs")

	for ri, ring := range rings {
		for pi, pt := range ring {
			require.False(t, math.IsNaN(pt.X) || math.IsNaN(pt.Y),
				"ring %d point %d carries NaN: (%v, %v)", ri, pi, pt.X, pt.Y)
		}
	}
}

// TestAutoBins pins the √n rule and its floor of one bin.
func TestAutoBins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, render.ExportedAutoBins(1))
	assert.Equal(t, 10, render.ExportedAutoBins(100))
	assert.Equal(t, 11, render.ExportedAutoBins(101), "√101 rounds up")
}
