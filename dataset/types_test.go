package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizlath/dataset"
)

// TestDistribution_String covers the canonical names and the reserved
// zero value.
func TestDistribution_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uniform", dataset.Uniform.String())
	assert.Equal(t, "normal", dataset.Normal.String())
	assert.Equal(t, "unknown", dataset.Distribution(0).String())
	assert.Equal(t, "unknown", dataset.Distribution(99).String())
}

// TestParseDistribution checks case/space-insensitive parsing and the error
// class for unknown names.
func TestParseDistribution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want dataset.Distribution
	}{
		{"uniform", dataset.Uniform},
		{"Uniform", dataset.Uniform},
		{"  NORMAL ", dataset.Normal},
		{"normal", dataset.Normal},
	}
	for _, tc := range cases {
		got, err := dataset.ParseDistribution(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := dataset.ParseDistribution("weibull")
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig, "unknown name is a config defect")
	assert.ErrorContains(t, err, "weibull", "message must echo the bad name")
}

// TestDefaultConfig_ValidAndCanonical verifies that DefaultConfig passes its
// own validation and carries the documented defaults.
func TestDefaultConfig_ValidAndCanonical(t *testing.T) {
	t.Parallel()

	cfg := dataset.DefaultConfig()
	require.NoError(t, cfg.Validate(), "the default config must always validate")

	assert.Equal(t, dataset.DefaultSamples, cfg.Samples)
	assert.Equal(t, dataset.Normal, cfg.Dist)
	assert.Equal(t, float64(dataset.DefaultMean), cfg.Mean)
	assert.Equal(t, float64(dataset.DefaultStdDev), cfg.StdDev)
	assert.Equal(t, float64(dataset.DefaultLow), cfg.Low)
	assert.Equal(t, float64(dataset.DefaultHigh), cfg.High)
	assert.Zero(t, cfg.Seed, "defaults are non-deterministic until seeded")

	// Flipping the default to Uniform must not require further edits.
	cfg.Dist = dataset.Uniform
	assert.NoError(t, cfg.Validate(), "default uniform bounds must be valid")
}
