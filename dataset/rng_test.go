package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizlath/dataset"
)

// TestDeriveSeed_Deterministic verifies the pure-function contract: equal
// inputs always mix to the same seed.
func TestDeriveSeed_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dataset.DeriveSeed(42, 7), dataset.DeriveSeed(42, 7))
	assert.Equal(t, dataset.DeriveSeed(-3, 0), dataset.DeriveSeed(-3, 0))
}

// TestDeriveSeed_StreamSeparation checks that consecutive stream ids fan a
// single parent out into pairwise-distinct seeds.
func TestDeriveSeed_StreamSeparation(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]uint64, 64)
	for stream := uint64(0); stream < 64; stream++ {
		s := dataset.DeriveSeed(42, stream)
		prev, dup := seen[s]
		require.False(t, dup, "streams %d and %d collided on seed %d", prev, stream, s)
		seen[s] = stream
	}
}

// TestDeriveSeed_ParentSensitivity checks that different parents do not share
// derived seeds for the same stream id.
func TestDeriveSeed_ParentSensitivity(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, dataset.DeriveSeed(1, 5), dataset.DeriveSeed(2, 5))
	assert.NotEqual(t, dataset.DeriveSeed(0, 5), dataset.DeriveSeed(1, 5))
}

// TestDeriveSeed_NeverZero verifies the remap that keeps derived seeds off
// the Seed==0 "non-deterministic" marker.
func TestDeriveSeed_NeverZero(t *testing.T) {
	t.Parallel()

	for parent := int64(-8); parent <= 8; parent++ {
		for stream := uint64(0); stream < 32; stream++ {
			assert.NotZero(t, dataset.DeriveSeed(parent, stream),
				"parent=%d stream=%d derived the reserved zero seed", parent, stream)
		}
	}
}

// TestDeriveSeed_FeedsGenerate runs the intended workflow end to end: one
// parent seed, several substreams, each reproducible and mutually distinct.
func TestDeriveSeed_FeedsGenerate(t *testing.T) {
	t.Parallel()

	base := dataset.Config{Samples: 16, Dist: dataset.Normal, Mean: 0, StdDev: 1}

	first := base
	first.Seed = dataset.DeriveSeed(42, 1)
	second := base
	second.Seed = dataset.DeriveSeed(42, 2)

	a1, err := dataset.Generate(first)
	require.NoError(t, err)
	a2, err := dataset.Generate(first)
	require.NoError(t, err)
	b, err := dataset.Generate(second)
	require.NoError(t, err)

	assert.Equal(t, a1, a2, "a derived seed must stay reproducible")
	assert.NotEqual(t, a1, b, "sibling substreams must not repeat each other")
}
