// SPDX-License-Identifier: MIT
// Package: vizlath/dataset
//
// types.go — public types, enums and defaults for dataset generation.
//
// Contents:
//   • Distribution — sampler selector (Uniform | Normal) with String/Parse.
//   • Config       — flat, by-value generation configuration.
//   • Dataset      — ordered sample sequence (assignable to []float64).
//   • Default*     — single source of truth for DefaultConfig behavior.

package dataset

import (
	"strings"

	"golang.org/x/exp/rand"
)

// Distribution selects the sampling law used by Generate.
//
// The zero value is intentionally invalid so that an uninitialized Config
// cannot silently pick a distribution; Validate rejects it.
type Distribution int

const (
	// unknownDistribution is the reserved invalid zero value.
	unknownDistribution Distribution = iota

	// Uniform draws samples uniformly from the half-open interval [Low, High).
	Uniform

	// Normal draws samples from a Gaussian with parameters (Mean, StdDev).
	Normal
)

// String returns the canonical lower-case name of the distribution.
func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// ParseDistribution maps a case-insensitive name ("uniform", "normal") onto
// its Distribution value. Unknown names wrap ErrInvalidConfig: distribution
// names arrive from flags and config files, so a bad one is user input, not
// a programmer error — it must surface as an error, never a panic.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform":
		return Uniform, nil
	case "normal":
		return Normal, nil
	default:
		return unknownDistribution, datasetErrorf(opParse, "unknown distribution %q (want %q or %q): %w", s, Uniform, Normal, ErrInvalidConfig)
	}
}

// DEFAULTS — single source of truth for DefaultConfig.
const (
	// DefaultSamples is the dataset length used when the caller has no opinion.
	DefaultSamples = 100

	// DefaultMean centers the default Gaussian at a round, plot-friendly level.
	DefaultMean = 200.0

	// DefaultStdDev is the default Gaussian spread.
	DefaultStdDev = 1.0

	// DefaultLow / DefaultHigh bound the default uniform support [Low, High).
	DefaultLow  = 0.0
	DefaultHigh = 1.0
)

// Config describes one generation request. It is a plain value object: copy
// it, adjust fields, pass it by value. The zero value is invalid (Dist is
// unset); start from DefaultConfig or fill every relevant field explicitly.
//
// Distribution-specific fields:
//   - Uniform reads Low/High and ignores Mean/StdDev.
//   - Normal reads Mean/StdDev and ignores Low/High.
//
// Reproducibility:
//   - Seed != 0 ⇒ the output sequence is bit-for-bit reproducible.
//   - Seed == 0 ⇒ a fresh entropy seed is drawn per call (non-deterministic).
//   - Src != nil ⇒ Src wins over Seed entirely; use it to inject substreams.
type Config struct {
	Samples int          // number of samples to draw; must be > 0
	Dist    Distribution // sampling law; must be Uniform or Normal

	Low  float64 // uniform support lower bound (inclusive)
	High float64 // uniform support upper bound (exclusive); Low < High

	Mean   float64 // normal location parameter
	StdDev float64 // normal scale parameter; must be > 0

	Seed int64       // 0 ⇒ non-deterministic; any other value ⇒ reproducible
	Src  rand.Source // optional explicit source; overrides Seed when non-nil
}

// DefaultConfig returns the canonical starting configuration:
// DefaultSamples draws from Normal(DefaultMean, DefaultStdDev), Seed 0
// (non-deterministic). Uniform bounds are pre-filled so switching
// cfg.Dist = Uniform yields a valid config without further edits.
func DefaultConfig() Config {
	return Config{
		Samples: DefaultSamples,
		Dist:    Normal,
		Low:     DefaultLow,
		High:    DefaultHigh,
		Mean:    DefaultMean,
		StdDev:  DefaultStdDev,
	}
}

// Dataset is an ordered sequence of drawn samples (draw order preserved).
// The underlying type is []float64, so a Dataset is assignable to any API
// that accepts a plain float slice; downstream packages stay decoupled.
type Dataset []float64
