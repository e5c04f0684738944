// SPDX-License-Identifier: MIT
// Package: vizlath/dataset
//
// validate.go — Config validation: the single gate every generation passes.
//
// Contract:
//   • Checks run in a fixed, documented order; the first failure wins.
//   • Every failure wraps ErrInvalidConfig (branch with errors.Is).
//   • Validation is pure and O(1); it never mutates the Config.

package dataset

// Validate checks the Config invariants in a fixed order:
//
//	1. Samples > 0
//	2. Dist is a known Distribution
//	3. distribution parameters:
//	   Uniform ⇒ Low < High
//	   Normal  ⇒ StdDev > 0
//
// It returns nil when cfg is generatable, otherwise an error wrapping
// ErrInvalidConfig with the precise cause.
func (c Config) Validate() error {
	// 1. The sample count drives every allocation; reject non-positive first.
	if c.Samples <= 0 {
		return datasetErrorf(opValidate, "sample count must be > 0, got %d: %w", c.Samples, ErrInvalidConfig)
	}

	// 2–3. The zero Distribution is reserved as invalid, so the switch default
	// rejects both the zero value and any out-of-range constant.
	switch c.Dist {
	case Uniform:
		// Half-open support [Low, High) needs strictly ordered bounds.
		// The negated comparison also rejects NaN bounds.
		if !(c.Low < c.High) {
			return datasetErrorf(opValidate, "uniform bounds must satisfy Low < High, got [%v, %v): %w", c.Low, c.High, ErrInvalidConfig)
		}
	case Normal:
		// A Gaussian needs strictly positive spread; NaN fails the comparison.
		if !(c.StdDev > 0) {
			return datasetErrorf(opValidate, "std dev must be > 0, got %v: %w", c.StdDev, ErrInvalidConfig)
		}
	default:
		return datasetErrorf(opValidate, "unknown distribution %d: %w", int(c.Dist), ErrInvalidConfig)
	}

	return nil
}
