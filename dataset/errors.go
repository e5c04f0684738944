// SPDX-License-Identifier: MIT
// Package: vizlath/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER formatted at definition site; context is attached
//     at the call site via datasetErrorf + %w.
//   • Generation never panics on user input: every misuse surfaces as a
//     wrapped sentinel.

package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the single validation class for generation requests.
// Every Config defect — non-positive sample count, inverted uniform bounds,
// non-positive standard deviation, unknown distribution — wraps this sentinel
// with a cause-specific message.
// Usage: if errors.Is(err, dataset.ErrInvalidConfig) { /* fix the Config */ }.
var ErrInvalidConfig = errors.New("dataset: invalid config")

// ErrEntropy indicates that the operating-system entropy source failed while
// seeding a non-deterministic (Seed==0) generation. Practically unreachable
// on supported platforms; kept distinct from ErrInvalidConfig so callers
// never misreport it as a user mistake.
// Usage: if errors.Is(err, dataset.ErrEntropy) { /* environment problem */ }.
var ErrEntropy = errors.New("dataset: entropy source unavailable")

// Canonical operation names used as error-message prefixes.
const (
	opGenerate = "Generate"
	opValidate = "Config.Validate"
	opParse    = "ParseDistribution"
)

// datasetErrorf builds "<op>: <formatted message>". The format string runs
// through fmt.Errorf, so %w keeps wrapped sentinels reachable for errors.Is.
func datasetErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf(op+": "+format, args...)
}
