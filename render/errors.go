// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// errors.go — sentinel errors for the render package.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • Context is attached at call sites via renderErrorf + %w.
//   • Empty input is a summary concern: chart builders propagate
//     summary.ErrEmptyDataset rather than inventing a duplicate sentinel.

package render

import (
	"errors"
	"fmt"
)

// ErrInvalidChart is the validation class for chart configuration defects:
// non-positive figure dimensions, non-positive DPI, unknown color scheme,
// non-positive histogram bin counts. Branch with errors.Is.
var ErrInvalidChart = errors.New("render: invalid chart config")

// Canonical operation names used as error-message prefixes.
const (
	opSeries    = "Series"
	opHistogram = "Histogram"
	opValidate  = "ChartConfig.Validate"
	opParse     = "ParseScheme"
	opPNG       = "Chart.PNG"
	opDataURI   = "Chart.DataURI"
	opMarkdown  = "Chart.Markdown"
	opSave      = "Chart.SavePNG"
	opQuick     = "QuickSeries"
)

// renderErrorf builds "<op>: <formatted message>". The format string runs
// through fmt.Errorf, so %w keeps wrapped sentinels reachable for errors.Is.
func renderErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf(op+": "+format, args...)
}
