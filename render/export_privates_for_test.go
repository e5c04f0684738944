// SPDX-License-Identifier: MIT

package render

// Test-Bridge (White-Box) for the fill-run geometry.
//
// Purpose:
//   - Expose the unexported threshold-run helpers to render_test ONLY, so the
//     crossing interpolation can be pinned numerically without widening the
//     production API.
//
// Build policy:
//   - The _test.go suffix keeps this file out of production builds entirely.
//
// Provided surface:
//   - ExportedFillRings — ring geometry (rings use only exported plotter types).
//   - ExportedAutoBins  — the √n histogram binning rule.

var (
	// ExportedFillRings exposes fillRings for white-box geometry tests.
	ExportedFillRings = fillRings

	// ExportedAutoBins exposes autoBins for the histogram binning tests.
	ExportedAutoBins = autoBins
)
