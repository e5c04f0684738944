// Package dataset generates random numeric datasets from a validated,
// by-value configuration, with reproducibility as a first-class contract.
//
// 🎲 What it does:
//
//	Draws n samples from a configured distribution:
//	  • Uniform over the half-open interval [Low, High)
//	  • Normal with location/scale parameters (Mean, StdDev)
//	and returns them in draw order as a Dataset ([]float64 underneath).
//
// ✨ Key properties:
//   - Config is a plain value object: construct, adjust fields, pass by value.
//   - Validation is explicit (Config.Validate) and always precedes sampling;
//     every defect wraps ErrInvalidConfig and is branchable with errors.Is.
//   - Same Config with the same non-zero Seed ⇒ bit-for-bit identical output,
//     run after run.
//   - Seed==0 ⇒ deliberately non-deterministic: one entropy seed per call.
//   - Sampling math is delegated to gonum's distuv distributions over a
//     golang.org/x/exp/rand source, so sources are injectable (Config.Src).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vizlath/dataset"
//
//	cfg := dataset.DefaultConfig() // Normal(200, 1), 100 samples
//	cfg.Seed = 42                  // make it reproducible
//	ds, err := dataset.Generate(cfg)
//	if err != nil {
//	  // errors.Is(err, dataset.ErrInvalidConfig) for config defects
//	}
//
// Determinism:
//   - No wall-clock seeding anywhere. Entropy enters only through crypto/rand,
//     and only when Seed==0 and Src==nil.
//   - DeriveSeed fans one parent seed into independent substreams for
//     multi-series workloads.
//
// Performance: Generate is O(n) time and O(n) memory.
//
// See example_test.go for runnable examples.
package dataset
