// SPDX-License-Identifier: MIT
// Package: vizlath/dataset
//
// rng.go — randomness plumbing: source selection, entropy seeding, substreams.
//
// Goals:
//   • Determinism: same non-zero seed ⇒ identical source state ⇒ identical draws.
//   • Encapsulation: one source factory; no time-based seeding anywhere.
//   • Injectability: Config.Src overrides everything (tests, substreams).
//
// Concurrency:
//   • rand.Source is NOT goroutine-safe. Generate builds one source per call
//     and never shares it; fan out with DeriveSeed + separate Configs instead.

package dataset

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// sourceFor resolves the random source for one generation call.
// Priority: explicit cfg.Src → non-zero cfg.Seed → fresh entropy seed.
//
// Complexity: O(1).
func sourceFor(cfg Config) (rand.Source, error) {
	if cfg.Src != nil {
		return cfg.Src, nil
	}
	if cfg.Seed != 0 {
		return rand.NewSource(uint64(cfg.Seed)), nil
	}
	s, err := entropySeed()
	if err != nil {
		return nil, err
	}
	return rand.NewSource(s), nil
}

// entropySeed draws 8 bytes from the OS entropy pool. This is the only place
// non-determinism can enter the package, and only on the Seed==0 path.
func entropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, datasetErrorf(opGenerate, "reading entropy: %v: %w", err, ErrEntropy)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed suitable for Config.Seed.
//
// Rationale:
//   - Independent substreams from one base seed (multi-series charts, callers
//     generating in parallel) without correlated draws.
//   - SplitMix64-style avalanche mixing: small input changes produce large,
//     well-distributed output changes.
//
// A zero mix result is remapped to 1 so a derived seed never lands on the
// Seed==0 "non-deterministic" marker.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants and rationale.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return 1
	}
	return int64(x)
}
