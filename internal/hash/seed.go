// Package hash derives deterministic sub-seeds for the splitting engine.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Seed folds a base seed and a sequence of component names into a single
// 64-bit seed using XXH3.
//
// Each random choice in the engine (label shuffle, shared pool draw, simple
// ordering, per-partner corruption) derives its own seed from the scenario
// seed and a stable component name. Earlier parts become the seed for later
// ones, so the derivation is order-sensitive and collision-resistant without
// building intermediate joined strings.
//
// Parameters:
//   - base: Scenario-level seed
//   - parts: Stable component names (e.g., "planner", "labels")
//
// Returns:
//   - uint64: Derived seed, stable across runs and platforms
func Seed(base uint64, parts ...string) uint64 {
	h := base
	for _, part := range parts {
		h = xxh3.HashStringSeed(part, h)
	}

	return h
}

// SeedN folds a base seed, a component name and a numeric discriminator into
// a 64-bit seed. Used for per-partner derivations where the partner ID must
// separate otherwise identical components.
//
// Parameters:
//   - base: Scenario-level seed
//   - part: Stable component name
//   - n: Numeric discriminator (e.g., partner ID)
//
// Returns:
//   - uint64: Derived seed
func SeedN(base uint64, part string, n int) uint64 {
	h := xxh3.HashStringSeed(part, base)

	var ib [8]byte
	binary.LittleEndian.PutUint64(ib[:], uint64(n)) //nolint:gosec // discriminators are small non-negative values

	return xxh3.HashSeed(ib[:], h)
}
