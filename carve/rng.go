// Package carve - RNG policy shared by both generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical maze across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - A single sequential stream consumed in row-major order, so the
//     (iteration order, seed) pair fully determines the result.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, and carving is sequential by
//     contract: parallel draws would change the distribution.
package carve

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or no RNG at all. The value is arbitrary but stable to keep
// reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// resolveRNG applies the nil policy: a provided RNG is used as-is, nil
// falls back to the deterministic default stream.
// Complexity: O(1).
func resolveRNG(r *rand.Rand) *rand.Rand {
	if r == nil {
		return rngFromSeed(0)
	}

	return r
}
