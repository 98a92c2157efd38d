// SPDX-License-Identifier: MIT
// Package odds - seeded uniform sampling over bracket streams.
//
// Goals:
//   - Determinism: same seed ⇒ same sample for the same pool order.
//   - One pass: the stream is enumerated once, whatever its length.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each reservoir owns its own.

package odds

import (
	"math/rand"

	"github.com/katalvlaran/bracketodds/entrant"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// reservoir keeps a uniform sample of k brackets from a stream of unknown
// length (Algorithm R).
type reservoir struct {
	rng  *rand.Rand
	k    int
	seen int
	kept []entrant.Bracket
}

func newReservoir(seed int64, k int) *reservoir {
	return &reservoir{rng: rngFromSeed(seed), k: k, kept: make([]entrant.Bracket, 0, min(k, 1024))}
}

// offer considers b for the sample.
func (r *reservoir) offer(b entrant.Bracket) {
	r.seen++
	if len(r.kept) < r.k {
		r.kept = append(r.kept, b)
		return
	}
	if j := r.rng.Intn(r.seen); j < r.k {
		r.kept[j] = b
	}
}
