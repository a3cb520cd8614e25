// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emitter

import "github.com/ava-labs/datagen/sampler"

// Random carries the seed lifecycle state shared by every RNG-bearing
// emitter: the owned random source plus the stored seed it replays from.
// Embed it and rebuild any derived state after calling its Reset.
//
// The zero value is unseeded; its stream is non-deterministic until SetSeed
// and Reset, or a full Seed on the embedding emitter.
type Random struct {
	src    sampler.Source
	seed   int64
	seeded bool
}

// SetSeed stores [seed] without touching the current stream. It takes
// effect on the next Reset.
func (r *Random) SetSeed(seed int64) {
	r.seed = seed
	r.seeded = true
}

// ClearSeed reverts to entropy seeding: after the next Reset the stream is
// no longer reproducible.
func (r *Random) ClearSeed() {
	r.seed = 0
	r.seeded = false
}

// SeedState returns the stored seed and whether one is set.
func (r *Random) SeedState() (int64, bool) {
	return r.seed, r.seeded
}

// Reset rewinds the owned source to the start of the stream described by
// the stored seed. Without a stored seed the source is re-seeded from
// entropy, giving a fresh unpredictable stream.
func (r *Random) Reset() {
	switch {
	case r.src == nil && r.seeded:
		r.src = sampler.NewSource(r.seed)
	case r.src == nil:
		r.src = sampler.NewRandomSource()
	case r.seeded:
		r.src.Seed(uint64(r.seed))
	default:
		r.src.Seed(uint64(sampler.RandomSeed()))
	}
}

// Source returns the owned random source, creating it on first use.
func (r *Random) Source() sampler.Source {
	if r.src == nil {
		r.Reset()
	}
	return r.src
}
