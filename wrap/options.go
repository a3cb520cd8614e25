// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrap

type options struct {
	seed   int64
	seeded bool
}

type Option func(*options)

// WithSeed pins the seed propagated through the wrapper and its sources,
// making the emitted sequence replay after Reset.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}
