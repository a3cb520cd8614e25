// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package text

import (
	"github.com/ava-labs/datagen/emitter"
)

type options struct {
	sep    emitter.Emitter[string]
	seed   int64
	seeded bool
}

type Option func(*options)

// WithSeed pins the seed propagated through the emitter and its children,
// making the emitted sequence replay after Reset.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSeparator replaces the separator generator of a [Text], which
// otherwise emits a single space between words. [Word] ignores it.
func WithSeparator(sep emitter.Emitter[string]) Option {
	return func(o *options) {
		o.sep = sep
	}
}
