// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wrap converts the output of existing emitters through plain
// functions, so simple transformations need no new emitter type.
package wrap

import (
	"errors"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/sampler"
	"github.com/ava-labs/datagen/utils"
)

var (
	ErrNilSource  = errors.New("source emitter must not be nil")
	ErrNilWrapper = errors.New("wrapper function must not be nil")

	_ emitter.Emitter[string] = (*One[int, string])(nil)
	_ emitter.Seedable        = (*One[int, string])(nil)
)

// One converts each value of a single source emitter.
type One[S, O any] struct {
	emitter.Random

	source emitter.Emitter[S]
	fn     func(S) O
	fnRand func(sampler.Source, S) O
}

// NewOne wraps [source] with a pure conversion.
func NewOne[S, O any](source emitter.Emitter[S], fn func(S) O, opts ...Option) (*One[S, O], error) {
	if fn == nil {
		return nil, ErrNilWrapper
	}
	return newOne[S, O](source, fn, nil, opts)
}

// NewOneRand wraps [source] with a conversion that draws randomness from
// the wrapper's own seeded source, so converted output replays with the
// rest of the tree.
func NewOneRand[S, O any](source emitter.Emitter[S], fn func(sampler.Source, S) O, opts ...Option) (*One[S, O], error) {
	if fn == nil {
		return nil, ErrNilWrapper
	}
	return newOne[S, O](source, nil, fn, opts)
}

func newOne[S, O any](source emitter.Emitter[S], fn func(S) O, fnRand func(sampler.Source, S) O, opts []Option) (*One[S, O], error) {
	if source == nil {
		return nil, ErrNilSource
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	w := &One[S, O]{
		source: source,
		fn:     fn,
		fnRand: fnRand,
	}
	if o.seeded {
		w.SetSeed(o.seed)
	}
	w.Reset()
	return w, nil
}

func (w *One[S, O]) Emit() (O, error) {
	v, err := w.source.Emit()
	if err != nil {
		return utils.Zero[O](), err
	}
	return w.apply(v), nil
}

func (w *One[S, O]) EmitMany(count int) ([]O, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	values, err := w.source.EmitMany(count)
	if err != nil {
		return nil, err
	}
	out := make([]O, len(values))
	for i, v := range values {
		out[i] = w.apply(v)
	}
	return out, nil
}

func (w *One[S, O]) apply(v S) O {
	if w.fnRand != nil {
		return w.fnRand(w.Source(), v)
	}
	return w.fn(v)
}

func (*One[S, O]) EmitsUniqueValues() bool {
	return false
}

// NumUniqueValues is unknowable: an arbitrary conversion may collapse or
// expand the source's value space.
func (*One[S, O]) NumUniqueValues() (int, bool) {
	return 0, false
}

func (w *One[S, O]) Reset() {
	seed, seeded := w.SeedState()
	emitter.ResetChildren(seed, seeded, w.source)
	w.Random.Reset()
}

func (w *One[S, O]) Seed(seed int64) {
	emitter.SeedChildren(seed, w.source)
	w.SetSeed(seed)
	w.Random.Reset()
}
