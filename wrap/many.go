// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrap

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/sampler"
	"github.com/ava-labs/datagen/utils"
)

var (
	ErrNoSources = errors.New("at least one source emitter is required")

	_ emitter.Emitter[string] = (*Many[int, string])(nil)
	_ emitter.Seedable        = (*Many[int, string])(nil)
)

// Many combines one value from each of an ordered list of source emitters
// into a single output.
type Many[S, O any] struct {
	emitter.Random

	sources  []emitter.Emitter[S]
	children []any
	fn       func([]S) O
	fnRand   func(sampler.Source, []S) O
}

// NewMany wraps [sources] with a pure combination. The wrapper receives one
// value per source, in source order.
func NewMany[S, O any](sources []emitter.Emitter[S], fn func([]S) O, opts ...Option) (*Many[S, O], error) {
	if fn == nil {
		return nil, ErrNilWrapper
	}
	return newMany[S, O](sources, fn, nil, opts)
}

// NewManyRand is [NewMany] with a combination that draws randomness from
// the wrapper's own seeded source.
func NewManyRand[S, O any](sources []emitter.Emitter[S], fn func(sampler.Source, []S) O, opts ...Option) (*Many[S, O], error) {
	if fn == nil {
		return nil, ErrNilWrapper
	}
	return newMany[S, O](sources, nil, fn, opts)
}

func newMany[S, O any](sources []emitter.Emitter[S], fn func([]S) O, fnRand func(sampler.Source, []S) O, opts []Option) (*Many[S, O], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, source := range sources {
		if source == nil {
			return nil, ErrNilSource
		}
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	sources = slices.Clone(sources)
	children := make([]any, len(sources))
	for i, source := range sources {
		children[i] = source
	}

	m := &Many[S, O]{
		sources:  sources,
		children: children,
		fn:       fn,
		fnRand:   fnRand,
	}
	if o.seeded {
		m.SetSeed(o.seed)
	}
	m.Reset()
	return m, nil
}

func (m *Many[S, O]) Emit() (O, error) {
	row := make([]S, len(m.sources))
	for i, source := range m.sources {
		v, err := source.Emit()
		if err != nil {
			return utils.Zero[O](), err
		}
		row[i] = v
	}
	return m.apply(row), nil
}

// EmitMany bulk-draws [count] values from every source, then combines them
// one output per index.
func (m *Many[S, O]) EmitMany(count int) ([]O, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	columns := make([][]S, len(m.sources))
	for i, source := range m.sources {
		values, err := source.EmitMany(count)
		if err != nil {
			return nil, err
		}
		columns[i] = values
	}

	out := make([]O, count)
	for i := range out {
		row := make([]S, len(columns))
		for j, column := range columns {
			row[j] = column[i]
		}
		out[i] = m.apply(row)
	}
	return out, nil
}

func (m *Many[S, O]) apply(row []S) O {
	if m.fnRand != nil {
		return m.fnRand(m.Source(), row)
	}
	return m.fn(row)
}

func (*Many[S, O]) EmitsUniqueValues() bool {
	return false
}

func (*Many[S, O]) NumUniqueValues() (int, bool) {
	return 0, false
}

func (m *Many[S, O]) Reset() {
	seed, seeded := m.SeedState()
	emitter.ResetChildren(seed, seeded, m.children...)
	m.Random.Reset()
}

func (m *Many[S, O]) Seed(seed int64) {
	emitter.SeedChildren(seed, m.children...)
	m.SetSeed(seed)
	m.Random.Reset()
}
