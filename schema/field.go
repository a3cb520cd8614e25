// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"errors"

	"github.com/ava-labs/datagen/emitter"
)

// ErrNilValue is returned when a field is constructed without a value
// emitter.
var ErrNilValue = errors.New("field value emitter must not be nil")

type fieldOptions struct {
	repeat emitter.Emitter[int]
	gate   emitter.Emitter[bool]
	hidden bool
	seed   int64
	seeded bool
}

type FieldOption func(*fieldOptions)

// WithRepeat makes the field multi-valued: every generated record carries a
// list of values whose length is drawn from [r]. Without it the field emits
// one bare value per record.
func WithRepeat(r emitter.Emitter[int]) FieldOption {
	return func(o *fieldOptions) {
		o.repeat = r
	}
}

// WithGate attaches a boolean emitter deciding per record whether the field
// produces anything. A false draw yields nil for that record.
func WithGate(g emitter.Emitter[bool]) FieldOption {
	return func(o *fieldOptions) {
		o.gate = g
	}
}

// Hidden marks the field as generate-only: it is evaluated on every record,
// so fields deriving from it see fresh values, but its output is left out
// of the assembled record.
func Hidden() FieldOption {
	return func(o *fieldOptions) {
		o.hidden = true
	}
}

// WithFieldSeed seeds the field and, through propagation, its value, repeat
// and gate emitters.
func WithFieldSeed(seed int64) FieldOption {
	return func(o *fieldOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// Field binds a named value emitter into a schema, with optional gating and
// repetition. Each Generate call produces the field's contribution to one
// record: a bare value, a list of values, or nil when gated off.
type Field struct {
	emitter.Random

	name   string
	value  ValueEmitter
	repeat emitter.Emitter[int]
	gate   emitter.Emitter[bool]
	hidden bool

	cache any
}

func NewField(name string, value ValueEmitter, opts ...FieldOption) (*Field, error) {
	if value == nil {
		return nil, ErrNilValue
	}
	o := &fieldOptions{}
	for _, opt := range opts {
		opt(o)
	}
	f := &Field{
		name:   name,
		value:  value,
		repeat: o.repeat,
		gate:   o.gate,
		hidden: o.hidden,
	}
	if o.seeded {
		f.SetSeed(o.seed)
	}
	f.Reset()
	return f, nil
}

// Generate produces and caches the field's value for one record.
//
// A false gate draw caches and returns nil. Single-valued fields return one
// bare value. Multi-valued fields return a list: a repeat draw of n < 1
// yields an empty non-nil list without touching the value emitter, and
// n >= 1 yields a list even when n == 1. Errors from any of the three
// emitters, exhausted no-replacement pools included, propagate unchanged
// and leave the cache as it was.
func (f *Field) Generate() (any, error) {
	if f.gate != nil {
		open, err := f.gate.Emit()
		if err != nil {
			return nil, err
		}
		if !open {
			f.cache = nil
			return nil, nil
		}
	}
	if f.repeat == nil {
		v, err := f.value.Emit()
		if err != nil {
			return nil, err
		}
		f.cache = v
		return v, nil
	}
	n, err := f.repeat.Emit()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		empty := []any{}
		f.cache = empty
		return empty, nil
	}
	values, err := f.value.EmitMany(n)
	if err != nil {
		return nil, err
	}
	f.cache = values
	return values, nil
}

// Previous returns the value cached by the last Generate call. It is nil
// before the first call and after a Reset.
func (f *Field) Previous() any {
	return f.cache
}

func (f *Field) Name() string {
	return f.name
}

// MultiValued reports whether Generate returns lists rather than bare
// values.
func (f *Field) MultiValued() bool {
	return f.repeat != nil
}

func (f *Field) IsHidden() bool {
	return f.hidden
}

// Reset propagates the field's seed state to the value, repeat and gate
// emitters in that order, resets them and the field's own source, and
// clears the cached value.
func (f *Field) Reset() {
	seed, seeded := f.SeedState()
	emitter.ResetChildren(seed, seeded, f.value, f.repeat, f.gate)
	f.Random.Reset()
	f.cache = nil
}

// Seed reseeds the field and all three attached emitters with [seed] and
// resets, clearing the cached value.
func (f *Field) Seed(seed int64) {
	emitter.SeedChildren(seed, f.value, f.repeat, f.gate)
	f.SetSeed(seed)
	f.Random.Reset()
	f.cache = nil
}
