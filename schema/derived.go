// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/sampler"
)

// ErrNilCallback is returned when a derived emitter is constructed without
// a callback.
var ErrNilCallback = errors.New("callback must not be nil")

var (
	_ emitter.Emitter[any] = (*Derived)(nil)
	_ emitter.Seedable     = (*Derived)(nil)
	_ ValueEmitter         = (*Derived)(nil)
)

// Derived transforms the cached previous values of other fields through a
// callback. Like [Copy], a field backed by one must be attached after its
// sources.
//
// The Rand constructors hand the callback the emitter's own seeded source,
// keeping derivations that need randomness reproducible through the usual
// seed propagation.
type Derived struct {
	emitter.Random

	fields []*Field

	applyOne     func(any) (any, error)
	applyOneRand func(sampler.Source, any) (any, error)
	apply        func(map[string]any) (any, error)
	applyRand    func(sampler.Source, map[string]any) (any, error)
}

// BasedOnOne derives a value from one source field's cached output.
func BasedOnOne(field *Field, fn func(any) (any, error)) (*Derived, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	d := &Derived{
		fields:   []*Field{field},
		applyOne: fn,
	}
	d.Reset()
	return d, nil
}

// BasedOnOneRand is BasedOnOne for callbacks needing randomness.
func BasedOnOneRand(field *Field, fn func(sampler.Source, any) (any, error)) (*Derived, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	d := &Derived{
		fields:       []*Field{field},
		applyOneRand: fn,
	}
	d.Reset()
	return d, nil
}

// BasedOn derives a value from several source fields. The callback receives
// a fresh snapshot map of field name to cached output; mutating it has no
// effect on the fields.
func BasedOn(fields []*Field, fn func(map[string]any) (any, error)) (*Derived, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	d := &Derived{
		apply: fn,
	}
	if err := d.setFields(fields); err != nil {
		return nil, err
	}
	d.Reset()
	return d, nil
}

// BasedOnRand is BasedOn for callbacks needing randomness.
func BasedOnRand(fields []*Field, fn func(sampler.Source, map[string]any) (any, error)) (*Derived, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	d := &Derived{
		applyRand: fn,
	}
	if err := d.setFields(fields); err != nil {
		return nil, err
	}
	d.Reset()
	return d, nil
}

func (d *Derived) setFields(fields []*Field) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == nil {
			return ErrNilField
		}
		// Snapshots are keyed by name, so duplicates would shadow.
		if _, ok := seen[f.name]; ok {
			return fmt.Errorf("%w: %q", ErrDupField, f.name)
		}
		seen[f.name] = struct{}{}
	}
	d.fields = slices.Clone(fields)
	return nil
}

func (d *Derived) Emit() (any, error) {
	switch {
	case d.applyOne != nil:
		return d.applyOne(d.fields[0].Previous())
	case d.applyOneRand != nil:
		return d.applyOneRand(d.Source(), d.fields[0].Previous())
	}
	snapshot := make(map[string]any, len(d.fields))
	for _, f := range d.fields {
		snapshot[f.name] = f.Previous()
	}
	if d.applyRand != nil {
		return d.applyRand(d.Source(), snapshot)
	}
	return d.apply(snapshot)
}

// EmitMany invokes the callback once and repeats its value across all
// [count] slots, mirroring [Copy]: one record, one derivation.
func (d *Derived) EmitMany(count int) ([]any, error) {
	if count < 1 {
		return nil, emitter.ErrInvalidCount
	}
	value, err := d.Emit()
	if err != nil {
		return nil, err
	}
	values := make([]any, count)
	for i := range values {
		values[i] = value
	}
	return values, nil
}

func (*Derived) EmitsUniqueValues() bool {
	return false
}

func (*Derived) NumUniqueValues() (int, bool) {
	return 0, false
}

// Reset rewinds the emitter's own source only; source fields belong to the
// schema that resets them.
func (d *Derived) Reset() {
	d.Random.Reset()
}

// Seed stores [seed] for the emitter's own source and resets. Source fields
// are not touched.
func (d *Derived) Seed(seed int64) {
	d.SetSeed(seed)
	d.Random.Reset()
}
