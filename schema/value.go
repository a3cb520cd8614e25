// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import "github.com/ava-labs/datagen/emitter"

// ValueEmitter is the untyped form of a value generator. Boxing the element
// type lets fields with different value types share one schema. Emitters
// already producing [any], such as [Copy] and [Derived], satisfy it
// directly; everything else goes through [Value].
type ValueEmitter interface {
	Emit() (any, error)
	EmitMany(count int) ([]any, error)
}

type seedSettable interface {
	SetSeed(seed int64)
}

type seedClearable interface {
	ClearSeed()
}

type resettable interface {
	Reset()
}

var _ ValueEmitter = (*box[struct{}])(nil)

type box[T any] struct {
	inner emitter.Emitter[T]
}

// Value boxes a typed emitter for use as a field value source.
func Value[T any](e emitter.Emitter[T]) ValueEmitter {
	return &box[T]{inner: e}
}

func (b *box[T]) Emit() (any, error) {
	return b.inner.Emit()
}

func (b *box[T]) EmitMany(count int) ([]any, error) {
	values, err := b.inner.EmitMany(count)
	if err != nil {
		return nil, err
	}
	boxed := make([]any, len(values))
	for i, v := range values {
		boxed[i] = v
	}
	return boxed, nil
}

// The seed lifecycle forwards to the boxed emitter so that field
// propagation reaches through the box. Emitters without a capability are
// skipped, same as unboxed children.

func (b *box[T]) SetSeed(seed int64) {
	if s, ok := b.inner.(seedSettable); ok {
		s.SetSeed(seed)
	}
}

func (b *box[T]) ClearSeed() {
	if c, ok := b.inner.(seedClearable); ok {
		c.ClearSeed()
	}
}

func (b *box[T]) Reset() {
	if r, ok := b.inner.(resettable); ok {
		r.Reset()
	}
}

func (b *box[T]) Seed(seed int64) {
	if s, ok := b.inner.(emitter.Seedable); ok {
		s.Seed(seed)
	}
}
