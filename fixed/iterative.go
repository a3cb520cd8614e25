// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixed

import (
	"errors"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/utils"
)

var (
	ErrEmptyIterator = errors.New("iterator must produce at least one value")

	_ emitter.Emitter[int] = (*Iterative[int])(nil)
)

type options struct {
	resetAfterCall bool
}

type Option func(*options)

// WithResetAfterCall restarts the iterator after every Emit or EmitMany
// call, so each call reads from the head instead of continuing the stream.
func WithResetAfterCall() Option {
	return func(o *options) {
		o.resetAfterCall = true
	}
}

// Iterative emits an endless stream from an iterator factory. When the
// current iterator is exhausted a fresh one is created, cycling without
// materializing values. Iterators cannot be rewound, which is why the
// constructor takes a factory rather than a single iterator.
//
// The factory's iterators report each value with ok=true and exhaustion
// with ok=false.
type Iterative[T any] struct {
	factory        func() func() (T, bool)
	next           func() (T, bool)
	resetAfterCall bool
}

// NewIterative probes the factory once and rejects it if the iterator
// yields nothing, which would otherwise cycle forever without emitting.
func NewIterative[T any](factory func() func() (T, bool), opts ...Option) (*Iterative[T], error) {
	if _, ok := factory()(); !ok {
		return nil, ErrEmptyIterator
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Iterative[T]{
		factory:        factory,
		resetAfterCall: o.resetAfterCall,
	}
	e.Reset()
	return e, nil
}

func (e *Iterative[T]) Emit() (T, error) {
	v, ok := e.advance()
	if !ok {
		return utils.Zero[T](), ErrEmptyIterator
	}
	if e.resetAfterCall {
		e.Reset()
	}
	return v, nil
}

func (e *Iterative[T]) EmitMany(count int) ([]T, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	out := make([]T, count)
	for i := range out {
		v, ok := e.advance()
		if !ok {
			return nil, ErrEmptyIterator
		}
		out[i] = v
	}
	if e.resetAfterCall {
		e.Reset()
	}
	return out, nil
}

func (*Iterative[T]) EmitsUniqueValues() bool {
	return false
}

// NumUniqueValues is unknowable for an arbitrary iterator.
func (*Iterative[T]) NumUniqueValues() (int, bool) {
	return 0, false
}

// Reset discards the current iterator and restarts from the head.
func (e *Iterative[T]) Reset() {
	e.next = e.factory()
}

// advance pulls the next value, regenerating the iterator on exhaustion.
// A regenerated iterator that is immediately exhausted stops the cycle;
// the construction-time probe makes that unreachable for stable factories.
func (e *Iterative[T]) advance() (T, bool) {
	if v, ok := e.next(); ok {
		return v, true
	}
	e.next = e.factory()
	return e.next()
}
