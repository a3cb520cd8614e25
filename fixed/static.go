// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixed emits constant and cycling values without randomness.
package fixed

import (
	"github.com/ava-labs/datagen/emitter"
)

var (
	_ emitter.Emitter[int]    = (*Static[int])(nil)
	_ emitter.Enumerable[int] = (*Static[int])(nil)
)

// Static emits the same value forever.
type Static[T any] struct {
	value T
}

func NewStatic[T any](value T) *Static[T] {
	return &Static[T]{value: value}
}

func (s *Static[T]) Emit() (T, error) {
	return s.value, nil
}

func (s *Static[T]) EmitMany(count int) ([]T, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	out := make([]T, count)
	for i := range out {
		out[i] = s.value
	}
	return out, nil
}

func (*Static[T]) EmitsUniqueValues() bool {
	return false
}

func (*Static[T]) NumUniqueValues() (int, bool) {
	return 1, true
}

func (*Static[T]) Reset() {}

func (s *Static[T]) Items() []T {
	return []T{s.value}
}
