// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixed

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/utils"
)

var (
	_ emitter.Emitter[int]    = (*Sequential[int])(nil)
	_ emitter.Enumerable[int] = (*Sequential[int])(nil)
)

// Sequential cycles over a stored finite slice in order. Unlike a plain
// [Iterative] it can list its candidate values.
type Sequential[T comparable] struct {
	Iterative[T]

	items []T
}

func NewSequential[T comparable](items []T, opts ...Option) (*Sequential[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyIterator
	}

	stored := slices.Clone(items)
	factory := func() func() (T, bool) {
		i := 0
		return func() (T, bool) {
			if i >= len(stored) {
				return utils.Zero[T](), false
			}
			v := stored[i]
			i++
			return v, true
		}
	}

	inner, err := NewIterative(factory, opts...)
	if err != nil {
		return nil, err
	}
	return &Sequential[T]{
		Iterative: *inner,
		items:     stored,
	}, nil
}

func (s *Sequential[T]) Items() []T {
	return slices.Clone(s.items)
}

// NumUniqueValues counts distinct values among the stored items.
func (s *Sequential[T]) NumUniqueValues() (int, bool) {
	seen := make(map[T]struct{}, len(s.items))
	for _, item := range s.items {
		seen[item] = struct{}{}
	}
	return len(seen), true
}
