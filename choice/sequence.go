// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choice

// Sequence is an ordered, random-access population. Implementations may
// compute values lazily, so a Choice can draw from very large populations
// without materializing them.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

type sliceSequence[T any] []T

func (s sliceSequence[T]) Len() int {
	return len(s)
}

func (s sliceSequence[T]) At(i int) T {
	return s[i]
}
