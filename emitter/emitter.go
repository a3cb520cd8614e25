// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emitter

import "errors"

var (
	// ErrInvalidCount is returned by EmitMany for counts that are not
	// positive integers. Layers that legitimately produce a zero count
	// (a multi-valued field drawing a repeat of 0) must short-circuit
	// instead of calling EmitMany.
	ErrInvalidCount = errors.New("count must be a positive integer")

	// ErrInsufficientUnique is returned when a draw requests more unique
	// values than remain. It is raised before any state is consumed, so a
	// smaller request or a Reset recovers.
	ErrInsufficientUnique = errors.New("not enough unique values")
)

// Emitter is the capability every value generator implements.
//
// Emitters producing randomized values additionally implement [Seedable];
// emitters drawing from a finite candidate list additionally implement
// [Enumerable].
type Emitter[T any] interface {
	// Emit returns the next single value.
	Emit() (T, error)

	// EmitMany returns the next [count] values; on success the result's
	// length is exactly [count]. A count that is not positive fails with
	// [ErrInvalidCount].
	EmitMany(count int) ([]T, error)

	// EmitsUniqueValues reports whether every value this emitter can still
	// emit is guaranteed distinct from every other.
	EmitsUniqueValues() bool

	// NumUniqueValues returns the number of distinct values this emitter
	// can still emit. The second return is false when the count is
	// unbounded or unknowable.
	NumUniqueValues() (int, bool)

	// Reset restores the state from just after construction or the last
	// seeding, for this emitter and every descendant, discarding any
	// no-replacement progress.
	Reset()
}

// Seedable is implemented by emitters that own a random source. Seeding
// stores the new seed and implies a Reset.
type Seedable interface {
	Seed(seed int64)
}

// Enumerable is implemented by emitters whose candidate values form a known
// finite list.
type Enumerable[T any] interface {
	Items() []T
}
