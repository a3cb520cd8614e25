// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package choice emits values drawn from weighted populations.
package choice

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/sampler"
	"github.com/ava-labs/datagen/utils"
)

var (
	ErrEmptyItems       = errors.New("at least one item is required")
	ErrWeightCount      = errors.New("weight count must match item count")
	ErrAmbiguousWeights = errors.New("plain and cumulative weights are mutually exclusive")

	_ emitter.Emitter[int]    = (*Choice[int])(nil)
	_ emitter.Seedable        = (*Choice[int])(nil)
	_ emitter.Enumerable[int] = (*Choice[int])(nil)
)

type options struct {
	weights    []float64
	cumulative []float64
	policy     Policy
	seed       int64
	seeded     bool
}

type Option func(*options)

// WithWeights assigns one plain weight per item slot. Weights must be
// non-negative and at least one must be positive; a zero-weight slot is
// never drawn.
func WithWeights(weights ...float64) Option {
	return func(o *options) {
		o.weights = weights
	}
}

// WithCumulativeWeights assigns the weight vector in running-total form.
// Mutually exclusive with [WithWeights].
func WithCumulativeWeights(cum ...float64) Option {
	return func(o *options) {
		o.cumulative = cum
	}
}

func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithSeed pins the random source so the emitted sequence replays after
// Reset. Without it the source is seeded from entropy.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// Choice emits values drawn from a weighted population.
//
// Items are addressed by slot, so duplicate values are legal and raise the
// value's effective likelihood. What happens to a slot after it is drawn is
// controlled by the replacement [Policy].
type Choice[T comparable] struct {
	rand emitter.Random

	items      Sequence[T]
	weights    []float64 // canonical form; nil means uniform
	cumulative []float64 // derived from weights; nil iff weights is nil
	positive   int       // count of slots with weight > 0
	policy     Policy

	// cursor is the materialized weighted permutation read under
	// NoReplacement. Slots before cursorPos have been consumed.
	cursor    []int
	cursorPos int
}

// New constructs a Choice over a copy of [items].
func New[T comparable](items []T, opts ...Option) (*Choice[T], error) {
	return FromSequence[T](sliceSequence[T](slices.Clone(items)), opts...)
}

// FromSequence constructs a Choice over a lazy population. The sequence is
// retained, not copied, and must not change while the Choice is in use.
func FromSequence[T comparable](items Sequence[T], opts ...Option) (*Choice[T], error) {
	if items == nil || items.Len() == 0 {
		return nil, ErrEmptyItems
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.policy.Verify(); err != nil {
		return nil, err
	}

	c := &Choice[T]{
		items:  items,
		policy: o.policy,
	}
	if err := c.applyWeights(o.weights, o.cumulative); err != nil {
		return nil, err
	}
	if o.seeded {
		c.rand.SetSeed(o.seed)
	}
	c.Reset()
	return c, nil
}

func (c *Choice[T]) applyWeights(plain, cumulative []float64) error {
	if plain != nil && cumulative != nil {
		return ErrAmbiguousWeights
	}
	if cumulative != nil {
		plain = plainWeights(cumulative)
	}
	if plain == nil {
		c.weights = nil
		c.cumulative = nil
		c.positive = c.items.Len()
		return nil
	}

	if n := c.items.Len(); len(plain) != n {
		return fmt.Errorf("%w: %d weights for %d items", ErrWeightCount, len(plain), n)
	}
	cum, err := sampler.Cumulative(plain)
	if err != nil {
		return err
	}
	positive := 0
	for _, w := range plain {
		if w > 0 {
			positive++
		}
	}
	if positive == 0 {
		return fmt.Errorf("%w: all %d weights are zero", sampler.ErrNoWeight, len(plain))
	}

	if cumulative != nil {
		// Keep the caller's exact running totals rather than a re-derived
		// vector that float rounding could nudge.
		cum = slices.Clone(cumulative)
	}
	c.weights = slices.Clone(plain)
	c.cumulative = cum
	c.positive = positive
	return nil
}

// plainWeights recovers per-slot weights from a running total. A decreasing
// step surfaces as a negative weight during validation.
func plainWeights(cumulative []float64) []float64 {
	weights := make([]float64, len(cumulative))
	prev := float64(0)
	for i, cum := range cumulative {
		weights[i] = cum - prev
		prev = cum
	}
	return weights
}

// Emit returns one value. Under NoReplacement it consumes the next slot of
// the shuffle; under the other policies it is an independent draw.
func (c *Choice[T]) Emit() (T, error) {
	if c.policy == NoReplacement {
		out, err := c.takeUnique(1)
		if err != nil {
			return utils.Zero[T](), err
		}
		return out[0], nil
	}
	return c.one()
}

// EmitMany returns exactly [count] values or an error. Requesting more
// unique values than remain drawable fails with
// [emitter.ErrInsufficientUnique] before any slot is consumed.
func (c *Choice[T]) EmitMany(count int) ([]T, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	switch c.policy {
	case NoReplacement:
		return c.takeUnique(count)
	case PerCallOnly:
		if count == 1 {
			v, err := c.one()
			if err != nil {
				return nil, err
			}
			return []T{v}, nil
		}
		return c.drawUnique(count)
	default:
		return c.drawMany(count)
	}
}

// one performs a single with-replacement draw. A population of size 1 is
// returned directly without consuming randomness.
func (c *Choice[T]) one() (T, error) {
	n := c.items.Len()
	if n == 1 {
		return c.items.At(0), nil
	}
	if c.cumulative == nil {
		i := int(sampler.Uint64Inclusive(c.rand.Source(), uint64(n-1)))
		return c.items.At(i), nil
	}
	picked, err := sampler.WithReplacement(c.rand.Source(), c.cumulative, 1)
	if err != nil {
		return utils.Zero[T](), err
	}
	return c.items.At(picked[0]), nil
}

// takeUnique reads [count] slots from the shuffle cursor.
func (c *Choice[T]) takeUnique(count int) ([]T, error) {
	remaining := len(c.cursor) - c.cursorPos
	if count > remaining {
		return nil, fmt.Errorf("%w: %d requested, %d remaining",
			emitter.ErrInsufficientUnique, count, remaining)
	}
	out := make([]T, count)
	for i := range out {
		out[i] = c.items.At(c.cursor[c.cursorPos+i])
	}
	c.cursorPos += count
	return out, nil
}

// drawUnique draws [count] distinct slots without touching cross-call state,
// implementing the PerCallOnly policy.
func (c *Choice[T]) drawUnique(count int) ([]T, error) {
	var (
		picked []int
		err    error
	)
	if c.weights == nil {
		picked, err = sampler.UniformWithoutReplacement(c.rand.Source(), c.items.Len(), count)
	} else {
		picked, err = sampler.WithoutReplacement(c.rand.Source(), c.weights, count)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %d requested, %d remaining",
			emitter.ErrInsufficientUnique, count, c.positive)
	}
	out := make([]T, count)
	for i, index := range picked {
		out[i] = c.items.At(index)
	}
	return out, nil
}

// drawMany performs [count] independent with-replacement draws.
func (c *Choice[T]) drawMany(count int) ([]T, error) {
	n := c.items.Len()
	out := make([]T, count)
	if n == 1 {
		v := c.items.At(0)
		for i := range out {
			out[i] = v
		}
		return out, nil
	}
	if c.cumulative == nil {
		src := c.rand.Source()
		max := uint64(n - 1)
		for i := range out {
			out[i] = c.items.At(int(sampler.Uint64Inclusive(src, max)))
		}
		return out, nil
	}
	picked, err := sampler.WithReplacement(c.rand.Source(), c.cumulative, count)
	if err != nil {
		return nil, err
	}
	for i, index := range picked {
		out[i] = c.items.At(index)
	}
	return out, nil
}

// Reset re-seeds the random source from the stored seed state and
// regenerates the shuffle, replaying the emitted sequence from the start.
func (c *Choice[T]) Reset() {
	c.rand.Reset()
	c.reshuffle()
}

// Seed stores a new seed and resets.
func (c *Choice[T]) Seed(seed int64) {
	c.rand.SetSeed(seed)
	c.Reset()
}

// SetWeights replaces the weight vector; calling it with no arguments
// restores uniform weighting. The shuffle is regenerated from the source's
// current position, dropping any record of already consumed slots.
func (c *Choice[T]) SetWeights(weights ...float64) error {
	if err := c.applyWeights(weights, nil); err != nil {
		return err
	}
	c.reshuffle()
	return nil
}

// reshuffle materializes the weighted permutation read under NoReplacement.
// Zero-weight slots never enter it.
func (c *Choice[T]) reshuffle() {
	c.cursor = nil
	c.cursorPos = 0
	if c.policy != NoReplacement {
		return
	}

	var (
		cursor []int
		err    error
	)
	if c.weights == nil {
		n := c.items.Len()
		cursor, err = sampler.UniformWithoutReplacement(c.rand.Source(), n, n)
	} else {
		cursor, err = sampler.WithoutReplacement(c.rand.Source(), c.weights, c.positive)
	}
	if err != nil {
		// Unreachable: the request never exceeds the drawable slot count.
		return
	}
	c.cursor = cursor
}

func (c *Choice[T]) Policy() Policy {
	return c.policy
}

// Items materializes the population in slot order.
func (c *Choice[T]) Items() []T {
	out := make([]T, c.items.Len())
	for i := range out {
		out[i] = c.items.At(i)
	}
	return out
}

// Weights returns the plain weight vector, or nil when weighting is uniform.
func (c *Choice[T]) Weights() []float64 {
	return slices.Clone(c.weights)
}

// CumulativeWeights returns the running-total weight vector, or nil when
// weighting is uniform.
func (c *Choice[T]) CumulativeWeights() []float64 {
	return slices.Clone(c.cumulative)
}

// NumUniqueItems returns the number of slots still drawable without a
// repeat: the un-consumed tail of the shuffle under NoReplacement, the
// positively weighted slot count otherwise.
func (c *Choice[T]) NumUniqueItems() int {
	if c.policy == NoReplacement {
		return len(c.cursor) - c.cursorPos
	}
	return c.positive
}

// NumUniqueValues counts distinct values over the drawable slots: the
// un-consumed tail under NoReplacement, every positively weighted slot
// otherwise. The bool is always true; a population is finite.
func (c *Choice[T]) NumUniqueValues() (int, bool) {
	seen := make(map[T]struct{}, c.NumUniqueItems())
	if c.policy == NoReplacement {
		for _, i := range c.cursor[c.cursorPos:] {
			seen[c.items.At(i)] = struct{}{}
		}
		return len(seen), true
	}
	for i := 0; i < c.items.Len(); i++ {
		if c.weights != nil && c.weights[i] <= 0 {
			continue
		}
		seen[c.items.At(i)] = struct{}{}
	}
	return len(seen), true
}

// EmitsUniqueValues reports whether every future value is guaranteed
// distinct until reset: NoReplacement with no duplicate values among the
// remaining slots.
func (c *Choice[T]) EmitsUniqueValues() bool {
	if c.policy != NoReplacement {
		return false
	}
	unique, _ := c.NumUniqueValues()
	return unique == c.NumUniqueItems()
}
