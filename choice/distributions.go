// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choice

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	safemath "github.com/ava-labs/datagen/utils/math"
)

var ErrInvalidShape = errors.New("distribution parameter out of range")

// NewPoisson constructs a Choice whose slot weights follow a Poisson
// probability mass over the 1-based slot position. Small [mean] values favor
// the head of the population, which suits long tails of rarely used terms.
//
// [floor] clamps every weight from below, lifting the far tail so long
// populations stay drawable; 0 keeps the raw shape.
func NewPoisson[T comparable](items []T, mean, floor float64, opts ...Option) (*Choice[T], error) {
	if mean <= 0 {
		return nil, fmt.Errorf("%w: poisson mean %v", ErrInvalidShape, mean)
	}
	dist := distuv.Poisson{Lambda: mean}
	return newShaped(items, dist.Prob, floor, opts)
}

// NewGaussian constructs a Choice whose slot weights follow a normal
// density over the 1-based slot position, centered on position [mean].
func NewGaussian[T comparable](items []T, mean, stddev, floor float64, opts ...Option) (*Choice[T], error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("%w: gaussian stddev %v", ErrInvalidShape, stddev)
	}
	dist := distuv.Normal{Mu: mean, Sigma: stddev}
	return newShaped(items, dist.Prob, floor, opts)
}

func newShaped[T comparable](items []T, prob func(float64) float64, floor float64, opts []Option) (*Choice[T], error) {
	if floor < 0 {
		return nil, fmt.Errorf("%w: weight floor %v", ErrInvalidShape, floor)
	}
	weights := make([]float64, len(items))
	for i := range weights {
		weights[i] = safemath.Max(floor, prob(float64(i+1)))
	}
	// The derived weights are appended last so they win over any weight
	// option passed through by the caller.
	withWeights := make([]Option, 0, len(opts)+1)
	withWeights = append(withWeights, opts...)
	withWeights = append(withWeights, WithWeights(weights...))
	return New(items, withWeights...)
}

// Chance constructs a boolean Choice that emits true with probability [p].
// It is the usual gate generator for optional schema fields.
func Chance(p float64, opts ...Option) (*Choice[bool], error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: probability %v", ErrInvalidShape, p)
	}
	withWeights := make([]Option, 0, len(opts)+1)
	withWeights = append(withWeights, opts...)
	withWeights = append(withWeights, WithWeights(p, 1-p))
	return New([]bool{true, false}, withWeights...)
}
