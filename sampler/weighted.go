// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrOutOfRange         = errors.New("out of range")
	ErrNegativeWeight     = errors.New("negative weight")
	ErrNoWeight           = errors.New("no positive weight")
	ErrInsufficientWeight = errors.New("insufficient positively weighted slots")
)

// Cumulative converts [weights] into running-total form, validating that no
// weight is negative. The last element is the total weight.
func Cumulative(weights []float64) ([]float64, error) {
	for i, weight := range weights {
		if weight < 0 {
			return nil, fmt.Errorf("%w: %g at index %d", ErrNegativeWeight, weight, i)
		}
	}
	return cumSum(weights), nil
}

func cumSum(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	total := float64(0)
	for i, weight := range weights {
		total += weight
		cum[i] = total
	}
	return cum
}

// WithReplacement draws [k] slot indices, independently, from the
// distribution described by the cumulative weights [cum]. Zero-weight slots
// are never selected.
//
// Sampling takes O(k * log(n)) time, where n is the number of slots.
func WithReplacement(src Source, cum []float64, k int) ([]int, error) {
	switch {
	case k < 0:
		return nil, fmt.Errorf("%w: count %d", ErrOutOfRange, k)
	case len(cum) == 0:
		return nil, fmt.Errorf("%w: empty distribution", ErrOutOfRange)
	}
	total := cum[len(cum)-1]
	if total <= 0 {
		return nil, ErrNoWeight
	}
	drawn := make([]int, k)
	for i := range drawn {
		drawn[i] = quantile(src, cum, total)
	}
	return drawn, nil
}

// quantile returns the first slot whose cumulative weight exceeds a uniform
// draw over [0, total). Slots that add no weight share their predecessor's
// cumulative value and can never be the first to exceed the draw.
func quantile(src Source, cum []float64, total float64) int {
	target := Float64(src) * total
	index := sort.Search(len(cum), func(i int) bool {
		return cum[i] > target
	})
	if index < len(cum) {
		return index
	}
	// The draw rounded up to the exact total; fall back to the last slot
	// that contributes weight.
	for index = len(cum) - 1; index > 0; index-- {
		if cum[index] > cum[index-1] {
			return index
		}
	}
	return index
}
