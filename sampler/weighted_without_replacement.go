// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// eliminationCutoff is the fraction of the population size below which
// iterative elimination is cheaper than the scored full sort.
const eliminationCutoff = 0.42

// WithoutReplacement draws [k] distinct slot indices from the distribution
// described by [weights]. A slot can win at most once per call, and
// zero-weight slots never win; [k] may therefore not exceed the number of
// positively weighted slots.
//
// Two algorithms serve the same distribution: iterative elimination for
// small [k] and a scored full sort once [k] passes the cost crossover at
// [eliminationCutoff] of the population size.
func WithoutReplacement(src Source, weights []float64, k int) ([]int, error) {
	switch {
	case k < 0:
		return nil, fmt.Errorf("%w: count %d", ErrOutOfRange, k)
	case len(weights) == 0:
		return nil, fmt.Errorf("%w: empty distribution", ErrOutOfRange)
	}

	positive := 0
	for i, weight := range weights {
		switch {
		case weight < 0:
			return nil, fmt.Errorf("%w: %g at index %d", ErrNegativeWeight, weight, i)
		case weight > 0:
			positive++
		}
	}
	if k > positive {
		return nil, fmt.Errorf(
			"%w: %d requested, %d positively weighted",
			ErrInsufficientWeight, k, positive,
		)
	}
	if k == 0 {
		return nil, nil
	}

	if float64(k) <= eliminationCutoff*float64(len(weights)) {
		return sampleByElimination(src, weights, k), nil
	}
	return sampleByScore(src, weights, k), nil
}

// UniformWithoutReplacement draws [k] distinct indices from [0, n), each
// k-subset equally likely, by running the first [k] steps of a Fisher-Yates
// shuffle over the index space.
//
// Sampling takes O(n) time and memory. There is no rejection loop; the cost
// is identical whether [k] is 1 or n.
func UniformWithoutReplacement(src Source, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrOutOfRange, k, n)
	}
	if k == 0 {
		return nil, nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + int(Uint64Inclusive(src, uint64(n-1-i)))
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:k], nil
}
