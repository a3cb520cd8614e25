// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCumulative(t *testing.T) {
	tests := []struct {
		name     string
		weights  []float64
		expected []float64
	}{
		{
			name:     "empty",
			weights:  nil,
			expected: []float64{},
		},
		{
			name:     "single",
			weights:  []float64{2.5},
			expected: []float64{2.5},
		},
		{
			name:     "running total",
			weights:  []float64{1, 2, 3},
			expected: []float64{1, 3, 6},
		},
		{
			name:     "zero slots keep predecessor total",
			weights:  []float64{1, 0, 2, 0},
			expected: []float64{1, 1, 3, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			cum, err := Cumulative(tt.weights)
			require.NoError(err)
			require.Len(cum, len(tt.weights))
			for i, expected := range tt.expected {
				require.InDelta(expected, cum[i], 1e-12)
			}
		})
	}
}

func TestCumulativeNegativeWeight(t *testing.T) {
	_, err := Cumulative([]float64{1, -0.5, 2})
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestWithReplacementErrors(t *testing.T) {
	require := require.New(t)
	src := NewSource(0)

	_, err := WithReplacement(src, []float64{1, 2}, -1)
	require.ErrorIs(err, ErrOutOfRange)

	_, err = WithReplacement(src, nil, 1)
	require.ErrorIs(err, ErrOutOfRange)

	_, err = WithReplacement(src, []float64{0, 0, 0}, 1)
	require.ErrorIs(err, ErrNoWeight)
}

func TestWithReplacementBounds(t *testing.T) {
	require := require.New(t)

	src := NewSource(17)
	cum, err := Cumulative([]float64{1, 2, 3, 4})
	require.NoError(err)

	drawn, err := WithReplacement(src, cum, 1000)
	require.NoError(err)
	require.Len(drawn, 1000)
	for _, index := range drawn {
		require.GreaterOrEqual(index, 0)
		require.Less(index, 4)
	}
}

func TestWithReplacementZeroWeightNeverSelected(t *testing.T) {
	require := require.New(t)

	src := NewSource(42)
	cum, err := Cumulative([]float64{0, 5, 0, 5, 0})
	require.NoError(err)

	drawn, err := WithReplacement(src, cum, 2000)
	require.NoError(err)
	for _, index := range drawn {
		require.Contains([]int{1, 3}, index)
	}
}

// Over a large sample the selection frequency of a slot must grow with its
// weight. The weights are separated by an order of magnitude each, so the
// ordering is unambiguous for any healthy stream.
func TestWithReplacementWeightMonotonicity(t *testing.T) {
	require := require.New(t)

	src := NewSource(7)
	cum, err := Cumulative([]float64{1, 10, 100})
	require.NoError(err)

	counts := make([]int, 3)
	drawn, err := WithReplacement(src, cum, 30000)
	require.NoError(err)
	for _, index := range drawn {
		counts[index]++
	}
	require.Less(counts[0], counts[1])
	require.Less(counts[1], counts[2])
}

func TestWithReplacementDeterminism(t *testing.T) {
	require := require.New(t)

	cum, err := Cumulative([]float64{3, 1, 4, 1, 5})
	require.NoError(err)

	a, err := WithReplacement(NewSource(333), cum, 64)
	require.NoError(err)
	b, err := WithReplacement(NewSource(333), cum, 64)
	require.NoError(err)
	require.Equal(a, b)
}
