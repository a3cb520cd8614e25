// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSeedReplay(t *testing.T) {
	require := require.New(t)

	r := &Random{}
	r.SetSeed(5)
	r.Reset()

	first := make([]uint64, 8)
	for i := range first {
		first[i] = r.Source().Uint64()
	}

	r.Reset()
	for _, expected := range first {
		require.Equal(expected, r.Source().Uint64())
	}
}

func TestRandomUnseededResetRerolls(t *testing.T) {
	require := require.New(t)

	r := &Random{}
	r.Reset()
	first := make([]uint64, 8)
	for i := range first {
		first[i] = r.Source().Uint64()
	}

	r.Reset()
	second := make([]uint64, 8)
	for i := range second {
		second[i] = r.Source().Uint64()
	}
	require.NotEqual(first, second)
}

func TestRandomSeedState(t *testing.T) {
	require := require.New(t)

	r := &Random{}
	_, ok := r.SeedState()
	require.False(ok)

	r.SetSeed(42)
	seed, ok := r.SeedState()
	require.True(ok)
	require.Equal(int64(42), seed)

	r.ClearSeed()
	_, ok = r.SeedState()
	require.False(ok)
}

func TestRandomSourceContinuesStream(t *testing.T) {
	require := require.New(t)

	r := &Random{}
	r.SetSeed(17)
	r.Reset()

	reference := &Random{}
	reference.SetSeed(17)
	reference.Reset()
	expected := []uint64{
		reference.Source().Uint64(),
		reference.Source().Uint64(),
		reference.Source().Uint64(),
	}

	// Repeated Source calls must hand back the same advancing stream, not a
	// restarted one.
	for _, want := range expected {
		require.Equal(want, r.Source().Uint64())
	}
}
