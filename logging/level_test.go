// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allLevels = []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}

func TestAlignedString(t *testing.T) {
	for _, l := range allLevels {
		as := l.AlignedString()
		require.Len(t, as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(t, s[:alignedStringLen], as)
		default:
			require.Equal(t, s, as[:len(s)])
			require.Equal(t, as[len(s):], strings.Repeat(" ", alignedStringLen-len(s)))
		}
	}
}

func TestToLevelRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		parsed, err := ToLevel(l.String())
		require.NoError(err)
		require.Equal(l, parsed)

		parsed, err = ToLevel(strings.ToLower(l.String()))
		require.NoError(err)
		require.Equal(l, parsed)
	}

	_, err := ToLevel("shouting")
	require.Error(err)
}

func TestEnabled(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		require.False(Off.Enabled(l))
	}

	require.True(Info.Enabled(Fatal))
	require.True(Info.Enabled(Warn))
	require.True(Info.Enabled(Info))
	require.False(Info.Enabled(Trace))
	require.False(Info.Enabled(Debug))

	for _, l := range allLevels[1:] {
		require.True(Verbo.Enabled(l))
	}
}
