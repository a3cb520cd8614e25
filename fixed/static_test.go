// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/datagen/emitter"
)

func TestStatic(t *testing.T) {
	require := require.New(t)

	s := NewStatic("rock")

	v, err := s.Emit()
	require.NoError(err)
	require.Equal("rock", v)

	many, err := s.EmitMany(3)
	require.NoError(err)
	require.Equal([]string{"rock", "rock", "rock"}, many)

	_, err = s.EmitMany(0)
	require.ErrorIs(err, emitter.ErrInvalidCount)

	unique, ok := s.NumUniqueValues()
	require.True(ok)
	require.Equal(1, unique)
	require.False(s.EmitsUniqueValues())
	require.Equal([]string{"rock"}, s.Items())

	s.Reset()
	v, err = s.Emit()
	require.NoError(err)
	require.Equal("rock", v)
}
