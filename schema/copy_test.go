// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/fixed"
)

func TestCopyOfErrors(t *testing.T) {
	require := require.New(t)

	_, err := CopyOf(nil)
	require.ErrorIs(err, ErrNoFields)

	f := mustField(t, "src", Value[string](fixed.NewStatic("x")))
	_, err = CopyOf([]*Field{f, nil})
	require.ErrorIs(err, ErrNilField)
}

func TestCopyVerbatim(t *testing.T) {
	require := require.New(t)

	src := mustField(t, "src", Value[string](mustSequential(t, "a", "b")))
	c, err := CopyOf([]*Field{src})
	require.NoError(err)

	// Nothing generated yet, so there is nothing to copy.
	v, err := c.Emit()
	require.NoError(err)
	require.Nil(v)

	_, err = src.Generate()
	require.NoError(err)
	v, err = c.Emit()
	require.NoError(err)
	require.Equal("a", v)

	_, err = src.Generate()
	require.NoError(err)
	v, err = c.Emit()
	require.NoError(err)
	require.Equal("b", v)
}

func TestCopyVerbatimKeepsGatedNil(t *testing.T) {
	require := require.New(t)

	off := mustField(t, "off", Value[string](fixed.NewStatic("z")),
		WithGate(fixed.NewStatic(false)),
	)
	c, err := CopyOf([]*Field{off})
	require.NoError(err)

	_, err = off.Generate()
	require.NoError(err)
	v, err := c.Emit()
	require.NoError(err)
	require.Nil(v)
}

func TestCopyFlattens(t *testing.T) {
	require := require.New(t)

	one := mustField(t, "one", Value[string](fixed.NewStatic("x")))
	many := mustField(t, "many", Value[string](mustSequential(t, "p", "q")),
		WithRepeat(fixed.NewStatic(2)),
	)
	off := mustField(t, "off", Value[string](fixed.NewStatic("z")),
		WithGate(fixed.NewStatic(false)),
	)

	c, err := CopyOf([]*Field{one, many, off})
	require.NoError(err)

	// All sources empty flattens to nil, not an empty list.
	v, err := c.Emit()
	require.NoError(err)
	require.Nil(v)

	for _, f := range []*Field{one, many, off} {
		_, err = f.Generate()
		require.NoError(err)
	}

	v, err = c.Emit()
	require.NoError(err)
	require.Equal([]any{"x", "p", "q"}, v)
}

func TestCopyJoins(t *testing.T) {
	require := require.New(t)

	id := mustField(t, "id", Value[int](fixed.NewStatic(7)))
	tag := mustField(t, "tag", Value[string](fixed.NewStatic("x")))
	for _, f := range []*Field{id, tag} {
		_, err := f.Generate()
		require.NoError(err)
	}

	c, err := CopyOf([]*Field{id, tag}, WithSeparator("-"))
	require.NoError(err)
	v, err := c.Emit()
	require.NoError(err)
	require.Equal("7-x", v)

	// A separator asks for a string even from a single single-valued
	// source.
	solo, err := CopyOf([]*Field{id}, WithSeparator(", "))
	require.NoError(err)
	v, err = solo.Emit()
	require.NoError(err)
	require.Equal("7", v)

	// Joining nothing gives an empty string.
	off := mustField(t, "off", Value[string](fixed.NewStatic("z")),
		WithGate(fixed.NewStatic(false)),
	)
	_, err = off.Generate()
	require.NoError(err)
	empty, err := CopyOf([]*Field{off}, WithSeparator(","))
	require.NoError(err)
	v, err = empty.Emit()
	require.NoError(err)
	require.Equal("", v)
}

func TestCopyEmitManyRepeatsSnapshot(t *testing.T) {
	require := require.New(t)

	src := mustField(t, "src", Value[string](mustSequential(t, "a", "b")))
	c, err := CopyOf([]*Field{src})
	require.NoError(err)

	_, err = src.Generate()
	require.NoError(err)

	values, err := c.EmitMany(3)
	require.NoError(err)
	require.Equal([]any{"a", "a", "a"}, values)

	_, err = c.EmitMany(0)
	require.ErrorIs(err, emitter.ErrInvalidCount)
}

func TestCopyUniquenessUnknowable(t *testing.T) {
	require := require.New(t)

	src := mustField(t, "src", Value[string](fixed.NewStatic("x")))
	c, err := CopyOf([]*Field{src})
	require.NoError(err)

	require.False(c.EmitsUniqueValues())
	_, ok := c.NumUniqueValues()
	require.False(ok)
}
