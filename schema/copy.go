// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
)

// ErrNoFields is returned when an emitter reading other fields is
// constructed without any.
var ErrNoFields = errors.New("at least one source field is required")

type copyOptions struct {
	separator string
	joined    bool
}

type CopyOption func(*copyOptions)

// WithSeparator collapses the copied values into a single string, joined
// with [sep].
func WithSeparator(sep string) CopyOption {
	return func(o *copyOptions) {
		o.separator = sep
		o.joined = true
	}
}

var (
	_ emitter.Emitter[any] = (*Copy)(nil)
	_ ValueEmitter         = (*Copy)(nil)
)

// Copy re-emits the cached previous values of other fields. A field backed
// by one reads its sources' contribution to the record being generated, so
// it must be attached after them.
//
// One single-valued source copies verbatim, nil included. Otherwise the
// sources' non-nil values flatten into one list, or, with a separator, join
// into one string.
type Copy struct {
	fields    []*Field
	verbatim  bool
	separator string
	joined    bool
}

func CopyOf(fields []*Field, opts ...CopyOption) (*Copy, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	for _, f := range fields {
		if f == nil {
			return nil, ErrNilField
		}
	}
	o := &copyOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return &Copy{
		fields:    slices.Clone(fields),
		verbatim:  len(fields) == 1 && !fields[0].MultiValued() && !o.joined,
		separator: o.separator,
		joined:    o.joined,
	}, nil
}

func (c *Copy) Emit() (any, error) {
	if c.verbatim {
		return c.fields[0].Previous(), nil
	}
	values := c.flatten()
	if !c.joined {
		if len(values) == 0 {
			return nil, nil
		}
		return values, nil
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, c.separator), nil
}

// EmitMany repeats the record's snapshot: the sources are read once and the
// same value fills all [count] slots.
func (c *Copy) EmitMany(count int) ([]any, error) {
	if count < 1 {
		return nil, emitter.ErrInvalidCount
	}
	value, err := c.Emit()
	if err != nil {
		return nil, err
	}
	values := make([]any, count)
	for i := range values {
		values[i] = value
	}
	return values, nil
}

func (c *Copy) flatten() []any {
	var values []any
	for _, f := range c.fields {
		switch v := f.Previous().(type) {
		case nil:
		case []any:
			values = append(values, v...)
		default:
			values = append(values, v)
		}
	}
	return values
}

func (*Copy) EmitsUniqueValues() bool {
	return false
}

func (*Copy) NumUniqueValues() (int, bool) {
	return 0, false
}

// Reset deliberately leaves the source fields alone: they normally belong
// to the same schema, which resets them itself, and resetting here would do
// it twice.
func (*Copy) Reset() {}
