// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schema assembles named fields into full synthetic records.
//
// A Field wraps a value emitter with optional repeat and gate emitters; a
// Schema evaluates its fields in attachment order and returns one map per
// record. Copy and Derived emitters read the cached output of earlier
// fields within the same record, so cross-field consistency comes from
// ordering alone.
package schema

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/logging"
)

var (
	// ErrDupField is returned when two fields share a name.
	ErrDupField = errors.New("duplicate field name")

	// ErrNilField is returned when a nil field is attached.
	ErrNilField = errors.New("field must not be nil")
)

type options struct {
	log logging.Logger
}

type Option func(*options)

// WithLogger attaches a logger reporting schema assembly and reseeding at
// Debug and per-record generation at Verbo.
func WithLogger(log logging.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Schema is an ordered collection of uniquely named fields. Generating a
// record evaluates every field in attachment order, hidden ones included,
// and maps the names of the visible ones to their values.
type Schema struct {
	log    logging.Logger
	fields []*Field
	byName map[string]*Field
}

func New(fields []*Field, opts ...Option) (*Schema, error) {
	o := &options{
		log: logging.NoLog{},
	}
	for _, opt := range opts {
		opt(o)
	}
	s := &Schema{
		log:    o.log,
		byName: make(map[string]*Field, len(fields)),
	}
	if err := s.AddFields(fields...); err != nil {
		return nil, err
	}
	return s, nil
}

// AddFields appends fields to the schema in the given order. Fields reading
// earlier fields' cached values must be added after their sources.
func (s *Schema) AddFields(fields ...*Field) error {
	for _, f := range fields {
		if f == nil {
			return ErrNilField
		}
		if _, ok := s.byName[f.name]; ok {
			return fmt.Errorf("%w: %q", ErrDupField, f.name)
		}
		s.byName[f.name] = f
		s.fields = append(s.fields, f)
		s.log.Debug("added field",
			zap.String("field", logging.Sanitize(f.name)),
			zap.Bool("hidden", f.hidden),
			zap.Bool("multiValued", f.MultiValued()),
		)
	}
	return nil
}

// Fields returns the attached fields in attachment order.
func (s *Schema) Fields() []*Field {
	fields := make([]*Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Field returns the named field, if attached.
func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Generate produces one record. Every field is evaluated, so hidden fields
// refresh the caches their dependents read, but only visible fields appear
// in the returned map.
func (s *Schema) Generate() (map[string]any, error) {
	record := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		value, err := f.Generate()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.name, err)
		}
		if !f.hidden {
			record[f.name] = value
		}
	}
	s.log.Verbo("generated record", zap.Int("fields", len(s.fields)))
	return record, nil
}

// GenerateMany produces the next [count] records.
func (s *Schema) GenerateMany(count int) ([]map[string]any, error) {
	if count < 1 {
		return nil, emitter.ErrInvalidCount
	}
	records := make([]map[string]any, count)
	for i := range records {
		record, err := s.Generate()
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}

// Reset resets every field in attachment order.
func (s *Schema) Reset() {
	for _, f := range s.fields {
		f.Reset()
	}
}

// Seed reseeds every field in attachment order with [seed] and resets.
func (s *Schema) Seed(seed int64) {
	s.log.Debug("reseeding fields",
		zap.Int64("seed", seed),
		zap.Int("fields", len(s.fields)),
	)
	for _, f := range s.fields {
		f.Seed(seed)
	}
}
