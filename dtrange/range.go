// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dtrange provides lazy, evenly stepped date/time sequences that
// can serve as populations without being materialized.
package dtrange

import (
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/datagen/choice"
)

var (
	ErrZeroStep   = errors.New("step must not be zero")
	ErrClockStep  = errors.New("clock step must be shorter than one day")
	ErrBadTime    = errors.New("unrecognized date or time format")
	ErrNotInRange = errors.New("value not in range")

	_ choice.Sequence[time.Time] = (*Range)(nil)
)

// Range is the half-open sequence start, start+step, … of length values.
// Values are computed on demand; a Range over a century of seconds costs
// the same three words as one over an afternoon.
type Range struct {
	start  time.Time
	length int
	step   time.Duration
}

// New builds the range of values from [start] (inclusive) towards [stop]
// (exclusive). A partial final step rounds the length up, so the last value
// may overshoot toward stop. A stop on the wrong side of start yields an
// empty range.
func New(start, stop time.Time, step time.Duration) (*Range, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	return &Range{
		start:  start,
		length: rangeLength(stop.Sub(start), step),
		step:   step,
	}, nil
}

func rangeLength(delta, step time.Duration) int {
	if delta == 0 || (delta > 0) != (step > 0) {
		return 0
	}
	q := delta / step
	if delta%step != 0 {
		q++
	}
	return int(q)
}

func (r *Range) Len() int {
	return r.length
}

// At returns the i-th value. It panics when i is outside [0, Len()), like a
// slice index.
func (r *Range) At(i int) time.Time {
	if i < 0 || i >= r.length {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, r.length))
	}
	return r.start.Add(time.Duration(i) * r.step)
}

func (r *Range) Start() time.Time {
	return r.start
}

// Stop returns the exclusive end, one step past the last value.
func (r *Range) Stop() time.Time {
	return r.start.Add(time.Duration(r.length) * r.step)
}

func (r *Range) Step() time.Duration {
	return r.step
}

// Index returns the position of [value], or [ErrNotInRange] when the value
// is off-step or outside the range.
func (r *Range) Index(value time.Time) (int, error) {
	diff := value.Sub(r.start)
	q := diff / r.step
	if diff%r.step != 0 || q < 0 || q >= time.Duration(r.length) {
		return 0, fmt.Errorf("%w: %s", ErrNotInRange, value)
	}
	return int(q), nil
}

func (r *Range) Contains(value time.Time) bool {
	_, err := r.Index(value)
	return err == nil
}

// Equal reports whether both ranges produce the same values. Empty ranges
// are all equal; single-value ranges compare by start alone.
func (r *Range) Equal(other *Range) bool {
	if other == nil || r.length != other.length {
		return false
	}
	if r.length == 0 {
		return true
	}
	if !r.start.Equal(other.start) {
		return false
	}
	return r.length == 1 || r.step == other.step
}

const stringLayout = "2006-01-02 15:04:05"

func (r *Range) String() string {
	return fmt.Sprintf("Range(%s, %s, step=%s)",
		r.start.Format(stringLayout),
		r.Stop().Format(stringLayout),
		r.step,
	)
}
