// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dtrange

import (
	"fmt"
	"time"
)

// clockDate anchors clock-only ranges to a fixed reference day, so
// midnight wraps land on its successor.
var clockDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// NewClock builds a range over "HH:MM:SS" (or "HH:MM") times of day,
// anchored to a fixed reference date. A stop at or before the start wraps
// past midnight; equal endpoints mean the full 24-hour clock rather than an
// empty range, in either step direction.
func NewClock(start, stop string, step time.Duration) (*Range, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	if step >= 24*time.Hour || step <= -24*time.Hour {
		return nil, ErrClockStep
	}

	startAt, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	stopAt, err := parseClock(stop)
	if err != nil {
		return nil, err
	}

	switch {
	case step > 0 && !stopAt.After(startAt):
		stopAt = stopAt.Add(24 * time.Hour)
	case step < 0 && !stopAt.Before(startAt):
		stopAt = stopAt.Add(-24 * time.Hour)
	}
	return New(startAt, stopAt, step)
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		offset := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
		return clockDate.Add(offset), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTime, s)
}
