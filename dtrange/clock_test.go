// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dtrange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClock(t *testing.T) {
	tests := []struct {
		name           string
		start          string
		stop           string
		step           time.Duration
		expectedLength int
	}{
		{
			name:           "working day",
			start:          "09:00:00",
			stop:           "17:00:00",
			step:           time.Hour,
			expectedLength: 8,
		},
		{
			name:           "quarter hours",
			start:          "09:30",
			stop:           "10:30",
			step:           15 * time.Minute,
			expectedLength: 4,
		},
		{
			name:           "wraps past midnight",
			start:          "23:00:00",
			stop:           "04:00:00",
			step:           time.Hour,
			expectedLength: 5,
		},
		{
			name:           "equal endpoints cover the full day",
			start:          "06:00:00",
			stop:           "06:00:00",
			step:           time.Hour,
			expectedLength: 24,
		},
		{
			name:           "equal endpoints at second granularity",
			start:          "00:00:00",
			stop:           "00:00:00",
			step:           time.Second,
			expectedLength: 86400,
		},
		{
			name:           "descending",
			start:          "04:00:00",
			stop:           "23:00:00",
			step:           -time.Hour,
			expectedLength: 5,
		},
		{
			name:           "descending equal endpoints cover the full day",
			start:          "12:00:00",
			stop:           "12:00:00",
			step:           -time.Hour,
			expectedLength: 24,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewClock(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			require.Equal(t, tt.expectedLength, r.Len())
		})
	}
}

func TestNewClockTimes(t *testing.T) {
	require := require.New(t)

	r, err := NewClock("23:00:00", "04:00:00", time.Hour)
	require.NoError(err)
	require.Equal(5, r.Len())
	require.Equal(23, r.At(0).Hour())
	require.Equal(0, r.At(1).Hour())
	require.Equal(3, r.At(4).Hour())
}

func TestNewClockErrors(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		stop        string
		step        time.Duration
		expectedErr error
	}{
		{
			name:        "zero step",
			start:       "09:00:00",
			stop:        "17:00:00",
			step:        0,
			expectedErr: ErrZeroStep,
		},
		{
			name:        "step spans a day",
			start:       "09:00:00",
			stop:        "17:00:00",
			step:        24 * time.Hour,
			expectedErr: ErrClockStep,
		},
		{
			name:        "negative step spans a day",
			start:       "09:00:00",
			stop:        "17:00:00",
			step:        -25 * time.Hour,
			expectedErr: ErrClockStep,
		},
		{
			name:        "bad start",
			start:       "9am",
			stop:        "17:00:00",
			step:        time.Hour,
			expectedErr: ErrBadTime,
		},
		{
			name:        "bad stop",
			start:       "09:00:00",
			stop:        "five",
			step:        time.Hour,
			expectedErr: ErrBadTime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClock(tt.start, tt.stop, tt.step)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
