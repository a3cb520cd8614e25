// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choice

import (
	"errors"
	"fmt"
)

var ErrBadPolicy = errors.New("unknown replacement policy")

// Policy selects how a Choice treats a slot after drawing it.
type Policy int

const (
	// FullReplacement draws every slot independently. A slot may repeat
	// arbitrarily often, both within one call and across calls.
	FullReplacement Policy = iota

	// NoReplacement consumes each slot at most once until the next reset.
	// The population is a finite stream of unique slots.
	NoReplacement

	// PerCallOnly keeps slots unique within a single EmitMany call but
	// restores the full population between calls.
	PerCallOnly
)

func (p Policy) String() string {
	switch p {
	case FullReplacement:
		return "full replacement"
	case NoReplacement:
		return "no replacement"
	case PerCallOnly:
		return "per-call only"
	default:
		return "unknown policy"
	}
}

func (p Policy) Verify() error {
	switch p {
	case FullReplacement, NoReplacement, PerCallOnly:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrBadPolicy, p)
	}
}
