// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emitter

// Emitters composed from child emitters keep an ordered list of child
// handles and delegate the tree walk to the two routines here. Determinism
// holds at the whole-tree level: two structurally identical trees built with
// identical seeds produce byte-identical output sequences, because both
// routines visit children in the same fixed attachment order.

type seedSettable interface {
	SetSeed(seed int64)
}

type seedClearable interface {
	ClearSeed()
}

type resettable interface {
	Reset()
}

// ResetChildren pushes the parent's stored seed state down by assignment
// (not re-derivation) and then resets each child, in attachment order.
// Children without a matching capability, such as constants, are skipped
// without error. The parent resets its own source and derived state after
// this returns.
func ResetChildren(seed int64, seeded bool, children ...any) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if seeded {
			if s, ok := child.(seedSettable); ok {
				s.SetSeed(seed)
			}
		} else if c, ok := child.(seedClearable); ok {
			c.ClearSeed()
		}
		if r, ok := child.(resettable); ok {
			r.Reset()
		}
	}
}

// SeedChildren fully reseeds each seedable child with [seed], in attachment
// order. The parent stores and applies its own new seed after this returns.
func SeedChildren(seed int64, children ...any) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if s, ok := child.(Seedable); ok {
			s.Seed(seed)
		}
	}
}
