// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package text

import (
	"errors"
	"math"
	"strings"

	"github.com/ava-labs/datagen/emitter"
	safemath "github.com/ava-labs/datagen/utils/math"
)

var (
	ErrNilEmitter = errors.New("child emitter must not be nil")

	_ emitter.Emitter[string] = (*Word)(nil)
	_ emitter.Seedable        = (*Word)(nil)
)

// Word emits random strings by drawing a length and then that many
// characters from an alphabet generator. Both dimensions are ordinary
// emitters, so lengths can be weighted and alphabets shared between fields.
type Word struct {
	emitter.Random

	length   emitter.Emitter[int]
	alphabet emitter.Emitter[string]

	unique   int
	uniqueOK bool
}

func NewWord(length emitter.Emitter[int], alphabet emitter.Emitter[string], opts ...Option) (*Word, error) {
	if length == nil || alphabet == nil {
		return nil, ErrNilEmitter
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	w := &Word{
		length:   length,
		alphabet: alphabet,
	}
	w.unique, w.uniqueOK = wordCardinality(length, alphabet)
	if o.seeded {
		w.SetSeed(o.seed)
	}
	w.Reset()
	return w, nil
}

func (w *Word) Emit() (string, error) {
	length, err := w.length.Emit()
	if err != nil {
		return "", err
	}
	if length <= 0 {
		return "", nil
	}
	chars, err := w.alphabet.EmitMany(length)
	if err != nil {
		return "", err
	}
	return strings.Join(chars, ""), nil
}

// EmitMany draws all lengths up front, emits every character in one bulk
// call, and partitions the result into words. One big character draw is much
// faster than one draw per word.
func (w *Word) EmitMany(count int) ([]string, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	lengths, err := w.length.EmitMany(count)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, l := range lengths {
		if l > 0 {
			total += l
		}
	}
	var chars []string
	if total > 0 {
		if chars, err = w.alphabet.EmitMany(total); err != nil {
			return nil, err
		}
	}

	out := make([]string, count)
	index := 0
	for i, l := range lengths {
		if l <= 0 {
			continue
		}
		out[i] = strings.Join(chars[index:index+l], "")
		index += l
	}
	return out, nil
}

func (*Word) EmitsUniqueValues() bool {
	return false
}

// NumUniqueValues is the sum over every emittable length L of
// alphabet^L, computed once at construction. It is unknowable when the
// length generator cannot list its values, when the alphabet's own count is
// unknowable, or when the sum overflows.
func (w *Word) NumUniqueValues() (int, bool) {
	return w.unique, w.uniqueOK
}

func (w *Word) Reset() {
	seed, seeded := w.SeedState()
	emitter.ResetChildren(seed, seeded, w.length, w.alphabet)
	w.Random.Reset()
}

func (w *Word) Seed(seed int64) {
	emitter.SeedChildren(seed, w.length, w.alphabet)
	w.SetSeed(seed)
	w.Random.Reset()
}

func wordCardinality(length emitter.Emitter[int], alphabet emitter.Emitter[string]) (int, bool) {
	enum, ok := length.(emitter.Enumerable[int])
	if !ok {
		return 0, false
	}
	nchars, ok := alphabet.NumUniqueValues()
	if !ok {
		return 0, false
	}

	var (
		total    uint64
		sawEmpty bool
		err      error
	)
	for _, l := range uniqueLengths(enum) {
		// Every non-positive length produces the same empty string.
		per := uint64(1)
		if l > 0 {
			if per, err = pow64(uint64(nchars), l); err != nil {
				return 0, false
			}
		} else if sawEmpty {
			continue
		} else {
			sawEmpty = true
		}
		if total, err = safemath.Add64(total, per); err != nil {
			return 0, false
		}
	}
	if total > math.MaxInt64 {
		return 0, false
	}
	return int(total), true
}
