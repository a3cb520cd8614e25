// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package text synthesizes words and multi-word strings from composable
// length, character, and separator generators.
package text

// defaultRanges covers the printable Latin repertoire minus quote
// characters and the soft hyphen.
var defaultRanges = [][2]rune{
	{0x0021, 0x0021},
	{0x0023, 0x0026},
	{0x0028, 0x007E},
	{0x00A1, 0x00AC},
	{0x00AE, 0x00FF},
}

// Alphabet expands inclusive code point ranges into a population of
// single-character strings, ready to weight and draw from. With no ranges it
// returns the default printable Latin set.
func Alphabet(ranges ...[2]rune) []string {
	if len(ranges) == 0 {
		ranges = defaultRanges
	}
	var out []string
	for _, r := range ranges {
		for code := r[0]; code <= r[1]; code++ {
			out = append(out, string(code))
		}
	}
	return out
}
