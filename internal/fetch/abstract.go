// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"cmp"
	"slices"
	"strings"
)

// ReconstructAbstract rebuilds plain text from an inverted index mapping
// each word to the positions where it occurs. Words are emitted in
// ascending position order joined by single spaces. Positions need not be
// contiguous or start at zero; gaps produce no placeholder. If two words
// claim the same position the lexically smaller one is kept.
func ReconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	slices.SortFunc(pairs, func(a, b posWord) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		return strings.Compare(a.word, b.word)
	})

	words := make([]string, 0, len(pairs))
	for i, p := range pairs {
		if i > 0 && pairs[i-1].pos == p.pos {
			continue
		}
		words = append(words, p.word)
	}
	return strings.Join(words, " ")
}

// abstractOf prefers the inverted index at indexKey and falls back to the
// plain string at textKey.
func abstractOf(r record, indexKey, textKey string) string {
	if index := r.invertedIndex(indexKey); len(index) > 0 {
		return ReconstructAbstract(index)
	}
	return r.str(textKey)
}
