// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"strings"

	"github.com/pdiddy/journal-tracker/pkg/types"
)

// MatchesKeyword reports whether keyword occurs, case-insensitively, as a
// substring of the article title, its abstract, or any single concept.
// An empty (or all-blank) keyword matches everything.
//
// The upstream search parameter only narrows results; this check decides
// what is kept.
func MatchesKeyword(a types.Article, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Abstract), kw) {
		return true
	}
	for _, c := range a.Concepts {
		if strings.Contains(strings.ToLower(c), kw) {
			return true
		}
	}
	return false
}
