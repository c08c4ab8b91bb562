// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/journal-tracker/pkg/types"
)

func TestMatchesKeyword(t *testing.T) {
	nudgeTitle := types.Article{Title: "Nudges and Saving Behavior"}
	unrelated := types.Article{
		Title:    "Monetary Policy Transmission",
		Abstract: "We study interest rates.",
		Concepts: []string{"Economics", "Central bank"},
	}

	tests := []struct {
		name    string
		article types.Article
		keyword string
		want    bool
	}{
		{"empty keyword passes", unrelated, "", true},
		{"blank keyword passes", unrelated, "   ", true},
		{"empty keyword passes empty article", types.Article{}, "", true},
		{"title match case-insensitive", nudgeTitle, "nudge", true},
		{"title match upper keyword", nudgeTitle, "NUDGE", true},
		{"substring inside word", types.Article{Title: "Nudging Behavior"}, "nudg", true},
		{"abstract match", types.Article{Abstract: "A field experiment on loss aversion."}, "Loss Aversion", true},
		{"concept match", types.Article{Concepts: []string{"Economics", "Behavioral economics"}}, "behavioral", true},
		{"no occurrence rejected", unrelated, "nudge", false},
		{"keyword spanning two concepts rejected", types.Article{Concepts: []string{"loss", "aversion"}}, "loss aversion", false},
		{"authors are not searched", types.Article{Authors: []string{"Richard Thaler"}}, "thaler", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesKeyword(tt.article, tt.keyword))
		})
	}
}
