// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"strings"
	"testing"
)

func TestReconstructAbstract(t *testing.T) {
	tests := []struct {
		name  string
		index map[string][]int
		want  string
	}{
		{
			name:  "empty map",
			index: map[string][]int{},
			want:  "",
		},
		{
			name:  "nil map",
			index: nil,
			want:  "",
		},
		{
			name:  "single word",
			index: map[string][]int{"hello": {0}},
			want:  "hello",
		},
		{
			name: "multi-word ordered",
			index: map[string][]int{
				"We":      {0},
				"propose": {1},
				"a":       {2},
				"new":     {3},
				"method":  {4},
			},
			want: "We propose a new method",
		},
		{
			name: "repeated word contributes each position",
			index: map[string][]int{
				"the": {0, 4},
				"cat": {1},
				"sat": {2},
				"on":  {3},
				"mat": {5},
			},
			want: "the cat sat on the mat",
		},
		{
			name:  "gap leaves no placeholder",
			index: map[string][]int{"a": {0}, "c": {2}},
			want:  "a c",
		},
		{
			name:  "positions need not start at zero",
			index: map[string][]int{"late": {17}, "start": {40}, "here": {9}},
			want:  "here late start",
		},
		{
			name:  "colliding positions keep one word",
			index: map[string][]int{"beta": {0}, "alpha": {0}, "gamma": {1}},
			want:  "alpha gamma",
		},
		{
			name:  "word with no positions",
			index: map[string][]int{"ghost": {}, "real": {0}},
			want:  "real",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconstructAbstract(tt.index)
			if got != tt.want {
				t.Errorf("ReconstructAbstract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReconstructAbstractRoundTrip(t *testing.T) {
	sentences := []string{
		"Loss aversion shapes how households save for retirement",
		"the the the",
		"We find that defaults matter and that defaults persist",
	}
	for _, s := range sentences {
		index := make(map[string][]int)
		for i, w := range strings.Split(s, " ") {
			index[w] = append(index[w], i)
		}
		if got := ReconstructAbstract(index); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestAbstractOfFallsBackToPlainField(t *testing.T) {
	r := record{"abstract": "Plain text abstract."}
	if got := abstractOf(r, "abstract_inverted_index", "abstract"); got != "Plain text abstract." {
		t.Errorf("abstractOf() = %q", got)
	}

	r = record{
		"abstract_inverted_index": map[string]any{},
		"abstract":                "fallback",
	}
	if got := abstractOf(r, "abstract_inverted_index", "abstract"); got != "fallback" {
		t.Errorf("abstractOf() with empty index = %q, want fallback", got)
	}

	r = record{
		"abstract_inverted_index": map[string]any{"b": []any{1.0}, "a": []any{0.0}},
		"abstract":                "ignored",
	}
	if got := abstractOf(r, "abstract_inverted_index", "abstract"); got != "a b" {
		t.Errorf("abstractOf() with index = %q, want %q", got, "a b")
	}

	if got := abstractOf(record{}, "abstract_inverted_index", "abstract"); got != "" {
		t.Errorf("abstractOf() on empty record = %q, want empty", got)
	}
}
