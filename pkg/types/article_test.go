// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleRow(t *testing.T) {
	a := Article{
		Title:         "T",
		Authors:       []string{"Ann", "Bob"},
		Journal:       "J",
		DOI:           "10.1/x",
		PublishedDate: "2020-01-01",
		Abstract:      "Abs",
		URL:           "https://doi.org/10.1/x",
		Concepts:      []string{"c1", "c2", "c1"},
	}
	assert.Equal(t, []string{"T", "Ann, Bob", "J", "2020-01-01", "10.1/x", "https://doi.org/10.1/x", "Abs", "c1, c2, c1"}, a.Row())
	assert.Len(t, a.Row(), len(CSVHeader))
}

func TestArticleRowZeroValue(t *testing.T) {
	assert.Equal(t, []string{"", "", "", "", "", "", "", ""}, Article{}.Row())
}

func TestCSVHeader(t *testing.T) {
	assert.Equal(t, []string{"title", "authors", "journal", "published_date", "doi", "url", "abstract", "concepts"}, CSVHeader)
}
