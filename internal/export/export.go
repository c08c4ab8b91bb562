// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders fetched articles: the CSV artifact, a terminal
// table, JSON, and CSL-YAML for reference managers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/journal-tracker/pkg/types"
)

// Format selects an output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatCSL   Format = "csl"
)

// DefaultCSVFile is the file name used for CSV output when no path is given.
const DefaultCSVFile = "behavior_articles.csv"

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatCSL:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be table, csv, json, or csl", s)
}

// Write renders articles to w in format f.
func Write(w io.Writer, f Format, articles []types.Article) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, articles)
	case FormatJSON:
		return WriteJSON(w, articles)
	case FormatCSL:
		return WriteCSL(w, articles)
	case FormatTable:
		return WriteTable(w, articles)
	}
	return fmt.Errorf("invalid format %q", f)
}

// WriteCSV writes a header row in types.CSVHeader order followed by one row
// per article. Output is UTF-8 with RFC 4180 quoting.
func WriteCSV(w io.Writer, articles []types.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, a := range articles {
		if err := cw.Write(a.Row()); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes articles as indented JSON.
func WriteJSON(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}
