// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pdiddy/journal-tracker/internal/journals"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// Column widths in terminal cells; titles and journal names are often CJK
// or accented, so truncation is width-aware.
const (
	titleWidth   = 60
	authorsWidth = 24
	journalWidth = 32
	tail         = "..."
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
	)
}

// WriteTable writes a condensed, human-readable table of articles.
func WriteTable(w io.Writer, articles []types.Article) error {
	if len(articles) == 0 {
		_, err := fmt.Fprintln(w, "No articles found.")
		return err
	}

	rows := make([][]string, len(articles))
	for i, a := range articles {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			runewidth.Truncate(a.Title, titleWidth, tail),
			runewidth.Truncate(formatAuthors(a.Authors), authorsWidth, tail),
			runewidth.Truncate(a.Journal, journalWidth, tail),
			a.PublishedDate,
			a.DOI,
		}
	}

	t := newTable(w)
	t.Header([]string{"#", "Title", "Authors", "Journal", "Published", "DOI"})
	if err := t.Bulk(rows); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	return t.Render()
}

// WriteJournals writes the journal directory as a name/ISSN table.
func WriteJournals(w io.Writer, dir journals.Directory) error {
	rows := make([][]string, 0, dir.Len())
	for _, j := range dir.Entries() {
		rows = append(rows, []string{j.Name, j.ISSN})
	}
	t := newTable(w)
	t.Header([]string{"Journal", "ISSN"})
	if err := t.Bulk(rows); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	return t.Render()
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	default:
		return strings.TrimSpace(authors[0]) + " et al."
	}
}
