// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import "fmt"

const dateFmt = "2006-01-02"

// publicationDate returns dateStr verbatim when present, otherwise
// "{year}-01-01" when a year is known, otherwise "".
func publicationDate(dateStr string, year int, hasYear bool) string {
	if dateStr != "" {
		return dateStr
	}
	if hasYear {
		return fmt.Sprintf("%04d-01-01", year)
	}
	return ""
}

// datePartsDate formats a [year, month?, day?] triple as YYYY-MM-DD.
// Missing or out-of-range month and day default to 1; a missing year
// yields "".
func datePartsDate(parts []int) string {
	if len(parts) == 0 {
		return ""
	}
	year, month, day := parts[0], 1, 1
	if len(parts) > 1 && parts[1] >= 1 && parts[1] <= 12 {
		month = parts[1]
	}
	if len(parts) > 2 && parts[2] >= 1 && parts[2] <= 31 {
		day = parts[2]
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// dateParts extracts the first date-parts triple from a Crossref date
// object such as {"date-parts": [[2018, 7, 3]]}. Parsing stops at the first
// element that is not a whole number, so [[null]] yields no parts.
func dateParts(r record) []int {
	outer := r.list("date-parts")
	if len(outer) == 0 {
		return nil
	}
	inner, _ := outer[0].([]any)
	var parts []int
	for _, v := range inner {
		n, ok := asInt(v)
		if !ok {
			break
		}
		parts = append(parts, n)
	}
	return parts
}
