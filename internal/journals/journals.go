// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journals holds the journal directory: an ordered, read-only
// mapping from human-readable journal name to ISSN.
package journals

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Journal pairs a display name with the ISSN used to query upstream APIs.
type Journal struct {
	Name string `yaml:"name"`
	ISSN string `yaml:"issn"`
}

// Directory is an immutable name→ISSN lookup table. The zero value is an
// empty directory. Construct with New or Load; Directory values are safe
// to copy and share.
type Directory struct {
	entries []Journal
	byName  map[string]string
}

// New builds a Directory from entries, preserving their order. Names must
// be unique and non-empty and every entry needs an ISSN.
func New(entries []Journal) (Directory, error) {
	d := Directory{
		entries: make([]Journal, 0, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}
	for i, j := range entries {
		name := strings.TrimSpace(j.Name)
		issn := strings.TrimSpace(j.ISSN)
		if name == "" {
			return Directory{}, fmt.Errorf("journal %d: empty name", i)
		}
		if issn == "" {
			return Directory{}, fmt.Errorf("journal %q: empty ISSN", name)
		}
		if _, dup := d.byName[name]; dup {
			return Directory{}, fmt.Errorf("journal %q listed twice", name)
		}
		d.entries = append(d.entries, Journal{Name: name, ISSN: issn})
		d.byName[name] = issn
	}
	return d, nil
}

// Lookup returns the ISSN for name.
func (d Directory) Lookup(name string) (string, bool) {
	issn, ok := d.byName[name]
	return issn, ok
}

// Names returns journal names in directory order.
func (d Directory) Names() []string {
	names := make([]string, len(d.entries))
	for i, j := range d.entries {
		names[i] = j.Name
	}
	return names
}

// Entries returns a copy of the directory contents in order.
func (d Directory) Entries() []Journal {
	out := make([]Journal, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len reports the number of journals in the directory.
func (d Directory) Len() int { return len(d.entries) }

// fileFormat is the on-disk representation of a journal directory.
type fileFormat struct {
	Journals []Journal `yaml:"journals"`
}

// Load reads a YAML journal directory file of the form
//
//	journals:
//	  - name: Econometrica
//	    issn: 0012-9682
func Load(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, fmt.Errorf("reading journals file: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Directory{}, fmt.Errorf("parsing journals file: %w", err)
	}
	if len(f.Journals) == 0 {
		return Directory{}, fmt.Errorf("journals file %s lists no journals", path)
	}
	return New(f.Journals)
}
