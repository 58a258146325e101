// Package ontology validates the curated identifier tables against
// ontology snapshot files (CHEBI, GO, and EC node tables in TSV form).
package ontology

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Term is one row of an ontology node table.
type Term struct {
	ID         string
	Name       string
	Deprecated bool
	Category   string
	Synonym    string
}

// Index holds one ontology snapshot keyed by term id.
type Index struct {
	path  string
	terms map[string]Term
}

var intenzEC = regexp.MustCompile(`ec=([0-9.]+)`)

// LoadIndex reads a TSV node table. A missing file yields an empty
// index so a partial snapshot directory still validates what it can;
// the validator reports every id as missing in that case.
func LoadIndex(path string) (*Index, error) {
	idx := &Index{path: path, terms: make(map[string]Term)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ontology: open %s: %w", path, err)
	}
	defer f.Close()

	if err := idx.load(f); err != nil {
		return nil, fmt.Errorf("ontology: load %s: %w", path, err)
	}
	return idx, nil
}

func (idx *Index) load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		id := field(row, "id")
		if id == "" {
			continue
		}
		// IntEnz URLs stand in for bare EC numbers in some snapshots.
		if m := intenzEC.FindStringSubmatch(id); m != nil {
			id = m[1]
		}
		idx.terms[id] = Term{
			ID:         id,
			Name:       field(row, "name"),
			Deprecated: strings.EqualFold(field(row, "deprecated"), "true"),
			Category:   field(row, "category"),
			Synonym:    field(row, "synonym"),
		}
	}
}

// Lookup returns the term for an id.
func (idx *Index) Lookup(id string) (Term, bool) {
	t, ok := idx.terms[id]
	return t, ok
}

// Len reports the number of indexed terms.
func (idx *Index) Len() int { return len(idx.terms) }
