// Package enzymedb parses the ExpASy ENZYME flat-file database into an
// in-memory index of canonical enzyme names to EC numbers. The index is
// deliberately exact-match only: the same flat file (or a cache snapshot
// of it) always reproduces the same resolutions, which is the
// reproducibility contract every downstream mapping depends on.
package enzymedb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry status values. Only active entries are indexed for matching.
const (
	StatusActive      = "active"
	StatusTransferred = "transferred"
	StatusDeleted     = "deleted"
)

// Entry is a single enzyme record from the flat file. Entries are
// immutable once parsed.
type Entry struct {
	EC            string   `json:"ec_number"`
	PrimaryName   string   `json:"primary_name"`
	Synonyms      []string `json:"alternate_names"`
	Status        string   `json:"status"`
	TransferredTo string   `json:"transferred_to,omitempty"`
}

// AllNames returns the primary name followed by the synonyms, in file
// order. The ordering matters: the name index is first-writer-wins.
func (e *Entry) AllNames() []string {
	names := make([]string, 0, len(e.Synonyms)+1)
	names = append(names, e.PrimaryName)
	names = append(names, e.Synonyms...)
	return names
}

// DB holds the parsed entry set and the derived name index.
type DB struct {
	entries   map[string]*Entry
	order     []string          // EC numbers in file order
	nameIndex map[string]string // normalized name -> EC
}

// Entries returns the number of parsed entries.
func (db *DB) Entries() int { return len(db.entries) }

// IndexedNames returns the number of normalized names in the index.
func (db *DB) IndexedNames() int { return len(db.nameIndex) }

// Entry returns the entry for an EC number, or nil if unknown.
func (db *DB) Entry(ec string) *Entry { return db.entries[ec] }

// PrimaryName returns the primary name recorded for an EC number, or ""
// if the EC is not in the database. Family-level patterns ("3.1.1.-")
// are never in the flat file and resolve to "".
func (db *DB) PrimaryName(ec string) string {
	if e := db.entries[ec]; e != nil {
		return e.PrimaryName
	}
	return ""
}

var ecPattern = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)

// ParseFile parses an enzyme.dat flat file from disk.
func ParseFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("enzymedb: open %s: %w", path, err)
	}
	defer f.Close()
	db, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("enzymedb: parse %s: %w", path, err)
	}
	return db, nil
}

// Parse reads a line-oriented ENZYME flat file. Each record block runs
// from an "ID" line to a "//" terminator. "DE" carries the primary name
// (or a transferred/deleted marker), "AN" lines carry semicolon-
// separated synonyms. Blocks without an ID line are dropped silently;
// upstream releases contain header junk that parses as such blocks.
func Parse(r io.Reader) (*DB, error) {
	db := &DB{
		entries:   make(map[string]*Entry),
		nameIndex: make(map[string]string),
	}

	var cur *Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")

		switch {
		case strings.HasPrefix(line, "ID   "):
			cur = &Entry{
				EC:     strings.TrimSpace(line[5:]),
				Status: StatusActive,
			}

		case strings.HasPrefix(line, "DE   "):
			if cur == nil {
				continue
			}
			body := strings.TrimSpace(line[5:])
			switch {
			case strings.HasPrefix(body, "Transferred entry:"):
				cur.Status = StatusTransferred
				if m := ecPattern.FindString(body); m != "" {
					cur.TransferredTo = m
				}
			case strings.HasPrefix(body, "Deleted entry"):
				cur.Status = StatusDeleted
			default:
				cur.PrimaryName = strings.TrimSuffix(body, ".")
			}

		case strings.HasPrefix(line, "AN   "):
			if cur == nil {
				continue
			}
			// Each AN line is an independent semicolon-delimited group.
			body := strings.TrimSuffix(strings.TrimSpace(line[5:]), ".")
			for _, name := range strings.Split(body, ";") {
				if name = strings.TrimSpace(name); name != "" {
					cur.Synonyms = append(cur.Synonyms, name)
				}
			}

		case line == "//":
			if cur != nil && cur.EC != "" {
				db.entries[cur.EC] = cur
				db.order = append(db.order, cur.EC)
			}
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("enzymedb: scan: %w", err)
	}

	db.buildNameIndex()
	return db, nil
}

// buildNameIndex indexes every active entry's names in file order,
// primary name before synonyms, first writer wins. Transferred and
// deleted entries never match.
func (db *DB) buildNameIndex() {
	for _, ec := range db.order {
		entry := db.entries[ec]
		if entry.Status != StatusActive {
			continue
		}
		for _, name := range entry.AllNames() {
			key := NormalizeName(name)
			if key == "" {
				continue
			}
			if _, taken := db.nameIndex[key]; !taken {
				db.nameIndex[key] = ec
			}
		}
	}
}
