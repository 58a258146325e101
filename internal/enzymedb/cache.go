package enzymedb

import (
	"encoding/json"
	"fmt"
	"os"
)

// snapshot is the on-disk cache document. It carries both the entry set
// and the derived name index so a reload reproduces matching behavior
// without re-parsing the flat file.
type snapshot struct {
	Entries   map[string]*Entry `json:"entries"`
	Order     []string          `json:"order"`
	NameIndex map[string]string `json:"name_index"`
}

// SaveCache writes the database to a JSON snapshot at path.
func (db *DB) SaveCache(path string) error {
	data, err := json.MarshalIndent(snapshot{
		Entries:   db.entries,
		Order:     db.order,
		NameIndex: db.nameIndex,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("enzymedb: encode cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("enzymedb: write cache %s: %w", path, err)
	}
	return nil
}

// LoadCache reconstructs a database from a snapshot written by
// SaveCache. The stored name index is used verbatim rather than
// rebuilt, so a snapshot taken from an older flat file keeps producing
// that file's matches.
func LoadCache(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("enzymedb: read cache %s: %w", path, err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("enzymedb: decode cache %s: %w", path, err)
	}
	db := &DB{
		entries:   snap.Entries,
		order:     snap.Order,
		nameIndex: snap.NameIndex,
	}
	if db.entries == nil {
		db.entries = make(map[string]*Entry)
	}
	if db.nameIndex == nil {
		db.nameIndex = make(map[string]string)
	}
	return db, nil
}
