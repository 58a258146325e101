package enzymedb

import (
	"path/filepath"
	"strings"
	"testing"
)

// sampleDat is a miniature enzyme.dat covering active, transferred and
// deleted records plus a malformed block with no ID line.
const sampleDat = `ID   3.1.1.1
DE   Carboxylesterase.
AN   Esterase; Ali-esterase.
AN   B-esterase.
//
ID   3.1.3.1
DE   Alkaline phosphatase.
AN   Alkaline phosphomonoesterase.
//
ID   1.1.1.2
DE   Transferred entry: 1.1.1.1.
//
ID   3.4.99.1
DE   Deleted entry.
//
DE   Orphan block with no identifier.
AN   Should be dropped.
//
ID   3.4.21.4
DE   Trypsin.
AN   Alpha-trypsin; Beta-trypsin.
//
`

func parseSample(t *testing.T) *DB {
	t.Helper()
	db, err := Parse(strings.NewReader(sampleDat))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return db
}

func TestParseEntries(t *testing.T) {
	db := parseSample(t)

	if got, want := db.Entries(), 5; got != want {
		t.Fatalf("Entries() = %d, want %d", got, want)
	}

	est := db.Entry("3.1.1.1")
	if est == nil {
		t.Fatal("entry 3.1.1.1 missing")
	}
	if est.PrimaryName != "Carboxylesterase" {
		t.Errorf("primary name = %q, want Carboxylesterase (trailing period stripped)", est.PrimaryName)
	}
	wantSyns := []string{"Esterase", "Ali-esterase", "B-esterase"}
	if len(est.Synonyms) != len(wantSyns) {
		t.Fatalf("synonyms = %v, want %v", est.Synonyms, wantSyns)
	}
	for i, s := range wantSyns {
		if est.Synonyms[i] != s {
			t.Errorf("synonym[%d] = %q, want %q", i, est.Synonyms[i], s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	db := parseSample(t)

	tr := db.Entry("1.1.1.2")
	if tr.Status != StatusTransferred {
		t.Errorf("status = %q, want transferred", tr.Status)
	}
	if tr.TransferredTo != "1.1.1.1" {
		t.Errorf("transferred_to = %q, want 1.1.1.1", tr.TransferredTo)
	}

	if del := db.Entry("3.4.99.1"); del.Status != StatusDeleted {
		t.Errorf("status = %q, want deleted", del.Status)
	}
}

func TestOnlyActiveEntriesIndexed(t *testing.T) {
	db := parseSample(t)

	m := NewMatcher(db)
	if hit := m.Match("Trypsin"); hit == nil || hit.EC != "3.4.21.4" {
		t.Fatalf("Trypsin: got %+v, want 3.4.21.4", hit)
	}
	// Transferred and deleted primary names must not resolve.
	if hit := m.Match("Transferred entry: 1.1.1.1"); hit != nil {
		t.Errorf("transferred entry resolved: %+v", hit)
	}
}

func TestNameIndexDeterministic(t *testing.T) {
	// First-writer-wins must be stable across repeated parses.
	a := parseSample(t)
	b := parseSample(t)

	if a.IndexedNames() != b.IndexedNames() {
		t.Fatalf("index sizes differ: %d vs %d", a.IndexedNames(), b.IndexedNames())
	}
	for name, ec := range a.nameIndex {
		if b.nameIndex[name] != ec {
			t.Errorf("index for %q differs: %q vs %q", name, ec, b.nameIndex[name])
		}
	}
}

func TestFirstWriterWinsOnCollision(t *testing.T) {
	const dup = `ID   1.1.1.1
DE   Alcohol dehydrogenase.
AN   Shared name.
//
ID   2.2.2.2
DE   Shared name.
//
`
	db, err := Parse(strings.NewReader(dup))
	if err != nil {
		t.Fatal(err)
	}
	// 1.1.1.1 indexed the synonym first; the later primary loses.
	if ec := db.nameIndex["shared name"]; ec != "1.1.1.1" {
		t.Errorf("collision winner = %q, want 1.1.1.1", ec)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	db := parseSample(t)
	path := filepath.Join(t.TempDir(), "enzymes.json")

	if err := db.SaveCache(path); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}
	loaded, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}

	// Probe set must resolve identically from the snapshot.
	probes := []string{
		"Carboxylesterase", "esterase", "ALKALINE PHOSPHATASE",
		"Trypsin", "beta-trypsin", "nonexistent enzyme",
	}
	orig, reload := NewMatcher(db), NewMatcher(loaded)
	for _, name := range probes {
		a, b := orig.Match(name), reload.Match(name)
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			t.Errorf("%q: one side nil (orig=%v reload=%v)", name, a, b)
		case *a != *b:
			t.Errorf("%q: orig=%+v reload=%+v", name, *a, *b)
		}
	}
}
