package enzymedb

import (
	"regexp"
	"strings"
)

// MatchKind reports how a name resolved against the index.
type MatchKind string

const (
	MatchPrimary MatchKind = "primary"
	MatchSynonym MatchKind = "synonym"
)

// Match is a successful exact resolution of a name to an EC number.
type Match struct {
	EC          string
	MatchedName string    // the database name that matched
	Kind        MatchKind // primary or synonym
	Substrate   string    // parenthesized qualifier stripped before matching, if any
}

// familyKeyword pairs an enzyme-class keyword stem with its
// family-level EC pattern.
type familyKeyword struct {
	stem string
	ec   string
}

// familyKeywords is scanned in order, first match wins. More specific
// stems sit above the generic class stems ("esterase" before
// "transferase" would be pointless, but "galactosidase" must beat
// "oxidase"-style catch-alls). Do not reorder: callers depend on a
// name resolving to the most specific family available.
var familyKeywords = []familyKeyword{
	{"kinase", "2.7.-.-"},
	{"phosphatase", "3.1.3.-"},
	{"dehydrogenase", "1.1.1.-"},
	{"esterase", "3.1.1.-"},
	{"lipase", "3.1.1.-"},
	{"peptidase", "3.4.-.-"},
	{"protease", "3.4.-.-"},
	{"aminidase", "3.4.-.-"},
	{"galactosidase", "3.2.1.-"},
	{"glucosidase", "3.2.1.-"},
	{"glycosidase", "3.2.1.-"},
	{"amidase", "3.5.-.-"},
	{"oxidase", "1.-.-.-"},
	{"reductase", "1.-.-.-"},
	{"transferase", "2.-.-.-"},
	{"hydrolase", "3.-.-.-"},
	{"lyase", "4.-.-.-"},
	{"isomerase", "5.-.-.-"},
	{"ligase", "6.-.-.-"},
}

// Matcher resolves free-text enzyme names to EC numbers using strictly
// ordered deterministic steps: exact index match, exact match after
// stripping one parenthesized substrate suffix, then family-level
// keyword classification. No fuzzy matching, ever.
type Matcher struct {
	db *DB
}

// NewMatcher returns a matcher over the given database.
func NewMatcher(db *DB) *Matcher { return &Matcher{db: db} }

// Match attempts an exact resolution of name against the index and
// reports whether the hit was the entry's primary name or which synonym
// matched. Returns nil when the name is not indexed.
func (m *Matcher) Match(name string) *Match {
	normalized := NormalizeName(name)
	ec, ok := m.db.nameIndex[normalized]
	if !ok {
		return nil
	}

	entry := m.db.entries[ec]
	if normalized == NormalizeName(entry.PrimaryName) {
		return &Match{EC: ec, MatchedName: entry.PrimaryName, Kind: MatchPrimary}
	}
	for _, syn := range entry.Synonyms {
		if normalized == NormalizeName(syn) {
			return &Match{EC: ec, MatchedName: syn, Kind: MatchSynonym}
		}
	}
	// Index and entry disagree; treat as a synonym hit without a
	// specific name rather than inventing one.
	return &Match{EC: ec, MatchedName: entry.PrimaryName, Kind: MatchSynonym}
}

var substrateSuffix = regexp.MustCompile(`\(([^)]+)\)$`)

// SplitSubstrate separates a trailing parenthesized qualifier from a
// name: "Esterase (C4)" -> ("Esterase", "C4"). Names without a suffix
// come back unchanged with an empty substrate.
func SplitSubstrate(name string) (base, substrate string) {
	trimmed := strings.TrimSpace(name)
	loc := substrateSuffix.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return trimmed, ""
	}
	return strings.TrimSpace(trimmed[:loc[0]]), trimmed[loc[2]:loc[3]]
}

// MatchWithSubstrate tries an exact match, then retries once on the
// base name with any trailing parenthesized suffix stripped, recording
// the suffix as substrate context. Only one level of stripping is
// attempted.
func (m *Matcher) MatchWithSubstrate(name string) *Match {
	if hit := m.Match(name); hit != nil {
		return hit
	}
	base, substrate := SplitSubstrate(name)
	if substrate == "" {
		return nil
	}
	if hit := m.Match(base); hit != nil {
		hit.Substrate = substrate
		return hit
	}
	return nil
}

// FamilyEC scans the lowercased name for enzyme-class keyword stems and
// returns the family-level EC pattern of the first stem found, or ""
// when no keyword applies.
func FamilyEC(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range familyKeywords {
		if strings.Contains(lower, kw.stem) {
			return kw.ec
		}
	}
	return ""
}
