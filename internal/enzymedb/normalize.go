package enzymedb

import "strings"

// NormalizeName canonicalizes a free-text enzyme name for index
// lookups: lowercase, whitespace runs collapsed to single spaces,
// typographic dashes mapped to plain hyphens, trailing periods
// stripped. Internal punctuation is left alone on purpose; merging
// "1,4-" and "1-4-" style names would silently conflate entries.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ReplaceAll(name, "—", "-") // em dash
	name = strings.ReplaceAll(name, "–", "-") // en dash
	return strings.TrimRight(name, ".")
}

// NormalizeCode reduces a raw well code to an uppercase alphanumeric
// key. This is the deterministic fallback key used when a raw code
// fails exact table lookups ("TDA Trp" -> "TDATRP").
func NormalizeCode(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(code)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
