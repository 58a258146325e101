// Package mappings is the curated knowledge base consumed by the well
// classifier: substrate codes, kit-specific overrides, enzyme-test and
// phenotypic-test tables, EC/GO annotations, and the kit registry.
//
// Every table is a read-only package-level value loaded once at process
// start. Identifier drift (CHEBI/GO releases, EC transfers) is handled
// by editing these tables, never by touching classification logic.
// Several tables intentionally keep overlapping alias keys and
// historical spacing variants ("alpha- Galactosidase") from different
// kit documentation eras; collapsing them would silently drop
// legitimately distinct naming conventions.
package mappings

// Substrate maps a well code to its chemical identity.
type Substrate struct {
	Name    string
	ChEBI   string
	PubChem string
}

// Override is a kit-specific mapping entry. Depending on the kit's
// documentation, a code can denote a substrate, a named enzyme test, or
// a control well; exactly one interpretation applies per entry.
type Override struct {
	Name      string
	ChEBI     string
	PubChem   string
	EC        string // set when the code denotes an enzyme test
	Enzyme    bool   // code denotes an enzyme even without a curated EC
	Control   bool   // code is a control well, no identifiers
	Substrate string // chromogenic substrate behind an enzyme code
}

// GOTerm is a Gene Ontology fallback annotation for codes that cannot
// carry a single EC number.
type GOTerm struct {
	ID     string
	Name   string
	Reason string
}

// Annotation carries the combined GO/KEGG/EC layer for a resolved
// enzyme display name.
type Annotation struct {
	GOTerms []string
	GONames []string
	KeggKO  string
	EC      string
}

// SubstrateFor resolves a well code with kit context: a kit-specific
// override wins over the global substrate table, and for any other kit
// the global entry applies. Enzyme and control overrides shadow the
// global table too; callers must check the override kind first.
func SubstrateFor(code, kit string) (Substrate, bool) {
	if ov, ok := OverrideFor(code, kit); ok {
		if ov.Enzyme || ov.Control {
			return Substrate{}, false
		}
		return Substrate{Name: ov.Name, ChEBI: ov.ChEBI, PubChem: ov.PubChem}, true
	}
	s, ok := Substrates[code]
	return s, ok
}

// OverrideFor returns the kit-specific override for a code, if the kit
// has a registered override table containing it.
func OverrideFor(code, kit string) (Override, bool) {
	table, ok := KitOverrides[kit]
	if !ok {
		return Override{}, false
	}
	ov, ok := table[code]
	return ov, ok
}

// EnzymeTestName resolves a code against the enzyme-test table first
// and the enzyme-activity table second, returning the display name.
func EnzymeTestName(code string) (string, bool) {
	if name, ok := EnzymeTests[code]; ok {
		return name, true
	}
	name, ok := EnzymeActivityTests[code]
	return name, ok
}
