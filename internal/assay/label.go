package assay

import (
	"fmt"

	"github.com/strainkit/assaymeta/internal/enzymedb"
	"github.com/strainkit/assaymeta/internal/mappings"
)

// Label produces the display label for a well code. It is a lookup
// chain separate from classification: substrate table first (normalized
// code), then enzyme tests, enzyme activity tests, and phenotypic tests
// (raw code before normalized in each), falling back to the raw code
// itself. Unknown codes pass through unchanged.
func Label(code string) string {
	normalized := enzymedb.NormalizeCode(code)

	if s, ok := mappings.Substrates[normalized]; ok {
		return s.Name
	}
	if name, ok := mappings.EnzymeTests[code]; ok {
		return name
	}
	if name, ok := mappings.EnzymeTests[normalized]; ok {
		return name
	}
	if name, ok := mappings.EnzymeActivityTests[code]; ok {
		return name
	}
	if name, ok := mappings.EnzymeActivityTests[normalized]; ok {
		return name
	}
	if name, ok := mappings.PhenotypicTests[code]; ok {
		return name
	}
	if name, ok := mappings.PhenotypicTests[normalized]; ok {
		return name
	}
	return code
}

func describe(code, category string) string {
	label := Label(code)
	switch category {
	case CategorySubstrate:
		return fmt.Sprintf("Tests for utilization/fermentation of %s", label)
	case CategoryEnzyme:
		return fmt.Sprintf("Tests for %s activity", label)
	case CategoryPhenotypic:
		return fmt.Sprintf("Phenotypic test: %s", label)
	default:
		return fmt.Sprintf("Biochemical test: %s", label)
	}
}
