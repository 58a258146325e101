package mappings

import "strings"

// Predicate is a METPO relation used to assert a positive or negative
// assay outcome for a strain.
type Predicate struct {
	ID    string
	Label string
}

// PredicatePair holds the positive and negative predicates for one
// assay context.
type PredicatePair struct {
	Positive Predicate
	Negative Predicate
}

// categoryPredicates maps kit categories to their default predicates.
var categoryPredicates = map[string]PredicatePair{
	"Carbohydrate fermentation": {
		Positive: Predicate{ID: "METPO:2000011", Label: "ferments"},
		Negative: Predicate{ID: "METPO:2000037", Label: "does not ferment"},
	},
	"Enzyme profiling": {
		Positive: Predicate{ID: "METPO:2000302", Label: "shows activity of"},
		Negative: Predicate{ID: "METPO:2000303", Label: "does not show activity of"},
	},
	"Biochemical profiling": {
		Positive: Predicate{ID: "METPO:2000012", Label: "uses for growth"},
		Negative: Predicate{ID: "METPO:2000038", Label: "does not use for growth"},
	},
	"Bacterial identification": {
		Positive: Predicate{ID: "METPO:2000002", Label: "assimilates"},
		Negative: Predicate{ID: "METPO:2000027", Label: "does not assimilate"},
	},
}

// wellCodePredicates overrides the category default for specific well
// codes regardless of kit.
var wellCodePredicates = map[string]PredicatePair{
	// Reduction tests
	"NO3": reducesPair,
	"NO2": reducesPair,
	"N2":  reducesPair,

	// Production tests
	"H2S": producesPair,
	"IND": producesPair,
	"VP":  producesPair,

	// Hydrolysis tests
	"GEL": hydrolyzesPair,
	"ESC": hydrolyzesPair,

	// Pathway tests
	"GLU_ Ferm": {
		Positive: Predicate{ID: "METPO:2000011", Label: "ferments"},
		Negative: Predicate{ID: "METPO:2000037", Label: "does not ferment"},
	},
	"GLU_ Assim": assimilatesPair,
}

var (
	reducesPair = PredicatePair{
		Positive: Predicate{ID: "METPO:2000017", Label: "reduces"},
		Negative: Predicate{ID: "METPO:2000044", Label: "does not reduce"},
	}
	producesPair = PredicatePair{
		Positive: Predicate{ID: "METPO:2000202", Label: "produces"},
		Negative: Predicate{ID: "METPO:2000222", Label: "does not produce"},
	}
	hydrolyzesPair = PredicatePair{
		Positive: Predicate{ID: "METPO:2000013", Label: "hydrolyzes"},
		Negative: Predicate{ID: "METPO:2000039", Label: "does not hydrolyze"},
	}
	assimilatesPair = PredicatePair{
		Positive: Predicate{ID: "METPO:2000002", Label: "assimilates"},
		Negative: Predicate{ID: "METPO:2000027", Label: "does not assimilate"},
	}
	enzymeActivityPair = PredicatePair{
		Positive: Predicate{ID: "METPO:2000302", Label: "shows activity of"},
		Negative: Predicate{ID: "METPO:2000303", Label: "does not show activity of"},
	}
)

// PredicatesFor resolves the METPO predicate pair for a well. Precedence
// runs most specific to least: well code, enzyme well type, kit
// category, then a chemical split on fermentation versus utilization.
func PredicatesFor(kitCategory, wellCode, wellType string) PredicatePair {
	if p, ok := wellCodePredicates[wellCode]; ok {
		return p
	}
	if wellType == "enzyme" {
		return enzymeActivityPair
	}
	if p, ok := categoryPredicates[kitCategory]; ok {
		return p
	}
	if wellType == "chemical" {
		if containsFold(kitCategory, "fermentation") {
			return PredicatePair{
				Positive: Predicate{ID: "METPO:2000011", Label: "ferments"},
				Negative: Predicate{ID: "METPO:2000037", Label: "does not ferment"},
			}
		}
		return assimilatesPair
	}
	return assimilatesPair
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
