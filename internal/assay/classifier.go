package assay

import (
	"context"
	"strings"

	"github.com/strainkit/assaymeta/internal/audit"
	"github.com/strainkit/assaymeta/internal/enzymedb"
	"github.com/strainkit/assaymeta/internal/mappings"
)

// ReactionSource resolves an EC number to RHEA reaction identifiers.
// Implementations may consult a persistent cache or the network; the
// classifier treats the call as infallible and accepts empty results.
type ReactionSource interface {
	Reactions(ctx context.Context, ec string) []string
}

// Classifier assigns each well code to a category and attaches the
// identifier bundle appropriate for it. All dependencies are optional:
// a nil Rhea skips reaction lookup, a nil DB leaves ec_name empty, and
// a nil Audit emitter records nothing.
type Classifier struct {
	Rhea  ReactionSource
	DB    *enzymedb.DB
	Audit *audit.Emitter
}

// Rule names recorded in the audit stream.
const (
	ruleKitOverride = "kit_override"
	ruleEnzymeTest  = "enzyme_test"
	rulePhenotypic  = "phenotypic"
	ruleSubstrate   = "substrate"
	ruleHeuristic   = "enzyme_heuristic"
	ruleGOFallback  = "go_fallback"
	ruleUnmapped    = "unmapped"
)

// Classify resolves a well code within a kit context. The decision
// order is fixed and first match wins: kit-specific override, enzyme
// test code (raw before normalized), phenotypic test, substrate
// (kit-aware), enzyme-name heuristic, GO-only fallback, then "other".
// Given fixed tables and a warm reaction cache, two calls with the
// same (code, kit) produce identical wells.
func (c *Classifier) Classify(ctx context.Context, code, kit string) Well {
	w, rule := c.classify(ctx, code, kit)
	w.Label = Label(code)
	w.Description = describe(code, w.Category)
	ec := ""
	if w.EnzymeIDs != nil {
		ec = w.EnzymeIDs.ECNumber
	}
	c.Audit.Classified(code, kit, audit.Classification{
		Category: w.Category,
		Rule:     rule,
		EC:       ec,
		Label:    w.Label,
	})
	return w
}

func (c *Classifier) classify(ctx context.Context, code, kit string) (Well, string) {
	normalized := enzymedb.NormalizeCode(code)

	// Kit-specific overrides are checked before every global table;
	// the same code can mean different things in different kits.
	if ov, ok := mappings.OverrideFor(code, kit); ok {
		switch {
		case ov.Control:
			return Well{Code: code, Category: CategoryPhenotypic}, ruleKitOverride
		case ov.Enzyme || ov.EC != "":
			ids := c.enzymeIDs(ctx, ov.Name, code, normalized, ov.EC)
			return Well{Code: code, Category: CategoryEnzyme, EnzymeIDs: ids}, ruleKitOverride
		default:
			return Well{
				Code:     code,
				Category: CategorySubstrate,
				ChemicalIDs: &ChemicalIDs{
					ChEBIID:     ov.ChEBI,
					ChEBIName:   ov.Name,
					PubChemCID:  ov.PubChem,
					PubChemName: ov.Name,
				},
			}, ruleKitOverride
		}
	}

	// Named enzyme tests, raw code first, then the normalized form.
	if name, ok := lookupEnzymeName(code, normalized); ok {
		ids := c.enzymeIDs(ctx, name, code, normalized, "")
		return Well{Code: code, Category: CategoryEnzyme, EnzymeIDs: ids}, ruleEnzymeTest
	}

	if _, ok := mappings.PhenotypicTests[code]; ok {
		return Well{Code: code, Category: CategoryPhenotypic}, rulePhenotypic
	}
	if _, ok := mappings.PhenotypicTests[normalized]; ok {
		return Well{Code: code, Category: CategoryPhenotypic}, rulePhenotypic
	}

	if s, ok := mappings.SubstrateFor(normalized, kit); ok {
		return Well{
			Code:     code,
			Category: CategorySubstrate,
			ChemicalIDs: &ChemicalIDs{
				ChEBIID:     s.ChEBI,
				ChEBIName:   s.Name,
				PubChemCID:  s.PubChem,
				PubChemName: s.Name,
			},
		}, ruleSubstrate
	}

	// Codes that read like an enzyme name get classified as one even
	// without a table entry; curated tables may still supply the EC.
	if looksLikeEnzyme(code) {
		ids := c.enzymeIDs(ctx, code, code, normalized, "")
		return Well{Code: code, Category: CategoryEnzyme, EnzymeIDs: ids}, ruleHeuristic
	}

	// EC beats GO, so the GO fallback runs after every EC-bearing path.
	if term, ok := lookupGOFallback(code, normalized); ok {
		return Well{
			Code:     code,
			Category: CategoryEnzyme,
			EnzymeIDs: &EnzymeIDs{
				EnzymeName:     code,
				RheaIDs:        []string{},
				GOTerms:        []string{term.ID},
				GONames:        []string{term.Name},
				MetacycPathway: []string{},
			},
		}, ruleGOFallback
	}

	return Well{Code: code, Category: CategoryOther}, ruleUnmapped
}

// enzymeIDs assembles the enzyme bundle for a resolved display name.
// The curated annotation EC wins over the exact-match table, which wins
// over the override EC. When no EC survives, a GO fallback keyed by the
// well code can still annotate the bundle.
func (c *Classifier) enzymeIDs(ctx context.Context, name, code, normalized, overrideEC string) *EnzymeIDs {
	tableEC := mappings.ECExact[code]
	if tableEC == "" {
		tableEC = mappings.ECExact[normalized]
	}

	ann, hasAnn := mappings.AnnotationFor(name)

	ec := ann.EC
	if ec == "" {
		ec = tableEC
	}
	if ec == "" {
		ec = overrideEC
	}

	if ec == "" {
		if term, ok := lookupGOFallback(code, normalized); ok {
			return &EnzymeIDs{
				EnzymeName:     name,
				RheaIDs:        []string{},
				GOTerms:        []string{term.ID},
				GONames:        []string{term.Name},
				MetacycPathway: []string{},
			}
		}
	}

	ids := &EnzymeIDs{
		EnzymeName:     name,
		ECNumber:       ec,
		RheaIDs:        []string{},
		GOTerms:        []string{},
		GONames:        []string{},
		MetacycPathway: []string{},
	}
	if hasAnn {
		ids.GOTerms = append(ids.GOTerms, ann.GOTerms...)
		ids.GONames = append(ids.GONames, ann.GONames...)
		ids.KeggKO = ann.KeggKO
	}
	if ec != "" {
		if c.DB != nil {
			ids.ECName = c.DB.PrimaryName(ec)
		}
		if c.Rhea != nil {
			if rhea := c.Rhea.Reactions(ctx, ec); len(rhea) > 0 {
				ids.RheaIDs = rhea
			}
		}
	}
	return ids
}

// EnzymeInfo resolves an enzyme observed by name, outside any well
// context. Curated annotations by display name win over the EC the
// caller observed in the source data.
func (c *Classifier) EnzymeInfo(ctx context.Context, name, observedEC string) *EnzymeIDs {
	ann, hasAnn := mappings.AnnotationFor(name)

	ec := ann.EC
	if ec == "" {
		ec = observedEC
	}

	ids := &EnzymeIDs{
		EnzymeName:     name,
		ECNumber:       ec,
		RheaIDs:        []string{},
		GOTerms:        []string{},
		GONames:        []string{},
		MetacycPathway: []string{},
	}
	if hasAnn {
		ids.GOTerms = append(ids.GOTerms, ann.GOTerms...)
		ids.GONames = append(ids.GONames, ann.GONames...)
		ids.KeggKO = ann.KeggKO
	}
	if ec != "" {
		if c.DB != nil {
			ids.ECName = c.DB.PrimaryName(ec)
		}
		if c.Rhea != nil {
			if rhea := c.Rhea.Reactions(ctx, ec); len(rhea) > 0 {
				ids.RheaIDs = rhea
			}
		}
	}
	return ids
}

func lookupEnzymeName(code, normalized string) (string, bool) {
	if name, ok := mappings.EnzymeTestName(code); ok {
		return name, true
	}
	return mappings.EnzymeTestName(normalized)
}

func lookupGOFallback(code, normalized string) (mappings.GOTerm, bool) {
	if term, ok := mappings.GOFallback[code]; ok {
		return term, true
	}
	term, ok := mappings.GOFallback[normalized]
	return term, ok
}

func looksLikeEnzyme(code string) bool {
	if strings.Contains(strings.ToLower(code), "ase") {
		return true
	}
	return strings.HasPrefix(code, "alpha") ||
		strings.HasPrefix(code, "beta") ||
		strings.HasPrefix(code, "Alkaline") ||
		strings.HasPrefix(code, "Acid")
}
