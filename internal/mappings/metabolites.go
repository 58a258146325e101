package mappings

// Metabolite carries researched CHEBI/PubChem identifiers for BacDive
// metabolite names that arrive without usable IDs. Entries with both
// fields empty are deliberate: the name is known and curated but no
// database identifier exists yet, and keeping the entry suppresses
// repeated lookup attempts downstream.
type Metabolite struct {
	ChEBI   string
	PubChem string
}

// Metabolites maps BacDive metabolite names to curated database
// identifiers.
var Metabolites = map[string]Metabolite{
	"Potassium 5-ketogluconate":          {PubChem: "23702137"},
	"Potassium 2-ketogluconate":          {},
	"casein":                             {},
	"esculin ferric citrate":             {ChEBI: "CHEBI:4853", PubChem: "5281417"},
	"potassium 5-dehydro-D-gluconate":    {PubChem: "23702137"},
	"potassium 2-dehydro-D-gluconate":    {},
	"yeast extract":                      {},
	"peptone":                            {},
	"milk":                               {},
	"casamino acids":                     {},
	"L-alanine 4-nitroanilide":           {},
	"skimmed milk":                       {},
	"2-oxogluconate":                     {ChEBI: "CHEBI:16810", PubChem: "164533"},
	"tryptone":                           {},
	"L-lactate":                          {ChEBI: "CHEBI:422", PubChem: "107689"},
	"maltose hydrate":                    {},
	"2-oxoglutarate":                     {ChEBI: "CHEBI:16810", PubChem: "164533"},
	"2,3-butanediol":                     {PubChem: "262"},
	"butanol":                            {ChEBI: "CHEBI:28885", PubChem: "263"},
	"manganese dioxide":                  {ChEBI: "CHEBI:136511", PubChem: "14801"},
	"maltose":                            {ChEBI: "CHEBI:17306", PubChem: "439186"},
	"esculin":                            {ChEBI: "CHEBI:4853", PubChem: "5281417"},
	"L-alanine":                          {ChEBI: "CHEBI:16977", PubChem: "5950"},
	"L-glycine":                          {ChEBI: "CHEBI:15428", PubChem: "750"},
	"L-serine":                           {ChEBI: "CHEBI:17115", PubChem: "5951"},
	"ammonium":                           {ChEBI: "CHEBI:28938", PubChem: "223"},
	"glucose":                            {ChEBI: "CHEBI:4167", PubChem: "5793"},
	"sucrose":                            {ChEBI: "CHEBI:17992", PubChem: "5988"},
	"spiramycin":                         {ChEBI: "CHEBI:85260", PubChem: "5266"},
	"amphotericin B":                     {ChEBI: "CHEBI:2682", PubChem: "5280965"},
	"spectinomycin":                      {ChEBI: "CHEBI:9215", PubChem: "15541"},
	"meat extract":                       {},
	"beef extract":                       {},
	"rumen extract":                      {},
	"egg yolk":                           {},
	"olive oil":                          {},
	"corn oil":                           {},
	"serum":                              {},
	"blood":                              {},
	"nutrient broth":                     {},
	"sea salts":                          {},
	"natural seawater (nsw)":             {},
	"indoxyl acetate":                    {},
	"hydroxy-L-proline":                  {},
	"L-pyroglutamic acid":                {},
	"trehalose dihydrate":                {},
	"sodium malate":                      {},
	"sodium fumarate":                    {},
	"calcium malate":                     {},
	"keratin":                            {},
	"xanthan gum":                        {},
	"guar gum":                           {},
	"karaya gum":                         {},
	"locust bean gum":                    {},
	"crystalline cellulose":              {},
	"crab shell chitin":                  {},
	"D-mannose":                          {},
	"D-galactose":                        {},
	"D-lactate":                          {},
	"polysaccharides":                    {},
	"poly-beta-hydroxyalkanoate":         {},
	"gelatin hydrolyzed":                 {},
	"casein hydrolysate":                 {},
	"esculin hydrolysate":                {},
	"methyl alpha-D-glucopyranoside":     {},
	"methyl alpha-D-xylopyranoside":      {},
	"3-O-methyl alpha-D-glucopyranoside": {},
	"n-acetyl-neuraminic acid":           {},
	"alpha-hydroxybutyrate":              {},
	"4-nitrophenyl phosphate disodium salt": {},
	"O-nitrophenyl-beta-D-galactopyranosid": {},
}

// MetaboliteInfo resolves identifiers for a metabolite name. A curated
// CHEBI beats the one supplied by the caller; the supplied one fills in
// when the curated entry has none. Unknown names fall through to the
// caller-supplied CHEBI alone.
func MetaboliteInfo(name, chebi string) (resolvedChEBI, pubchem string) {
	if m, ok := Metabolites[name]; ok {
		if m.ChEBI != "" {
			return m.ChEBI, m.PubChem
		}
		return chebi, m.PubChem
	}
	return chebi, ""
}
