// Package assay classifies assay wells and assembles the metadata
// artifacts for a strain corpus: kit descriptions, per-well identifier
// bundles, enzyme annotations, and metabolite enrichments.
package assay

// ChemicalIDs bundles chemical database identifiers for a substrate
// well. All fields are optional; partial bundles are legal and common.
type ChemicalIDs struct {
	ChEBIID     string `json:"chebi_id,omitempty"`
	ChEBIName   string `json:"chebi_name,omitempty"`
	PubChemCID  string `json:"pubchem_cid,omitempty"`
	PubChemName string `json:"pubchem_name,omitempty"`
	InChI       string `json:"inchi,omitempty"`
	SMILES      string `json:"smiles,omitempty"`
}

// EnzymeIDs bundles enzyme database identifiers for an enzyme well.
type EnzymeIDs struct {
	ECNumber   string   `json:"ec_number,omitempty"`
	ECName     string   `json:"ec_name,omitempty"`
	RheaIDs    []string `json:"rhea_ids"`
	EnzymeName string   `json:"enzyme_name"`

	GOTerms []string `json:"go_terms"`
	GONames []string `json:"go_names"`

	KeggKO       string `json:"kegg_ko,omitempty"`
	KeggReaction string `json:"kegg_reaction,omitempty"`

	MetacycReaction string   `json:"metacyc_reaction,omitempty"`
	MetacycPathway  []string `json:"metacyc_pathway"`
}

// Well categories.
const (
	CategorySubstrate  = "substrate"
	CategoryEnzyme     = "enzyme"
	CategoryPhenotypic = "phenotypic"
	CategoryOther      = "other"
)

// Well is the classified metadata for a single well code.
type Well struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Category    string `json:"well_type"`
	Description string `json:"description,omitempty"`

	ChemicalIDs *ChemicalIDs `json:"chemical_ids,omitempty"`
	EnzymeIDs   *EnzymeIDs   `json:"enzyme_ids,omitempty"`

	UsedInKits []string `json:"used_in_kits"`
}

// KitMetadata describes one API kit as observed in a corpus.
type KitMetadata struct {
	KitName         string   `json:"kit_name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	WellCount       int      `json:"well_count"`
	Wells           []string `json:"wells"`
	OccurrenceCount int      `json:"occurrence_count"`
}

// MetaboliteIDs bundles identifiers and observation counts for a
// metabolite name found in strain utilization/production sections.
type MetaboliteIDs struct {
	MetaboliteName string `json:"metabolite_name"`
	ChEBIID        string `json:"chebi_id,omitempty"`
	ChEBIName      string `json:"chebi_name,omitempty"`
	PubChemCID     string `json:"pubchem_cid,omitempty"`
	PubChemName    string `json:"pubchem_name,omitempty"`

	UtilizationTestTypes []string `json:"utilization_test_types"`
	ProductionValues     []string `json:"production_values"`
	TestNames            []string `json:"test_names"`
	UtilizationCount     int      `json:"utilization_count"`
	ProductionCount      int      `json:"production_count"`
	TestCount            int      `json:"test_count"`
}

// Metadata is the complete generated artifact.
type Metadata struct {
	APIKits     []KitMetadata            `json:"api_kits"`
	Wells       map[string]Well          `json:"wells"`
	Enzymes     map[string]EnzymeIDs     `json:"enzymes"`
	Metabolites map[string]MetaboliteIDs `json:"metabolites"`
	Statistics  map[string]int           `json:"statistics"`
}
