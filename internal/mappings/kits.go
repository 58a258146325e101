package mappings

import (
	_ "embed"
	"fmt"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// KitOverrides holds per-kit mapping tables consulted before every
// global table. The same two-letter code legitimately means different
// compounds in different kit families (MAN is mannose in API 20E and
// mannitol in API 20NE), so the kit context decides.
var KitOverrides = map[string]map[string]Override{
	"API 20E": {
		"MAN": {Name: "D-Mannose", ChEBI: "CHEBI:4208", PubChem: "18950"},
		// Official docs name the enzyme, not the chromogenic substrate.
		"ONPG": {Name: "β-galactosidase", Enzyme: true, Substrate: "o-Nitrophenyl-β-D-galactopyranoside"},
		"Sor":  {Name: "D-Sorbitol", ChEBI: "CHEBI:17924", PubChem: "5780"},
	},
	"API 20NE": {
		"MAN": {Name: "D-Mannitol", ChEBI: "CHEBI:16899", PubChem: "6251"},
		"MNE": {Name: "D-Mannose", ChEBI: "CHEBI:4208", PubChem: "18950"},
		"NAG": {Name: "N-Acetyl-Glucosamine", ChEBI: "CHEBI:28009", PubChem: "24139"},
		"PAC": {Name: "Phenyl-acetate", ChEBI: "CHEBI:30745", PubChem: "999"},
	},
	// API zym uses full enzyme names as codes, including the spacing
	// variants found in historical result sheets.
	"API zym": {
		"Control":                        {Name: "Negative control", Control: true},
		"Alkaline phosphatase":           {Name: "Alkaline phosphatase", EC: "3.1.3.1", Enzyme: true},
		"Esterase (C4)":                  {Name: "Esterase (C4)", EC: "3.1.1.-", Enzyme: true},
		"Esterase":                       {Name: "Esterase (C4)", EC: "3.1.1.-", Enzyme: true},
		"Esterase lipase (C8)":           {Name: "Esterase lipase (C8)", EC: "3.1.1.-", Enzyme: true},
		"Esterase Lipase":                {Name: "Esterase lipase (C8)", EC: "3.1.1.-", Enzyme: true},
		"Lipase (C14)":                   {Name: "Lipase (C14)", EC: "3.1.1.3", Enzyme: true},
		"Lipase":                         {Name: "Lipase (C14)", EC: "3.1.1.3", Enzyme: true},
		"Leucine arylamidase":            {Name: "Leucine arylamidase", EC: "3.4.11.1", Enzyme: true},
		"Valine arylamidase":             {Name: "Valine arylamidase", EC: "3.4.11.-", Enzyme: true},
		"Cystine arylamidase":            {Name: "Cystine arylamidase", EC: "3.4.11.-", Enzyme: true},
		"Trypsin":                        {Name: "Trypsin", EC: "3.4.21.4", Enzyme: true},
		"alpha-Chymotrypsin":             {Name: "alpha-Chymotrypsin", EC: "3.4.21.1", Enzyme: true},
		"alpha- Chymotrypsin":            {Name: "alpha-Chymotrypsin", EC: "3.4.21.1", Enzyme: true},
		"Acid phosphatase":               {Name: "Acid phosphatase", EC: "3.1.3.2", Enzyme: true},
		"Naphthol-AS-BI-phosphohydrolase": {Name: "Naphthol-AS-BI-phosphohydrolase", EC: "3.1.3.-", Enzyme: true},
		"alpha-Galactosidase":            {Name: "alpha-Galactosidase", EC: "3.2.1.22", Enzyme: true},
		"alpha- Galactosidase":           {Name: "alpha-Galactosidase", EC: "3.2.1.22", Enzyme: true},
		"beta-Galactosidase":             {Name: "beta-Galactosidase", EC: "3.2.1.23", Enzyme: true},
		"beta- Galactosidase":            {Name: "beta-Galactosidase", EC: "3.2.1.23", Enzyme: true},
		"beta-Glucuronidase":             {Name: "beta-Glucuronidase", EC: "3.2.1.31", Enzyme: true},
		"beta- Glucuronidase":            {Name: "beta-Glucuronidase", EC: "3.2.1.31", Enzyme: true},
		"alpha-Glucosidase":              {Name: "alpha-Glucosidase", EC: "3.2.1.20", Enzyme: true},
		"alpha- Glucosidase":             {Name: "alpha-Glucosidase", EC: "3.2.1.20", Enzyme: true},
		"beta-Glucosidase":               {Name: "beta-Glucosidase", EC: "3.2.1.21", Enzyme: true},
		"beta- Glucosidase":              {Name: "beta-Glucosidase", EC: "3.2.1.21", Enzyme: true},
		"N-acetyl-beta-glucosaminidase":  {Name: "N-acetyl-beta-glucosaminidase", EC: "3.2.1.52", Enzyme: true},
		"N-acetyl-beta- glucosaminidase": {Name: "N-acetyl-beta-glucosaminidase", EC: "3.2.1.52", Enzyme: true},
		"alpha-Mannosidase":              {Name: "alpha-Mannosidase", EC: "3.2.1.24", Enzyme: true},
		"alpha- Mannosidase":             {Name: "alpha-Mannosidase", EC: "3.2.1.24", Enzyme: true},
		"alpha-Fucosidase":               {Name: "alpha-Fucosidase", EC: "3.2.1.51", Enzyme: true},
		"alpha- Fucosidase":              {Name: "alpha-Fucosidase", EC: "3.2.1.51", Enzyme: true},
	},
}

// KitInfo describes a kit in the registry.
type KitInfo struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

type kitRegistryFile struct {
	Kits []KitInfo `toml:"kits"`
}

//go:embed kits.toml
var kitRegistryTOML []byte

var kitRegistry map[string]KitInfo

func init() {
	var file kitRegistryFile
	if err := toml.Unmarshal(kitRegistryTOML, &file); err != nil {
		panic(fmt.Sprintf("mappings: embedded kit registry: %v", err))
	}
	kitRegistry = make(map[string]KitInfo, len(file.Kits))
	for _, k := range file.Kits {
		kitRegistry[k.Name] = k
	}
}

// KitRegistry returns the registry entry for a kit name. Kits observed
// in a corpus but absent from the registry get placeholder text.
func KitRegistry(name string) KitInfo {
	if info, ok := kitRegistry[name]; ok {
		return info
	}
	return KitInfo{Name: name, Description: "Unknown API kit", Category: "Unknown"}
}

// RegisteredKits lists all registry entries sorted by kit name.
func RegisteredKits() []KitInfo {
	kits := make([]KitInfo, 0, len(kitRegistry))
	for _, k := range kitRegistry {
		kits = append(kits, k)
	}
	sort.Slice(kits, func(i, j int) bool { return kits[i].Name < kits[j].Name })
	return kits
}
