package mappings

// EnzymeTests maps well codes for named enzyme/reaction tests to their
// display names. Alias keys like "TDA" and "TDA Trp" come from different
// kit documentation sources and both resolve to the same concept; both
// stay until one is shown to be wrong.
var EnzymeTests = map[string]string{
	"URE":     "Urease",
	"GEL":     "Gelatinase",
	"PAL":     "Phenylalanine deaminase",
	"IND":     "Indole production",
	"VP":      "Voges-Proskauer",
	"TDA":     "Tryptophan deaminase",
	"TDA Trp": "Tryptophan deaminase",
	"H2S":     "Hydrogen sulfide production",
	"NIT":     "Nitrate reductase",
	"NO2":     "Nitrite reduction",
	"NO3":     "Nitrate reduction", // API 20NE code
	"N2":      "Nitrogen gas production",
	"OX":      "Cytochrome oxidase",
	"ONPG":    "β-galactosidase (ONPG)",
	"PNG":     "β-galactosidase (PNPG)", // API 20NE code
	"TRP":     "Tryptophane test",       // API 20NE code
}

// EnzymeActivityTests maps codes for enzyme activity wells (rapid ID
// strips, arylamidase panels) to display names.
var EnzymeActivityTests = map[string]string{
	// Decarboxylases and dihydrolases
	"ADH Arg": "Arginine dihydrolase",
	"ADH":     "Arginine dihydrolase",
	"LDC Lys": "Lysine decarboxylase",
	"LDC":     "Lysine decarboxylase",
	"ODC":     "Ornithine decarboxylase",

	// Amino acid arylamidases
	"ArgA": "Arginine arylamidase",
	"ProA": "Proline arylamidase",
	"LeuA": "Leucine arylamidase",
	"PyrA": "Pyroglutamic acid arylamidase",
	"TyrA": "Tyrosine arylamidase",
	"AlaA": "Alanine arylamidase",
	"GlyA": "Glycine arylamidase",
	"HisA": "Histidine arylamidase",
	"SerA": "Serine arylamidase",
	"PheA": "Phenylalanine arylamidase",
	"LGA":  "Glutamyl glutamic acid arylamidase",
	"GGA":  "Glutamyl glutamic acid arylamidase", // variant code
	"AspA": "Aspartic acid arylamidase",

	// Peptidases and proteases
	"LAP":  "Leucine aminopeptidase",
	"PYRA": "Pyrrolidonyl arylamidase",
	"HIP":  "Hippurate hydrolysis",
	"GGT":  "Gamma-glutamyl transferase",
	"EST":  "Esterase",
	"LIP":  "Lipase",

	// Glycosidases
	"PNPG":      "β-galactosidase (PNPG)",
	"MaGa":      "α-galactosidase (Mannosidase)",
	"MbGa":      "β-galactosidase",
	"MbGu":      "β-glucuronidase",
	"Mbeta DG":  "β-galactosidase",
	"alpha GAL": "α-galactosidase",
	"alpha GLU": "α-glucosidase",
	"alpha MAN": "α-mannosidase",
	"alpha ARA": "α-arabinosidase",
	"alpha FUC": "α-fucosidase",
	"alphaMAL":  "α-maltosidase",
	"beta GAL":  "β-galactosidase",
	"beta GLU":  "β-glucosidase",
	"beta GUR":  "β-glucuronidase",
	"beta NAG":  "β-N-acetyl-glucosaminidase",
	"beta GAR":  "β-galactosidase", // variant code
	"beta GP":   "β-glycosidase",
	"beta MAN":  "β-mannosidase",

	// Other enzymes
	"CAT":  "Catalase",
	"PYZ":  "Pyrazinamidase",
	"PLE":  "Phospholipase",
	"APPA": "Alanine-phenylalanine-proline arylamidase",

	// Assimilation/fermentation variants
	"GLU_ Assim": "Glucose assimilation",
	"GLU_ Ferm":  "Glucose fermentation",
}

// PhenotypicTests maps codes for phenotypic and morphological
// observations that carry neither a chemical nor an enzyme identifier
// bundle.
var PhenotypicTests = map[string]string{
	"Control": "Control well (no substrate)",
	"NO3":     "Nitrate reduction",
	"TRP":     "Tryptophan test",
	"MOB":     "Motility",
	"SPOR":    "Sporulation",
	"GRAM":    "Gram stain",
	"TTC":     "Tetrazolium reduction",
	"OF-F":    "Oxidative-fermentative (fermentative)",
	"OF-O":    "Oxidative-fermentative (oxidative)",
	"NOVO":    "Novobiocin resistance",
	"RP":      "Reverse CAMP test",
	"COCC":    "Coagulase test",
	"CATE":    "Catalase test",
	"Trypsin": "Trypsin activity",

	// Growth tests
	"NAL": "Nalidixic acid resistance",
	"PEN": "Penicillin resistance",
	"CFZ": "Cefoxitin resistance",

	// Metabolism indicators
	"BET":  "Betaine utilization",
	"ETN":  "Ethanol utilization",
	"ABT":  "Arabitol",
	"MTL":  "Mannitol utilization",
	"AVT":  "Arabinose variant test",
	"BAT":  "Beta-alanine test",
	"CMT":  "Coumarin test",
	"CYT":  "Cytochrome test",
	"DIM":  "Dimethyl test",
	"ERO":  "Erythromycin test",
	"GRE":  "Green fluorescence",
	"GTE":  "Gelatin liquefaction variant",
	"GYT":  "Glycerol test variant",
	"HBG":  "Hemoglobin test",
	"HIN":  "Hippurate test variant",
	"LMLT": "L-Malate test",
	"DMLT": "D-Malate test",
	"LSTR": "L-Serine test",
	"LTAT": "L-Tartrate",
	"DTAT": "D-Tartrate",
	"MTAT": "Meso-Tartrate",
	"LTE":  "Lactose variant test",
	"MAC":  "MacConkey agar",
	"MTE":  "Maltose variant test",
	"PCE":  "Penicillin variant",
	"PPAT": "Phenylpyruvic acid test",
	"QAT":  "Quinine test",
	"SAT":  "Salicin variant test",
	"SUT":  "Sucrose variant test",
	"TATE": "Tartrate variant test",
	"TGE":  "Trehalose variant test",
	"TTN":  "Tetanus toxin",
	"TTE":  "Trehalose variant enzyme",
	"APT":  "Alanine-phenylalanine-proline test",
	"GNT":  "Gluconate",
	"GTT":  "Glutamate test",
	"3MDG": "3-Methyl-D-glucose",
	"mOBE": "meta-hydroxybenzoate",
	"pOBE": "para-hydroxybenzoate",
}

// ECExact maps enzyme names to exact EC numbers obtained by
// deterministic exact matching against the ExpASy ENZYME flat file
// (primary labels and synonyms only). Capitalization variants are
// separate keys on purpose, the source sheets differ.
var ECExact = map[string]string{
	"6-phospho-beta-galactosidase":         "3.2.1.85",
	"ACC deaminase":                        "3.5.99.7",
	"Acid phosphatase":                     "3.1.3.2",
	"Alkaline phosphatase":                 "3.1.3.1",
	"Arginine dihydrolase":                 "3.5.3.6",
	"Catalase":                             "1.11.1.6",
	"Cytochrome oxidase":                   "7.1.1.9",
	"D-aminoacylase":                       "3.5.1.81",
	"DNase":                                "3.1.21.1",
	"Dnase":                                "3.1.21.1",
	"Leucine aminopeptidase":               "3.4.11.1",
	"Lipase":                               "3.1.1.3",
	"Lysine decarboxylase":                 "4.1.1.18",
	"N-acetyl-beta-glucosaminidase":        "3.2.1.52",
	"Ornithine decarboxylase":              "4.1.1.17",
	"Ribulose-bisphosphate carboxylase":    "4.1.1.39",
	"Urease":                               "3.5.1.5",
	"Xylanase":                             "3.2.1.32",
	"acetate kinase":                       "2.7.2.1",
	"acid phosphatase":                     "3.1.3.2",
	"adenylate cyclase":                    "4.6.1.1",
	"agarase":                              "3.2.1.81",
	"alcohol dehydrogenase":                "1.1.1.1",
	"alkaline phosphatase":                 "3.1.3.1",
	"alpha-Amylase":                        "3.2.1.1",
	"alpha-L-arabinofuranosidase":          "3.2.1.55",
	"alpha-L-rhamnosidase":                 "3.2.1.40",
	"alpha-chymotrypsin":                   "3.4.21.1",
	"alpha-galactosidase":                  "3.2.1.22",
	"alpha-glucosidase":                    "3.2.1.20",
	"alpha-glucuronidase":                  "3.2.1.139",
	"alpha-mannosidase":                    "3.2.1.24",
	"alpha-xylosidase":                     "3.2.1.177",
	"arginine Dihydrolase":                 "3.5.3.6",
	"arginine decarboxylase":               "1.13.12.1",
	"arginine dihydrolase":                 "3.5.3.6",
	"beta-D-fucosidase":                    "3.2.1.38",
	"beta-L-arabinosidase":                 "3.2.1.88",
	"beta-N-acetylgalactosaminidase":       "3.2.1.53",
	"beta-galactosidase":                   "3.2.1.23",
	"beta-glucosidase":                     "3.2.1.21",
	"beta-glucuronidase":                   "3.2.1.31",
	"beta-lactamase":                       "3.5.2.6",
	"beta-mannosidase":                     "3.2.1.25",
	"beta-xylosidase":                      "3.2.1.37",
	"carboxylesterase":                     "3.1.1.1",
	"catalase":                             "1.11.1.6",
	"cellulase":                            "3.2.1.4",
	"chitinase":                            "3.2.1.14",
	"cholesterol esterase":                 "3.1.1.13",
	"chymotrypsin":                         "3.4.21.1",
	"cyclomaltodextrin glucanotransferase": "2.4.1.19",
	"cystine aminopeptidase":               "3.4.11.3",
	"cytochrome oxidase":                   "7.1.1.9",
	"cytochrome-c oxidase":                 "7.1.1.9",
	"endo-1,3(4)-beta-glucanase":           "3.2.1.6",
	"endo-1,4-beta-xylanase":               "3.2.1.8",
	"fructose-6-phosphate phosphoketolase": "4.1.2.22",
	"gamma-glutamyltransferase":            "2.3.2.2",
	"glutamate decarboxylase":              "4.1.1.15",
	"glutamate dehydrogenase":              "1.4.1.2",
	"heparin lyase":                        "4.2.2.7",
	"hippurate hydrolase":                  "3.5.1.32",
	"hyaluronate lyase":                    "4.2.2.1",
	"hyaluronidase":                        "3.2.1.35",
	"hydrogenase":                          "1.12.1.2",
	"leucine aminopeptidase":               "3.4.11.1",
	"lipase":                               "3.1.1.3",
	"lipase (C 14)":                        "3.1.1.3",
	"lipase (Tween 80)":                    "3.1.1.3",
	"lysine decarboxylase":                 "4.1.1.18",
	"lysozyme":                             "3.2.1.17",
	"methanol dehydrogenase":               "1.1.1.244",
	"nitrite reductase":                    "1.7.2.1",
	"nitrogenase":                          "1.18.6.1",
	"ornithine decarboxylase":              "4.1.1.17",
	"oxoglutarate dehydrogenase":           "1.2.4.2",
	"pectinase":                            "3.2.1.15",
	"penicillinase":                        "3.5.2.6",
	"phenylalaninase":                      "1.14.16.1",
	"phenylalanine ammonia-lyase":          "4.3.1.24",
	"phosphatase":                          "3.1.3.52",
	"phosphatidate phosphatase":            "3.1.3.4",
	"phosphatidylinositol phospholipase C": "3.1.4.11",
	"phosphoamidase":                       "3.9.1.1",
	"phosphohydrolase":                     "3.6.1.54",
	"phospholipase C":                      "3.1.4.3",
	"superoxide dismutase":                 "1.15.1.1",
	"thiosulfate reductase":                "2.8.1.5",
	"tripeptide aminopeptidase":            "3.4.11.4",
	"trypsin":                              "3.4.21.4",
	"tryptophan decarboxylase":             "4.1.1.28",
	"tryptophanase":                        "1.13.11.11",
	"tyrosinase":                           "1.10.3.1",
	"urease":                               "3.5.1.5",
	"xylan 1,4-beta-xylosidase":            "3.2.1.37",
}

// ECPartial maps enzyme names without an exact match to enzyme-family
// (partial) EC patterns where only the family can be determined.
var ECPartial = map[string]string{
	"Alanine arylamidase":                       "3.5.-.-",
	"Alanine-phenylalanine-proline arylamidase": "3.5.-.-",
	"Alanyl-Phenylalanyl-Proline arylamidase":   "3.5.-.-",
	"Arginine arylamidase":                      "3.5.-.-",
	"Aspartic acid arylamidase":                 "3.5.-.-",
	"Esterase":                                  "3.1.1.-",
	"Gamma-glutamyl transferase":                "2.-.-.-",
	"Glutamyl glutamic acid arylamidase":        "3.5.-.-",
	"Glycine arylamidase":                       "3.5.-.-",
	"Histidine arylamidase":                     "3.5.-.-",
	"L-arginine arylamidase":                    "3.5.-.-",
	"L-arginine dihydrolase":                    "3.-.-.-",
	"L-aspartate arylamidase":                   "3.5.-.-",
	"L-leucyl-2-naphthylamide hydrolase":        "3.-.-.-",
	"Leucine arylamidase":                       "3.5.-.-",
	"N-acetyl-glucosidase":                      "3.2.1.-",
	"Nitrate reductase":                         "1.-.-.-",
	"Phenylalanine arylamidase":                 "3.5.-.-",
	"Phospholipase":                             "3.1.1.-",
	"Proline arylamidase":                       "3.5.-.-",
	"Pyrazinamidase":                            "3.5.-.-",
	"Pyroglutamic acid arylamidase":             "3.5.-.-",
	"Pyrrolidonyl arylamidase":                  "3.5.-.-",
	"Serine arylamidase":                        "3.5.-.-",
	"Tyrosine arylamidase":                      "3.5.-.-",
	"alanine aminopeptidase":                    "3.4.-.-",
	"alanine arylamidase":                       "3.5.-.-",
	"alanine phenylalanin proline arylamidase":  "3.5.-.-",
	"arginine arylamidase":                      "3.5.-.-",
	"benzoyl-D-arginine arylamidase":            "3.5.-.-",
	"beta-D-galactosidase":                      "3.2.1.-",
	"beta-Galactosidase 6-phosphate":            "3.2.1.-",
	"beta-alanine arylamidase pNA":              "3.5.-.-",
	"beta-galactosaminidase":                    "3.4.-.-",
	"beta-galactosidase-6-phosphate":            "3.2.1.-",
	"beta-glucosaminidase":                      "3.4.-.-",
	"cystine arylamidase":                       "3.5.-.-",
	"esterase":                                  "3.1.1.-",
	"esterase (C 4)":                            "3.1.1.-",
	"esterase Lipase (C 8)":                     "3.1.1.-",
	"esterase lipase (C 8)":                     "3.1.1.-",
	"glu-gly-arg-arylamidase":                   "3.5.-.-",
	"glucosaminidase":                           "3.4.-.-",
	"glucose isomerase":                         "5.-.-.-",
	"glucosidase":                               "3.2.1.-",
	"glutamin glycerin arginin arylamidase":     "3.5.-.-",
	"glutamyl arylamidase pNA":                  "3.5.-.-",
	"glutamyl-glutamate arylamidase":            "3.5.-.-",
	"glu–gly–arg arylamidase":                   "3.5.-.-",
	"glu–gly–arg-arylamidase":                   "3.5.-.-",
	"glycin arylamidase":                        "3.5.-.-",
	"glycyl tryptophan arylamidase":             "3.5.-.-",
	"histidine arylamidase":                     "3.5.-.-",
	"l-pyrrolydonyl arylamidase":                "3.5.-.-",
	"l-pyrrolyldonyl-arylamidase":               "3.5.-.-",
	"leucine arylamidase":                       "3.5.-.-",
	"leucyl glycin arylamidase":                 "3.5.-.-",
	"naphthol-AS-BI-phosphohydrolase":           "3.-.-.-",
	"nitrate reductase":                         "1.-.-.-",
	"oxidase":                                   "1.-.-.-",
	"phenylalanine arylamidase":                 "3.5.-.-",
	"proline-arylamidase":                       "3.5.-.-",
	"protease":                                  "3.4.-.-",
	"pyrazinamidase":                            "3.5.-.-",
	"pyroglutamic acid arylamidase":             "3.5.-.-",
	"pyrrolidonyl arylamidase":                  "3.5.-.-",
	"serine arylamidase":                        "3.5.-.-",
	"skimmed milk protease":                     "3.4.-.-",
	"tellurite reductase":                       "1.-.-.-",
	"tween esterase":                            "3.1.1.-",
	"tyrosine arylamidase":                      "3.5.-.-",
	"valine aminopeptidase":                     "3.4.-.-",
	"valine arylamidase":                        "3.5.-.-",
	"α-galactosidase":                           "3.2.1.-",
	"α-galactosidase (Mannosidase)":             "3.2.1.-",
	"α-glucosidase":                             "3.2.1.-",
	"β-N-acetyl-glucosaminidase":                "3.4.-.-",
	"β-galactosidase":                           "3.2.1.-",
	"β-galactosidase (ONPG)":                    "3.2.1.-",
	"β-galactosidase (PNPG)":                    "3.2.1.-",
	"β-glucosidase":                             "3.2.1.-",
	"β-glycosidase":                             "3.2.1.-",
}

// GOFallback covers codes that cannot carry a single EC number, either
// because the activity is too generic or because the test observes a
// multi-enzyme pathway. Normalized-code forms sit alongside the raw
// codes so lookups succeed on both.
var GOFallback = map[string]GOTerm{
	"beta GP": {
		ID:     "GO:0004553",
		Name:   "hydrolase activity, hydrolyzing O-glycosyl compounds",
		Reason: "Generic β-glycosidase, substrate not specified",
	},
	"BETAGP": {
		ID:     "GO:0004553",
		Name:   "hydrolase activity, hydrolyzing O-glycosyl compounds",
		Reason: "Generic β-glycosidase, substrate not specified",
	},
	"GLU_ Ferm": {
		ID:     "GO:0019660",
		Name:   "glycolytic fermentation",
		Reason: "Multi-enzyme pathway: glucose → pyruvate → fermentation products",
	},
	"GLUFERM": {
		ID:     "GO:0019660",
		Name:   "glycolytic fermentation",
		Reason: "Multi-enzyme pathway: glucose → pyruvate → fermentation products",
	},
	"GLU_ Assim": {
		ID:     "GO:1904659",
		Name:   "glucose transmembrane transport",
		Reason: "Multi-step process: transport + phosphorylation + metabolism",
	},
	"GLUASSIM": {
		ID:     "GO:1904659",
		Name:   "glucose transmembrane transport",
		Reason: "Multi-step process: transport + phosphorylation + metabolism",
	},
}
