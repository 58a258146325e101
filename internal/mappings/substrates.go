package mappings

// Substrates is the global well-code to chemical-identity table,
// curated from bioMerieux API kit documentation. CHEBI/PubChem coverage
// is partial by nature; either identifier may be empty.
var Substrates = map[string]Substrate{
	// Monosaccharides
	"GLU":  {"D-Glucose", "CHEBI:17234", "5793"},
	"FRU":  {"D-Fructose", "CHEBI:15824", "5984"},
	"GAL":  {"D-Galactose", "CHEBI:28061", "6036"},
	"MAN":  {"D-Mannitol", "CHEBI:16899", "6251"}, // kit-dependent; see KitOverrides
	"MANN": {"D-Mannose", "CHEBI:4208", "18950"},
	"RIB":  {"D-Ribose", "CHEBI:47013", "5779"},
	"XYL":  {"D-Xylose", "CHEBI:17140", "135191"},
	"DXYL": {"D-Xylose", "CHEBI:17140", "135191"},
	"LXYL": {"L-Xylose", "CHEBI:33917", "5289597"},
	"ARA":  {"L-Arabinose", "CHEBI:17553", "439195"},
	"LARA": {"L-Arabinose", "CHEBI:17553", "439195"},
	"DARA": {"D-Arabinose", "CHEBI:16731", "439197"},
	"LYX":  {"D-Lyxose", "CHEBI:12301", "439236"},
	"TAG":  {"D-Tagatose", "CHEBI:17004", "439654"},
	"SBE":  {"D-Sorbose", "CHEBI:17262", "439192"},

	// Disaccharides and oligosaccharides
	"MAL": {"Maltose", "CHEBI:17306", "6255"},
	"LAC": {"Lactose", "CHEBI:17716", "6134"},
	"SAC": {"Sucrose", "CHEBI:17992", "5988"},
	"TRE": {"Trehalose", "CHEBI:16551", "7427"},
	"CEL": {"Cellobiose", "CHEBI:17057", "10712"},
	"MEL": {"Melibiose", "CHEBI:28117", "440658"},
	"GEN": {"Gentiobiose", "CHEBI:18296", "53234"},
	"TUR": {"Turanose", "CHEBI:27806", "439532"},
	"RAF": {"Raffinose", "CHEBI:16634", "439242"},
	"MLZ": {"Melezitose", "CHEBI:28283", "92817"},
	"MNT": {"Maltotriose", "CHEBI:17253", "439586"},

	// Polysaccharides and glycosides
	"AMY":  {"Amygdalin", "CHEBI:17019", "656516"},
	"AMYL": {"Starch (Amylose)", "CHEBI:28017", "24836924"},
	"AMD":  {"Amidon (Starch)", "CHEBI:28017", "24836924"},
	"GLYG": {"Glycogen", "CHEBI:28087", "439177"},
	"INU":  {"Inulin", "CHEBI:15443", "24763"},
	"PUL":  {"Pullulan", "CHEBI:28653", ""},
	"CDEX": {"Cyclodextrin", "CHEBI:495083", ""},
	"ESC":  {"Esculin", "CHEBI:4806", "5281417"},
	"SAL":  {"Salicin", "CHEBI:17814", "439503"},
	"ARB":  {"Arbutin", "CHEBI:2599", "440936"},

	// Sugar alcohols and polyols
	"SOR":  {"D-Sorbitol", "CHEBI:17924", "5780"},
	"MNE":  {"D-Mannose", "CHEBI:4208", "18950"}, // kit-dependent; see KitOverrides
	"INO":  {"myo-Inositol", "CHEBI:17268", "892"},
	"DUL":  {"Dulcitol", "CHEBI:42118", "11850"},
	"ADO":  {"Adonitol", "CHEBI:2509", "64639"},
	"ERY":  {"Erythritol", "CHEBI:17113", "222285"},
	"XLT":  {"Xylitol", "CHEBI:17151", "6912"},
	"DARL": {"D-Arabitol", "CHEBI:16708", "94154"},
	"LARL": {"L-Arabitol", "CHEBI:18087", "439255"},
	"GAT":  {"Galactitol", "CHEBI:16813", "11850"},
	"GLY":  {"Glycerol", "CHEBI:17754", "753"},

	// Amino and deoxy sugars
	"NAG":  {"N-Acetyl-D-glucosamine", "CHEBI:28009", "24139"},
	"RHA":  {"L-Rhamnose", "CHEBI:27907", "25310"},
	"DFUC": {"D-Fucose", "CHEBI:42589", "246422"},
	"LFUC": {"L-Fucose", "CHEBI:2181", "17106"},
	"FUC":  {"Fucose", "CHEBI:33984", ""},

	// Organic acids
	"CIT":  {"Citrate", "CHEBI:30769", "311"},
	"LAT":  {"Lactate", "CHEBI:422", "107689"},
	"PAT":  {"Pyruvic acid", "CHEBI:32816", "1060"},
	"SUC":  {"Succinic acid", "CHEBI:15741", "1110"},
	"FUM":  {"Fumaric acid", "CHEBI:18012", "444972"},
	"2KG":  {"2-Ketogluconic acid", "CHEBI:17978", "7427"},
	"5KG":  {"5-Ketogluconic acid", "CHEBI:17991", "160957"},
	"2KT":  {"2-Ketoglutarate", "CHEBI:16810", "51"},
	"3OBU": {"3-Hydroxybutyrate", "CHEBI:20067", "441"},
	"GDC":  {"Gluconic acid", "CHEBI:33198", "10690"},
	"GNT":  {"Gluconate", "CHEBI:33198", "10690"},
	"GRT":  {"Glucuronate", "CHEBI:47926", "94715"},
	"MLT":  {"Malate", "CHEBI:30796", "525"},
	"MUC":  {"Mucate", "CHEBI:30850", "5460682"},
	"ITA":  {"Itaconate", "CHEBI:30838", "811"},
	"ADI":  {"Adipate", "CHEBI:30831", "196"},
	"CAP":  {"Caprate", "CHEBI:30813", "3893"},
	"PAC":  {"Phenylacetate", "CHEBI:30745", "999"},
	"ACE":  {"Acetate", "CHEBI:30089", "176"},
	"PROP": {"Propionate", "CHEBI:30768", "1032"},
	"Q":    {"Quinate", "CHEBI:17521", "6508"},

	// Amino acids
	"TRY":  {"L-Tryptophan", "CHEBI:16828", "6305"},
	"GLN":  {"L-Glutamine", "CHEBI:58359", "5961"},
	"PRO":  {"L-Proline", "CHEBI:26271", "145742"},
	"DALA": {"D-Alanine", "CHEBI:15570", "71080"},
	"LALA": {"L-Alanine", "CHEBI:16449", "5950"},
	"SER":  {"L-Serine", "CHEBI:17115", "5951"},
	"TYR":  {"L-Tyrosine", "CHEBI:17895", "6057"},
	"HIS":  {"L-Histidine", "CHEBI:15971", "6274"},
	"GTA":  {"Glutamate", "CHEBI:29985", "33032"},

	// Modified sugars
	"MDX": {"Methyl-D-xyloside", "CHEBI:73011", "92816"},
	"MDM": {"Methyl-α-D-mannopyranoside", "CHEBI:50031", "97143"},
	"MDG": {"Methyl-α-D-glucopyranoside", "CHEBI:27960", "11266"},
	"G1P": {"Glucose-1-phosphate", "CHEBI:16077", "65533"},

	// Others
	"URE":  {"Urea", "CHEBI:16199", "1176"},
	"GEL":  {"Gelatin", "CHEBI:5291", ""},
	"ONPG": {"o-Nitrophenyl-β-D-galactopyranoside", "CHEBI:70697", "4625"},
}
