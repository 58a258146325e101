package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstrateForKitContext(t *testing.T) {
	tests := []struct {
		name string
		code string
		kit  string
		want string
	}{
		{"global default", "MAN", "API 50CHac", "D-Mannitol"},
		{"api 20e override", "MAN", "API 20E", "D-Mannose"},
		{"api 20ne override", "MAN", "API 20NE", "D-Mannitol"},
		{"no kit context", "MAN", "", "D-Mannitol"},
		{"plain global code", "GLU", "API 20E", "D-Glucose"},
		{"capitalization variant", "Sor", "API 20E", "D-Sorbitol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := SubstrateFor(tt.code, tt.kit)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.Name)
		})
	}
}

func TestEnzymeOverrideShadowsSubstrate(t *testing.T) {
	// ONPG is a chemical globally but the API 20E docs treat it as the
	// enzyme it reveals; the substrate lookup must refuse it there.
	if _, ok := SubstrateFor("ONPG", "API 20E"); ok {
		t.Fatal("ONPG resolved as substrate under API 20E")
	}
	ov, ok := OverrideFor("ONPG", "API 20E")
	require.True(t, ok)
	assert.True(t, ov.Enzyme)
	assert.Equal(t, "β-galactosidase", ov.Name)
	assert.Equal(t, "o-Nitrophenyl-β-D-galactopyranoside", ov.Substrate)

	// Without kit context the global substrate entry applies.
	s, ok := SubstrateFor("ONPG", "")
	require.True(t, ok)
	assert.Equal(t, "CHEBI:70697", s.ChEBI)
}

func TestControlOverride(t *testing.T) {
	ov, ok := OverrideFor("Control", "API zym")
	require.True(t, ok)
	assert.True(t, ov.Control)
	if _, ok := SubstrateFor("Control", "API zym"); ok {
		t.Fatal("control well resolved as substrate")
	}
}

func TestZymSpacingVariantsAgree(t *testing.T) {
	variants := [][2]string{
		{"alpha-Galactosidase", "alpha- Galactosidase"},
		{"beta-Glucuronidase", "beta- Glucuronidase"},
		{"N-acetyl-beta-glucosaminidase", "N-acetyl-beta- glucosaminidase"},
		{"Esterase (C4)", "Esterase"},
		{"Lipase (C14)", "Lipase"},
	}
	for _, v := range variants {
		a, ok := OverrideFor(v[0], "API zym")
		require.True(t, ok, v[0])
		b, ok := OverrideFor(v[1], "API zym")
		require.True(t, ok, v[1])
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.EC, b.EC)
	}
}

func TestEnzymeTestNameAliases(t *testing.T) {
	a, ok := EnzymeTestName("TDA")
	require.True(t, ok)
	b, ok := EnzymeTestName("TDA Trp")
	require.True(t, ok)
	assert.Equal(t, a, b)

	// Activity table is the second tier.
	name, ok := EnzymeTestName("PyrA")
	require.True(t, ok)
	assert.Equal(t, "Pyroglutamic acid arylamidase", name)

	if _, ok := EnzymeTestName("GLU"); ok {
		t.Fatal("substrate code resolved as enzyme test")
	}
}

func TestECTables(t *testing.T) {
	assert.Equal(t, "3.2.1.23", ECExact["beta-galactosidase"])
	assert.Equal(t, "3.1.3.1", ECExact["Alkaline phosphatase"])
	// Capitalization variants stay distinct keys.
	assert.Equal(t, ECExact["Urease"], ECExact["urease"])
	assert.Equal(t, "3.5.-.-", ECPartial["Pyrrolidonyl arylamidase"])
	assert.Equal(t, "1.-.-.-", ECPartial["tellurite reductase"])

	// No name should appear in both tables.
	for name := range ECPartial {
		if _, dup := ECExact[name]; dup {
			t.Errorf("%q present in both exact and partial EC tables", name)
		}
	}
}

func TestAnnotationForSpacingVariant(t *testing.T) {
	a, ok := AnnotationFor("alpha- Chymotrypsin")
	require.True(t, ok)
	assert.Equal(t, "3.4.21.1", a.EC)
	assert.Equal(t, []string{"GO:0004252"}, a.GOTerms)
}

func TestGOFallbackNormalizedKeys(t *testing.T) {
	raw, ok := GOFallback["GLU_ Ferm"]
	require.True(t, ok)
	norm, ok := GOFallback["GLUFERM"]
	require.True(t, ok)
	assert.Equal(t, raw.ID, norm.ID)
	assert.Equal(t, "GO:0019660", raw.ID)
}

func TestKitRegistry(t *testing.T) {
	info := KitRegistry("API zym")
	assert.Equal(t, "Enzyme profiling", info.Category)

	unknown := KitRegistry("API madeup")
	assert.Equal(t, "API madeup", unknown.Name)
	assert.Equal(t, "Unknown", unknown.Category)

	kits := RegisteredKits()
	require.NotEmpty(t, kits)
	for i := 1; i < len(kits); i++ {
		if kits[i-1].Name >= kits[i].Name {
			t.Fatalf("registry not sorted: %q before %q", kits[i-1].Name, kits[i].Name)
		}
	}
}

func TestPredicatesForPrecedence(t *testing.T) {
	// Well code beats everything.
	p := PredicatesFor("Enzyme profiling", "NO3", "enzyme")
	assert.Equal(t, "reduces", p.Positive.Label)

	// Enzyme well type beats kit category.
	p = PredicatesFor("Carbohydrate fermentation", "GLU", "enzyme")
	assert.Equal(t, "shows activity of", p.Positive.Label)

	// Kit category applies to plain chemical wells.
	p = PredicatesFor("Carbohydrate fermentation", "GLU", "chemical")
	assert.Equal(t, "ferments", p.Positive.Label)

	// Unregistered category splits on the fermentation keyword.
	p = PredicatesFor("Custom fermentation panel", "GLU", "chemical")
	assert.Equal(t, "ferments", p.Positive.Label)
	p = PredicatesFor("Custom panel", "GLU", "chemical")
	assert.Equal(t, "assimilates", p.Positive.Label)
}

func TestMetaboliteInfo(t *testing.T) {
	// Curated CHEBI wins over the caller's.
	chebi, pubchem := MetaboliteInfo("esculin", "CHEBI:0000")
	assert.Equal(t, "CHEBI:4853", chebi)
	assert.Equal(t, "5281417", pubchem)

	// Curated entry without CHEBI keeps the caller's.
	chebi, pubchem = MetaboliteInfo("Potassium 5-ketogluconate", "CHEBI:1234")
	assert.Equal(t, "CHEBI:1234", chebi)
	assert.Equal(t, "23702137", pubchem)

	// Unknown names pass the caller's CHEBI through.
	chebi, pubchem = MetaboliteInfo("unobtainium broth", "CHEBI:9999")
	assert.Equal(t, "CHEBI:9999", chebi)
	assert.Empty(t, pubchem)
}
