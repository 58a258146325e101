package assay

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strainkit/assaymeta/internal/corpus"
)

const buildDump = `[
  {
    "Physiology and metabolism": {
      "enzymes": [
        {"value": "Urease", "ec": "", "activity": "+"},
        {"value": "catalase", "ec": "1.11.1.6", "activity": "+"}
      ],
      "API zym": {"@ref": 1, "Control": "-", "Alkaline phosphatase": "+"},
      "API 20E": {"@ref": 2, "ONPG": "+", "URE": "-"},
      "metabolite utilization": [
        {"metabolite": "D-glucose", "Chebi-ID": 17634,
         "kind of utilization tested": "fermentation",
         "utilization activity": "+"}
      ]
    }
  },
  {
    "Physiology and metabolism": {
      "API zym": {"@ref": 3, "Control": "-", "Alkaline phosphatase": "-"}
    }
  }
]`

func buildFixture(t *testing.T) *Metadata {
	t.Helper()
	res, err := corpus.Scan(strings.NewReader(buildDump))
	require.NoError(t, err)

	b := &Builder{Classifier: &Classifier{}}
	return b.Build(context.Background(), res)
}

func TestBuildKitsSortedByOccurrence(t *testing.T) {
	meta := buildFixture(t)

	require.Len(t, meta.APIKits, 2)
	assert.Equal(t, "API zym", meta.APIKits[0].KitName)
	assert.Equal(t, 2, meta.APIKits[0].OccurrenceCount)
	assert.Equal(t, "Enzyme profiling", meta.APIKits[0].Category)
	assert.Equal(t, "API 20E", meta.APIKits[1].KitName)
	assert.Equal(t, 1, meta.APIKits[1].OccurrenceCount)
	assert.Equal(t, []string{"ONPG", "URE"}, meta.APIKits[1].Wells)
}

func TestBuildWellsUseKitContext(t *testing.T) {
	meta := buildFixture(t)

	// ONPG only occurs in API 20E, so the kit override applies and
	// the well classifies as the enzyme, not the substrate.
	onpg, ok := meta.Wells["ONPG"]
	require.True(t, ok)
	assert.Equal(t, CategoryEnzyme, onpg.Category)
	require.NotNil(t, onpg.EnzymeIDs)
	assert.Equal(t, "β-galactosidase", onpg.EnzymeIDs.EnzymeName)
	assert.Equal(t, []string{"API 20E"}, onpg.UsedInKits)

	control, ok := meta.Wells["Control"]
	require.True(t, ok)
	assert.Equal(t, CategoryPhenotypic, control.Category)
	assert.Equal(t, []string{"API zym"}, control.UsedInKits)

	// Reserved metadata keys never become wells.
	_, ok = meta.Wells["@ref"]
	assert.False(t, ok)
}

func TestBuildEnzymes(t *testing.T) {
	meta := buildFixture(t)

	ure, ok := meta.Enzymes["Urease"]
	require.True(t, ok)
	assert.Equal(t, "3.5.1.5", ure.ECNumber)
	assert.Equal(t, []string{"GO:0009039"}, ure.GOTerms)

	cat, ok := meta.Enzymes["catalase"]
	require.True(t, ok)
	assert.Equal(t, "catalase", cat.EnzymeName)
}

func TestBuildMetabolites(t *testing.T) {
	meta := buildFixture(t)

	glu, ok := meta.Metabolites["D-glucose"]
	require.True(t, ok)
	assert.Equal(t, "D-glucose", glu.MetaboliteName)
	assert.Equal(t, []string{"fermentation"}, glu.UtilizationTestTypes)
	assert.Equal(t, 1, glu.UtilizationCount)
}

func TestBuildStatistics(t *testing.T) {
	meta := buildFixture(t)

	assert.Equal(t, 2, meta.Statistics["total_strains"])
	assert.Equal(t, 2, meta.Statistics["total_api_kits"])
	assert.Equal(t, len(meta.Wells), meta.Statistics["total_unique_wells"])
	assert.Equal(t, 2, meta.Statistics["total_unique_enzymes"])
	assert.Equal(t, 1, meta.Statistics["total_unique_metabolites"])
	assert.Equal(t, 3, meta.Statistics["total_kit_occurrences"])
}

func TestKitWells(t *testing.T) {
	res, err := corpus.Scan(strings.NewReader(buildDump))
	require.NoError(t, err)

	b := &Builder{Classifier: &Classifier{}}
	wells := b.KitWells(context.Background(), res, "API zym")
	require.Len(t, wells, 2)
	assert.Equal(t, CategoryPhenotypic, wells["Control"].Category)
	assert.Equal(t, CategoryEnzyme, wells["Alkaline phosphatase"].Category)

	assert.Nil(t, b.KitWells(context.Background(), res, "API 20NE"))
}
