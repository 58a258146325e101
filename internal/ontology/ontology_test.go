package ontology

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const chebiTSV = "id\tname\tdeprecated\tcategory\tsynonym\n" +
	"CHEBI:17234\tD-glucose\tfalse\tbiolink:ChemicalSubstance\tgrape sugar\n" +
	"CHEBI:16199\turea\tfalse\tbiolink:ChemicalSubstance\t\n" +
	"CHEBI:99999\told compound\ttrue\tbiolink:ChemicalSubstance\t\n"

const ecTSV = "id\tname\tdeprecated\tcategory\tsynonym\n" +
	"https://www.ebi.ac.uk/intenz/query?cmd=SearchEC&ec=3.5.1.5\turease\tfalse\tbiolink:MolecularActivity\t\n" +
	"3.2.1.23\tbeta-galactosidase\tfalse\tbiolink:MolecularActivity\t\n"

const goTSV = "id\tname\tdeprecated\tcategory\tsynonym\n" +
	"GO:0009039\turease activity\tfalse\tbiolink:MolecularActivity\t\n" +
	"GO:0004565\tbeta-galactosidase activity\ttrue\tbiolink:MolecularActivity\t\n"

func TestLoadIndexCollapsesIntenzURLs(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, ECFile, ecTSV)

	idx, err := LoadIndex(filepath.Join(dir, ECFile))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	term, ok := idx.Lookup("3.5.1.5")
	require.True(t, ok)
	assert.Equal(t, "urease", term.Name)

	_, ok = idx.Lookup("https://www.ebi.ac.uk/intenz/query?cmd=SearchEC&ec=3.5.1.5")
	assert.False(t, ok)
}

func TestLoadIndexMissingFileIsEmpty(t *testing.T) {
	idx, err := LoadIndex(filepath.Join(t.TempDir(), "nope.tsv"))
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestValidatorFindings(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, ChEBIFile, chebiTSV)
	writeSnapshot(t, dir, ECFile, ecTSV)
	writeSnapshot(t, dir, GOFile, goTSV)

	v, err := NewValidator(dir, nil)
	require.NoError(t, err)

	assert.True(t, v.ValidateChEBI("CHEBI:17234"))
	assert.False(t, v.ValidateChEBI("CHEBI:0"))
	assert.True(t, v.ValidateChEBI("CHEBI:99999"), "deprecated ids stay valid")

	assert.True(t, v.ValidateEC("3.5.1.5"))
	assert.True(t, v.ValidateGO("GO:0009039"))
	assert.True(t, v.ValidateGO("GO:0004565"))

	assert.Len(t, v.Errors, 1)
	assert.Contains(t, v.Errors[0], "CHEBI:0")
	assert.Len(t, v.Warnings, 2)
	assert.Equal(t, 1, v.Stats["chebi_valid"])
	assert.Equal(t, 1, v.Stats["ec_valid"])
	assert.Equal(t, 1, v.Stats["go_valid"])
}

func TestValidateAllAgainstEmptySnapshots(t *testing.T) {
	// Empty snapshot directory: every curated id is reported missing,
	// so the run fails but still counts every table entry.
	v, err := NewValidator(t.TempDir(), nil)
	require.NoError(t, err)

	v.ValidateAll(context.Background())

	assert.NotZero(t, v.Stats["substrates_total"])
	assert.NotZero(t, v.Stats["enzymes_total"])
	assert.NotEmpty(t, v.Errors)
	assert.False(t, v.Report().Success())
}

func TestReportRoundTrip(t *testing.T) {
	v, err := NewValidator(t.TempDir(), nil)
	require.NoError(t, err)
	v.errorf("EC number not found: %s", "9.9.9.9")
	v.warnf("GO term deprecated: %s", "GO:0000001")
	v.Stats["ec_valid"] = 3

	report := v.Report()
	assert.False(t, report.Success())
	assert.Equal(t, 1, report.Summary.TotalErrors)
	assert.Equal(t, 1, report.Summary.TotalWarnings)

	path := filepath.Join(t.TempDir(), "validation_report.json")
	require.NoError(t, report.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "9.9.9.9")
	assert.Contains(t, string(data), `"valid": false`)
}

func TestPrintCapsFindings(t *testing.T) {
	v, err := NewValidator(t.TempDir(), nil)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		v.errorf("EC number not found: 1.1.1.%d", i)
	}

	var out strings.Builder
	v.Report().Print(&out)

	assert.Contains(t, out.String(), "errors (25)")
	assert.Contains(t, out.String(), "... and 15 more")
	assert.NotContains(t, out.String(), "1.1.1.20", "findings past the cap stay out of the terminal output")
}

func TestTrackSnapshots(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, ChEBIFile, chebiTSV)
	writeSnapshot(t, dir, GOFile, goTSV)

	snaps, err := TrackSnapshots(dir)
	require.NoError(t, err)

	require.Len(t, snaps, 2)
	chebi := snaps[ChEBIFile]
	assert.Len(t, chebi.SHA256, 64)
	assert.Equal(t, int64(len(chebiTSV)), chebi.SizeBytes)
	_, tracked := snaps[ECFile]
	assert.False(t, tracked)
}
