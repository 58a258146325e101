package ontology

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// displayCap limits findings printed to a terminal; the JSON report
// always carries the complete lists.
const displayCap = 10

// Summary is the bottom line of a validation run.
type Summary struct {
	TotalErrors   int  `json:"total_errors"`
	TotalWarnings int  `json:"total_warnings"`
	Valid         bool `json:"valid"`
}

// SnapshotInfo pins the exact snapshot file a report was produced
// against.
type SnapshotInfo struct {
	Path      string `json:"path"`
	SHA256    string `json:"sha256"`
	SizeBytes int64  `json:"size_bytes"`
	Modified  int64  `json:"modified_time"`
}

// Report is the serializable outcome of a validation run.
type Report struct {
	Statistics map[string]int          `json:"statistics"`
	Errors     []string                `json:"errors"`
	Warnings   []string                `json:"warnings"`
	Summary    Summary                 `json:"summary"`
	Snapshots  map[string]SnapshotInfo `json:"snapshots,omitempty"`
}

// Report assembles the current findings into a report.
func (v *Validator) Report() Report {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	warns := v.Warnings
	if warns == nil {
		warns = []string{}
	}
	return Report{
		Statistics: v.Stats,
		Errors:     errs,
		Warnings:   warns,
		Summary: Summary{
			TotalErrors:   len(v.Errors),
			TotalWarnings: len(v.Warnings),
			Valid:         len(v.Errors) == 0,
		},
	}
}

// Success reports whether the run produced zero errors. Warnings do
// not fail a run.
func (r Report) Success() bool { return r.Summary.Valid }

// Print writes a human-readable report. Findings beyond the display
// cap collapse to an overflow line; Save keeps them all.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Validation report")
	fmt.Fprintf(w, "  substrates: %d (chebi valid %d, missing chebi %d)\n",
		r.Statistics["substrates_total"], r.Statistics["chebi_valid"], r.Statistics["substrates_no_chebi"])
	fmt.Fprintf(w, "  enzymes: %d (ec valid %d, go valid %d)\n",
		r.Statistics["enzymes_total"], r.Statistics["ec_valid"], r.Statistics["go_valid"])

	printCapped(w, "warnings", r.Warnings)
	printCapped(w, "errors", r.Errors)

	if r.Success() {
		fmt.Fprintln(w, "  result: OK")
	} else {
		fmt.Fprintln(w, "  result: FAILED")
	}
}

func printCapped(w io.Writer, label string, findings []string) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s (%d):\n", label, len(findings))
	for i, f := range findings {
		if i == displayCap {
			fmt.Fprintf(w, "    ... and %d more\n", len(findings)-displayCap)
			break
		}
		fmt.Fprintf(w, "    - %s\n", f)
	}
}

// Save writes the complete report as indented JSON.
func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("ontology: encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ontology: write report %s: %w", path, err)
	}
	return nil
}

// TrackSnapshots hashes the snapshot files under dir so a report can
// be tied to the exact ontology versions it ran against. Missing files
// are simply absent from the result.
func TrackSnapshots(dir string) (map[string]SnapshotInfo, error) {
	out := make(map[string]SnapshotInfo)
	for _, name := range []string{ChEBIFile, GOFile, ECFile} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ontology: stat %s: %w", path, err)
		}
		sum, err := hashFile(path)
		if err != nil {
			return nil, err
		}
		out[name] = SnapshotInfo{
			Path:      path,
			SHA256:    sum,
			SizeBytes: info.Size(),
			Modified:  info.ModTime().Unix(),
		}
	}
	return out, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ontology: open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("ontology: hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
