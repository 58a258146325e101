// Package corpus extracts assay observations from a BacDive strain
// dump: which API kits occur, which well codes each kit carries (in
// panel order), enzyme observations, and metabolite
// utilization/production/test records.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	physiologySection = "Physiology and metabolism"
	kitPrefix         = "API "
)

// KitObservation records one kit as first seen in the corpus. Wells
// keep the order of the source panel; later strains using the same kit
// do not reorder it.
type KitObservation struct {
	Name      string
	Wells     []string
	WellCount int
}

// EnzymeObservation aggregates enzyme records by name across strains.
type EnzymeObservation struct {
	Name           string
	EC             string
	ActivityValues map[string]struct{}
}

// MetaboliteObservation aggregates metabolite records by name.
type MetaboliteObservation struct {
	Name                 string
	ChEBIID              string
	UtilizationTestTypes map[string]struct{}
	ProductionValues     map[string]struct{}
	TestNames            map[string]struct{}
	UtilizationCount     int
	ProductionCount      int
	TestCount            int
}

// Result is everything a scan extracts from one corpus file.
type Result struct {
	Kits           map[string]*KitObservation
	KitOccurrences map[string]int
	wellKits       map[string]map[string]struct{}
	Enzymes        map[string]*EnzymeObservation
	Metabolites    map[string]*MetaboliteObservation
	TotalStrains   int
}

// WellKits returns the sorted kit names observed to use a well code.
func (r *Result) WellKits(code string) []string {
	kits := make([]string, 0, len(r.wellKits[code]))
	for k := range r.wellKits[code] {
		kits = append(kits, k)
	}
	sort.Strings(kits)
	return kits
}

// WellCodes returns every observed well code, sorted.
func (r *Result) WellCodes() []string {
	codes := make([]string, 0, len(r.wellKits))
	for c := range r.wellKits {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// ScanFile scans the strain dump at path.
func ScanFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	return Scan(f)
}

// Scan streams a JSON array of strain records and aggregates assay
// observations. Records without a physiology section are skipped;
// malformed sub-sections are skipped silently, matching the varied
// quality of the source data.
func Scan(r io.Reader) (*Result, error) {
	res := &Result{
		Kits:           make(map[string]*KitObservation),
		KitOccurrences: make(map[string]int),
		wellKits:       make(map[string]map[string]struct{}),
		Enzymes:        make(map[string]*EnzymeObservation),
		Metabolites:    make(map[string]*MetaboliteObservation),
	}

	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("corpus: read array start: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("corpus: expected top-level array, got %v", tok)
	}

	for dec.More() {
		var strain map[string]json.RawMessage
		if err := dec.Decode(&strain); err != nil {
			return nil, fmt.Errorf("corpus: decode strain %d: %w", res.TotalStrains, err)
		}
		res.TotalStrains++
		res.scanStrain(strain)
	}
	return res, nil
}

func (res *Result) scanStrain(strain map[string]json.RawMessage) {
	raw, ok := strain[physiologySection]
	if !ok {
		return
	}
	var physiology map[string]json.RawMessage
	if err := json.Unmarshal(raw, &physiology); err != nil {
		return
	}

	if raw, ok := physiology["enzymes"]; ok {
		res.scanEnzymes(raw)
	}
	if raw, ok := physiology["metabolite utilization"]; ok {
		res.scanMetaboliteUtilization(raw)
	}
	if raw, ok := physiology["metabolite production"]; ok {
		res.scanMetaboliteProduction(raw)
	}
	if raw, ok := physiology["metabolite tests"]; ok {
		res.scanMetaboliteTests(raw)
	}

	for key, value := range physiology {
		if strings.HasPrefix(key, kitPrefix) {
			res.scanKitResult(key, value)
		}
	}
}

type enzymeRecord struct {
	Value    string `json:"value"`
	EC       string `json:"ec"`
	Activity string `json:"activity"`
}

func (res *Result) scanEnzymes(raw json.RawMessage) {
	var records []enzymeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return
	}
	for _, rec := range records {
		name := strings.TrimSpace(rec.Value)
		if name == "" {
			continue
		}
		obs, ok := res.Enzymes[name]
		if !ok {
			obs = &EnzymeObservation{
				Name:           name,
				EC:             strings.TrimSpace(rec.EC),
				ActivityValues: make(map[string]struct{}),
			}
			res.Enzymes[name] = obs
		}
		if activity := strings.TrimSpace(rec.Activity); activity != "" {
			obs.ActivityValues[activity] = struct{}{}
		}
	}
}

// scanKitResult handles one kit section. The section is either a single
// result object or a list of them; well codes are the object keys in
// document order, minus "@"-prefixed reserved metadata keys.
func (res *Result) scanKitResult(kitName string, raw json.RawMessage) {
	res.KitOccurrences[kitName]++

	results, err := assayObjects(raw)
	if err != nil {
		return
	}
	for _, result := range results {
		wells := make([]string, 0, len(result))
		for _, code := range result {
			if strings.HasPrefix(code, "@") {
				continue
			}
			wells = append(wells, code)
		}

		if _, ok := res.Kits[kitName]; !ok {
			res.Kits[kitName] = &KitObservation{
				Name:      kitName,
				Wells:     wells,
				WellCount: len(wells),
			}
		}
		for _, code := range wells {
			set, ok := res.wellKits[code]
			if !ok {
				set = make(map[string]struct{})
				res.wellKits[code] = set
			}
			set[kitName] = struct{}{}
		}
	}
}

// assayObjects returns the key order of each result object in a kit
// section. encoding/json maps drop document order, so keys are pulled
// with a token-level pass instead.
func assayObjects(raw json.RawMessage) ([][]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		keys, err := objectKeys(trimmed)
		if err != nil {
			return nil, err
		}
		return [][]string{keys}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		var all [][]string
		for _, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '{' {
				continue
			}
			keys, err := objectKeys(item)
			if err != nil {
				continue
			}
			all = append(all, keys)
		}
		return all, nil
	default:
		return nil, nil
	}
}

func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("corpus: expected object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("corpus: expected object key")
		}
		keys = append(keys, key)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

type metaboliteRecord struct {
	Metabolite  string          `json:"metabolite"`
	ChEBIID     json.RawMessage `json:"Chebi-ID"`
	TestType    string          `json:"kind of utilization tested"`
	Utilization string          `json:"utilization activity"`
	Production  string          `json:"production"`
}

func (res *Result) metabolite(name, chebi string) *MetaboliteObservation {
	obs, ok := res.Metabolites[name]
	if !ok {
		obs = &MetaboliteObservation{
			Name:                 name,
			ChEBIID:              chebi,
			UtilizationTestTypes: make(map[string]struct{}),
			ProductionValues:     make(map[string]struct{}),
			TestNames:            make(map[string]struct{}),
		}
		res.Metabolites[name] = obs
	}
	return obs
}

func (res *Result) scanMetaboliteUtilization(raw json.RawMessage) {
	var records []metaboliteRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return
	}
	for _, rec := range records {
		name := strings.TrimSpace(rec.Metabolite)
		if name == "" {
			continue
		}
		obs := res.metabolite(name, chebiString(rec.ChEBIID))
		if testType := strings.TrimSpace(rec.TestType); testType != "" {
			obs.UtilizationTestTypes[testType] = struct{}{}
		}
		obs.UtilizationCount++
	}
}

func (res *Result) scanMetaboliteProduction(raw json.RawMessage) {
	var records []metaboliteRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return
	}
	for _, rec := range records {
		name := strings.TrimSpace(rec.Metabolite)
		if name == "" {
			continue
		}
		obs := res.metabolite(name, chebiString(rec.ChEBIID))
		if value := strings.TrimSpace(rec.Production); value != "" {
			obs.ProductionValues[value] = struct{}{}
		}
		obs.ProductionCount++
	}
}

// scanMetaboliteTests handles the test-name keyed section. List-shaped
// sections occur in the wild and carry no test names, so they are
// skipped.
func (res *Result) scanMetaboliteTests(raw json.RawMessage) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return
	}
	var tests map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &tests); err != nil {
		return
	}
	for testName, recordsRaw := range tests {
		if strings.HasPrefix(testName, "@") {
			continue
		}
		var records []metaboliteRecord
		if err := json.Unmarshal(recordsRaw, &records); err != nil {
			continue
		}
		for _, rec := range records {
			name := strings.TrimSpace(rec.Metabolite)
			if name == "" {
				continue
			}
			obs := res.metabolite(name, chebiString(rec.ChEBIID))
			obs.TestNames[testName] = struct{}{}
			obs.TestCount++
		}
	}
}

// chebiString accepts the Chebi-ID field in either of the shapes the
// corpus uses, a bare number or a string.
func chebiString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}
