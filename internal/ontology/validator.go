package ontology

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/strainkit/assaymeta/internal/mappings"
)

// Snapshot file names expected under the ontology directory.
const (
	ChEBIFile = "chebi_nodes.tsv"
	GOFile    = "go_nodes.tsv"
	ECFile    = "ec_nodes.tsv"
)

// Validator audits every curated table against the loaded snapshots.
// An id the snapshot does not know is an error; a deprecated id is a
// warning. Network checks are optional and off unless Net is set.
type Validator struct {
	ChEBI *Index
	GO    *Index
	EC    *Index

	Net *NetChecker
	Log *zap.Logger

	Stats    map[string]int
	Errors   []string
	Warnings []string
}

// NewValidator loads the three snapshot indexes from dir.
func NewValidator(dir string, log *zap.Logger) (*Validator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	chebi, err := LoadIndex(filepath.Join(dir, ChEBIFile))
	if err != nil {
		return nil, err
	}
	goIdx, err := LoadIndex(filepath.Join(dir, GOFile))
	if err != nil {
		return nil, err
	}
	ec, err := LoadIndex(filepath.Join(dir, ECFile))
	if err != nil {
		return nil, err
	}
	log.Info("loaded ontology snapshots",
		zap.Int("chebi", chebi.Len()),
		zap.Int("go", goIdx.Len()),
		zap.Int("ec", ec.Len()))

	return &Validator{
		ChEBI: chebi,
		GO:    goIdx,
		EC:    ec,
		Log:   log,
		Stats: make(map[string]int),
	}, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// ValidateChEBI checks one CHEBI id against the snapshot.
func (v *Validator) ValidateChEBI(id string) bool {
	if id == "" {
		return false
	}
	term, ok := v.ChEBI.Lookup(id)
	if !ok {
		v.errorf("CHEBI ID not found: %s", id)
		return false
	}
	if term.Deprecated {
		v.warnf("CHEBI ID deprecated: %s (%s)", id, term.Name)
		return true
	}
	v.Stats["chebi_valid"]++
	return true
}

// ValidateEC checks one EC number against the snapshot.
func (v *Validator) ValidateEC(ec string) bool {
	if ec == "" {
		return false
	}
	term, ok := v.EC.Lookup(ec)
	if !ok {
		v.errorf("EC number not found: %s", ec)
		return false
	}
	if term.Deprecated {
		v.warnf("EC number deprecated: %s (%s)", ec, term.Name)
		return true
	}
	v.Stats["ec_valid"]++
	return true
}

// ValidateGO checks one GO term against the snapshot.
func (v *Validator) ValidateGO(id string) bool {
	if id == "" {
		return false
	}
	term, ok := v.GO.Lookup(id)
	if !ok {
		v.errorf("GO term not found: %s", id)
		return false
	}
	if term.Deprecated {
		v.warnf("GO term deprecated: %s (%s)", id, term.Name)
		return true
	}
	v.Stats["go_valid"]++
	return true
}

// ValidateAll audits the substrate table, the kit overrides, the
// enzyme annotations, and the GO fallback table. Network checks for
// PubChem CIDs and KEGG KOs run only when a NetChecker is configured.
func (v *Validator) ValidateAll(ctx context.Context) {
	for _, s := range mappings.Substrates {
		v.Stats["substrates_total"]++
		if s.ChEBI != "" {
			v.ValidateChEBI(s.ChEBI)
		} else {
			v.Stats["substrates_no_chebi"]++
		}
		if s.PubChem == "" {
			v.Stats["substrates_no_pubchem"]++
		} else if v.Net != nil {
			v.checkPubChem(ctx, s.PubChem)
		}
	}

	for _, overrides := range mappings.KitOverrides {
		for _, ov := range overrides {
			if ov.ChEBI != "" {
				v.ValidateChEBI(ov.ChEBI)
			}
			if ov.EC != "" {
				v.ValidateEC(ov.EC)
			}
		}
	}

	for _, ann := range mappings.Annotations {
		v.Stats["enzymes_total"]++
		if ann.EC != "" {
			v.ValidateEC(ann.EC)
		} else {
			v.Stats["enzymes_no_ec"]++
		}
		if len(ann.GOTerms) == 0 {
			v.Stats["enzymes_no_go"]++
		}
		for _, id := range ann.GOTerms {
			v.ValidateGO(id)
		}
		if ann.KeggKO == "" {
			v.Stats["enzymes_no_kegg"]++
		} else if v.Net != nil {
			v.checkKeggKO(ctx, ann.KeggKO)
		}
	}

	for _, term := range mappings.GOFallback {
		v.ValidateGO(term.ID)
	}
}

func (v *Validator) checkPubChem(ctx context.Context, cid string) {
	ok, err := v.Net.PubChemCID(ctx, cid)
	switch {
	case err != nil:
		v.errorf("PubChem API error for %s: %v", cid, err)
	case !ok:
		v.errorf("PubChem CID not found: %s", cid)
	default:
		v.Stats["pubchem_valid"]++
	}
}

func (v *Validator) checkKeggKO(ctx context.Context, ko string) {
	ok, err := v.Net.KeggKO(ctx, ko)
	switch {
	case err != nil:
		v.errorf("KEGG API error for %s: %v", ko, err)
	case !ok:
		v.errorf("KEGG KO not found: %s", ko)
	default:
		v.Stats["kegg_valid"]++
	}
}

const (
	pubchemBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	keggBaseURL    = "https://rest.kegg.jp"
	netTimeout     = 5 * time.Second
	netPace        = 200 * time.Millisecond
)

// NetChecker verifies identifiers that have no local snapshot, against
// the PubChem and KEGG REST endpoints. Requests are paced to stay
// within the public rate limits.
type NetChecker struct {
	http    *http.Client
	pubchem string
	kegg    string
	pace    time.Duration
}

// NewNetChecker returns a checker against the public endpoints. A
// non-nil transport replaces the default one.
func NewNetChecker(transport http.RoundTripper) *NetChecker {
	hc := &http.Client{Timeout: netTimeout}
	if transport != nil {
		hc.Transport = transport
	}
	return &NetChecker{http: hc, pubchem: pubchemBaseURL, kegg: keggBaseURL, pace: netPace}
}

func (n *NetChecker) head(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := n.http.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	if n.pace > 0 {
		time.Sleep(n.pace)
	}
	return resp.StatusCode == http.StatusOK, nil
}

// PubChemCID reports whether a compound id resolves.
func (n *NetChecker) PubChemCID(ctx context.Context, cid string) (bool, error) {
	return n.head(ctx, fmt.Sprintf("%s/compound/cid/%s/description/JSON", n.pubchem, cid))
}

// KeggKO reports whether a KEGG orthology id resolves.
func (n *NetChecker) KeggKO(ctx context.Context, ko string) (bool, error) {
	return n.head(ctx, fmt.Sprintf("%s/get/%s", n.kegg, ko))
}
