package assay

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/strainkit/assaymeta/internal/corpus"
	"github.com/strainkit/assaymeta/internal/mappings"
)

// Builder turns a corpus scan into the full metadata document: kit
// list, classified wells, enzyme bundles, metabolite records, and the
// summary statistics.
type Builder struct {
	Classifier *Classifier
	Log        *zap.Logger
}

func (b *Builder) logger() *zap.Logger {
	if b.Log == nil {
		return zap.NewNop()
	}
	return b.Log
}

// Build assembles metadata from a corpus scan. The output is
// deterministic for a fixed scan: kits sorted by occurrence (ties by
// name), set-valued fields sorted, wells keyed by code.
func (b *Builder) Build(ctx context.Context, res *corpus.Result) *Metadata {
	log := b.logger()

	kits := b.buildKits(res)
	log.Info("built kit metadata", zap.Int("kits", len(kits)))

	wells := b.buildWells(ctx, res)
	log.Info("built well metadata", zap.Int("wells", len(wells)))

	enzymes := b.buildEnzymes(ctx, res)
	log.Info("built enzyme metadata", zap.Int("enzymes", len(enzymes)))

	metabolites := b.buildMetabolites(res)
	log.Info("built metabolite metadata", zap.Int("metabolites", len(metabolites)))

	totalOccurrences := 0
	for _, kit := range kits {
		totalOccurrences += kit.OccurrenceCount
	}

	return &Metadata{
		APIKits:     kits,
		Wells:       wells,
		Enzymes:     enzymes,
		Metabolites: metabolites,
		Statistics: map[string]int{
			"total_strains":           res.TotalStrains,
			"total_api_kits":          len(kits),
			"total_unique_wells":      len(wells),
			"total_unique_enzymes":    len(enzymes),
			"total_unique_metabolites": len(metabolites),
			"total_kit_occurrences":   totalOccurrences,
		},
	}
}

func (b *Builder) buildKits(res *corpus.Result) []KitMetadata {
	kits := make([]KitMetadata, 0, len(res.Kits))
	for name, obs := range res.Kits {
		info := mappings.KitRegistry(name)
		kits = append(kits, KitMetadata{
			KitName:         name,
			Description:     info.Description,
			Category:        info.Category,
			WellCount:       obs.WellCount,
			Wells:           obs.Wells,
			OccurrenceCount: res.KitOccurrences[name],
		})
	}
	sort.Slice(kits, func(i, j int) bool {
		if kits[i].OccurrenceCount != kits[j].OccurrenceCount {
			return kits[i].OccurrenceCount > kits[j].OccurrenceCount
		}
		return kits[i].KitName < kits[j].KitName
	})
	return kits
}

// buildWells classifies every observed well code once. A code used by
// a single kit is classified in that kit's context so kit-specific
// overrides apply; codes shared across kits fall back to the global
// tables.
func (b *Builder) buildWells(ctx context.Context, res *corpus.Result) map[string]Well {
	wells := make(map[string]Well, len(res.WellCodes()))
	for _, code := range res.WellCodes() {
		usedIn := res.WellKits(code)
		kit := ""
		if len(usedIn) == 1 {
			kit = usedIn[0]
		}
		w := b.Classifier.Classify(ctx, code, kit)
		w.UsedInKits = usedIn
		wells[code] = w
	}
	return wells
}

// KitWells classifies a kit's panel in that kit's context, for the
// per-kit output files.
func (b *Builder) KitWells(ctx context.Context, res *corpus.Result, kitName string) map[string]Well {
	obs, ok := res.Kits[kitName]
	if !ok {
		return nil
	}
	wells := make(map[string]Well, len(obs.Wells))
	for _, code := range obs.Wells {
		w := b.Classifier.Classify(ctx, code, kitName)
		w.UsedInKits = res.WellKits(code)
		wells[code] = w
	}
	return wells
}

func (b *Builder) buildEnzymes(ctx context.Context, res *corpus.Result) map[string]EnzymeIDs {
	enzymes := make(map[string]EnzymeIDs, len(res.Enzymes))
	for name, obs := range res.Enzymes {
		enzymes[name] = *b.Classifier.EnzymeInfo(ctx, name, obs.EC)
	}
	return enzymes
}

func (b *Builder) buildMetabolites(res *corpus.Result) map[string]MetaboliteIDs {
	metabolites := make(map[string]MetaboliteIDs, len(res.Metabolites))
	for name, obs := range res.Metabolites {
		chebi, pubchem := mappings.MetaboliteInfo(name, obs.ChEBIID)
		metabolites[name] = MetaboliteIDs{
			MetaboliteName:       name,
			ChEBIID:              chebi,
			PubChemCID:           pubchem,
			UtilizationTestTypes: sortedKeys(obs.UtilizationTestTypes),
			ProductionValues:     sortedKeys(obs.ProductionValues),
			TestNames:            sortedKeys(obs.TestNames),
			UtilizationCount:     obs.UtilizationCount,
			ProductionCount:      obs.ProductionCount,
			TestCount:            obs.TestCount,
		}
	}
	return metabolites
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
