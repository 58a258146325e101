package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/strainkit/assaymeta/internal/assay"
	"github.com/strainkit/assaymeta/internal/audit"
	"github.com/strainkit/assaymeta/internal/config"
	"github.com/strainkit/assaymeta/internal/corpus"
	"github.com/strainkit/assaymeta/internal/enzymedb"
	"github.com/strainkit/assaymeta/internal/rhea"
	"github.com/strainkit/assaymeta/internal/runlog"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build assay metadata from a BacDive strain dump",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("input", "i", "", "BacDive JSON strain dump (required)")
	buildCmd.Flags().StringP("output", "o", "", "output directory")
	buildCmd.Flags().String("audit", "", "write a JSONL classification audit stream to this file")
	buildCmd.Flags().Bool("split-kits", false, "additionally write one wells file per kit")
	buildCmd.Flags().Bool("pretty", false, "indent JSON output")
	buildCmd.Flags().Bool("network", false, "allow RHEA lookups for uncached EC numbers")
	_ = buildCmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("pretty", buildCmd.Flags().Lookup("pretty"))
	_ = viper.BindPFlag("network", buildCmd.Flags().Lookup("network"))
	_ = viper.BindPFlag("audit_file", buildCmd.Flags().Lookup("audit"))

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	input, _ := cmd.Flags().GetString("input")
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	splitKits, _ := cmd.Flags().GetBool("split-kits")

	ctx := cmd.Context()
	started := time.Now()

	var emitter *audit.Emitter
	if cfg.AuditFile != "" {
		emitter, err = audit.NewEmitter(cfg.AuditFile)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	// The enzyme snapshot is optional; without it ec_name stays empty.
	var db *enzymedb.DB
	if _, statErr := os.Stat(cfg.EnzymeCache); statErr == nil {
		db, err = enzymedb.LoadCache(cfg.EnzymeCache)
		if err != nil {
			return err
		}
		log.Info("loaded enzyme snapshot",
			zap.String("path", cfg.EnzymeCache),
			zap.Int("entries", db.Entries()))
	} else {
		log.Warn("enzyme snapshot not found, ec names will be empty",
			zap.String("path", cfg.EnzymeCache))
	}

	var lookuper rhea.Lookuper
	if cfg.Network {
		lookuper = rhea.NewClient(nil)
	}
	reactions, err := rhea.Open(cfg.RheaCache, lookuper, log)
	if err != nil {
		return err
	}

	_ = emitter.Emit(audit.Event{Timestamp: time.Now().UTC(), Kind: audit.KindBuildStart})

	res, err := corpus.ScanFile(input)
	if err != nil {
		return err
	}
	log.Info("scanned corpus",
		zap.Int("strains", res.TotalStrains),
		zap.Int("kits", len(res.Kits)),
		zap.Int("enzymes", len(res.Enzymes)))

	builder := &assay.Builder{
		Classifier: &assay.Classifier{Rhea: reactions, DB: db, Audit: emitter},
		Log:        log,
	}
	meta := builder.Build(ctx, res)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", cfg.OutputDir, err)
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "assay_metadata.json"), meta, cfg.Pretty); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "api_kits_list.json"), meta.APIKits, cfg.Pretty); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, "statistics.json"), meta.Statistics, cfg.Pretty); err != nil {
		return err
	}
	if splitKits {
		for _, kit := range meta.APIKits {
			wells := builder.KitWells(ctx, res, kit.KitName)
			name := "kit_" + kitFileName(kit.KitName) + ".json"
			if err := writeJSON(filepath.Join(cfg.OutputDir, name), wells, cfg.Pretty); err != nil {
				return err
			}
		}
	}

	_ = emitter.Emit(audit.Event{Timestamp: time.Now().UTC(), Kind: audit.KindBuildDone})

	recordRun(ctx, cfg.RunDB, log, runlog.Run{
		Kind:       runlog.KindBuild,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Strains:    res.TotalStrains,
		Wells:      len(meta.Wells),
		Enzymes:    len(meta.Enzymes),
		Success:    true,
	})

	log.Info("metadata written",
		zap.String("dir", cfg.OutputDir),
		zap.Int("kits", len(meta.APIKits)),
		zap.Int("wells", len(meta.Wells)),
		zap.Duration("took", time.Since(started)))
	return nil
}

func writeJSON(path string, v any, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// kitFileName flattens a kit name into a filesystem-safe token.
func kitFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "_")
}

// recordRun appends to the ledger. Ledger trouble never fails the
// command that did the actual work.
func recordRun(ctx context.Context, dbPath string, log *zap.Logger, r runlog.Run) {
	ledger, err := runlog.Open(ctx, dbPath)
	if err != nil {
		log.Warn("could not open run ledger", zap.Error(err))
		return
	}
	defer ledger.Close()
	if _, err := ledger.Record(ctx, r); err != nil {
		log.Warn("could not record run", zap.Error(err))
	}
}
