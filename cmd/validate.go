package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/strainkit/assaymeta/internal/config"
	"github.com/strainkit/assaymeta/internal/ontology"
	"github.com/strainkit/assaymeta/internal/runlog"
)

// errValidationFailed signals a completed run that found errors; the
// command exits non-zero without re-printing the findings.
var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate curated mappings against ontology snapshots",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("ontology-dir", "", "directory with chebi/go/ec node TSV snapshots")
	validateCmd.Flags().Bool("network", false, "also verify PubChem CIDs and KEGG KOs online")
	validateCmd.Flags().Bool("watch", false, "re-run validation when snapshot files change")
	validateCmd.Flags().StringP("output", "o", "validation_report.json", "report path")

	_ = viper.BindPFlag("ontology_dir", validateCmd.Flags().Lookup("ontology-dir"))
	_ = viper.BindPFlag("network", validateCmd.Flags().Lookup("network"))

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	watch, _ := cmd.Flags().GetBool("watch")
	reportPath, _ := cmd.Flags().GetString("output")

	ctx := cmd.Context()
	err = validateOnce(ctx, cfg, log, reportPath)
	if !watch {
		if errors.Is(err, errValidationFailed) {
			cmd.SilenceUsage = true
		}
		return err
	}

	if err != nil && !errors.Is(err, errValidationFailed) {
		return err
	}

	watcher, err := ontology.NewWatcher(cfg.OntologyDir)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()
	log.Info("watching ontology snapshots", zap.String("dir", cfg.OntologyDir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case file, ok := <-watcher.Changes:
			if !ok {
				return nil
			}
			log.Info("snapshot changed, re-validating", zap.String("file", filepath.Base(file)))
			if err := validateOnce(ctx, cfg, log, reportPath); err != nil && !errors.Is(err, errValidationFailed) {
				return err
			}
		}
	}
}

func validateOnce(ctx context.Context, cfg config.Config, log *zap.Logger, reportPath string) error {
	started := time.Now()

	v, err := ontology.NewValidator(cfg.OntologyDir, log)
	if err != nil {
		return err
	}
	if cfg.Network {
		v.Net = ontology.NewNetChecker(nil)
	}

	v.ValidateAll(ctx)

	report := v.Report()
	report.Snapshots, err = ontology.TrackSnapshots(cfg.OntologyDir)
	if err != nil {
		log.Warn("could not hash snapshots", zap.Error(err))
	}

	report.Print(rootCmd.OutOrStdout())
	if err := report.Save(reportPath); err != nil {
		return err
	}
	log.Info("report written", zap.String("path", reportPath))

	recordRun(ctx, cfg.RunDB, log, runlog.Run{
		Kind:       runlog.KindValidate,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Errors:     report.Summary.TotalErrors,
		Warnings:   report.Summary.TotalWarnings,
		Success:    report.Success(),
	})

	if !report.Success() {
		return errValidationFailed
	}
	return nil
}
