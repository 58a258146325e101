package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strainkit/assaymeta/internal/config"
	"github.com/strainkit/assaymeta/internal/enzymedb"
)

var enzymedbCmd = &cobra.Command{
	Use:   "enzymedb",
	Short: "Manage the ExpASy ENZYME snapshot",
}

var enzymedbParseCmd = &cobra.Command{
	Use:   "parse <enzyme.dat>",
	Short: "Parse an ExpASy ENZYME flat file and write the cache snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnzymedbParse,
}

var enzymedbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show snapshot entry and index counts",
	Args:  cobra.NoArgs,
	RunE:  runEnzymedbInfo,
}

func init() {
	enzymedbParseCmd.Flags().StringP("output", "o", "", "snapshot path (default from config)")
	enzymedbCmd.AddCommand(enzymedbParseCmd)
	enzymedbCmd.AddCommand(enzymedbInfoCmd)
	rootCmd.AddCommand(enzymedbCmd)
}

func runEnzymedbParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cfg.EnzymeCache
	if flagOut, _ := cmd.Flags().GetString("output"); flagOut != "" {
		out = flagOut
	}

	db, err := enzymedb.ParseFile(args[0])
	if err != nil {
		return err
	}
	if err := db.SaveCache(out); err != nil {
		return err
	}

	log.Info("wrote enzyme snapshot",
		zap.String("path", out),
		zap.Int("entries", db.Entries()),
		zap.Int("indexed_names", db.IndexedNames()))
	return nil
}

func runEnzymedbInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := enzymedb.LoadCache(cfg.EnzymeCache)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "snapshot: %s\nentries: %d\nindexed names: %d\n",
		cfg.EnzymeCache, db.Entries(), db.IndexedNames())
	return nil
}
