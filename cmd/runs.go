package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/strainkit/assaymeta/internal/config"
	"github.com/strainkit/assaymeta/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent build and validation runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "maximum runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	ctx := cmd.Context()
	ledger, err := runlog.Open(ctx, cfg.RunDB)
	if err != nil {
		return err
	}
	defer ledger.Close()

	runs, err := ledger.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSTARTED\tTOOK\tSTRAINS\tWELLS\tERRORS\tWARNINGS\tOK")
	for _, r := range runs {
		ok := "yes"
		if !r.Success {
			ok = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.ID, r.Kind,
			r.StartedAt.Local().Format(time.DateTime),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond),
			r.Strains, r.Wells, r.Errors, r.Warnings, ok)
	}
	return w.Flush()
}
