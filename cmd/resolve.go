package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strainkit/assaymeta/internal/config"
	"github.com/strainkit/assaymeta/internal/enzymedb"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <enzyme name>",
	Short: "Resolve an enzyme name to an EC number via the snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := enzymedb.LoadCache(cfg.EnzymeCache)
	if err != nil {
		return err
	}

	name := args[0]
	out := cmd.OutOrStdout()
	matcher := enzymedb.NewMatcher(db)

	if hit := matcher.MatchWithSubstrate(name); hit != nil {
		fmt.Fprintf(out, "exact match: EC %s\n", hit.EC)
		fmt.Fprintf(out, "  matched name: %s (%s)\n", hit.MatchedName, hit.Kind)
		if hit.Substrate != "" {
			fmt.Fprintf(out, "  substrate context: %s\n", hit.Substrate)
		}
		if entry := db.Entry(hit.EC); entry != nil {
			fmt.Fprintf(out, "  primary name: %s\n", entry.PrimaryName)
		}
		return nil
	}

	if family := enzymedb.FamilyEC(name); family != "" {
		fmt.Fprintf(out, "family match: EC %s\n", family)
		return nil
	}

	fmt.Fprintf(out, "unmapped: %s\n", name)
	return nil
}
