package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strainkit/assaymeta/internal/mappings"
)

var kitsCmd = &cobra.Command{
	Use:   "kits",
	Short: "List the registered API kit families",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tDESCRIPTION")
		for _, kit := range mappings.RegisteredKits() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", kit.Name, kit.Category, kit.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(kitsCmd)
}
