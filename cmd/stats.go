package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wtsang/ccdbgtraverse/internal/cli"
)

// statsCmd reports the graph's unitig and component counts without
// running a full traversal, for operators sanity-checking a graph
// before committing to a real run.
var statsCmd = &cobra.Command{
	Use:                        "stats",
	Short:                      "Report unitig and connected-component counts for a graph",
	Run:                        cli.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"count-components"},
}

func init() {
	statsCmd.Flags().StringP("in", "i", "", "input graph fixture file")

	rootCmd.AddCommand(statsCmd)
}
