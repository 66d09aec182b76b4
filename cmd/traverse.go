package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wtsang/ccdbgtraverse/internal/cli"
)

// runCmd performs a full traversal of the graph described by --in,
// writing committed contigs to --out.
var runCmd = &cobra.Command{
	Use:                        "run",
	Short:                      "Traverse a colored compacted de Bruijn graph and emit contigs",
	Run:                        cli.TraverseCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Enumerate a bounded number of color-consistent, set-cover-guided
contigs from a colored compacted de Bruijn graph, writing FASTA to
--out and, optionally, a CSV run summary to --summary.`,
	Example: `  ccdbgtraverse run --in graph.txt --out contigs.fa -k 31 --max-paths 2`,
}

func init() {
	runCmd.Flags().StringP("in", "i", "", "input graph fixture file")
	runCmd.Flags().StringP("out", "o", "-", "output FASTA path ('-' for stdout)")
	runCmd.Flags().String("summary", "", "optional CSV run summary path")
	runCmd.Flags().IntP("k", "k", 31, "de Bruijn k-mer length")
	runCmd.Flags().Int("max-paths", 1, "maximum distinct paths enumerated per start node")
	runCmd.Flags().BoolP("verbose", "v", false, "enable diagnostic logging")
	runCmd.Flags().Float64("min-entropy", 0, "drop committed contigs below this normalized entropy (0 disables)")
	runCmd.Flags().Int("set-cover-threshold", 1, "minimum previously-uncovered ids a path must contribute to commit")
	runCmd.Flags().String("metrics-addr", "", "optional address to serve Prometheus /metrics on")
	runCmd.Flags().Bool("watch-config", false, "reload --settings on change and log the new values (long-running traversals only)")

	// metrics.addr is the one traversal setting layered through the
	// settings file (via config.Config.Metrics), since it is the only
	// flag here that plausibly wants an operator-wide default rather
	// than a per-invocation value.
	viper.BindPFlag("metrics.addr", runCmd.Flags().Lookup("metrics-addr"))

	rootCmd.AddCommand(runCmd)
}
