// Package cli holds the Run functions cmd/ binds to cobra commands,
// the same split the teacher repo uses to keep cmd/ as thin flag
// wiring and push the actual work into an internal package.
package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wtsang/ccdbgtraverse/config"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
	"github.com/wtsang/ccdbgtraverse/internal/memgraph"
	"github.com/wtsang/ccdbgtraverse/internal/runner"
	"github.com/wtsang/ccdbgtraverse/internal/traceback"
)

var log = logrus.New()

// TraverseCmd is bound to `ccdbgtraverse run`. It loads a fixture
// graph, runs the outer merge loop, and writes FASTA (plus an
// optional CSV summary) to the requested outputs.
func TraverseCmd(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	in, _ := flags.GetString("in")
	if in == "" {
		log.Fatal("--in is required")
	}

	k, _ := flags.GetInt("k")
	maxPaths, _ := flags.GetInt("max-paths")
	verbose, _ := flags.GetBool("verbose")
	minEntropy, _ := flags.GetFloat64("min-entropy")
	setCoverThreshold, _ := flags.GetInt("set-cover-threshold")
	outPath, _ := flags.GetString("out")
	summaryPath, _ := flags.GetString("summary")
	watchConfig, _ := flags.GetBool("watch-config")

	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load settings")
	}
	metricsAddr := viper.GetString("metrics.addr")
	if metricsAddr == "" {
		metricsAddr = cfg.Metrics.Addr
	}

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if watchConfig {
		if settingsPath := viper.GetString("settings"); settingsPath != "" {
			watcher, err := config.Watch(settingsPath, func(c config.Config) {
				log.WithFields(logrus.Fields{
					"settings":            settingsPath,
					"k":                   c.Traverse.K,
					"max_paths":           c.Traverse.MaxPaths,
					"verbose":             c.Traverse.Verbose,
					"min_entropy":         c.Traverse.MinEntropy,
					"set_cover_threshold": c.Traverse.SetCoverThreshold,
				}).Info("settings file changed, reloaded")
			})
			if err != nil {
				log.WithError(err).Warn("failed to start settings watcher")
			} else {
				defer watcher.Close()
			}
		}
	}

	runID := uuid.New().String()
	log.WithField("run_id", runID).Info("starting traversal")

	if metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
	}

	f, err := os.Open(in)
	if err != nil {
		log.WithError(err).Fatal("failed to open input graph")
	}
	defer f.Close()

	mg, err := memgraph.Parse(f)
	if err != nil {
		log.WithError(err).Fatal("failed to parse input graph")
	}

	g, err := graph.AssignIDs(mg)
	if err != nil {
		log.WithError(err).Fatal("failed to validate graph invariants")
	}

	fastaOut, err := outputWriter(outPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open contig output")
	}
	defer closeIfFile(fastaOut)

	var summaryOut *os.File
	if summaryPath != "" {
		summaryOut, err = os.Create(summaryPath)
		if err != nil {
			log.WithError(err).Fatal("failed to open summary output")
		}
		defer summaryOut.Close()
	}

	var writer *traceback.Writer
	if summaryOut != nil {
		writer = traceback.NewWriter(runID, fastaOut, summaryOut)
	} else {
		writer = traceback.NewWriter(runID, fastaOut, nil)
	}

	opt := runner.Options{
		K:                 k,
		MaxPaths:          maxPaths,
		MinEntropy:        minEntropy,
		Verbose:           verbose,
		RunID:             runID,
		SetCoverThreshold: setCoverThreshold,
	}

	stats, err := runner.Run(g, writer, opt, log)
	if err != nil {
		log.WithError(err).Fatal("traversal failed")
	}

	log.WithFields(logrus.Fields{
		"run_id":           runID,
		"contigs_written":  stats.ContigsWritten,
		"contigs_filtered": stats.ContigsFiltered,
		"components":       stats.ComponentCount,
	}).Info("traversal complete")
}

// StatsCmd is bound to `ccdbgtraverse stats`, a cheap, read-only
// sanity check that reports the graph's component count without
// running a full traversal.
func StatsCmd(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		log.Fatal("--in is required")
	}

	f, err := os.Open(in)
	if err != nil {
		log.WithError(err).Fatal("failed to open input graph")
	}
	defer f.Close()

	mg, err := memgraph.Parse(f)
	if err != nil {
		log.WithError(err).Fatal("failed to parse input graph")
	}

	g, err := graph.AssignIDs(mg)
	if err != nil {
		log.WithError(err).Fatal("failed to validate graph invariants")
	}

	fmt.Printf("unitigs: %d\n", g.N())
	fmt.Printf("components: %d\n", graph.CountConnectedComponents(g))
}

func outputWriter(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func closeIfFile(f *os.File) {
	if f != os.Stdout {
		f.Close()
	}
}
