// Package metrics declares the Prometheus instrumentation for a
// traversal run. Counters are opt-in: nothing in this package panics
// or blocks if the caller never starts an HTTP server to scrape them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StartNodesVisited counts unitigs that produced at least one
	// committed contig.
	StartNodesVisited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ccdbg_start_nodes_visited_total",
		Help: "Unitigs that served as a DFS start node and completed at least one emission.",
	})

	// BranchesPruned counts abandoned work by reason: "color" for DFS
	// branches abandoned because the color start vector went empty,
	// "low_entropy" for contigs dropped by the runner's entropy filter.
	BranchesPruned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ccdbg_branches_pruned_total",
		Help: "DFS branches abandoned, by reason.",
	}, []string{"reason"})

	// ContigsEmitted counts contigs actually written to the FASTA
	// stream (post set-cover commit, post entropy filter).
	ContigsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ccdbg_contigs_emitted_total",
		Help: "Contigs written to the output FASTA stream.",
	})

	// ComponentsDiscovered is a gauge set once per run after union-find
	// finishes.
	ComponentsDiscovered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ccdbg_components_discovered",
		Help: "Weakly-connected components found in the input graph for the current run.",
	})

	// OuterLoopDuration times one full c := max_paths downTo 1 pass.
	OuterLoopDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ccdbg_outer_loop_duration_seconds",
		Help:    "Wall time of the full outer merge loop.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)
