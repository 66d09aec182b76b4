// Package runner drives the outer merge loop: the descending-c
// schedule over every unitig that repeatedly calls into the DFS
// engine and writes whatever bundles come back.
package runner

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wtsang/ccdbgtraverse/internal/dfsengine"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
	"github.com/wtsang/ccdbgtraverse/internal/metrics"
	"github.com/wtsang/ccdbgtraverse/internal/seqtools"
	"github.com/wtsang/ccdbgtraverse/internal/traceback"
)

// Options configures one traversal run.
type Options struct {
	K                 int
	MaxPaths          int
	MinEntropy        float64 // 0 disables the low-complexity filter
	Verbose           bool
	RunID             string
	SetCoverThreshold int         // 0 means use the engine's default of 1
	ComponentFn       func(n int) // optional progress callback, components discovered
}

// Stats summarizes a completed run, useful for the CSV summary header
// and for tests.
type Stats struct {
	ContigsWritten  int
	ContigsFiltered int
	ComponentCount  int
}

// Run executes the full outer merge loop against g, writing committed
// contigs through w. For c := opt.MaxPaths downTo 1, every unitig in
// g's fixed order gets one dfs_init call at ceiling c; any bundle with
// success is written immediately, then the seen-only cleaner runs
// before moving to the next unitig.
func Run(g *graph.Graph, w *traceback.Writer, opt Options, log *logrus.Logger) (Stats, error) {
	if opt.K < 3 {
		return Stats{}, fmt.Errorf("runner: k must be >= 3, got %d", opt.K)
	}
	if opt.MaxPaths < 1 {
		return Stats{}, fmt.Errorf("runner: max_paths must be >= 1, got %d", opt.MaxPaths)
	}

	stats := Stats{ComponentCount: graph.CountConnectedComponents(g)}
	metrics.ComponentsDiscovered.Set(float64(stats.ComponentCount))
	if opt.ComponentFn != nil {
		opt.ComponentFn(stats.ComponentCount)
	}

	engine := dfsengine.New(g, opt.K)
	if opt.SetCoverThreshold > 0 {
		engine.Controller().CommitThreshold = opt.SetCoverThreshold
	}
	order := g.Order()
	loopStart := time.Now()

	for c := opt.MaxPaths; c >= 1; c-- {
		for _, id := range order {
			bundle, err := engine.Init(id, c)
			if err != nil {
				return stats, err
			}
			if !bundle.Success {
				engine.State().CleanSeen()
				continue
			}
			metrics.StartNodesVisited.Inc()
			for _, path := range bundle.Paths {
				if opt.MinEntropy > 0 {
					seq, err := path.Stitch(opt.K)
					if err != nil {
						return stats, err
					}
					if seqtools.Entropy(seq) < opt.MinEntropy {
						stats.ContigsFiltered++
						metrics.BranchesPruned.WithLabelValues("low_entropy").Inc()
						if opt.Verbose {
							log.WithField("start_unitig", bundle.StartNodeID).Debug("contig dropped by entropy filter")
						}
						continue
					}
				}
				if err := w.Write(path, opt.K, bundle.StartNodeID); err != nil {
					return stats, err
				}
				metrics.ContigsEmitted.Inc()
				stats.ContigsWritten++
			}
			if opt.Verbose {
				log.WithFields(logrus.Fields{
					"start_unitig": bundle.StartNodeID,
					"paths":        len(bundle.Paths),
					"ceiling":      c,
				}).Debug("start node produced contigs")
			}
			engine.State().CleanSeen()
		}
	}
	metrics.OuterLoopDuration.Observe(time.Since(loopStart).Seconds())

	if err := w.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}
