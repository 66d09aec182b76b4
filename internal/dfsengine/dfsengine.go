// Package dfsengine is the directed depth-first traversal over the
// undirected, strand-agnostic graph: start-node selection, the Y-stem
// guard, color-vector pruning, and traceback assembly all meet here.
//
// The walk is implemented with ordinary Go recursion rather than an
// explicit frame stack. Recursion depth tracks the longest path
// through a component; callers traversing components deep enough to
// threaten the goroutine stack should raise GOMAXSTACK or run the
// outer loop in its own goroutine with debug.SetMaxStack, but ordinary
// assembly graphs stay well within the default stack.
package dfsengine

import (
	"github.com/wtsang/ccdbgtraverse/internal/colorset"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
	"github.com/wtsang/ccdbgtraverse/internal/metrics"
	"github.com/wtsang/ccdbgtraverse/internal/rank"
	"github.com/wtsang/ccdbgtraverse/internal/seqtools"
	"github.com/wtsang/ccdbgtraverse/internal/setcover"
	"github.com/wtsang/ccdbgtraverse/internal/state"
	"github.com/wtsang/ccdbgtraverse/internal/traceback"
)

// Engine holds the shared, single-writer state a sequence of dfs_init
// calls runs against: the graph, the traversal marks, and the
// set-cover controller.
type Engine struct {
	g  *graph.Graph
	st *state.Table
	sc *setcover.Controller
	k  int
}

// New builds an Engine over g with k-length k-mers. st and sc are
// created fresh and owned by the Engine.
func New(g *graph.Graph, k int) *Engine {
	return &Engine{
		g:  g,
		st: state.New(g.N()),
		sc: setcover.New(),
		k:  k,
	}
}

// State exposes the traversal-mark table, mainly for the outer loop's
// seen-only cleaner and for tests.
func (e *Engine) State() *state.Table { return e.st }

// Controller exposes the set-cover controller, mainly for CSV summary
// writers and tests.
func (e *Engine) Controller() *setcover.Controller { return e.sc }

// walkBundle is the in-progress accumulator threaded through a single
// dfs_init call and its recursive dfs_visit/dfs_case descendants.
type walkBundle struct {
	paths    []traceback.Path
	priority int
	success  bool
}

// isStartCandidate reports whether u has neighbors on exactly one
// side, or none at all (a singleton).
func isStartCandidate(u *graph.Unitig) bool {
	noPred := len(u.Predecessors) == 0
	noSucc := len(u.Successors) == 0
	return noPred != noSucc || (noPred && noSucc)
}

// yStemGuard examines the sole side of a single-sided start candidate
// and rejects it if every neighbor on that side has total degree
// exactly 1 — the stem of a Y, which would block one arm from ever
// becoming a start if marked visited here.
func yStemGuard(g *graph.Graph, u *graph.Unitig) (bool, error) {
	var side []uint32
	if len(u.Predecessors) == 0 {
		side = u.Successors
	} else {
		side = u.Predecessors
	}
	if len(side) == 0 {
		return true, nil // singleton, guard does not apply
	}
	for _, id := range side {
		n, err := g.Unitig(id)
		if err != nil {
			return false, err
		}
		if n.Degree() != 1 {
			return true, nil
		}
	}
	return false, nil
}

// Init is dfs_init: the entry point called once per unitig, per outer
// loop pass, by the runner.
func (e *Engine) Init(startID uint32, maxPaths int) (traceback.Bundle, error) {
	s, err := e.g.Unitig(startID)
	if err != nil {
		return traceback.Bundle{}, err
	}

	if e.st.Get(startID, true) == state.Visited || e.st.Get(startID, false) == state.Visited {
		return traceback.Bundle{}, nil
	}
	if !isStartCandidate(s) {
		return traceback.Bundle{}, nil
	}

	singleton := len(s.Predecessors) == 0 && len(s.Successors) == 0
	if !singleton {
		ok, err := yStemGuard(e.g, s)
		if err != nil {
			return traceback.Bundle{}, err
		}
		if !ok {
			return traceback.Bundle{}, nil
		}
	}

	e.sc.Clear()
	defer e.sc.Clear()

	if singleton {
		seq, err := seqtools.OrientationCorrected(s.Sequence, s.Strand)
		if err != nil {
			return traceback.Bundle{}, err
		}
		e.st.Set(startID, true, state.Visited)
		e.st.Set(startID, false, state.Visited)
		e.sc.AddStartNode(startID)
		path := traceback.Path{{UnitigID: startID, Sequence: seq}}
		return traceback.Bundle{StartNodeID: startID, Paths: []traceback.Path{path}, Success: true}, nil
	}

	// Exactly one side is empty (isStartCandidate guarantees this for a
	// non-singleton). dfs_init travels into the side that HAS
	// neighbors: GO_BACKWARD when only predecessors exist, else
	// GO_FORWARD.
	dir := graph.Forward
	if len(s.Predecessors) != 0 {
		dir = graph.Backward
	}

	e.st.Set(startID, dir == graph.Forward, state.Seen)

	csv := entryCSV(s, dir)

	side := graph.Neighbors(s, dir)
	candidates, err := rank.Neighbors(csv, e.g.Unitig, side)
	if err != nil {
		return traceback.Bundle{}, err
	}

	wb := &walkBundle{}
	for _, cand := range candidates {
		if wb.priority >= maxPaths {
			break
		}
		if err := e.dfsCase(s, cand.ID, csv, maxPaths, wb); err != nil {
			return traceback.Bundle{}, err
		}
	}

	if wb.success {
		e.st.Set(startID, true, state.Visited)
		e.st.Set(startID, false, state.Visited)
		e.sc.AddStartNode(startID)
	}

	return traceback.Bundle{StartNodeID: startID, Paths: wb.paths, Success: wb.success}, nil
}

// entryCSV initializes the color start vector from the k-mer at the
// entry end of s: the tail k-mer when entering forward, the head
// k-mer when entering backward.
func entryCSV(s *graph.Unitig, dir graph.Direction) colorset.Set {
	if dir == graph.Forward {
		return s.TailColors.Clone()
	}
	return s.HeadColors.Clone()
}

// dfsCase is dfs_case: it resolves the neighbor's entry side, checks
// whether that side is still undiscovered, and if so recurses into
// dfs_visit, merging a successful result back into the caller's
// bundle. This is what prunes loops and back-edges: a neighbor
// already seen or visited in the required direction is skipped
// without emitting anything.
func (e *Engine) dfsCase(current *graph.Unitig, neighborID uint32, csv colorset.Set, maxPaths int, parent *walkBundle) error {
	neighbor, err := e.g.Unitig(neighborID)
	if err != nil {
		return err
	}

	srcDir, err := graph.WhereFrom(neighbor, current.ID)
	if err != nil {
		return err
	}
	traversalDir := srcDir.Opposite()

	if e.st.Get(neighborID, traversalDir == graph.Forward) != state.Undiscovered {
		return nil
	}

	e.sc.Add(current.ID)
	child, err := e.dfsVisit(neighbor, csv.Clone(), srcDir, maxPaths)
	e.sc.Del()
	if err != nil {
		return err
	}

	if child.success {
		seq, err := seqtools.OrientationCorrected(current.Sequence, current.Strand)
		if err != nil {
			return err
		}
		for i := range child.paths {
			child.paths[i] = append(child.paths[i], traceback.PathElement{UnitigID: current.ID, Sequence: seq})
		}
		parent.paths = append(parent.paths, child.paths...)
		parent.priority += child.priority
		parent.success = true
	}

	return nil
}

// dfsVisit is dfs_visit: it flips direction, intersects the CSV, marks
// the node seen, and either terminates as a sink (emitting a path) or
// ranks the far side's neighbors and recurses.
func (e *Engine) dfsVisit(u *graph.Unitig, csv colorset.Set, srcDir graph.Direction, maxPaths int) (walkBundle, error) {
	traversalDir := srcDir.Opposite()

	uColors := u.HeadColors.Intersect(u.TailColors)
	csv.IntersectInPlace(uColors)

	e.st.Set(u.ID, traversalDir == graph.Forward, state.Seen)

	if csv.IsEmpty() {
		metrics.BranchesPruned.WithLabelValues("color").Inc()
		return walkBundle{}, nil
	}

	side := graph.Neighbors(u, traversalDir)
	alreadyVisited := e.st.Get(u.ID, traversalDir == graph.Forward) == state.Visited

	if len(side) == 0 && !alreadyVisited {
		seq, err := seqtools.OrientationCorrected(u.Sequence, u.Strand)
		if err != nil {
			return walkBundle{}, err
		}
		e.sc.Add(u.ID)
		committed := e.sc.Unify()
		e.sc.Del()
		if !committed {
			return walkBundle{}, nil
		}
		path := traceback.Path{{UnitigID: u.ID, Sequence: seq}}
		return walkBundle{paths: []traceback.Path{path}, priority: 1, success: true}, nil
	}

	candidates, err := rank.Neighbors(csv, e.g.Unitig, side)
	if err != nil {
		return walkBundle{}, err
	}

	wb := walkBundle{}
	for _, cand := range candidates {
		if wb.priority >= maxPaths {
			break
		}
		if err := e.dfsCase(u, cand.ID, csv, maxPaths, &wb); err != nil {
			return walkBundle{}, err
		}
	}

	return wb, nil
}
