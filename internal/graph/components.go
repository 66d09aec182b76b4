package graph

import "github.com/wtsang/ccdbgtraverse/internal/unionfind"

// ConnectedComponents unions every unitig with both its predecessors
// and its successors. Unioning only one side would under-merge:
// adjacency on a strand-agnostic graph can be recorded asymmetrically
// (u lists v as a successor without v listing u back as a
// predecessor, if v's own orientation points the other way), so both
// lists must be walked to find the true weakly-connected components.
func ConnectedComponents(g *Graph) map[uint32][]uint32 {
	uf := unionfind.New(g.N())
	for _, id := range g.order {
		u := g.byID[id]
		for _, p := range u.Predecessors {
			uf.Union(id, p)
		}
		for _, s := range u.Successors {
			uf.Union(id, s)
		}
	}
	return uf.Components()
}

// CountConnectedComponents is the cheap, read-only sanity check
// exposed to operators via the stats subcommand.
func CountConnectedComponents(g *Graph) int {
	return len(ConnectedComponents(g))
}
