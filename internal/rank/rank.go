// Package rank orders a node's candidate neighbors by color
// concordance with the walk's current color start vector, so the DFS
// engine visits the most color-consistent branch first.
package rank

import (
	"sort"

	"github.com/wtsang/ccdbgtraverse/internal/colorset"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
)

// Candidate is one ranked neighbor.
type Candidate struct {
	ID   uint32
	Rate float64
}

// Lookup resolves a unitig id to its record. *graph.Graph's Unitig
// method satisfies it directly; Neighbors returns any lookup error to
// its caller.
type Lookup func(id uint32) (*graph.Unitig, error)

// Neighbors scores every id in ids against csv using EqualBitRate,
// drops zero-rate neighbors, and returns the survivors sorted by
// descending rate. Ties are broken by ascending id, which is a
// deliberate deviation from the reference engine's adjacency-order
// tiebreak — see DESIGN.md — chosen so ranking is deterministic
// independent of façade iteration order.
func Neighbors(csv colorset.Set, lookup Lookup, ids []uint32) ([]Candidate, error) {
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		u, err := lookup(id)
		if err != nil {
			return nil, err
		}
		rate := colorset.EqualBitRate(csv, u.HeadColors, u.TailColors)
		if rate <= 0 {
			continue
		}
		out = append(out, Candidate{ID: id, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate > out[j].Rate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
