// Package graph defines the read-only façade a caller implements over
// their own built colored compacted de Bruijn graph, plus the dense
// integer id space the traversal engine runs against.
package graph

import (
	"errors"
	"fmt"

	"github.com/wtsang/ccdbgtraverse/internal/colorset"
)

// ErrNotInitialized is returned by any operation that requires ids to
// have been assigned via AssignIDs first.
var ErrNotInitialized = errors.New("graph: ids not initialized")

// ErrInvariantViolation marks a structural defect in the input graph
// that the engine cannot safely work around: a missing reciprocal
// neighbor relation, a duplicate or out-of-range id, or a color vector
// whose length disagrees with the sample count.
var ErrInvariantViolation = errors.New("graph: invariant violation")

// Direction names which side of a unitig a walk is currently facing.
type Direction uint8

const (
	// Forward faces the unitig's tail (its successors).
	Forward Direction = iota
	// Backward faces the unitig's head (its predecessors).
	Backward
)

// Opposite flips a direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Unitig is one maximal non-branching node of the compacted graph, as
// seen through the façade. IDs are dense and 1-based; id 0 is never
// assigned to a real unitig.
type Unitig struct {
	ID       uint32
	Sequence string
	Strand   bool // true = forward strand, false = reverse

	Predecessors []uint32
	Successors   []uint32

	HeadColors colorset.Set
	TailColors colorset.Set
}

// Degree is the unitig's total predecessor+successor count, used by
// the Y-stem start-node guard.
func (u *Unitig) Degree() int {
	return len(u.Predecessors) + len(u.Successors)
}

// Facade is the read-only adapter a caller implements over their own
// CCDBG. The engine never mutates the graph through this interface.
// Unitigs must be returned in a fixed order across calls for a given
// build — the traversal's determinism guarantee depends on it.
type Facade interface {
	// NumColors is the sample count C that every color vector is sized
	// against.
	NumColors() int

	// Unitigs returns every unitig in the graph, in a stable,
	// caller-fixed order.
	Unitigs() []*Unitig
}

// Graph wraps a Facade with assigned dense ids and validated
// invariants. It is the type every other package in this module
// operates against.
type Graph struct {
	facade Facade
	byID   map[uint32]*Unitig
	order  []uint32
}

// AssignIDs walks f.Unitigs() in façade order and validates
// the invariants the traversal engine depends on:
//   - ids are unique and already dense in [1, N] as provided by the
//     façade (the façade owns id assignment; this only validates it)
//   - every predecessor/successor id resolves to a unitig that in turn
//     lists the origin id back, i.e. adjacency is reciprocal
//   - every color vector's length matches f.NumColors()
//
// Any violation returns ErrInvariantViolation wrapped with detail.
func AssignIDs(f Facade) (*Graph, error) {
	units := f.Unitigs()
	n := len(units)
	byID := make(map[uint32]*Unitig, n)
	order := make([]uint32, 0, n)
	seen := make(map[uint32]bool, n)

	for _, u := range units {
		if u.ID == 0 || int(u.ID) > n {
			return nil, fmt.Errorf("%w: id %d outside dense range [1,%d]", ErrInvariantViolation, u.ID, n)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvariantViolation, u.ID)
		}
		seen[u.ID] = true
		if u.HeadColors.Len() != f.NumColors() || u.TailColors.Len() != f.NumColors() {
			return nil, fmt.Errorf("%w: unitig %d color vector length mismatch", ErrInvariantViolation, u.ID)
		}
		byID[u.ID] = u
		order = append(order, u.ID)
	}

	for _, u := range units {
		for _, p := range u.Predecessors {
			neighbor, ok := byID[p]
			if !ok {
				return nil, fmt.Errorf("%w: unitig %d predecessor %d does not exist", ErrInvariantViolation, u.ID, p)
			}
			if !containsID(neighbor.Successors, u.ID) && !containsID(neighbor.Predecessors, u.ID) {
				return nil, fmt.Errorf("%w: unitig %d predecessor %d has no reciprocal edge", ErrInvariantViolation, u.ID, p)
			}
		}
		for _, s := range u.Successors {
			neighbor, ok := byID[s]
			if !ok {
				return nil, fmt.Errorf("%w: unitig %d successor %d does not exist", ErrInvariantViolation, u.ID, s)
			}
			if !containsID(neighbor.Successors, u.ID) && !containsID(neighbor.Predecessors, u.ID) {
				return nil, fmt.Errorf("%w: unitig %d successor %d has no reciprocal edge", ErrInvariantViolation, u.ID, s)
			}
		}
	}

	return &Graph{facade: f, byID: byID, order: order}, nil
}

func containsID(ids []uint32, target uint32) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// N returns the number of unitigs.
func (g *Graph) N() int { return len(g.order) }

// NumColors returns the sample count.
func (g *Graph) NumColors() int { return g.facade.NumColors() }

// Order returns unitig ids in façade (construction) order.
func (g *Graph) Order() []uint32 { return g.order }

// Unitig looks up a unitig by id. The caller must have validated the
// id came from this graph; a zero or unknown id is a programmer error,
// surfaced as ErrNotInitialized.
func (g *Graph) Unitig(id uint32) (*Unitig, error) {
	u, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: unitig %d", ErrNotInitialized, id)
	}
	return u, nil
}

// WhereToGo returns GO_FORWARD if src appears among u's predecessors
// (so the walk continues into u's successors), GO_BACKWARD otherwise.
// src is the unitig the walk just arrived from.
func WhereToGo(u *Unitig, src uint32) (Direction, error) {
	if containsID(u.Predecessors, src) {
		return Forward, nil
	}
	if containsID(u.Successors, src) {
		return Backward, nil
	}
	return Forward, fmt.Errorf("%w: %d is not a neighbor of %d", ErrInvariantViolation, src, u.ID)
}

// WhereFrom is WhereToGo's complement: it classifies which side of u
// the edge to src attaches on, from u's own perspective as the node
// being entered. src among u's predecessors means u is entered from
// its backward side.
func WhereFrom(u *Unitig, src uint32) (Direction, error) {
	if containsID(u.Predecessors, src) {
		return Backward, nil
	}
	if containsID(u.Successors, src) {
		return Forward, nil
	}
	return Forward, fmt.Errorf("%w: %d is not a neighbor of %d", ErrInvariantViolation, src, u.ID)
}

// Neighbors returns the ids on the given side of u.
func Neighbors(u *Unitig, dir Direction) []uint32 {
	if dir == Forward {
		return u.Successors
	}
	return u.Predecessors
}
