// Package memgraph is an in-memory graph.Facade implementation used by
// tests and by the `run` and `stats` commands, which materialize a
// small hand-built graph from a textual edge-list file instead of a
// real Bifrost-built CCDBG.
package memgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wtsang/ccdbgtraverse/internal/colorset"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
)

// Memgraph is a Facade backed by a plain slice, in the order unitigs
// were added — giving tests and the fixture command the determinism
// the engine's façade contract requires.
type Memgraph struct {
	numColors int
	unitigs   []*graph.Unitig
}

// New returns an empty Memgraph sized for numColors samples.
func New(numColors int) *Memgraph {
	return &Memgraph{numColors: numColors}
}

func (m *Memgraph) NumColors() int { return m.numColors }

func (m *Memgraph) Unitigs() []*graph.Unitig { return m.unitigs }

// AddUnitig appends a new unitig with the next dense id and returns
// it so the caller can wire up predecessor/successor ids afterward.
func (m *Memgraph) AddUnitig(sequence string, strand bool, headOn, tailOn []int) *graph.Unitig {
	u := &graph.Unitig{
		ID:         uint32(len(m.unitigs) + 1),
		Sequence:   sequence,
		Strand:     strand,
		HeadColors: colorset.FromBits(m.numColors, headOn),
		TailColors: colorset.FromBits(m.numColors, tailOn),
	}
	m.unitigs = append(m.unitigs, u)
	return u
}

// Link records a reciprocal edge: from's tail/successor side connects
// to to's head/predecessor side.
func (m *Memgraph) Link(from, to *graph.Unitig) {
	from.Successors = append(from.Successors, to.ID)
	to.Predecessors = append(to.Predecessors, from.ID)
}

// Parse reads the fixture text format used by `run` and `stats`:
//
//	colors <C>
//	unitig <id> <strand:+|-> <headColors csv> <tailColors csv> <sequence>
//	edge <fromID> <toID>
//
// Blank lines and lines starting with # are ignored. IDs in the file
// must already be dense in [1, N] and in the order they should be
// assigned, matching how a real façade's Unitigs() would present
// construction order.
func Parse(r io.Reader) (*Memgraph, error) {
	scanner := bufio.NewScanner(r)
	var m *Memgraph
	byID := make(map[uint32]*graph.Unitig)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "colors":
			if m != nil {
				return nil, fmt.Errorf("memgraph: line %d: duplicate colors directive", lineNo)
			}
			c, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			m = New(c)
		case "unitig":
			if m == nil {
				return nil, fmt.Errorf("memgraph: line %d: unitig before colors directive", lineNo)
			}
			if len(fields) != 6 {
				return nil, fmt.Errorf("memgraph: line %d: expected 6 fields, got %d", lineNo, len(fields))
			}
			id, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			strand := fields[2] == "+"
			head, err := parseColorList(fields[3])
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			tail, err := parseColorList(fields[4])
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			u := m.AddUnitig(fields[5], strand, head, tail)
			if uint32(id) != u.ID {
				return nil, fmt.Errorf("memgraph: line %d: unitig id %d must equal dense position %d", lineNo, id, u.ID)
			}
			byID[u.ID] = u
		case "edge":
			if len(fields) != 3 {
				return nil, fmt.Errorf("memgraph: line %d: expected 3 fields, got %d", lineNo, len(fields))
			}
			fromID, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			toID, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("memgraph: line %d: %w", lineNo, err)
			}
			from, ok := byID[uint32(fromID)]
			if !ok {
				return nil, fmt.Errorf("memgraph: line %d: unknown unitig %d", lineNo, fromID)
			}
			to, ok := byID[uint32(toID)]
			if !ok {
				return nil, fmt.Errorf("memgraph: line %d: unknown unitig %d", lineNo, toID)
			}
			m.Link(from, to)
		default:
			return nil, fmt.Errorf("memgraph: line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("memgraph: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("memgraph: missing colors directive")
	}
	return m, nil
}

func parseColorList(field string) ([]int, error) {
	if field == "-" {
		return nil, nil
	}
	parts := strings.Split(field, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
