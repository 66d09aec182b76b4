package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsang/ccdbgtraverse/internal/graph"
	"github.com/wtsang/ccdbgtraverse/internal/memgraph"
	"github.com/wtsang/ccdbgtraverse/internal/traceback"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytesDiscard{})
	return l
}

type bytesDiscard struct{}

func (bytesDiscard) Write(p []byte) (int, error) { return len(p), nil }

// Scenario 6: two disjoint components. count_components == 2 and the
// union of ids touched by emitted contigs spans both.
func TestRunTwoDisjointComponentsBothGetEmitted(t *testing.T) {
	mg := memgraph.New(1)
	// three-node chains in each component: a 2-node edge would trip
	// the Y-stem guard from both ends (a lone degree-1 neighbor
	// satisfies "every neighbor on this side has degree 1" whichever
	// end starts), so neither end would ever become a start node.
	a1 := mg.AddUnitig("AAACC", true, []int{0}, []int{0})
	a2 := mg.AddUnitig("ACCGG", true, []int{0}, []int{0})
	a3 := mg.AddUnitig("CGGTT", true, []int{0}, []int{0})
	mg.Link(a1, a2)
	mg.Link(a2, a3)

	b1 := mg.AddUnitig("TTTGG", true, []int{0}, []int{0})
	b2 := mg.AddUnitig("TTGGCC", true, []int{0}, []int{0})
	b3 := mg.AddUnitig("GGCCAA", true, []int{0}, []int{0})
	mg.Link(b1, b2)
	mg.Link(b2, b3)

	g, err := graph.AssignIDs(mg)
	require.NoError(t, err)
	assert.Equal(t, 2, graph.CountConnectedComponents(g))

	var fasta bytes.Buffer
	w := traceback.NewWriter("run-1", &fasta, nil)

	stats, err := Run(g, w, Options{K: 3, MaxPaths: 1}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ComponentCount)
	assert.GreaterOrEqual(t, stats.ContigsWritten, 2)

	out := fasta.String()
	assert.Contains(t, out, ">contig_1")
	assert.Contains(t, out, "AAACCCGGGTT") // component A, overlap-trimmed
	assert.Contains(t, out, "TTTGG")       // component B start
}

// Running the outer loop twice over the same graph, from fresh
// engines, yields byte-identical FASTA output (determinism, spec.md
// §8).
func TestRunIsDeterministicAcrossRepeatedInvocations(t *testing.T) {
	buildGraph := func(t *testing.T) *graph.Graph {
		mg := memgraph.New(2)
		u1 := mg.AddUnitig("AAACC", true, []int{0, 1}, []int{0, 1})
		u2 := mg.AddUnitig("ACCGG", true, []int{0}, []int{0})
		u3 := mg.AddUnitig("ACCTT", true, []int{1}, []int{1})
		mg.Link(u1, u2)
		mg.Link(u1, u3)
		g, err := graph.AssignIDs(mg)
		require.NoError(t, err)
		return g
	}

	run := func(t *testing.T) string {
		g := buildGraph(t)
		var fasta bytes.Buffer
		w := traceback.NewWriter("run-x", &fasta, nil)
		_, err := Run(g, w, Options{K: 3, MaxPaths: 2}, quietLogger())
		require.NoError(t, err)
		return fasta.String()
	}

	first := run(t)
	second := run(t)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, strings.TrimSpace(first))
}

// K below the minimum is rejected before any traversal starts.
func TestRunRejectsInvalidK(t *testing.T) {
	mg := memgraph.New(1)
	mg.AddUnitig("ACGT", true, []int{0}, []int{0})
	g, err := graph.AssignIDs(mg)
	require.NoError(t, err)

	var fasta bytes.Buffer
	w := traceback.NewWriter("run-1", &fasta, nil)
	_, err = Run(g, w, Options{K: 2, MaxPaths: 1}, quietLogger())
	assert.Error(t, err)
}

// The entropy filter drops low-complexity contigs before they reach
// the FASTA stream, counting them separately from written contigs.
func TestRunEntropyFilterDropsLowComplexityContigs(t *testing.T) {
	mg := memgraph.New(1)
	mg.AddUnitig(strings.Repeat("A", 20), true, []int{0}, []int{0}) // homopolymer, entropy 0

	g, err := graph.AssignIDs(mg)
	require.NoError(t, err)

	var fasta bytes.Buffer
	w := traceback.NewWriter("run-1", &fasta, nil)
	stats, err := Run(g, w, Options{K: 3, MaxPaths: 1, MinEntropy: 0.1}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ContigsWritten)
	assert.Equal(t, 1, stats.ContigsFiltered)
	assert.Empty(t, strings.TrimSpace(fasta.String()))
}
