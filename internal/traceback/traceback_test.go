package traceback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStitchSingleElement(t *testing.T) {
	p := Path{{UnitigID: 1, Sequence: "ACGTACGTAC"}}
	got, err := p.Stitch(5)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTAC", got)
}

func TestStitchTrimsOverlapOnEarlierElements(t *testing.T) {
	// sink-to-source: u3, u2, u1 (u1 is the start node). Length must
	// match spec.md §8's invariant: |source| + sum(|other| - (k-1)).
	p := Path{
		{UnitigID: 3, Sequence: "CGGTT"},
		{UnitigID: 2, Sequence: "ACCGG"},
		{UnitigID: 1, Sequence: "AAACC"},
	}
	got, err := p.Stitch(3)
	require.NoError(t, err)
	assert.Equal(t, "AAACCCGGGTT", got)
	assert.Len(t, got, 5+(5-2)+(5-2))
}

func TestStitchEmptyPathErrors(t *testing.T) {
	var p Path
	_, err := p.Stitch(5)
	assert.Error(t, err)
}

func TestWriterEmitsFastaRecordsWithIncrementingCounter(t *testing.T) {
	var fasta bytes.Buffer
	w := NewWriter("run-1", &fasta, nil)

	p1 := Path{{UnitigID: 1, Sequence: "ACGTACGTAC"}}
	require.NoError(t, w.Write(p1, 5, 1))
	p2 := Path{{UnitigID: 2, Sequence: "TTTTTTTTTT"}}
	require.NoError(t, w.Write(p2, 5, 2))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(fasta.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">contig_1", lines[0])
	assert.Equal(t, "ACGTACGTAC", lines[1])
	assert.Equal(t, ">contig_2", lines[2])
	assert.Equal(t, "TTTTTTTTTT", lines[3])
}

func TestWriterEmitsCSVSummaryWhenRequested(t *testing.T) {
	var fasta, summary bytes.Buffer
	w := NewWriter("run-1", &fasta, &summary)

	p := Path{{UnitigID: 2, Sequence: "CGGTT"}, {UnitigID: 1, Sequence: "AAACC"}}
	require.NoError(t, w.Write(p, 3, 1))
	require.NoError(t, w.Flush())

	out := summary.String()
	assert.Contains(t, out, "run_id,contig_id,start_unitig_id,unitig_ids")
	assert.Contains(t, out, "run-1,1,1,2;1")
}
