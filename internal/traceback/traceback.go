// Package traceback assembles DFS walk results into contigs and
// writes them out as FASTA, plus an optional CSV run summary.
package traceback

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrOutputUnavailable is returned when a writer can't be used, e.g.
// its underlying io.Writer has already failed.
var ErrOutputUnavailable = errors.New("traceback: output unavailable")

// PathElement is one unitig's contribution to a path, already
// orientation-corrected.
type PathElement struct {
	UnitigID uint32
	Sequence string
}

// Path is a single successful walk's unitigs, stored sink-to-source —
// the order the recursive DFS actually returns them in, since each
// stack frame appends its own element on the way back out.
type Path []PathElement

// Stitch concatenates a sink-to-source Path into one contig sequence.
// The last element (the source, i.e. the start node) is taken
// verbatim; every earlier element (closer to the sink) has its
// leading k-1 characters trimmed, since that overlap is already
// present as the trailing k-1 characters of the element after it in
// the de Bruijn edge the walk just crossed.
func (p Path) Stitch(k int) (string, error) {
	if len(p) == 0 {
		return "", fmt.Errorf("%w: empty path", ErrOutputUnavailable)
	}
	overlap := k - 1
	var out []byte
	for i := len(p) - 1; i >= 0; i-- {
		seq := p[i].Sequence
		if i != len(p)-1 {
			if len(seq) < overlap {
				return "", fmt.Errorf("%w: unitig %d sequence shorter than k-1 overlap", ErrOutputUnavailable, p[i].UnitigID)
			}
			seq = seq[overlap:]
		}
		out = append(out, seq...)
	}
	return string(out), nil
}

// IDs returns the path's unitig ids, sink-to-source.
func (p Path) IDs() []uint32 {
	ids := make([]uint32, len(p))
	for i, e := range p {
		ids[i] = e.UnitigID
	}
	return ids
}

// Bundle is everything a single dfs_init call can hand back: the set
// of successful paths discovered from one start node, plus whether the
// start node should be marked fully visited.
type Bundle struct {
	StartNodeID uint32
	Paths       []Path
	Success     bool
}

// Writer emits committed contigs as FASTA and, optionally, a CSV
// summary row per contig.
type Writer struct {
	fasta   *bufio.Writer
	csv     *csv.Writer
	runID   string
	counter int
}

// NewWriter wraps fastaOut for FASTA contig output. If summaryOut is
// non-nil, a CSV summary row is written alongside each contig.
func NewWriter(runID string, fastaOut io.Writer, summaryOut io.Writer) *Writer {
	w := &Writer{fasta: bufio.NewWriter(fastaOut), runID: runID}
	if summaryOut != nil {
		w.csv = csv.NewWriter(summaryOut)
		w.csv.Write([]string{"run_id", "contig_id", "start_unitig_id", "unitig_ids"})
	}
	return w
}

// Write emits one contig built from path, under a monotonically
// increasing ">contig_N" header.
func (w *Writer) Write(path Path, k int, startNodeID uint32) error {
	seq, err := path.Stitch(k)
	if err != nil {
		return err
	}
	w.counter++
	header := fmt.Sprintf(">contig_%d", w.counter)
	if _, err := fmt.Fprintln(w.fasta, header); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
	}
	if _, err := fmt.Fprintln(w.fasta, seq); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
	}

	if w.csv != nil {
		ids := path.IDs()
		idStrs := make([]string, len(ids))
		for i, id := range ids {
			idStrs[i] = strconv.FormatUint(uint64(id), 10)
		}
		row := []string{
			w.runID,
			strconv.Itoa(w.counter),
			strconv.FormatUint(uint64(startNodeID), 10),
			joinSemicolon(idStrs),
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
		}
	}
	return nil
}

// Flush flushes both underlying writers.
func (w *Writer) Flush() error {
	if err := w.fasta.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
	}
	if w.csv != nil {
		w.csv.Flush()
		if err := w.csv.Error(); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
		}
	}
	return nil
}

func joinSemicolon(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ";"
		}
		out += p
	}
	return out
}
