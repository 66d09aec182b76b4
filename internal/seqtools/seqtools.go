// Package seqtools holds small, pure sequence helpers: strand
// orientation correction, reverse complementation, and the entropy
// helper used to flag low-complexity contigs.
package seqtools

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformedSequence is returned when a sequence contains a symbol
// outside {A, C, G, T, N} (case-insensitive).
var ErrMalformedSequence = errors.New("seqtools: malformed sequence")

var complement = map[byte]byte{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
	'N': 'N',
	'a': 't', 't': 'a',
	'c': 'g', 'g': 'c',
	'n': 'n',
}

// ReverseComplement returns the reverse complement of seq. Any symbol
// outside the recognized alphabet is an error, not a silently passed
// through character.
func ReverseComplement(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complement[seq[i]]
		if !ok {
			return "", fmt.Errorf("%w: byte %q at offset %d", ErrMalformedSequence, seq[i], i)
		}
		out[len(seq)-1-i] = c
	}
	return string(out), nil
}

// OrientationCorrected returns seq unchanged if strand is forward,
// otherwise its reverse complement.
func OrientationCorrected(seq string, forwardStrand bool) (string, error) {
	if forwardStrand {
		return seq, nil
	}
	return ReverseComplement(seq)
}

// Entropy computes the Shannon entropy of seq's dinucleotide
// frequencies, excluding any dimer that contains an 'N', normalized
// by dividing by 4 (the maximum possible entropy over the 16
// non-N dimers). It is purely informational: nothing in the DFS walk
// consults it, only the optional post-hoc low-complexity filter does.
func Entropy(seq string) float64 {
	seq = strings.ToUpper(seq)
	counts := make(map[string]int)
	total := 0
	for i := 0; i+1 < len(seq); i++ {
		dimer := seq[i : i+2]
		if strings.Contains(dimer, "N") {
			continue
		}
		counts[dimer]++
		total++
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy / 4.0
}
