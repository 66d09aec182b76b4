package seqtools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseComplement(t *testing.T) {
	got, err := ReverseComplement("AAAGGG")
	require.NoError(t, err)
	assert.Equal(t, "CCCTTT", got)
}

func TestReverseComplementPreservesN(t *testing.T) {
	got, err := ReverseComplement("ANT")
	require.NoError(t, err)
	assert.Equal(t, "ANT", got)
}

func TestReverseComplementRejectsUnknownSymbol(t *testing.T) {
	_, err := ReverseComplement("ACGX")
	assert.True(t, errors.Is(err, ErrMalformedSequence))
}

func TestOrientationCorrected(t *testing.T) {
	forward, err := OrientationCorrected("AAAGGG", true)
	require.NoError(t, err)
	assert.Equal(t, "AAAGGG", forward)

	backward, err := OrientationCorrected("CCCTTT", false)
	require.NoError(t, err)
	assert.Equal(t, "AAAGGG", backward)
}

func TestEntropyExcludesDimersWithN(t *testing.T) {
	// Every dimer here contains an N, so there's nothing to score.
	assert.Equal(t, 0.0, Entropy("NNNN"))
}

func TestEntropyHomopolymerIsZero(t *testing.T) {
	// Only one distinct dimer ("AA"), so entropy is zero.
	assert.Equal(t, 0.0, Entropy("AAAAAAA"))
}

func TestEntropyIsNormalizedByFour(t *testing.T) {
	// Roughly uniform over many dimers stays below the max of 1.0
	// (H/4, with H capped at 4 over 16 possible non-N dimers).
	h := Entropy("ACGTACGTACGTACGTACGT")
	assert.Greater(t, h, 0.0)
	assert.LessOrEqual(t, h, 1.0)
}
