package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsang/ccdbgtraverse/internal/colorset"
	"github.com/wtsang/ccdbgtraverse/internal/graph"
)

func TestNeighborsSortsByDescendingRateThenAscendingID(t *testing.T) {
	csv := colorset.FromBits(4, []int{0, 1, 2, 3})

	units := map[uint32]*graph.Unitig{
		// full agreement: rate 1.0
		10: {ID: 10, HeadColors: colorset.FromBits(4, []int{0, 1, 2, 3}), TailColors: colorset.FromBits(4, []int{0, 1, 2, 3})},
		// full agreement too, tie with 10, should sort by ascending id
		5: {ID: 5, HeadColors: colorset.FromBits(4, []int{0, 1, 2, 3}), TailColors: colorset.FromBits(4, []int{0, 1, 2, 3})},
		// half agreement
		7: {ID: 7, HeadColors: colorset.FromBits(4, []int{0, 1}), TailColors: colorset.FromBits(4, []int{0, 1})},
		// zero rate, must be dropped
		9: {ID: 9, HeadColors: colorset.New(4), TailColors: colorset.New(4)},
	}
	lookup := func(id uint32) (*graph.Unitig, error) { return units[id], nil }

	got, err := Neighbors(csv, lookup, []uint32{10, 5, 7, 9})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint32(5), got[0].ID)
	assert.Equal(t, uint32(10), got[1].ID)
	assert.Equal(t, uint32(7), got[2].ID)
}

func TestNeighborsEmptyInput(t *testing.T) {
	csv := colorset.New(4)
	lookup := func(id uint32) (*graph.Unitig, error) { return nil, nil }
	got, err := Neighbors(csv, lookup, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
