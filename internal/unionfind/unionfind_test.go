package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingletonsStartDisjoint(t *testing.T) {
	uf := New(5)
	for i := uint32(1); i <= 5; i++ {
		assert.Equal(t, i, uf.Find(i))
	}
}

func TestUnionMergesSets(t *testing.T) {
	uf := New(5)
	uf.Union(1, 2)
	uf.Union(2, 3)
	assert.True(t, uf.Connected(1, 3))
	assert.False(t, uf.Connected(1, 4))
}

func TestComponentsGroupsAllIDs(t *testing.T) {
	uf := New(6)
	uf.Union(1, 2)
	uf.Union(3, 4)
	// 5 and 6 stay singletons.
	groups := uf.Components()
	assert.Len(t, groups, 4)

	total := 0
	for _, members := range groups {
		total += len(members)
	}
	assert.Equal(t, 6, total)
}

func TestUnionOfAlreadyConnectedIsNoOp(t *testing.T) {
	uf := New(3)
	uf.Union(1, 2)
	before := uf.Find(1)
	uf.Union(1, 2)
	assert.Equal(t, before, uf.Find(1))
}
