// Package unionfind implements a disjoint-set structure over dense
// unitig ids, used to discover the graph's weakly-connected
// components before traversal starts. Style is adapted from a
// Kruskal's-MST union-find (path compression, union by rank) seen
// elsewhere in the retrieval pack, reworked from a string-keyed map
// to an index-addressed array since ids here are already dense.
package unionfind

// UnionFind is a disjoint-set over ids in [1, n].
type UnionFind struct {
	parent []uint32
	rank   []uint8
}

// New allocates a UnionFind where every id in [1, n] starts in its own
// singleton set. Index 0 is unused, matching the 1-based unitig id
// space.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]uint32, n+1),
		rank:   make([]uint8, n+1),
	}
	for i := range uf.parent {
		uf.parent[i] = uint32(i)
	}
	return uf
}

// Find returns the representative id of x's set, compressing the path
// to it along the way.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y.
func (uf *UnionFind) Union(x, y uint32) {
	rootX, rootY := uf.Find(x), uf.Find(y)
	if rootX == rootY {
		return
	}
	if uf.rank[rootX] < uf.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	if uf.rank[rootX] == uf.rank[rootY] {
		uf.rank[rootX]++
	}
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y uint32) bool {
	return uf.Find(x) == uf.Find(y)
}

// Components groups every id in [1, n] by its representative. Members
// within each group are in ascending order; the map itself has no
// defined order of representatives.
func (uf *UnionFind) Components() map[uint32][]uint32 {
	groups := make(map[uint32][]uint32)
	for i := 1; i < len(uf.parent); i++ {
		root := uf.Find(uint32(i))
		groups[root] = append(groups[root], uint32(i))
	}
	return groups
}
