// Package setcover implements the controller that decides whether a
// successful DFS walk contributes enough new coverage to be worth
// emitting as a contig.
package setcover

// Controller tracks the path currently being assembled and the set of
// unitig ids already covered by previously committed contigs.
type Controller struct {
	currentPath []uint32
	covered     map[uint32]bool
	startNodes  map[uint32]bool

	// CommitThreshold is the minimum number of previously-uncovered
	// ids a path must contribute to be committed. The default of 1
	// commits any path that adds at least one new id; this is exposed
	// as a knob because the spec anticipates implementations enforcing
	// a higher floor.
	CommitThreshold int
}

// New returns a Controller with the default threshold of 1.
func New() *Controller {
	return &Controller{
		covered:         make(map[uint32]bool),
		startNodes:      make(map[uint32]bool),
		CommitThreshold: 1,
	}
}

// Add pushes id onto the in-progress path.
func (c *Controller) Add(id uint32) {
	c.currentPath = append(c.currentPath, id)
}

// Del pops the most recently pushed id, undoing an Add on backtrack.
func (c *Controller) Del() {
	if len(c.currentPath) > 0 {
		c.currentPath = c.currentPath[:len(c.currentPath)-1]
	}
}

// Clear empties the in-progress path without touching covered.
func (c *Controller) Clear() {
	c.currentPath = c.currentPath[:0]
}

// NewContribution counts how many ids in the in-progress path are not
// yet in covered.
func (c *Controller) NewContribution() int {
	fresh := 0
	for _, id := range c.currentPath {
		if !c.covered[id] {
			fresh++
		}
	}
	return fresh
}

// Unify commits the in-progress path into covered if it meets
// CommitThreshold, returning whether it committed. A caller that gets
// false back must discard the path rather than emit it.
func (c *Controller) Unify() bool {
	if c.NewContribution() < c.CommitThreshold {
		return false
	}
	for _, id := range c.currentPath {
		c.covered[id] = true
	}
	return true
}

// AddStartNode records a unitig as having produced at least one
// successful traceback.
func (c *Controller) AddStartNode(id uint32) {
	c.startNodes[id] = true
}

// IsStartNode reports whether id was previously recorded by
// AddStartNode.
func (c *Controller) IsStartNode(id uint32) bool {
	return c.startNodes[id]
}

// Covered reports whether id has been committed by some prior path.
func (c *Controller) Covered(id uint32) bool {
	return c.covered[id]
}
