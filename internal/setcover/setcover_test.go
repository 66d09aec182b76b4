package setcover

import "testing"

func TestUnifyCommitsWhenContributingNewIDs(t *testing.T) {
	c := New()
	c.Add(1)
	c.Add(2)
	if !c.Unify() {
		t.Fatal("expected first path to commit")
	}
	if !c.Covered(1) || !c.Covered(2) {
		t.Error("committed ids must be marked covered")
	}
}

func TestUnifyRejectsFullyRedundantPath(t *testing.T) {
	c := New()
	c.Add(1)
	c.Unify()

	c.Clear()
	c.Add(1) // already covered, no new contribution
	if c.Unify() {
		t.Error("expected redundant path to be rejected")
	}
}

func TestDelUndoesMostRecentAdd(t *testing.T) {
	c := New()
	c.Add(1)
	c.Add(2)
	c.Del()
	if !c.Unify() {
		t.Fatal("expected commit")
	}
	if c.Covered(2) {
		t.Error("id popped by Del must not be committed")
	}
	if !c.Covered(1) {
		t.Error("remaining id must be committed")
	}
}

func TestCommitThresholdRequiresMoreNewIDs(t *testing.T) {
	c := New()
	c.CommitThreshold = 2
	c.Add(1)
	c.Add(3)
	c.Unify() // two new ids meet the threshold: covered = {1, 3}

	c.Clear()
	c.Add(1)
	c.Add(2) // only one new id (2), below threshold of 2
	if c.Unify() {
		t.Error("expected path below threshold to be rejected")
	}
}

func TestAddStartNode(t *testing.T) {
	c := New()
	if c.IsStartNode(1) {
		t.Error("unexpected start node before registration")
	}
	c.AddStartNode(1)
	if !c.IsStartNode(1) {
		t.Error("expected 1 to be registered as a start node")
	}
}
