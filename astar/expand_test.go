package astar

import (
	"testing"

	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/moveset"
	"github.com/katalvlaran/cxsynth/operator"
)

// TestFindMergeableNodes exercises the merge-candidate search directly:
//
//	0 --CX(0,1)--> 1
//	0 --CX(4,3)--> 2
//	0 --CX(2,3)--> 3
//	1 --CX(1,2)--> 4
//	1 --CX(3,4)--> 5
func TestFindMergeableNodes(t *testing.T) {
	moves := moveset.AllToAll(5)
	g := NewGraph(operator.IdentityCXMatrix(), moves)

	cx01, _ := gate.New(0, 1)
	cx43, _ := gate.New(4, 3)
	cx23, _ := gate.New(2, 3)
	child0, _ := g.AddCX(g.RootIndex(), cx01)
	child1, _ := g.AddCX(g.RootIndex(), cx43)
	child2, _ := g.AddCX(g.RootIndex(), cx23)

	// Dummy-expand child1 and child2, since only expanded nodes are
	// eligible merge targets.
	cx04, _ := gate.New(0, 4)
	g.AddCX(child1, cx04)
	g.AddCX(child2, cx04)
	if !g.IsExpanded(child1) || !g.IsExpanded(child2) {
		t.Fatalf("dummy expansion did not mark child1/child2 as expanded")
	}

	mergeable := findMergeableNodes(g, child0)
	if _, ok := mergeable[child1]; !ok {
		t.Fatalf("expected child1 to be a mergeable RHS for child0")
	}
	if _, ok := mergeable[child2]; !ok {
		t.Fatalf("expected child2 to be a mergeable RHS for child0")
	}
	if len(mergeable) != 2 {
		t.Fatalf("findMergeableNodes(child0) = %v; want exactly {child1, child2}", mergeable)
	}

	cx12, _ := gate.New(1, 2)
	cx34, _ := gate.New(3, 4)
	grandchild, _ := g.AddCX(child0, cx12)
	grandchild2, _ := g.AddCX(child0, cx34)

	cx02, _ := gate.New(0, 2)
	g.AddCX(grandchild2, cx02)
	if !g.IsExpanded(grandchild2) {
		t.Fatalf("dummy expansion did not mark grandchild2 as expanded")
	}

	mergeable = findMergeableNodes(g, grandchild)
	if _, ok := mergeable[grandchild2]; !ok {
		t.Fatalf("expected grandchild2 to be a mergeable RHS for grandchild")
	}
	if _, ok := mergeable[child1]; !ok {
		t.Fatalf("expected child1 to still be a mergeable RHS for grandchild")
	}
	if len(mergeable) != 2 {
		t.Fatalf("findMergeableNodes(grandchild) = %v; want exactly {grandchild2, child1}", mergeable)
	}
}

// TestIsMergeable_RootNeverMergeable locks in that the root can never be
// the LHS of a merge.
func TestIsMergeable_RootNeverMergeable(t *testing.T) {
	moves := moveset.AllToAll(5)
	g := NewGraph(operator.IdentityCXMatrix(), moves)
	if isMergeable(g, g.RootIndex(), func(int) bool { return true }) {
		t.Fatalf("root must never be mergeable")
	}
}

// TestCXQubitsOfMerge_MixedPredecessorsReturnsFalse locks in the open
// question resolution: a merge-of-a-merge (one source reached via a Merge
// edge rather than an Op edge) yields no CX qubits, so ExpandChildren adds
// no CX children after it.
func TestCXQubitsOfMerge_MixedPredecessorsReturnsFalse(t *testing.T) {
	moves := moveset.AllToAll(6)
	g := NewGraph(operator.IdentityCXMatrix(), moves)

	cx01, _ := gate.New(0, 1)
	cx23, _ := gate.New(2, 3)
	cx45, _ := gate.New(4, 5)
	child1, _ := g.AddCX(g.RootIndex(), cx01)
	child2, _ := g.AddCX(g.RootIndex(), cx23)
	child3, _ := g.AddCX(g.RootIndex(), cx45)
	innerMerge, _ := g.AddMerge(child1, child2, operator.QubitSetOf(2, 3))

	outerMerge, ok := g.AddMerge(innerMerge, child3, operator.QubitSetOf(4, 5))
	if !ok {
		t.Fatalf("AddMerge(innerMerge, child3) unexpectedly deduped")
	}

	prev, hasPrev := g.PrevEdge(outerMerge)
	if !hasPrev || prev.kind != edgeMerge {
		t.Fatalf("outerMerge's predecessor is not a Merge edge; test setup is wrong")
	}
	_, _, ok = cxQubitsOfMerge(g, prev)
	if ok {
		t.Fatalf("cxQubitsOfMerge should fail: innerMerge's own predecessor is a Merge edge, not an Op edge")
	}
}
