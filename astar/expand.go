package astar

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

// ExpandChildren adds every legal child of ind to the graph: CX children per
// the policy below, and merge children when ind is mergeable. isComplete(qb)
// reports whether qubit qb's row already matches the search target, used to
// gate terminal merges.
//
// CX policy:
//   - ind is the root: any allowed CX may be added.
//   - ind is the target of an Op edge CX(ctrl, tgt): any allowed CX sharing
//     at least one endpoint with {ctrl, tgt} may be added.
//   - ind is the target of a Merge edge: if both of the merge's two
//     predecessors were themselves Op edges CX(c1,t1)/CX(c2,t2), any allowed
//     CX with one endpoint in {c1,t1} and the other in {c2,t2} (in either
//     direction) may be added; otherwise no CX child is added.
//
// Merge policy: see isMergeable.
func ExpandChildren[T Operator[T]](g *Graph[T], ind NodeIndex, isComplete func(qb int) bool) {
	// Merge partners are found while ind is still unexpanded; the merges
	// themselves are added after the CX children.
	var merges map[NodeIndex]operator.QubitSet
	if isMergeable(g, ind, isComplete) {
		merges = findMergeableNodes(g, ind)
	}

	prev, hasPrev := g.PrevEdge(ind)
	switch {
	case !hasPrev:
		// Root: any allowed CX is a legal first move.
		for _, cx := range g.moves.Gates() {
			g.AddCX(ind, cx)
		}
	case prev.kind == edgeOp:
		ctrl, tgt := prev.op.Ctrl, prev.op.Tgt
		for _, cx := range g.moves.Gates() {
			if cx.Ctrl == ctrl || cx.Tgt == ctrl || cx.Ctrl == tgt || cx.Tgt == tgt {
				g.AddCX(ind, cx)
			}
		}
	default: // edgeMerge
		if qbs1, qbs2, ok := cxQubitsOfMerge(g, prev); ok {
			for _, c := range qbs1 {
				for _, t := range qbs2 {
					tryAddAllowedCX(g, ind, c, t)
					tryAddAllowedCX(g, ind, t, c)
				}
			}
		}
	}

	for other, used := range merges {
		g.AddMerge(ind, other, used)
	}
}

func tryAddAllowedCX[T Operator[T]](g *Graph[T], ind NodeIndex, ctrl, tgt int) {
	cx := gate.Gate{Ctrl: ctrl, Tgt: tgt}
	if g.moves.Contains(cx) {
		g.AddCX(ind, cx)
	}
}

// cxQubitsOfMerge returns the (ctrl, tgt) qubit pairs of a merge edge's two
// predecessors, provided both predecessors were themselves Op edges.
func cxQubitsOfMerge[T Operator[T]](g *Graph[T], merge edge) (qbs1, qbs2 [2]int, ok bool) {
	p1, ok1 := g.PrevEdge(merge.src1)
	p2, ok2 := g.PrevEdge(merge.src2)
	if !ok1 || p1.kind != edgeOp || !ok2 || p2.kind != edgeOp {
		return qbs1, qbs2, false
	}

	return [2]int{p1.op.Ctrl, p1.op.Tgt}, [2]int{p2.op.Ctrl, p2.op.Tgt}, true
}

// isMergeable reports whether ind can be the LHS of a merge: it must not be
// the root, must not already be expanded, and either its predecessor is an
// Op edge, or (for a Merge predecessor) every qubit touched by the two CXs
// that preceded that merge is already complete (a "terminal merge").
func isMergeable[T Operator[T]](g *Graph[T], ind NodeIndex, isComplete func(qb int) bool) bool {
	if g.IsExpanded(ind) {
		return false
	}
	prev, hasPrev := g.PrevEdge(ind)
	if !hasPrev {
		return false
	}
	if prev.kind == edgeOp {
		return true
	}

	var qubits []int
	if p1, ok := g.PrevEdge(prev.src1); ok && p1.kind == edgeOp {
		qubits = append(qubits, p1.op.Ctrl, p1.op.Tgt)
	}
	if p2, ok := g.PrevEdge(prev.src2); ok && p2.kind == edgeOp {
		qubits = append(qubits, p2.op.Ctrl, p2.op.Tgt)
	}
	for _, qb := range qubits {
		if !isComplete(qb) {
			return false
		}
	}

	return true
}

// findMergeableNodes finds every node that can be the RHS of a merge with
// ind as the LHS, along with the qubits that merge would take from the RHS.
//
// This runs a backward DFS from ind to the root to compute, for every
// ancestor, the qubits CX-touched in ind's past but not in that ancestor's
// (its "disallowed" qubits — using them again would double up a gate
// already implied by ind). It then propagates forward from the root in
// reachability order, intersecting disallowed-qubit sets at merge points,
// and records any already-expanded node reached without touching a
// disallowed qubit as a valid RHS.
func findMergeableNodes[T Operator[T]](g *Graph[T], ind NodeIndex) map[NodeIndex]operator.QubitSet {
	if g.IsExpanded(ind) {
		panic("astar: cannot compute merges for an already-expanded node")
	}

	disallowed := make(map[NodeIndex]operator.QubitSet)
	backwardDFS(g, ind, disallowed)
	if _, ok := disallowed[g.RootIndex()]; !ok {
		panic("astar: backward DFS from a node did not reach the root")
	}

	return propagateForward(g, disallowed)
}

func backwardDFS[T Operator[T]](g *Graph[T], ind NodeIndex, disallowed map[NodeIndex]operator.QubitSet) {
	stack := []NodeIndex{ind}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := disallowed[curr]; ok {
			continue
		}
		disallowed[curr] = g.DisallowedQubits(curr, ind)
		if p, ok := g.PrevEdge(curr); ok {
			stack = append(stack, p.Srcs()...)
		}
	}
}

func propagateForward[T Operator[T]](g *Graph[T], disallowed map[NodeIndex]operator.QubitSet) map[NodeIndex]operator.QubitSet {
	nodesInPast := make(map[NodeIndex]bool, len(disallowed))
	for ind := range disallowed {
		nodesInPast[ind] = true
	}

	mergeable := make(map[NodeIndex]operator.QubitSet)
	queue := []NodeIndex{g.RootIndex()}
	for len(queue) > 0 {
		curr := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, e := range g.NextEdges(curr) {
			dst := e.dst
			if nodesInPast[dst] {
				queue = append(queue, dst)
				continue
			}
			switch e.kind {
			case edgeOp:
				src := e.src
				disallowedSrc := disallowed[src]
				if disallowedSrc.Has(e.op.Ctrl) || disallowedSrc.Has(e.op.Tgt) {
					continue
				}
				if _, ok := disallowed[dst]; ok {
					continue
				}
				disallowed[dst] = disallowedSrc
				queue = append(queue, dst)
				if g.IsExpanded(dst) {
					used := mergeable[src].With(e.op.Ctrl).With(e.op.Tgt)
					mergeable[dst] = used
				}
			case edgeMerge:
				disallowedSrc1, ok1 := disallowed[e.src1]
				disallowedSrc2, ok2 := disallowed[e.src2]
				if !ok1 || !ok2 {
					continue
				}
				if _, ok := disallowed[dst]; ok {
					continue
				}
				disallowed[dst] = disallowedSrc1.Intersect(disallowedSrc2)
				queue = append(queue, dst)
				if g.IsExpanded(dst) {
					used := mergeable[e.src1].Union(mergeable[e.src2])
					mergeable[dst] = used
				}
			}
		}
	}

	return mergeable
}
