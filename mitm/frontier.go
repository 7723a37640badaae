package mitm

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

// frontier maps every operator value reached at some BFS depth to the gate
// that produced it. The root layer's single entry maps to the zero Gate,
// which gate.New never produces (it rejects ctrl == tgt), so it serves
// unambiguously as a "this is the root, not a move" sentinel.
type frontier map[operator.CXMatrix]gate.Gate

func newRootFrontier(root operator.CXMatrix) frontier {
	return frontier{root: gate.Gate{}}
}

// stepFrontier applies every allowed move to every element of cur, keeping
// only results absent from both cur and prev (prev may be nil, for the
// first step). Results reachable via more than one (circuit, move) pair
// keep whichever move collect_moves-style insertion last assigns; moves are
// applied in a fixed order so this is deterministic given that order, but
// which specific duplicate survives is not meaningful to callers.
func stepFrontier(moves []gate.Gate, cur, prev frontier) frontier {
	next := make(frontier, len(cur)*len(moves)/3+1)
	for circ := range cur {
		for _, mv := range moves {
			cand := circ.CX(mv.Ctrl, mv.Tgt)
			if _, ok := cur[cand]; ok {
				continue
			}
			if prev != nil {
				if _, ok := prev[cand]; ok {
					continue
				}
			}
			next[cand] = mv
		}
	}

	return next
}
