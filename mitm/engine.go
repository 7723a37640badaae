package mitm

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

// bfs is one side of the meet-in-the-middle search: a sequence of frontiers,
// layers[0] holding only the root (identity for the forward side, target
// for the backward side), layers[d] holding every operator value first
// reached after exactly d applications of an allowed move.
type bfs struct {
	moves  []gate.Gate
	layers []frontier
}

func newBFS(root operator.CXMatrix, moves []gate.Gate) *bfs {
	return &bfs{
		moves:  moves,
		layers: []frontier{newRootFrontier(root)},
	}
}

// step computes and appends the next layer, returning it.
func (b *bfs) step() frontier {
	depth := len(b.layers)
	var prev frontier
	if depth > 1 {
		prev = b.layers[depth-2]
	}
	next := stepFrontier(b.moves, b.layers[depth-1], prev)
	b.layers = append(b.layers, next)

	return next
}

// depth is the deepest layer index computed so far.
func (b *bfs) depth() int {
	return len(b.layers) - 1
}

// backtrack walks circ back to this BFS's root, returning the moves found
// along the way in the order encountered: deepest layer first, shallowest
// last. Since operator.CXMatrix.CX is its own inverse, re-applying each
// found move to the current circuit recovers its predecessor.
//
// Panics if depth 0 is reached without circ matching the root exactly —
// per the design's error taxonomy, this signals a bug in frontier
// deduplication or layer bookkeeping, not a normal search outcome.
func (b *bfs) backtrack(circ operator.CXMatrix) []gate.Gate {
	var moves []gate.Gate
	curr := circ
	for d := len(b.layers) - 1; d >= 1; d-- {
		mv, ok := b.layers[d][curr]
		if !ok {
			continue
		}
		moves = append(moves, mv)
		curr = curr.CX(mv.Ctrl, mv.Tgt)
	}
	if _, ok := b.layers[0][curr]; !ok {
		panic("mitm: backtracking did not reach the root circuit at depth 0")
	}

	return moves
}

func reverseGates(gates []gate.Gate) []gate.Gate {
	reversed := make([]gate.Gate, len(gates))
	for i, g := range gates {
		reversed[len(gates)-1-i] = g
	}

	return reversed
}
