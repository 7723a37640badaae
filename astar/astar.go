package astar

import (
	"container/heap"

	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/moveset"
)

// Search finds the shortest CX-gate sequence (allowing merges) from start to
// target over the allowed moves in moves, via the standard A* loop: pop the
// most promising node, track the deepest cost seen so far for progress
// reporting and the depth cap, expand its children, and record the shortest
// solution seen whenever a child matches target exactly.
//
// Search terminates when: a provably-optimal solution has been found (no
// queued node can produce a shorter one), the configured depth cap is
// exceeded (Result.DepthCapped is set), or the reachable search space is
// exhausted. All three are non-error outcomes; Result.Found distinguishes
// "solution found" from "no solution exists within these constraints".
func Search[T Operator[T]](start, target T, moves moveset.Set, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := NewGraph(start, moves)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, pqItem{node: g.RootIndex(), fCost: g.Root().Dist(target), gCost: 0})

	var minSolution []gate.Gate
	found := false
	maxCost := -1
	depthCapped := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		ind := item.node

		if g.Cost(ind) > maxCost {
			maxCost = g.Cost(ind)
			cfg.logger.Infof("max cost explored: %d", maxCost)
			if cfg.depthCap > 0 && maxCost > cfg.depthCap {
				cfg.logger.Infof("depth cap %d reached, aborting", cfg.depthCap)
				depthCapped = true

				break
			}
		}

		if found && item.fCost > len(minSolution) {
			cfg.logger.Infof("found solution is optimal, terminating")

			break
		}

		value := g.Value(ind)
		ExpandChildren(g, ind, func(qb int) bool { return value.IsComplete(qb, target) })

		for _, child := range g.Children(ind) {
			childValue := g.Value(child)
			if childValue == target {
				candidate := g.Path(child)
				if !found || len(candidate) < len(minSolution) {
					minSolution = candidate
					found = true
					cfg.logger.Infof("new best solution: %d gates", len(minSolution))
				}
			}

			childCost := g.Cost(child)
			estimate := childCost + childValue.Dist(target)
			heap.Push(&pq, pqItem{node: child, fCost: estimate, gCost: childCost})
		}
	}

	// NCollisions is a diagnostic counter exposed for operators who want to
	// know how much hash-bucket contention the search saw.
	cfg.logger.Debugf("value index saw %d hash collisions", g.index.NCollisions)

	return Result{Gates: minSolution, Found: found, DepthCapped: depthCapped}, nil
}
