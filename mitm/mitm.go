package mitm

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/moveset"
	"github.com/katalvlaran/cxsynth/operator"
)

// Search runs a bidirectional meet-in-the-middle BFS from a source operator
// (the identity, unless overridden via WithSource) to target: step forward,
// test for an intersection with the current backward frontier, step
// backward, test again. k runs 1..maxSteps, so a solution of length 2k-1 or
// 2k is found on round k.
//
// If no intersection is found within maxSteps rounds and extrapolate is
// set, a further pass reuses forward's own stored layers as candidate
// "middle segments" to reach up to depth 2*maxSteps + forward.depth()
// without a third frontier.
func Search(target operator.CXMatrix, moves moveset.Set, maxSteps int, extrapolate bool, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if maxSteps < 1 {
		return Result{}, nil
	}

	forward := newBFS(cfg.source, moves.Gates())
	backward := newBFS(target, moves.Gates())

	var forwardFrontier frontier
	backwardFrontier := backward.layers[0]

	for k := 1; k <= maxSteps; k++ {
		forwardFrontier = forward.step()
		cfg.logger.Infof("forward, %d CX gates: %d circuits", k, len(forwardFrontier))
		if circ, ok := intersect(forwardFrontier, backwardFrontier); ok {
			cfg.logger.Infof("found solution using %d CX gates", 2*k-1)

			return Result{Gates: reconstruct(forward, backward, circ), Found: true}, nil
		}

		backwardFrontier = backward.step()
		cfg.logger.Infof("backward, %d CX gates: %d circuits", k, len(backwardFrontier))
		if circ, ok := intersect(forwardFrontier, backwardFrontier); ok {
			cfg.logger.Infof("found solution using %d CX gates", 2*k)

			return Result{Gates: reconstruct(forward, backward, circ), Found: true}, nil
		}
	}

	if extrapolate {
		if gates, ok := searchExtrapolated(forward, backward, forwardFrontier, backwardFrontier, maxSteps, cfg); ok {
			return Result{Gates: gates, Found: true}, nil
		}
	}

	cfg.logger.Infof("no solution found at maximal depth, aborting")

	return Result{}, nil
}

// reconstruct assembles the identity-to-target gate sequence through the
// common circuit circ found in both frontiers.
//
// forward.backtrack(circ) walks deepest-layer-first, i.e. it returns the
// moves in meet-to-identity chronological order (each step undoes the most
// recent application via the same self-inverse CX); reversing it yields the
// identity-to-meet order needed here. backward.backtrack(circ) needs no
// reversal: by the same argument it already walks in meet-to-target
// chronological order, which is exactly the trailing segment of the
// solution.
func reconstruct(forward, backward *bfs, circ operator.CXMatrix) []gate.Gate {
	prefix := reverseGates(forward.backtrack(circ))
	suffix := backward.backtrack(circ)

	return append(prefix, suffix...)
}

// searchExtrapolated looks for a solution of length 2*maxSteps+extraDepth by
// treating every circuit already stored in forward's own layer extraDepth
// as a candidate multi-gate "bridge" from a forwardFrontier element to a
// backwardFrontier element, for increasing extraDepth. This reuses work
// already done by the normal rounds above instead of running a third BFS.
func searchExtrapolated(forward, backward *bfs, forwardFrontier, backwardFrontier frontier, maxSteps int, cfg Options) ([]gate.Gate, bool) {
	for extraDepth := 1; extraDepth <= forward.depth(); extraDepth++ {
		cfg.logger.Infof("extrapolating to %d CX gates...", 2*maxSteps+extraDepth)
		for bridge := range forward.layers[extraDepth] {
			bridgeGates := reverseGates(forward.backtrack(bridge))
			for f := range forwardFrontier {
				candidate := applyGates(f, bridgeGates)
				if _, ok := backwardFrontier[candidate]; !ok {
					continue
				}

				prefix := reverseGates(forward.backtrack(f))
				suffix := backward.backtrack(candidate)
				solution := append(append(append([]gate.Gate{}, prefix...), bridgeGates...), suffix...)

				return solution, true
			}
		}
	}

	return nil, false
}

func applyGates(start operator.CXMatrix, gates []gate.Gate) operator.CXMatrix {
	curr := start
	for _, g := range gates {
		curr = curr.CX(g.Ctrl, g.Tgt)
	}

	return curr
}

func intersect(a, b frontier) (operator.CXMatrix, bool) {
	if a == nil || b == nil {
		return operator.CXMatrix{}, false
	}
	for circ := range a {
		if _, ok := b[circ]; ok {
			return circ, true
		}
	}

	return operator.CXMatrix{}, false
}
