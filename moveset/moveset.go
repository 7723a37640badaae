// Package moveset holds the allowed-move table: the fixed set of CX gates
// the search is permitted to apply, iterated in a deterministic order so
// that repeated runs over the same input produce the same search order
// (and, ties aside, the same solution).
package moveset

import "github.com/katalvlaran/cxsynth/gate"

// Set is an insertion-ordered collection of gates with O(1) membership
// testing, the allowed-move table the search drivers consult on every
// expansion.
type Set struct {
	ordered []gate.Gate
	member  map[gate.Gate]bool
}

// New builds a Set from gates, in order, discarding duplicates (keeping the
// first occurrence's position).
func New(gates []gate.Gate) Set {
	s := Set{
		ordered: make([]gate.Gate, 0, len(gates)),
		member:  make(map[gate.Gate]bool, len(gates)),
	}
	for _, g := range gates {
		s.Add(g)
	}

	return s
}

// Add inserts g if not already present, preserving insertion order.
func (s *Set) Add(g gate.Gate) {
	if s.member == nil {
		s.member = make(map[gate.Gate]bool)
	}
	if s.member[g] {
		return
	}
	s.member[g] = true
	s.ordered = append(s.ordered, g)
}

// Contains reports whether g is an allowed move.
func (s Set) Contains(g gate.Gate) bool {
	return s.member[g]
}

// Gates returns the allowed moves in insertion order. The returned slice
// must not be mutated by callers.
func (s Set) Gates() []gate.Gate {
	return s.ordered
}

// Len returns the number of distinct allowed moves.
func (s Set) Len() int {
	return len(s.ordered)
}

// AllToAll returns the allowed-move set containing every CX(ctrl, tgt) with
// ctrl != tgt over n qubits, in ascending (ctrl, tgt) order — the
// convenience full-connectivity table the CLI synthesizes when no moves
// file is given.
func AllToAll(n int) Set {
	gates := make([]gate.Gate, 0, n*(n-1))
	for ctrl := 0; ctrl < n; ctrl++ {
		for tgt := 0; tgt < n; tgt++ {
			if ctrl == tgt {
				continue
			}
			g, err := gate.New(ctrl, tgt)
			if err != nil {
				// n is caller-controlled and bounded by gate.NumQubits
				// elsewhere; this can only happen if n is out of range.
				panic(err)
			}
			gates = append(gates, g)
		}
	}

	return New(gates)
}
