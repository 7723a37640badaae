package operator

// Value is the contract astar.Graph and the merge-expansion policy require
// of an operator being searched over. Implementations must be comparable
// (usable directly as Go map keys) so that value-level deduplication can be
// expressed with a plain map, mirroring the "cheap to copy, cheap to
// compare" nature of the fixed-size arrays both CXMatrix and
// StabiliserState wrap.
type Value[T any] interface {
	// Hash returns a 64-bit digest of the value, used to bucket it in the
	// search graph's dedup index.
	Hash() uint64

	// Dist is an admissible lower bound on the number of CX gates needed to
	// reach other from the receiver; A* uses it as its heuristic.
	Dist(other T) int

	// CX applies a single CX(ctrl, tgt) gate and returns the result.
	CX(ctrl, tgt int) T

	// Merge combines the receiver with other, taking other's rows on the
	// qubits named by used, and returns the result.
	Merge(other T, used QubitSet) T

	// IsComplete reports whether qubit qb already matches target's row,
	// i.e. no further gates are needed on qb to reach target.
	IsComplete(qb int, target T) bool
}
