// Package operator implements the two linear-algebra values this
// synthesizer searches over: CXMatrix, a full 16×16 GF(2) invertible
// matrix, and StabiliserState, a list of ≤16 X-stabiliser rows.
//
// Both types share the Value[T] contract: a heuristic Dist to a target, a
// CX application, a Merge of two disjoint partial solutions, and an
// IsComplete per-qubit check. astar.Graph is generic over Value[T]; mitm
// is written for CXMatrix only and does not accept StabiliserState.
//
// Both types are plain comparable structs of fixed-size arrays, so they are
// cheap to copy and usable directly as map keys — the dedup index in
// astar.Graph and the frontier maps in mitm both rely on this. QubitSet, a
// packed uint16 bitmask over qubit indices 0..15, rounds out the package as
// the representation shared by Merge's "used" parameter and
// Graph.DisallowedQubits.
package operator
