// Package astar implements the A*-style search of the CX synthesizer: a DAG
// of operator values connected by two kinds of edge — a single CX gate
// ("Op"), and a "Merge" that fuses two disjoint-qubit partial solutions
// into one, found nowhere else in a standard A* formulation.
//
// Overview:
//
//   - Search grows a DAG rooted at a start operator, expanding the most
//     promising frontier node on each iteration until a solution matching
//     the target is proven shortest, the configured depth cap is exceeded,
//     or the reachable space is exhausted.
//   - Every node carries a cost (CX gates from start along its incoming
//     edge) and a per-qubit interaction history, used both to prune
//     provably-suboptimal children and to decide which sibling nodes are
//     eligible to merge.
//   - A merge edge combines two nodes that have each solved a disjoint set
//     of qubits, producing a child whose cost is the sum of its parents'
//     costs rather than cost+1 — the mechanism that lets the search reuse
//     partial progress instead of re-deriving it gate by gate.
//
// When to use:
//
//   - Any time the target is a single operator (no bidirectional endpoint)
//     and gate-minimality matters more than raw throughput — the search
//     over-explores before it commits to a solution, trading memory for an
//     optimality guarantee once terminated.
//   - Both supported representations (CXMatrix, StabiliserState) work
//     unmodified, since the engine is generic over operator.Value[T].
//
// Key features:
//
//   - Generic over Operator[T] — operator.Value[T] plus comparable — so the
//     same Graph, expansion policy, and priority queue serve both operator
//     kinds with zero duplicated logic.
//   - A hash-bucketed value index dedups nodes by value, not by edge, so
//     two different gate sequences reaching the same operator collapse into
//     one graph node.
//   - container/heap priority queue ordered by (estimated total cost
//     ascending, cost-so-far descending), so among equally-promising nodes
//     the search prefers the one deepest into its own history.
//   - Functional options (WithDepthCap, WithLogger) configure the driver
//     without changing Search's signature.
//
// Termination and complexity:
//
//   - Search halts as soon as a found solution's length is strictly less
//     than every remaining queued node's estimated total cost — at that
//     point no unexplored node can possibly improve on it.
//   - Memory is the dominant cost: the graph keeps every expanded node for
//     the lifetime of a Search call; nothing is ever evicted.
//
// See also:
//
//   - operator.Value[T]: the algebra (Hash, Dist, CX, Merge, IsComplete)
//     this package's generic constraint is built from.
//   - mitm: the alternative bidirectional engine for circuit-to-circuit
//     synthesis, trading the merge optimization for frontier intersection.
package astar
