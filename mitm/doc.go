// Package mitm implements the bidirectional meet-in-the-middle BFS search
// engine: two breadth-first searches, one rooted at a source operator (the
// identity, unless overridden) and one rooted at the target operator,
// stepped in alternation until their frontiers intersect. It operates only
// on operator.CXMatrix: its frontiers, Search and options are all typed on
// that concrete type.
//
// Overview:
//
//   - Round k steps the forward BFS once (depth k) and tests its new
//     frontier against the current backward frontier; if nothing matches,
//     it steps the backward BFS once (depth k) and tests again. A match
//     after the forward step yields a solution of length 2k-1; a match
//     after the backward step yields length 2k.
//   - A single CX application is its own inverse — re-applying the gate
//     that produced a frontier element undoes it — so each BFS layer only
//     needs to remember the move that produced each circuit, not a full
//     matrix multiply, to walk back toward its root.
//   - If no intersection appears within maxSteps rounds, an optional
//     extrapolation pass reuses the forward BFS's own already-computed
//     layers as multi-gate "bridges" from the final forward frontier toward
//     the final backward frontier, reaching further without a third BFS.
//
// When to use:
//
//   - The target is a full 16-qubit CXMatrix and the search needs to cover
//     both directions of a round trip efficiently — meet-in-the-middle's
//     frontier sizes grow as |moves|^(depth/2) per side rather than
//     |moves|^depth for a one-directional search of the same total depth.
//   - Not applicable to StabiliserState targets: Search accepts only
//     CXMatrix values.
//
// Key features:
//
//   - WithSource roots the forward BFS at an arbitrary operator instead of
//     the identity, for source-to-target synthesis rather than
//     identity-to-target.
//   - WithLogger surfaces per-round frontier sizes and extrapolation
//     progress through the logsink facade.
//   - Reconstruction assembles the identity-to-target (or source-to-target)
//     gate sequence by reversing the forward BFS's root-ward walk and
//     appending the backward BFS's root-ward walk unchanged — see
//     DESIGN.md for the derivation of why this ordering, not its mirror
//     image, satisfies the replay invariant.
//
// Complexity:
//
//   - Time and memory are dominated by the sum of all stored layer sizes on
//     both sides, roughly |moves|^depth in the worst case, the same bound a
//     plain BFS would have, but split across two independent walks that
//     only need to reach half the total depth each before a typical
//     intersection is found.
//
// See also:
//
//   - astar: the merge-augmented one-directional engine, better suited when
//     the target includes a StabiliserState or gate-minimality matters more
//     than raw throughput.
package mitm
