package astar

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/moveset"
	"github.com/katalvlaran/cxsynth/operator"
)

// node is a single vertex of the search graph.
type node[T Operator[T]] struct {
	cost  int
	prev  *edge // nil for the root
	next  []edge
	stats [16]uint16 // CX interactions seen so far, per qubit
}

// valueIndex deduplicates node values by hash bucket, backed by a growable
// map since the A* graph has no a-priori bound on node count. NCollisions
// exposes how much hash-bucket contention the index has seen, useful
// operator telemetry.
type valueIndex[T Operator[T]] struct {
	buckets     map[uint64][]NodeIndex
	NCollisions int
}

func newValueIndex[T Operator[T]]() valueIndex[T] {
	return valueIndex[T]{buckets: make(map[uint64][]NodeIndex)}
}

func (vi *valueIndex[T]) lookup(values []T, v T) (NodeIndex, bool) {
	for _, ind := range vi.buckets[v.Hash()] {
		if values[ind] == v {
			return ind, true
		}
	}

	return 0, false
}

func (vi *valueIndex[T]) insert(v T, ind NodeIndex) {
	h := v.Hash()
	if len(vi.buckets[h]) > 0 {
		vi.NCollisions++
	}
	vi.buckets[h] = append(vi.buckets[h], ind)
}

// Graph is the A* search DAG over operator values of type T.
type Graph[T Operator[T]] struct {
	nodes  []node[T]
	values []T
	index  valueIndex[T]
	moves  moveset.Set
}

// NewGraph creates a graph with a single root node holding start.
func NewGraph[T Operator[T]](start T, moves moveset.Set) *Graph[T] {
	g := &Graph[T]{
		nodes:  []node[T]{{}},
		values: []T{start},
		index:  newValueIndex[T](),
		moves:  moves,
	}
	g.index.insert(start, 0)

	return g
}

// RootIndex returns the root node's index, always 0.
func (g *Graph[T]) RootIndex() NodeIndex {
	return 0
}

// Root returns the root node's value.
func (g *Graph[T]) Root() T {
	return g.values[0]
}

// Value returns the value held at ind.
func (g *Graph[T]) Value(ind NodeIndex) T {
	return g.values[ind]
}

// Cost returns the number of CX gates in ind's history: one per Op edge, and
// for a merge node the sum of its two parents' costs (a merge adds no gate).
func (g *Graph[T]) Cost(ind NodeIndex) int {
	return g.nodes[ind].cost
}

// PrevEdge returns the edge leading into ind, or false for the root.
func (g *Graph[T]) PrevEdge(ind NodeIndex) (edge, bool) {
	p := g.nodes[ind].prev
	if p == nil {
		return edge{}, false
	}

	return *p, true
}

// NextEdges returns the edges already expanded out of ind.
func (g *Graph[T]) NextEdges(ind NodeIndex) []edge {
	return g.nodes[ind].next
}

// Children returns the indices of nodes already expanded out of ind.
func (g *Graph[T]) Children(ind NodeIndex) []NodeIndex {
	next := g.nodes[ind].next
	children := make([]NodeIndex, len(next))
	for i, e := range next {
		children[i] = e.dst
	}

	return children
}

// IsExpanded reports whether ind has at least one outgoing edge. A node
// whose ExpandChildren call added no child still reports false.
func (g *Graph[T]) IsExpanded(ind NodeIndex) bool {
	return len(g.nodes[ind].next) > 0
}

// AddCX applies CX gate cx to the value at from, adding a new node if the
// resulting value is not already present in the graph. Returns the new node's
// index and true, or (0, false) when the value already exists, in which case
// no node or edge is added.
func (g *Graph[T]) AddCX(from NodeIndex, cx gate.Gate) (NodeIndex, bool) {
	newValue := g.values[from].CX(cx.Ctrl, cx.Tgt)
	if _, ok := g.index.lookup(g.values, newValue); ok {
		return 0, false
	}

	dst := NodeIndex(len(g.nodes))
	e := edge{kind: edgeOp, op: cx, src: from, dst: dst}

	stats := g.nodes[from].stats
	stats[cx.Ctrl]++
	stats[cx.Tgt]++

	g.nodes = append(g.nodes, node[T]{cost: g.Cost(from) + 1, prev: &e, stats: stats})
	g.values = append(g.values, newValue)
	g.index.insert(newValue, dst)
	g.nodes[from].next = append(g.nodes[from].next, e)

	return dst, true
}

// AddMerge fuses src1 and src2, taking src2's rows on the qubits named by
// used, adding a new node if the resulting value is not already present.
func (g *Graph[T]) AddMerge(src1, src2 NodeIndex, used operator.QubitSet) (NodeIndex, bool) {
	newValue := g.values[src1].Merge(g.values[src2], used)
	if _, ok := g.index.lookup(g.values, newValue); ok {
		return 0, false
	}

	dst := NodeIndex(len(g.nodes))
	e := edge{kind: edgeMerge, src1: src1, src2: src2, used: used, dst: dst}

	stats := g.nodes[src1].stats
	for i := 0; i < 16; i++ {
		stats[i] += g.nodes[src2].stats[i]
	}

	g.nodes = append(g.nodes, node[T]{cost: g.Cost(src1) + g.Cost(src2), prev: &e, stats: stats})
	g.values = append(g.values, newValue)
	g.index.insert(newValue, dst)
	g.nodes[src1].next = append(g.nodes[src1].next, e)
	g.nodes[src2].next = append(g.nodes[src2].next, e)

	return dst, true
}

// Path reconstructs the gate sequence from the root to ind, walking
// backwards through Op and Merge edges (a DAG, not a tree, so the walk
// tracks seen nodes to avoid revisiting a shared ancestor twice).
func (g *Graph[T]) Path(ind NodeIndex) []gate.Gate {
	var path []gate.Gate
	stack := []NodeIndex{ind}
	seen := make(map[NodeIndex]bool)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[curr] {
			continue
		}
		seen[curr] = true

		p, ok := g.PrevEdge(curr)
		if !ok {
			continue
		}
		switch p.kind {
		case edgeOp:
			path = append(path, p.op)
			stack = append(stack, p.src)
		case edgeMerge:
			stack = append(stack, p.src1, p.src2)
		}
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DisallowedQubits returns the qubits that have had CX gates applied in
// descendant's past but not in ancestor's: qubits where
// descendant.stats[qb] - ancestor.stats[qb] > 0 (see DESIGN.md for why this
// direction, not its reverse, is the one exercised by
// TestGraph_DisallowedQubits).
func (g *Graph[T]) DisallowedQubits(ancestor, descendant NodeIndex) operator.QubitSet {
	var disallowed operator.QubitSet
	ancestorStats := g.nodes[ancestor].stats
	descendantStats := g.nodes[descendant].stats
	for qb := 0; qb < 16; qb++ {
		if descendantStats[qb]-ancestorStats[qb] > 0 {
			disallowed = disallowed.With(qb)
		}
	}

	return disallowed
}
