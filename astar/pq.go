package astar

// pqItem is a single priority-queue entry: a node awaiting expansion, keyed
// by its estimated total cost (primary, ascending) and its path cost so far
// (secondary, descending — among equal estimates, prefer the node already
// deepest into the search).
type pqItem struct {
	node  NodeIndex
	fCost int
	gCost int
}

// nodePQ is a container/heap min-heap of pqItem, in a lazy-decrease-key
// idiom: entries are never updated in place, only pushed; stale entries are
// simply never revisited since each node is only ever pushed once by
// construction.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].fCost != pq[j].fCost {
		return pq[i].fCost < pq[j].fCost
	}

	return pq[i].gCost > pq[j].gCost
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
