package join

import (
	"container/heap"

	"github.com/minevo/njtree/criterion"
)

// candidateItem is one entry of the join engine's priority queue: a
// proposed join of Node and Partner, keyed by the criterion value in
// effect when it was pushed. Entries may go stale (Node or Partner
// joined away, or a better partner found since) and are filtered out
// on pop rather than updated in place: re-inserting stale entries and
// filtering on pop is simpler and faster in practice than decrease-key.
type candidateItem struct {
	node, partner int
	criterion     float64
}

// candidateHeap is a container/heap min-heap of candidateItem, ordered
// by criterion with the engine's lexicographic tie-break.
type candidateHeap []candidateItem

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	return criterion.Less(h[i].criterion, h[i].node, h[i].partner, h[j].criterion, h[j].node, h[j].partner)
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(candidateItem))
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

var _ heap.Interface = (*candidateHeap)(nil)
