package tophits

import (
	"sort"

	"github.com/minevo/njtree/criterion"
	"github.com/minevo/njtree/tree"
)

// refreshAgeFactor and refreshActiveFactor are the two triggers of the
// list-refresh rule: a list is rebuilt once its age exceeds
// refreshAgeFactor*m joins, or once fewer than refreshActiveFactor*m of
// its entries are still active.
const (
	refreshAgeFactor    = 0.8
	refreshActiveFactor = 0.8
)

// candidate pairs a node index with its scored nj_criterion against
// some fixed reference node.
type candidate struct {
	idx  int
	crit float64
}

// sortCandidates orders candidates by ascending criterion, tie-broken
// via criterion.Less.
func sortCandidates(ref int, cands []candidate) {
	sort.Slice(cands, func(a, b int) bool {
		return criterion.Less(cands[a].crit, ref, cands[a].idx, cands[b].crit, ref, cands[b].idx)
	})
}

// scoreAgainst computes nj_criterion(ref, each candidate index), skipping
// ref itself and any index not currently active, and returns them sorted
// ascending (best first).
func scoreAgainst(t *tree.Tree, ref int, pool []int) ([]candidate, error) {
	seen := make(map[int]bool, len(pool))
	cands := make([]candidate, 0, len(pool))
	for _, idx := range pool {
		if idx == ref || seen[idx] || !t.Nodes[idx].Active {
			continue
		}
		seen[idx] = true
		crit, err := criterion.NJCriterion(t, ref, idx)
		if err != nil {
			return nil, err
		}
		cands = append(cands, candidate{idx: idx, crit: crit})
	}
	sortCandidates(ref, cands)

	return cands, nil
}

// applyList installs a freshly scored candidate list (already sorted,
// best first) as node idx's top-hits, truncated to m, and refreshes its
// FastNJ best-hit cache from the same scores.
func applyList(t *tree.Tree, idx int, cands []candidate, m int) {
	if len(cands) > m {
		cands = cands[:m]
	}
	node := t.Nodes[idx]
	node.TopHits = make([]int, len(cands))
	for i, c := range cands {
		node.TopHits[i] = c.idx
	}
	node.TopHitsAge = 0
	if len(cands) > 0 {
		node.BestPartner = cands[0].idx
		node.BestCriterion = cands[0].crit
	} else {
		node.BestPartner = tree.NoIndex
	}
	t.Stats.TopHitsRebuilds++
}

// Init seeds the top-hits heuristic at the very start of initial
// topology construction. It picks leaf 0 as the seed (a fixed,
// input-order-derived choice; see DESIGN.md's resolution of the
// source's pseudo-random seed pick), scores it
// against every other active leaf, and gives the best m of those
// "close" nodes an inherited list re-ranked from their own perspective
// instead of a full n-way scan. All other leaves are left with an
// empty top-hits list and pick one up on first use (see Refresh).
func Init(t *tree.Tree) error {
	m := t.Config.TopHitsSize
	active := t.ActiveIndices()
	if len(active) < 2 {
		return nil
	}

	seed := active[0]
	seedCands, err := scoreAgainst(t, seed, active)
	if err != nil {
		return err
	}
	applyList(t, seed, seedCands, m)

	top := seedCands
	if len(top) > m {
		top = top[:m]
	}

	// Pool available to "close" nodes: the seed plus its own top hits,
	// capped at 2m entries.
	pool := make([]int, 0, len(top)+1)
	pool = append(pool, seed)
	for _, c := range top {
		pool = append(pool, c.idx)
	}
	if len(pool) > 2*m {
		pool = pool[:2*m]
	}

	for _, c := range top {
		closeCands, err := scoreAgainst(t, c.idx, pool)
		if err != nil {
			return err
		}
		applyList(t, c.idx, closeCands, m)
	}

	return nil
}

// NewNode builds a freshly joined internal node's top-hits as the
// union of its two children's surviving (still-active) entries, scored
// from the new node's own perspective and truncated to m. Its age
// starts at 0.
func NewNode(t *tree.Tree, newIdx int) error {
	newNode := t.Nodes[newIdx]
	left := t.Nodes[newNode.Left]
	right := t.Nodes[newNode.Right]

	pool := make([]int, 0, len(left.TopHits)+len(right.TopHits))
	pool = append(pool, left.TopHits...)
	pool = append(pool, right.TopHits...)

	cands, err := scoreAgainst(t, newIdx, pool)
	if err != nil {
		return err
	}
	applyList(t, newIdx, cands, t.Config.TopHitsSize)

	return nil
}

// OnJoin increments the top-hits age of every currently active node.
// Any node's list may reference either side of the join, so this
// conservatively ages every surviving list, which is what drives the
// periodic refreshes below.
func OnJoin(t *tree.Tree) {
	for _, idx := range t.ActiveIndices() {
		t.Nodes[idx].TopHitsAge++
	}
}

// Refresh applies the list-refresh rule to node idx if its list
// has gone stale: age beyond refreshAgeFactor*m joins, or fewer than
// refreshActiveFactor*m of its current entries still active. The
// rebuilt list is scored from the two-hop closure of idx's own
// top-hits' top-hits, truncated to m. No-op if the list is still
// fresh.
func Refresh(t *tree.Tree, idx int) error {
	m := t.Config.TopHitsSize
	node := t.Nodes[idx]

	activeCount := 0
	for _, h := range node.TopHits {
		if t.Nodes[h].Active {
			activeCount++
		}
	}

	stale := float64(node.TopHitsAge) > refreshAgeFactor*float64(m) ||
		float64(activeCount) < refreshActiveFactor*float64(m)
	if !stale {
		return nil
	}

	pool := make([]int, 0, m*m)
	pool = append(pool, node.TopHits...)
	for _, h := range node.TopHits {
		pool = append(pool, t.Nodes[h].TopHits...)
	}

	cands, err := scoreAgainst(t, idx, pool)
	if err != nil {
		return err
	}

	// A node that never inherited a list from Init has an empty two-hop
	// closure to rebuild from. Bootstrap it the same way the seed leaf
	// was bootstrapped: score against every active node once. Every node
	// pays this full scan at most once over the engine's lifetime.
	if len(cands) == 0 {
		cands, err = scoreAgainst(t, idx, t.ActiveIndices())
		if err != nil {
			return err
		}
	}

	applyList(t, idx, cands, m)

	return nil
}
