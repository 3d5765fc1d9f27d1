package join

import (
	"container/heap"
	"errors"

	"github.com/minevo/njtree/criterion"
	"github.com/minevo/njtree/tophits"
	"github.com/minevo/njtree/tree"
)

// hillClimbHops bounds localHillClimb's iteration count: a fixed small
// cap, 2 hops, is sufficient in practice.
const hillClimbHops = 2

// ErrEmptyActiveSet indicates BuildInitialTopology was called on a
// tree with no active nodes (should not occur given tree.NewLeaves'
// own validation, but guarded here as a defensive invariant check).
var ErrEmptyActiveSet = errors.New("join: no active nodes to join")

// BuildInitialTopology performs the n0-1 joins needed to reduce t to a
// single active node (its eventual root). It seeds the top-hits
// heuristic via tophits.Init, then repeatedly pops a candidate pair
// from the priority queue, re-validates and re-scores it, local
// hill-climbs it to a nearby local optimum, and joins it — falling
// back to a brute-force NJ-criterion minimization whenever the
// heuristic path is exhausted for every remaining active node.
func BuildInitialTopology(t *tree.Tree) error {
	if t.ActiveCount == 0 {
		return ErrEmptyActiveSet
	}
	if t.ActiveCount == 1 {
		return nil
	}

	if err := tophits.Init(t); err != nil {
		return err
	}

	h := &candidateHeap{}
	heap.Init(h)
	for _, idx := range t.ActiveIndices() {
		if err := pushBestHit(t, h, idx); err != nil {
			return err
		}
	}

	for t.ActiveCount > 1 {
		i0, j0, err := nextJoinPair(t, h)
		if err != nil {
			return err
		}

		i, j, err := localHillClimb(t, i0, j0)
		if err != nil {
			return err
		}

		// localHillClimb may have walked away from one or both of
		// nextJoinPair's winners to a TopHits neighbor instead. Those
		// abandoned nodes are still active and still need a live heap
		// entry, or they would never be reconsidered for a join.
		if i != i0 {
			if err := pushBestHit(t, h, i0); err != nil {
				return err
			}
		}
		if j != j0 {
			if err := pushBestHit(t, h, j0); err != nil {
				return err
			}
		}

		newIdx, err := createJoin(t, i, j)
		if err != nil {
			return err
		}

		if err := pushBestHit(t, h, newIdx); err != nil {
			return err
		}
	}

	return nil
}

// pushBestHit pushes idx's current FastNJ best-hit onto the heap, if
// it has one. A node with no viable partner (top-hits exhausted) is
// simply left off the heap; it will be picked up by a brute-force
// fallback once it is the last node left without a candidate.
func pushBestHit(t *tree.Tree, h *candidateHeap, idx int) error {
	partner, ok, err := tophits.BestHit(t, idx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	crit, err := criterion.NJCriterion(t, idx, partner)
	if err != nil {
		return err
	}
	heap.Push(h, candidateItem{node: idx, partner: partner, criterion: crit})

	return nil
}

// nextJoinPair pops up to m candidates from the heap, discarding stale
// ones (either endpoint inactive, or a partner re-elected away by the
// FastNJ cache since the entry was pushed), recomputes each survivor's
// current criterion, and returns the best. Every survivor that is
// considered but not selected is re-pushed onto the heap under its
// current best-hit before returning, so it stays live for the next
// call instead of being dropped for good. Falls back to a brute-force
// scan over all active nodes if the heap yields nothing usable.
func nextJoinPair(t *tree.Tree, h *candidateHeap) (int, int, error) {
	m := t.Config.TopHitsSize
	var (
		haveBest   bool
		bestI      int
		bestJ      int
		bestCrit   float64
		considered int
		seen       = map[int]bool{}
		seenOrder  []int
	)

	for h.Len() > 0 && considered < m {
		item := heap.Pop(h).(candidateItem)
		if !t.Nodes[item.node].Active || !t.Nodes[item.partner].Active {
			continue
		}
		considered++
		if !seen[item.node] {
			seen[item.node] = true
			seenOrder = append(seenOrder, item.node)
		}

		crit, err := criterion.NJCriterion(t, item.node, item.partner)
		if err != nil {
			return 0, 0, err
		}
		if !haveBest || criterion.Less(crit, item.node, item.partner, bestCrit, bestI, bestJ) {
			haveBest, bestI, bestJ, bestCrit = true, item.node, item.partner, crit
		}
	}

	if !haveBest {
		t.VLogf(1, "join: heuristic path exhausted, falling back to brute force\n")

		return bruteForceBestJoin(t)
	}

	for _, idx := range seenOrder {
		if idx == bestI || idx == bestJ {
			continue
		}
		if err := pushBestHit(t, h, idx); err != nil {
			return 0, 0, err
		}
	}

	return bestI, bestJ, nil
}

// localHillClimb inspects the top-hits of each candidate node, scores
// each as a potential partner of the other candidate, and adopts any
// strict improvement. Iterates until no improvement is found or
// hillClimbHops is reached.
func localHillClimb(t *tree.Tree, i, j int) (int, int, error) {
	best, err := criterion.NJCriterion(t, i, j)
	if err != nil {
		return 0, 0, err
	}

	for hop := 0; hop < hillClimbHops; hop++ {
		improved := false

		for _, x := range t.Nodes[i].TopHits {
			if x == j || !t.Nodes[x].Active {
				continue
			}
			crit, err := criterion.NJCriterion(t, x, j)
			if err != nil {
				return 0, 0, err
			}
			if criterion.Less(crit, x, j, best, i, j) {
				i, best, improved = x, crit, true
			}
		}

		for _, x := range t.Nodes[j].TopHits {
			if x == i || !t.Nodes[x].Active {
				continue
			}
			crit, err := criterion.NJCriterion(t, i, x)
			if err != nil {
				return 0, 0, err
			}
			if criterion.Less(crit, i, x, best, i, j) {
				j, best, improved = x, crit, true
			}
		}

		if !improved {
			break
		}
	}

	return i, j, nil
}

// bruteForceBestJoin scans every active pair for the minimum
// nj_criterion, applying the same tie-break rule as the heuristic path.
// O(n^2 L); only ever invoked when the top-hits/FastNJ heuristic is
// exhausted for every remaining node.
func bruteForceBestJoin(t *tree.Tree) (int, int, error) {
	active := t.ActiveIndices()
	if len(active) < 2 {
		return 0, 0, ErrEmptyActiveSet
	}

	var (
		haveBest bool
		bestI    int
		bestJ    int
		bestCrit float64
	)
	for a := 0; a < len(active); a++ {
		for b := a + 1; b < len(active); b++ {
			i, j := active[a], active[b]
			crit, err := criterion.NJCriterion(t, i, j)
			if err != nil {
				return 0, 0, err
			}
			if !haveBest || criterion.Less(crit, i, j, bestCrit, bestI, bestJ) {
				haveBest, bestI, bestJ, bestCrit = true, i, j, crit
			}
		}
	}

	t.Stats.BruteForceJoins++

	return bestI, bestJ, nil
}

// createJoin updates the BIONJ weight, joins i and j into a new node,
// seeds its top-hits and FastNJ best-hit, and ages every surviving list
// by one join.
func createJoin(t *tree.Tree, i, j int) (int, error) {
	lambda := bionjLambda(t, i, j)
	newIdx := t.Join(i, j, lambda)

	if err := tophits.NewNode(t, newIdx); err != nil {
		return 0, err
	}
	tophits.OnJoin(t)

	return newIdx, nil
}
