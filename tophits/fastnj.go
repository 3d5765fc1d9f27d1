package tophits

import "github.com/minevo/njtree/tree"

// BestHit returns node idx's current best join partner using the
// FastNJ best-hit cache: if the cached partner is still active, it is
// returned as-is. Otherwise the cache is "lazily fixed": Refresh is
// applied if the list has gone stale, stale (inactive) entries are
// dropped, and the best remaining entry is re-elected. If the list is
// empty after that, ok is false and the caller must fall back to a
// brute-force NJ-criterion minimization over all active nodes.
func BestHit(t *tree.Tree, idx int) (partner int, ok bool, err error) {
	node := t.Nodes[idx]
	if node.BestPartner != tree.NoIndex && t.Nodes[node.BestPartner].Active {
		return node.BestPartner, true, nil
	}

	if err = Refresh(t, idx); err != nil {
		return tree.NoIndex, false, err
	}

	// Purge stale entries from the list itself (lazy purge) and re-elect
	// the best survivor.
	live := node.TopHits[:0]
	for _, h := range node.TopHits {
		if t.Nodes[h].Active {
			live = append(live, h)
		}
	}
	node.TopHits = live

	if len(node.TopHits) == 0 {
		node.BestPartner = tree.NoIndex
		return tree.NoIndex, false, nil
	}

	cands, err := scoreAgainst(t, idx, node.TopHits)
	if err != nil {
		return tree.NoIndex, false, err
	}
	if len(cands) == 0 {
		node.BestPartner = tree.NoIndex
		return tree.NoIndex, false, nil
	}

	node.BestPartner = cands[0].idx
	node.BestCriterion = cands[0].crit

	return node.BestPartner, true, nil
}
