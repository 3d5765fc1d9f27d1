package join

import "github.com/minevo/njtree/tree"

// bionjLambda computes the BIONJ weight update. The original
// implementation defers this to an external variance-estimation
// routine and names λ=0.5 as a safe fallback; this module instead
// uses each side's LeafCount as an inverse-variance proxy (a profile
// averaged over more leaves has lower per-site variance, so it should
// be trusted more when forming the parent's profile): λ =
// leftSize/(leftSize+rightSize). When the two sides span equally many
// leaves — including the common case of joining two fresh leaves —
// this reduces exactly to the 0.5 fallback.
func bionjLambda(t *tree.Tree, i, j int) float64 {
	li := t.Nodes[i].LeafCount
	lj := t.Nodes[j].LeafCount
	total := li + lj
	if total == 0 {
		return 0.5
	}

	return float64(li) / float64(total)
}
