// Package criterion computes the out-distance and neighbor-joining
// criterion the join engine minimizes to pick the next join.
package criterion

import (
	"errors"

	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

// ErrTooFewActive indicates OutDistance or NJCriterion was asked to
// score a tree with fewer than two active nodes left to compare.
var ErrTooFewActive = errors.New("criterion: fewer than two active nodes")

// OutDistance computes r(i), node i's average corrected distance to
// every other currently active node, using the tree's cached total
// profile T so the query costs O(L) rather than O(n*L).
//
// When exactly two nodes are active the formula's (n-2) denominator
// collapses; this returns the bare numerator, since with only one pair
// left the scaling does not affect which join is selected.
func OutDistance(t *tree.Tree, i int) (float64, error) {
	n := t.ActiveCount
	if n < 2 {
		return 0, ErrTooFewActive
	}

	node := t.Nodes[i]
	deltaIT, err := profile.Distance(node.Profile, t.T)
	if err != nil {
		return 0, err
	}
	deltaII, err := profile.Distance(node.Profile, node.Profile)
	if err != nil {
		return 0, err
	}

	sumOthersU := t.SumUpDistance - node.UpDistance
	numerator := float64(n)*deltaIT - deltaII - float64(n-2)*node.UpDistance - sumOthersU

	if n == 2 {
		return numerator, nil
	}

	return numerator / float64(n-2), nil
}

// NJCriterion computes du(i,j) - r(i) - r(j), the quantity the join
// engine minimizes. du is Distance(i,j) minus each node's own
// up-distance; this formula is uniform across leaf/leaf, leaf/internal,
// and internal/internal pairs because a leaf's UpDistance is always 0.
func NJCriterion(t *tree.Tree, i, j int) (float64, error) {
	ni := t.Nodes[i]
	nj := t.Nodes[j]

	du, err := profile.Uncorrected(ni.Profile, nj.Profile, ni.UpDistance, nj.UpDistance)
	if err != nil {
		return 0, err
	}

	ri, err := OutDistance(t, i)
	if err != nil {
		return 0, err
	}
	rj, err := OutDistance(t, j)
	if err != nil {
		return 0, err
	}

	return du - ri - rj, nil
}

// Less implements the join engine's deterministic tie-break: the
// candidate pair with the strictly lower criterion wins; ties are broken by
// comparing (min(i,j), max(i,j)) lexicographically, so output is
// reproducible for a given input regardless of map/slice iteration
// order elsewhere in the engine.
func Less(critA float64, iA, jA int, critB float64, iB, jB int) bool {
	if critA != critB {
		return critA < critB
	}
	loA, hiA := orderedPair(iA, jA)
	loB, hiB := orderedPair(iB, jB)
	if loA != loB {
		return loA < loB
	}

	return hiA < hiB
}

func orderedPair(a, b int) (int, int) {
	if a < b {
		return a, b
	}

	return b, a
}
