package tree

import (
	"fmt"
	"os"

	"github.com/minevo/njtree/profile"
)

// Stats counts diagnostic events over a Tree's lifetime: joins
// performed, brute-force NJ fallbacks taken when the heuristic path is
// exhausted, top-hits list rebuilds, and NNI swaps performed, one
// counter per round. These do not affect results; they exist so tests
// can assert on properties like "at most one swap per (i,j) visit" and
// determinism across runs without instrumenting the algorithm itself.
type Stats struct {
	Joins           int
	BruteForceJoins int
	TopHitsRebuilds int
	NNISwapsByRound []int
	TRefreshes      int
}

// Tree is the arena and aggregate state of the engine: an append-only
// slice of Nodes, the active count n, the total profile T, the BIONJ
// blending weight Lambda, and Config. Appending nodes, flipping Active
// and maintaining T go through its exported methods; package nni
// reparents nodes by writing Left/Right/Parent in Nodes directly.
type Tree struct {
	Nodes       []*Node
	ActiveCount int
	T           profile.Profile
	Lambda      float64
	Config      Config
	Stats       Stats

	// SumUpDistance is the sum of UpDistance over all currently active
	// nodes, maintained incrementally alongside T so criterion.OutDistance
	// stays O(L) per query instead of O(n).
	SumUpDistance float64

	joinsSinceRefresh int
	siteLen           int
}

// NewLeaves builds the initial Tree from unique, aligned leaf sequences.
// names, profiles, and duplicates are parallel slices: deduplication is
// assumed to have already collapsed exact duplicates upstream;
// duplicates[i] lists the extra names profiles[i] stands in for. cfg
// should come from DefaultConfig(len(names), ...).
func NewLeaves(names []string, profiles []profile.Profile, duplicates [][]string, cfg Config) (*Tree, error) {
	if len(names) == 0 {
		return nil, ErrNoLeaves
	}
	if len(profiles) != len(names) || (duplicates != nil && len(duplicates) != len(names)) {
		return nil, ErrLengthMismatch
	}

	l := len(profiles[0])
	for _, p := range profiles {
		if len(p) != l {
			return nil, ErrLengthMismatch
		}
	}

	if err := cfg.Validate(len(names), l); err != nil {
		return nil, err
	}

	t := &Tree{
		Nodes:       make([]*Node, 0, 2*len(names)-1),
		ActiveCount: len(names),
		Lambda:      0.5,
		Config:      cfg,
		siteLen:     l,
	}

	for i, name := range names {
		var dup []string
		if duplicates != nil {
			dup = duplicates[i]
		}
		t.Nodes = append(t.Nodes, newLeaf(i, name, profiles[i], dup))
	}

	t.RefreshT()

	return t, nil
}

// ActiveIndices returns the indices of all currently active nodes, in
// arena order. O(n) over the whole arena; callers that need this
// repeatedly within a single pass should cache the result.
func (t *Tree) ActiveIndices() []int {
	out := make([]int, 0, t.ActiveCount)
	for _, n := range t.Nodes {
		if n.Active {
			out = append(out, n.Index)
		}
	}

	return out
}

// RefreshT rebuilds T from scratch as the unweighted mean of every
// active node's profile. Called once at construction and every
// Config.RefreshPeriod joins to bound accumulated floating-point drift.
func (t *Tree) RefreshT() {
	sum := profile.New(t.siteLen)
	var count int
	var sumUp float64
	for _, n := range t.Nodes {
		if !n.Active {
			continue
		}
		count++
		sumUp += n.UpDistance
		for i := range sum {
			sum[i][0] += n.Profile[i][0]
			sum[i][1] += n.Profile[i][1]
			sum[i][2] += n.Profile[i][2]
			sum[i][3] += n.Profile[i][3]
		}
	}
	if count > 0 {
		inv := 1.0 / float64(count)
		for i := range sum {
			sum[i][0] *= inv
			sum[i][1] *= inv
			sum[i][2] *= inv
			sum[i][3] *= inv
		}
	}
	t.T = sum
	t.SumUpDistance = sumUp
	t.joinsSinceRefresh = 0
	t.Stats.TRefreshes++
}

// updateTAfterJoin incrementally folds a join into T: two profiles
// leave the active set, one (the new internal node's) enters, and the
// mean is renormalized over the new active count. Every
// Config.RefreshPeriod joins this is superseded by a full RefreshT to
// bound drift.
func (t *Tree) updateTAfterJoin(left, right, newNode profile.Profile, nBefore, nAfter int) {
	for i := range t.T {
		sumCell := [4]float64{
			t.T[i][0] * float64(nBefore),
			t.T[i][1] * float64(nBefore),
			t.T[i][2] * float64(nBefore),
			t.T[i][3] * float64(nBefore),
		}
		for a := 0; a < 4; a++ {
			sumCell[a] += -left[i][a] - right[i][a] + newNode[i][a]
		}
		inv := 1.0 / float64(nAfter)
		t.T[i] = [4]float64{sumCell[0] * inv, sumCell[1] * inv, sumCell[2] * inv, sumCell[3] * inv}
	}

	t.joinsSinceRefresh++
	if t.joinsSinceRefresh >= t.Config.RefreshPeriod {
		t.RefreshT()
	}
}

// Join creates a new internal node from two currently active children,
// updates T, and flips the children inactive. lambda is the BIONJ
// blending weight used to average the children's profiles into the new
// node's profile; it also becomes the Tree's new Lambda going forward.
//
// Returns the new node's index. Panics if left or right is not
// currently active: that would violate the active-set invariant and is
// a programmer error in the caller, fatal by design.
func (t *Tree) Join(left, right int, lambda float64) int {
	lNode := t.Nodes[left]
	rNode := t.Nodes[right]
	if !lNode.Active || !rNode.Active {
		panic(fmt.Sprintf("tree: Join called with inactive node %d or %d", left, right))
	}

	avg, err := profile.Average(lNode.Profile, rNode.Profile, lambda)
	if err != nil {
		// Profiles were built from the same aligned input; a length
		// mismatch here can only be a programmer error upstream.
		panic(err)
	}

	du, _ := profile.Distance(lNode.Profile, rNode.Profile)
	upDistance := du / 2

	newIndex := len(t.Nodes)
	name := "(" + lNode.Name + "," + rNode.Name + ")"
	newNode := newInternal(newIndex, name, avg, left, right, upDistance, lNode.LeafCount+rNode.LeafCount)
	t.Nodes = append(t.Nodes, newNode)

	nBefore := t.ActiveCount
	lNode.Active = false
	rNode.Active = false
	lNode.Parent = newIndex
	rNode.Parent = newIndex
	t.ActiveCount = nBefore - 1

	t.updateTAfterJoin(lNode.Profile, rNode.Profile, avg, nBefore, t.ActiveCount)
	t.SumUpDistance += -lNode.UpDistance - rNode.UpDistance + upDistance
	t.Lambda = lambda
	t.Stats.Joins++

	t.vlogf(1, "join: %d + %d -> %d (active=%d)\n", left, right, newIndex, t.ActiveCount)

	return newIndex
}

// Root returns the index of the unique node with no parent, valid only
// once a single active node remains. Panics if called with more than
// one active node, or none.
func (t *Tree) Root() int {
	root := NoIndex
	for _, n := range t.Nodes {
		if n.Active {
			if root != NoIndex {
				panic("tree: Root called before topology converged to one active node")
			}
			root = n.Index
		}
	}
	if root == NoIndex {
		panic("tree: Root called on an empty tree")
	}

	return root
}

// vlogf emits a diagnostic line when the configured verbosity is at
// least level, in the style of flow.EdmondsKarp/Dinic's Verbose-gated
// fmt.Printf tracing; never affects results.
func (t *Tree) vlogf(level int, format string, args ...interface{}) {
	if t.Config.Verbose >= level {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// VLogf exposes vlogf to sibling packages (join, nni, tophits) that
// drive this Tree but live outside package tree.
func (t *Tree) VLogf(level int, format string, args ...interface{}) {
	t.vlogf(level, format, args...)
}
