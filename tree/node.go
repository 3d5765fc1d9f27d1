package tree

import "github.com/minevo/njtree/profile"

// NoIndex marks an undefined node reference: a leaf's Left/Right, or the
// root's Parent.
const NoIndex = -1

// Node is one entry of the arena. Its Index equals its position in
// Tree.Nodes for its whole lifetime; it is created once, at leaf
// initialization or at a join, and never destroyed.
type Node struct {
	Index int

	// Name is the leaf's input name, or for an internal node a
	// join-trace string built from its children's names. Purely
	// cosmetic/diagnostic; never parsed back by the engine.
	Name string

	Profile profile.Profile

	Leaf   bool
	Active bool

	Parent int
	Left   int
	Right  int

	BranchLength float64

	// UpDistance is u(node): 0 for leaves, Δ(left,right)/2 for internal
	// nodes (BIONJ's updistance). Computed at creation, and recomputed
	// for internal nodes by package nni after each refinement sweep.
	UpDistance float64

	// LeafCount is the number of original leaves spanned by this node's
	// subtree: 1 for a leaf, Left.LeafCount+Right.LeafCount for an
	// internal node. Used by the BIONJ weight update as an
	// inverse-variance proxy.
	LeafCount int

	// TopHits is this node's bounded candidate-partner list, lowest
	// nj_criterion first. Entries may reference nodes that have since
	// gone inactive; callers must filter lazily.
	TopHits []int

	// TopHitsAge counts joins that have occurred since this list was
	// last (re)built; drives the refresh rule in package tophits.
	TopHitsAge int

	// BestPartner/BestCriterion are the FastNJ best-hit cache: the best
	// partner seen so far and its criterion value. BestPartner ==
	// NoIndex means no candidate has been recorded yet.
	BestPartner   int
	BestCriterion float64

	// Duplicates holds the names of input sequences identical to this
	// leaf, populated by the deduplication step upstream of this engine;
	// rendered as a multifurcation group at Newick emit time.
	Duplicates []string
}

func newLeaf(index int, name string, p profile.Profile, duplicates []string) *Node {
	return &Node{
		Index:         index,
		Name:          name,
		Profile:       p,
		Leaf:          true,
		Active:        true,
		Parent:        NoIndex,
		Left:          NoIndex,
		Right:         NoIndex,
		UpDistance:    0,
		LeafCount:     1,
		BestPartner:   NoIndex,
		BestCriterion: 0,
		Duplicates:    duplicates,
	}
}

func newInternal(index int, name string, p profile.Profile, left, right int, upDistance float64, leafCount int) *Node {
	return &Node{
		Index:         index,
		Name:          name,
		Profile:       p,
		Leaf:          false,
		Active:        true,
		Parent:        NoIndex,
		Left:          left,
		Right:         right,
		UpDistance:    upDistance,
		LeafCount:     leafCount,
		BestPartner:   NoIndex,
		BestCriterion: 0,
	}
}
