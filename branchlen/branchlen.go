package branchlen

import (
	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

// Assign computes the final edge length for every parent/child pair in
// a converged tree and stores the same value on both sibling endpoints
// (tree.Node.BranchLength). Call once, after NNI refinement has run.
//
// Each internal node P with children n1, n2 contributes one shared
// edge length, chosen by whether n1 and n2 are themselves leaves or
// internal nodes:
//
//   - leaf, leaf: the JC-corrected distance between them directly.
//   - leaf, internal (with children L, R): triangulate through L and R.
//   - internal, internal (children L1,R1 and L2,R2): the mean of the
//     four cross-pair distances minus half the sum of the two
//     within-pair distances.
//
// Negative results (possible with noisy input profiles) are clamped to
// zero; a negative edge length has no biological meaning.
func Assign(t *tree.Tree) error {
	for _, n := range t.Nodes {
		if n.Leaf {
			continue
		}

		length, err := edgeLength(t, n.Left, n.Right)
		if err != nil {
			return err
		}
		if length < 0 {
			length = 0
		}

		t.Nodes[n.Left].BranchLength = length
		t.Nodes[n.Right].BranchLength = length
	}

	return nil
}

func jc(t *tree.Tree, a, b int) (float64, error) {
	na := t.Nodes[a]
	nb := t.Nodes[b]

	du, err := profile.Uncorrected(na.Profile, nb.Profile, na.UpDistance, nb.UpDistance)
	if err != nil {
		return 0, err
	}

	return profile.JCCorrect(du), nil
}

func edgeLength(t *tree.Tree, n1, n2 int) (float64, error) {
	node1 := t.Nodes[n1]
	node2 := t.Nodes[n2]

	switch {
	case node1.Leaf && node2.Leaf:
		return jc(t, n1, n2)

	case node1.Leaf != node2.Leaf:
		leaf, internal := n1, n2
		if node2.Leaf {
			leaf, internal = n2, n1
		}
		in := t.Nodes[internal]

		dL, err := jc(t, leaf, in.Left)
		if err != nil {
			return 0, err
		}
		dR, err := jc(t, leaf, in.Right)
		if err != nil {
			return 0, err
		}
		dLR, err := jc(t, in.Left, in.Right)
		if err != nil {
			return 0, err
		}

		return (dL + dR - dLR) / 2, nil

	default:
		in1 := t.Nodes[n1]
		in2 := t.Nodes[n2]

		cross := [4][2]int{
			{in1.Left, in2.Left}, {in1.Left, in2.Right},
			{in1.Right, in2.Left}, {in1.Right, in2.Right},
		}
		var sumCross float64
		for _, p := range cross {
			d, err := jc(t, p[0], p[1])
			if err != nil {
				return 0, err
			}
			sumCross += d
		}

		within1, err := jc(t, in1.Left, in1.Right)
		if err != nil {
			return 0, err
		}
		within2, err := jc(t, in2.Left, in2.Right)
		if err != nil {
			return 0, err
		}

		return sumCross/4 - (within1+within2)/2, nil
	}
}
