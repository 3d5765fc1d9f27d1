package branchlen

import (
	"testing"

	"github.com/minevo/njtree/join"
	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, names []string, seqs []string) *tree.Tree {
	t.Helper()
	profiles := make([]profile.Profile, len(seqs))
	for i, s := range seqs {
		profiles[i] = profile.OneHot(s)
	}
	tr, err := tree.NewLeaves(names, profiles, nil, tree.DefaultConfig(len(names)))
	require.NoError(t, err)
	require.NoError(t, join.BuildInitialTopology(tr))

	return tr
}

func TestAssignLeafLeafEdge(t *testing.T) {
	tr := buildTree(t, []string{"A", "B", "C"}, []string{"AAAA", "AAAT", "TTTT"})
	require.NoError(t, Assign(tr))

	for _, n := range tr.Nodes {
		if n.Leaf {
			assert.GreaterOrEqual(t, n.BranchLength, 0.0)
		}
	}
}

func TestAssignSetsBothSiblingsEqually(t *testing.T) {
	tr := buildTree(t, []string{"A", "B", "C", "D"}, []string{"AAAA", "AAAT", "TTTT", "TTTA"})
	require.NoError(t, Assign(tr))

	for _, n := range tr.Nodes {
		if n.Leaf {
			continue
		}
		left := tr.Nodes[n.Left]
		right := tr.Nodes[n.Right]
		assert.Equal(t, left.BranchLength, right.BranchLength)
	}
}

func TestAssignNoNegativeLengths(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	seqs := []string{
		"AAAAAAAA", "AAAAAAAC", "CCCCCCCC",
		"CCCCCCCG", "GGGGGGGG", "GGGGGGGT",
	}
	tr := buildTree(t, names, seqs)
	require.NoError(t, Assign(tr))

	for _, n := range tr.Nodes {
		assert.GreaterOrEqual(t, n.BranchLength, 0.0)
	}
}

// wantJC independently recomputes the JC-corrected distance between two
// nodes from profile.Uncorrected + profile.JCCorrect directly, folding
// in each node's own UpDistance. jc must agree with this for any pair
// where one side is an internal node with a nonzero UpDistance.
func wantJC(t *testing.T, tr *tree.Tree, a, b int) float64 {
	t.Helper()
	na := tr.Nodes[a]
	nb := tr.Nodes[b]
	du, err := profile.Uncorrected(na.Profile, nb.Profile, na.UpDistance, nb.UpDistance)
	require.NoError(t, err)

	return profile.JCCorrect(du)
}

// buildManual constructs leaves via tree.NewLeaves and wires up the
// given joins directly (bypassing join.BuildInitialTopology), so the
// test controls the exact topology and can place an internal node with
// a nonzero UpDistance wherever it needs one.
func buildManual(t *testing.T, names []string, seqs []string) *tree.Tree {
	t.Helper()
	profiles := make([]profile.Profile, len(seqs))
	for i, s := range seqs {
		profiles[i] = profile.OneHot(s)
	}
	tr, err := tree.NewLeaves(names, profiles, nil, tree.DefaultConfig(len(names)))
	require.NoError(t, err)

	return tr
}

func TestAssignLeafInternalEdgeUsesChildUpDistance(t *testing.T) {
	names := []string{"Q", "R", "S", "P"}
	seqs := []string{"AAAA", "AAAG", "AAGG", "AGGG"}
	tr := buildManual(t, names, seqs)

	g1 := tr.Join(0, 1, 0.5) // Q,R -> internal node with nonzero UpDistance
	require.NotZero(t, tr.Nodes[g1].UpDistance)

	i := tr.Join(g1, 2, 0.5) // G1,S -> internal node I, children (G1 internal, S leaf)
	tr.Join(3, i, 0.5)       // P,I -> leaf-internal edge under test

	require.NoError(t, Assign(tr))

	left, right := tr.Nodes[i].Left, tr.Nodes[i].Right
	leftJC := wantJC(t, tr, 3, left)
	rightJC := wantJC(t, tr, 3, right)
	withinJC := wantJC(t, tr, left, right)
	want := (leftJC + rightJC - withinJC) / 2
	if want < 0 {
		want = 0
	}

	assert.InDelta(t, want, tr.Nodes[3].BranchLength, 1e-9)
	assert.InDelta(t, want, tr.Nodes[i].BranchLength, 1e-9)
}

func TestAssignInternalInternalEdgeUsesBothChildUpDistances(t *testing.T) {
	names := []string{"Q", "R", "S", "U", "V", "W"}
	seqs := []string{"AAAA", "AAAG", "AAGG", "GGAA", "GGAG", "GGGA"}
	tr := buildManual(t, names, seqs)

	g1 := tr.Join(0, 1, 0.5) // Q,R
	i := tr.Join(g1, 2, 0.5) // G1,S
	g2 := tr.Join(3, 4, 0.5) // U,V
	j := tr.Join(g2, 5, 0.5) // G2,W

	require.NotZero(t, tr.Nodes[g1].UpDistance)
	require.NotZero(t, tr.Nodes[g2].UpDistance)

	tr.Join(i, j, 0.5)
	require.NoError(t, Assign(tr))

	l1, r1 := tr.Nodes[i].Left, tr.Nodes[i].Right
	l2, r2 := tr.Nodes[j].Left, tr.Nodes[j].Right

	within1 := wantJC(t, tr, l1, r1)
	within2 := wantJC(t, tr, l2, r2)
	cross := wantJC(t, tr, l1, l2) + wantJC(t, tr, l1, r2) + wantJC(t, tr, r1, l2) + wantJC(t, tr, r1, r2)
	want := cross/4 - (within1+within2)/2
	if want < 0 {
		want = 0
	}

	assert.InDelta(t, want, tr.Nodes[i].BranchLength, 1e-9)
	assert.InDelta(t, want, tr.Nodes[j].BranchLength, 1e-9)
}
