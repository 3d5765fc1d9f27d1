package criterion

import (
	"testing"

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

	return tr
}

func TestNJCriterionPrefersCloserPair(t *testing.T) {
	// Four leaves: with only three, every pair's criterion is identical
	// (-(d_AB + d_AC + d_BC)), so no pair can be strictly preferred.
	tr := buildTree(t, []string{"A", "B", "C", "D"}, []string{"AAAA", "AAAT", "TTTT", "TTTA"})
	ab, err := NJCriterion(tr, 0, 1)
	require.NoError(t, err)
	ac, err := NJCriterion(tr, 0, 2)
	require.NoError(t, err)
	bc, err := NJCriterion(tr, 1, 2)
	require.NoError(t, err)

	assert.Less(t, ab, ac)
	assert.Less(t, ab, bc)
}

func TestOutDistanceTooFewActive(t *testing.T) {
	tr := buildTree(t, []string{"A"}, []string{"AAAA"})
	_, err := OutDistance(tr, 0)
	assert.ErrorIs(t, err, ErrTooFewActive)
}

func TestOutDistanceTwoNodeCollapse(t *testing.T) {
	tr := buildTree(t, []string{"A", "B"}, []string{"AAAA", "TTTT"})
	r0, err := OutDistance(tr, 0)
	require.NoError(t, err)
	r1, err := OutDistance(tr, 1)
	require.NoError(t, err)
	// With n=2 the denominator collapses; both out-distances reduce to
	// the same numerator form and are symmetric for a 2-leaf tree.
	assert.InDelta(t, r0, r1, 1e-9)
}
