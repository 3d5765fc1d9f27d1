package njtree

import (
	"github.com/minevo/njtree/branchlen"
	"github.com/minevo/njtree/join"
	"github.com/minevo/njtree/newick"
	"github.com/minevo/njtree/nni"
	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

// Result is the outcome of a completed Build: the final tree state (for
// callers that want Stats or direct node access) and its Newick
// serialization.
type Result struct {
	Tree   *tree.Tree
	Newick string
}

// Build runs the full pipeline — profile construction, initial topology
// via the join engine, NNI refinement, branch-length assignment, and
// Newick emission — given already-deduplicated, already-aligned leaf
// sequences.
//
// duplicates, if non-nil, is a parallel slice: duplicates[i] lists the
// extra names sequences[i] stands in for (a nil or empty entry means no
// duplicates for that leaf). opts override tree.DefaultConfig's
// top-hits size, T-refresh period, NNI round count, and diagnostic
// verbosity.
func Build(names, sequences []string, duplicates [][]string, opts ...tree.Option) (*Result, error) {
	profiles := make([]profile.Profile, len(sequences))
	for i, seq := range sequences {
		profiles[i] = profile.OneHot(seq)
	}

	cfg := tree.DefaultConfig(len(names), opts...)
	t, err := tree.NewLeaves(names, profiles, duplicates, cfg)
	if err != nil {
		return nil, err
	}

	if err := join.BuildInitialTopology(t); err != nil {
		return nil, err
	}
	if err := nni.Run(t); err != nil {
		return nil, err
	}
	if err := branchlen.Assign(t); err != nil {
		return nil, err
	}

	return &Result{Tree: t, Newick: newick.Render(t)}, nil
}

// BuildNewick is a convenience wrapper around Build that returns only
// the Newick string.
func BuildNewick(names, sequences []string, duplicates [][]string, opts ...tree.Option) (string, error) {
	result, err := Build(names, sequences, duplicates, opts...)
	if err != nil {
		return "", err
	}

	return result.Newick, nil
}
