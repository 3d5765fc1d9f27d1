package join_test

import (
	"fmt"

	"github.com/minevo/njtree/join"
	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

func ExampleBuildInitialTopology() {
	names := []string{"A", "B", "C"}
	seqs := []string{"AAAA", "AAAT", "TTTT"}

	profiles := make([]profile.Profile, len(seqs))
	for i, s := range seqs {
		profiles[i] = profile.OneHot(s)
	}

	t, err := tree.NewLeaves(names, profiles, nil, tree.DefaultConfig(len(names)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := join.BuildInitialTopology(t); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(t.ActiveCount)
	// Output: 1
}
