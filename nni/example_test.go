package nni_test

import (
	"fmt"

	"github.com/minevo/njtree/join"
	"github.com/minevo/njtree/nni"
	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

func ExampleRun() {
	names := []string{"A", "B", "C", "D", "E"}
	seqs := []string{"AAAAAAAA", "AAAAAAAC", "CCCCCCCC", "CCCCCCCG", "GGGGGGGG"}

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
	if err := nni.Run(t); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(t.Stats.NNISwapsByRound) == t.Config.NNIRounds)
	// Output: true
}
