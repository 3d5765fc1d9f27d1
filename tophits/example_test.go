package tophits_test

import (
	"fmt"

	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tophits"
	"github.com/minevo/njtree/tree"
)

func ExampleInit() {
	names := []string{"A", "B", "C", "D"}
	profiles := []profile.Profile{
		profile.OneHot("AAAA"),
		profile.OneHot("AAAT"),
		profile.OneHot("TTTT"),
		profile.OneHot("TTTA"),
	}
	tr, _ := tree.NewLeaves(names, profiles, nil, tree.DefaultConfig(len(names)))
	_ = tophits.Init(tr)
	fmt.Println(len(tr.Nodes[0].TopHits) > 0)
	// Output: true
}
