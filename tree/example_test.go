package tree_test

import (
	"fmt"

	"github.com/minevo/njtree/profile"
	"github.com/minevo/njtree/tree"
)

func ExampleTree_Join() {
	names := []string{"A", "B", "C"}
	profiles := []profile.Profile{
		profile.OneHot("AAAA"),
		profile.OneHot("AAAT"),
		profile.OneHot("TTTT"),
	}
	tr, _ := tree.NewLeaves(names, profiles, nil, tree.DefaultConfig(3))
	tr.Join(0, 1, 0.5)
	fmt.Println(tr.ActiveCount)
	// Output: 2
}
