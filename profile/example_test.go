package profile_test

import (
	"fmt"

	"github.com/minevo/njtree/profile"
)

func ExampleDistance() {
	a := profile.OneHot("AAAA")
	b := profile.OneHot("AAAT")
	du, _ := profile.Distance(a, b)
	fmt.Printf("%.2f\n", du)
	// Output: 0.25
}

func ExampleJCCorrect() {
	fmt.Printf("%.3f\n", profile.JCCorrect(0))
	fmt.Printf("%.3f\n", profile.JCCorrect(0.5))
	fmt.Printf("%.3f\n", profile.JCCorrect(0.9))
	// Output:
	// 0.000
	// 0.824
	// 3.000
}
