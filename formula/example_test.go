package formula_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzymf/formula"
	"github.com/katalvlaran/fuzzymf/membership"
)

// ExampleDerive derives the piecewise definition of the canonical
// Triangle(1, 3, 5): guard, substituted expression, and the numeric value
// for branches that fold to a constant.
func ExampleDerive() {
	tri, err := membership.NewTriangle(1, 3, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	f, err := formula.Derive(tri)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, br := range f.Branches {
		if br.Value != nil {
			fmt.Printf("%s: %s (constant %.2g)\n", br.Condition, br.Raw, *br.Value)

			continue
		}
		fmt.Printf("%s: %s\n", br.Condition, br.Raw)
	}
	// Output:
	// x <= 1 or x >= 5: 0 (constant 0)
	// 1 < x < 3: 0 + (1 - 0)/(3 - 1)*(x - 1)
	// 3 <= x < 5: 1 - (1 - 0)/(5 - 3)*(x - 3)
}
