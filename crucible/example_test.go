// Package crucible_test provides examples demonstrating the run-constrained search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package crucible_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleMinimumCost computes both crucible configurations on the 13×13 city.
func ExampleMinimumCost() {
	g, err := gridgraph.ParseString(exampleCity)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ordinary, _ := crucible.MinimumCost(g, 0, 3)
	ultra, _ := crucible.MinimumCost(g, 4, 10)
	fmt.Println("ordinary:", ordinary)
	fmt.Println("ultra:", ultra)
	// Output:
	// ordinary: 102
	// ultra: 94
}

// ExampleSearch_path shows path reconstruction on a tiny grid where the
// cheap route goes down first.
//
//	1 9
//	1 1
func ExampleSearch_path() {
	g, _ := gridgraph.ParseString("19\n11\n")

	res, err := crucible.Search(g, crucible.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("cells:", res.Cells())
	// Output:
	// cost: 2
	// cells: [(0,0) (1,0) (1,1)]
}

// ExampleSearch_unreachable shows the explicit failure outcome: the goal is
// one cell away, but an ultra crucible must travel four before stopping.
func ExampleSearch_unreachable() {
	g, _ := gridgraph.ParseString("11\n")

	_, err := crucible.Search(g, crucible.WithRunBounds(4, 10))
	fmt.Println(err)
	// Output:
	// crucible: no path satisfies the run constraints
}

// ExampleSolveAll runs both standard parts concurrently over one grid.
func ExampleSolveAll() {
	g, _ := gridgraph.ParseString(ultraTrap)

	out, err := crucible.SolveAll(context.Background(), g, crucible.Parts())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, o := range out {
		fmt.Printf("%s = %d\n", o.Config.Name, o.Result.Cost)
	}
	// Output:
	// part1 = 59
	// part2 = 71
}
