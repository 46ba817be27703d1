package graphsearch_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/internal/fixture"
)

// routes has two ways from A to K: A-B-C-D-K (4 steps) and A-E-F-K (3 steps).
func routes() *fixture.Graph {
	return fixture.New("A").
		Edge("A", "B").Edge("B", "C").Edge("C", "D").Edge("D", "K").
		Edge("A", "E").Edge("E", "F").Edge("F", "K").
		Goal("K")
}

// ExampleBreadthFirst finds the 3-step route and shows the FIFO expansion order.
func ExampleBreadthFirst() {
	var expanded []any
	res, err := graphsearch.BreadthFirst[string, string](routes(),
		graphsearch.WithOnExpand(func(e graphsearch.Event) error {
			expanded = append(expanded, e.State)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.States, res.Len())
	fmt.Println(expanded)
	// Output:
	// [A E F K] 3
	// [A B E C F D]
}

// ExampleDepthFirst follows the most recently generated branch first.
func ExampleDepthFirst() {
	var expanded []any
	res, err := graphsearch.DepthFirst[string, string](routes(),
		graphsearch.WithOnExpand(func(e graphsearch.Event) error {
			expanded = append(expanded, e.State)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.States)
	fmt.Println(expanded)
	// Output:
	// [A E F K]
	// [A E F]
}

// ExampleBestFirst lets the heuristic pull the search down the longer branch.
func ExampleBestFirst() {
	p := routes().Heur("B", 1).Heur("C", 1).Heur("D", 1).Heur("E", 5).Heur("F", 5)
	res, err := graphsearch.BestFirst[string, string](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.States, res.Strategy)
	// Output:
	// [A B C D K] best-first
}
