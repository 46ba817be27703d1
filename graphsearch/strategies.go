package graphsearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/node"
	"github.com/katalvlaran/statespace/problem"
)

// BreadthFirst searches with a FIFO frontier. The returned solution has the fewest
// actions among all solutions, because states are discovered in non-decreasing depth.
func BreadthFirst[S comparable, A comparable](p problem.Problem[S, A], opts ...Option) (*Result[S, A], error) {
	return Search(p, frontier.NewQueue[*node.Node[S, A]](), withDefaults(StrategyBreadthFirst, opts)...)
}

// DepthFirst searches with a LIFO frontier: the last action of the most recently
// expanded node is tried first. Solutions are not guaranteed to be shortest.
func DepthFirst[S comparable, A comparable](p problem.Problem[S, A], opts ...Option) (*Result[S, A], error) {
	return Search(p, frontier.NewStack[*node.Node[S, A]](), withDefaults(StrategyDepthFirst, opts)...)
}

// BestFirst searches greedily by ascending problem.Heuristic, oldest node first on ties.
// A negative heuristic fails the search with problem.ErrInvalidHeuristic.
func BestFirst[S comparable, A comparable](p problem.Problem[S, A], opts ...Option) (*Result[S, A], error) {
	opts = append(withDefaults(StrategyBestFirst, opts), WithHeuristicPriority())

	return Search(p, frontier.NewPriorityQueue[*node.Node[S, A]](), opts...)
}

// Run dispatches to the built-in search named by strategy.
func Run[S comparable, A comparable](p problem.Problem[S, A], strategy Strategy, opts ...Option) (*Result[S, A], error) {
	switch strategy {
	case StrategyBreadthFirst:
		return BreadthFirst(p, opts...)
	case StrategyDepthFirst:
		return DepthFirst(p, opts...)
	case StrategyBestFirst:
		return BestFirst(p, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// withDefaults prepends the strategy marker so caller options still apply last.
func withDefaults(s Strategy, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+2)
	out = append(out, withStrategy(s))

	return append(out, opts...)
}

func isNoSolution(err error) bool { return errors.Is(err, ErrNoSolution) }

func isLimit(err error) bool { return errors.Is(err, ErrExpansionLimit) }
