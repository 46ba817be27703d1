package graphsearch

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/node"
	"github.com/katalvlaran/statespace/problem"
)

// searcher encapsulates the mutable state of one search invocation.
type searcher[S comparable, A comparable] struct {
	p       problem.Problem[S, A]
	f       frontier.Frontier[*node.Node[S, A]]
	opts    Options
	visited map[S]struct{}
	stats   Stats
}

// Search runs graph search on p, taking nodes out of f in f's order.
//
//  1. f receives the root node; the visited set receives the initial state.
//  2. If f is empty the search fails with ErrNoSolution.
//  3. The next node is popped; if it satisfies the goal it is returned.
//  4. Otherwise it is expanded and every child whose state was never visited is
//     marked visited and pushed.
//  5. Back to 2.
//
// States are deduplicated at insertion time, so no state enters f twice.
// Returns problem.ErrNilProblem, ErrNilFrontier, ErrOptionViolation, ErrNoSolution,
// ErrExpansionLimit, wrapped problem contract errors, or a wrapped OnExpand error.
func Search[S comparable, A comparable](
	p problem.Problem[S, A],
	f frontier.Frontier[*node.Node[S, A]],
	opts ...Option,
) (*Result[S, A], error) {
	if p == nil {
		return nil, problem.ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := telemetry.StartSpan(o.Ctx, "graphsearch.Search",
		attribute.String("search.strategy", o.strategy.String()),
	)
	logger := telemetry.LoggerWithTrace(ctx, o.Logger)

	s := &searcher[S, A]{
		p:       p,
		f:       f,
		opts:    o,
		visited: make(map[S]struct{}),
	}
	goal, err := s.run()
	res := &Result[S, A]{Strategy: o.strategy, Stats: s.stats}
	if goal != nil {
		res.Node = goal
		res.Actions = goal.Solution()
		res.States = goal.Path()
	}

	outcome := telemetry.OutcomeSolved
	switch {
	case err == nil:
	case goal == nil && isNoSolution(err):
		outcome = telemetry.OutcomeNoSolution
	case goal == nil && isLimit(err):
		outcome = telemetry.OutcomeLimit
	default:
		outcome = telemetry.OutcomeError
	}
	telemetry.RecordSearch(o.strategy.String(), outcome, s.stats.Expanded, res.Len())
	telemetry.EndSpan(span, err,
		attribute.Int("search.expanded", s.stats.Expanded),
		attribute.Int("search.generated", s.stats.Generated),
		attribute.Int("search.solution_length", res.Len()),
	)
	logger.Debug("graphsearch: finished",
		slog.String("strategy", o.strategy.String()),
		slog.String("outcome", outcome),
		slog.Int("expanded", s.stats.Expanded),
		slog.Int("generated", s.stats.Generated),
		slog.Int("max_frontier", s.stats.MaxFrontier),
		slog.Int("solution_length", res.Len()),
	)

	switch outcome {
	case telemetry.OutcomeSolved:
		return res, nil
	case telemetry.OutcomeNoSolution, telemetry.OutcomeLimit:
		return res, err
	default:
		return nil, err
	}
}

// run executes the main loop and returns the goal node.
func (s *searcher[S, A]) run() (*node.Node[S, A], error) {
	root := node.NewRoot[S, A](s.p.Initial())
	s.visited[root.State] = struct{}{}
	if err := s.push(root); err != nil {
		return nil, err
	}

	for {
		n, ok := s.f.Pop()
		if !ok {
			return nil, ErrNoSolution
		}
		if s.p.IsGoal(n.State) {
			return n, nil
		}
		if s.opts.MaxExpansions > 0 && s.stats.Expanded >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.stats.Expanded)
		}
		if err := s.expand(n); err != nil {
			return nil, err
		}
	}
}

// expand generates the children of n and pushes the unvisited ones.
func (s *searcher[S, A]) expand(n *node.Node[S, A]) error {
	s.stats.Expanded++
	if err := s.opts.OnExpand(s.event(n, 0)); err != nil {
		return fmt.Errorf("graphsearch: OnExpand error at %v: %w", n.State, err)
	}

	children, err := n.Expand(s.p)
	if err != nil {
		return fmt.Errorf("graphsearch: %w", err)
	}
	s.stats.Generated += len(children)
	for _, c := range children {
		if _, seen := s.visited[c.State]; seen {
			continue
		}
		s.visited[c.State] = struct{}{}
		if err = s.push(c); err != nil {
			return err
		}
	}

	return nil
}

// push inserts n with its priority and fires OnEnqueue.
func (s *searcher[S, A]) push(n *node.Node[S, A]) error {
	priority := 0
	if s.opts.Informed {
		h, err := problem.CheckedHeuristic(s.p, n.State)
		if err != nil {
			return fmt.Errorf("graphsearch: %w", err)
		}
		priority = h
	}
	s.f.Push(n, priority)
	if l := s.f.Len(); l > s.stats.MaxFrontier {
		s.stats.MaxFrontier = l
	}
	s.opts.OnEnqueue(s.event(n, priority))

	return nil
}

func (s *searcher[S, A]) event(n *node.Node[S, A], priority int) Event {
	return Event{
		State:    n.State,
		Depth:    n.Depth,
		Priority: priority,
		Frontier: s.f.Len(),
		Expanded: s.stats.Expanded,
	}
}
