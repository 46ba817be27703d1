// Package graphsearch implements one generic graph-search driver and its three
// classic instantiations over any problem.Problem.
//
// What
//
//   - Search(p, f, opts...) runs graph search with the ordering policy of frontier f.
//   - BreadthFirst: FIFO frontier; returns a solution with the fewest actions.
//   - DepthFirst:   LIFO frontier; the most recently generated node is explored first.
//   - BestFirst:    priority frontier keyed by p.Heuristic, ties broken by insertion order.
//   - Run(p, strategy, opts...) dispatches by Strategy, for configuration-driven callers.
//
// Every strategy deduplicates by state: a state enters the frontier at most once.
// That makes the search terminate on every finite state space, including domains
// with reversible actions such as pouring water back and forth.
//
// Goal test
//
//	The goal predicate is evaluated when a node leaves the frontier. If the initial
//	state already is a goal, every strategy returns a zero-action solution.
//
// Results
//
//	Result carries the goal node, the action sequence, the state sequence (both ends
//	included) and Stats{Expanded, Generated, MaxFrontier}. Once Search returns, the
//	frontier and visited set are released; only the ancestors of the goal node stay
//	reachable through Result.Node.
//
// Options
//
//   - WithContext(ctx)        parent context of the tracing span (no cancellation).
//   - WithLogger(l)           slog logger for debug records.
//   - WithOnEnqueue(fn)       hook after each frontier insertion.
//   - WithOnExpand(fn)        hook before each expansion; returning an error aborts.
//   - WithMaxExpansions(n)    stop with ErrExpansionLimit after n expansions (n>0).
//   - WithHeuristicPriority() push nodes with the heuristic as priority (BestFirst sets it).
//
// Errors
//
//   - problem.ErrNilProblem, ErrNilFrontier for missing inputs.
//   - ErrOptionViolation for invalid options.
//   - ErrNoSolution when the frontier runs dry; the Result still carries Stats.
//   - ErrExpansionLimit when WithMaxExpansions stops the search; Result carries Stats.
//   - problem.ErrInvalidAction, problem.ErrInvalidHeuristic (wrapped) for broken problems.
//   - Wrapped OnExpand hook errors.
//
// Concurrency
//
//	A search runs synchronously on the calling goroutine. Frontier and visited set
//	belong to one invocation, so concurrent searches over the same read-only Problem
//	are safe.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E) for BreadthFirst/DepthFirst, O((V + E) log V) for BestFirst.
//   - Memory: O(V) for the visited set and the frontier.
package graphsearch
