// Package graphsearch defines the options, events and results of the generic
// graph-search driver.
package graphsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/statespace/node"
)

// Sentinel errors for graph-search execution.
var (
	// ErrNoSolution is returned when the frontier is exhausted without reaching a goal.
	// It is an outcome, not a fault.
	ErrNoSolution = errors.New("graphsearch: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphsearch: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops the search.
	ErrExpansionLimit = errors.New("graphsearch: expansion limit reached")

	// ErrNilFrontier is returned when Search is called without a frontier.
	ErrNilFrontier = errors.New("graphsearch: frontier is nil")

	// ErrUnknownStrategy is returned by ParseStrategy and Run for unsupported names.
	ErrUnknownStrategy = errors.New("graphsearch: unknown strategy")
)

// Strategy names the frontier ordering a search was run with.
type Strategy int

const (
	// StrategyCustom marks a Search over a caller-supplied frontier.
	StrategyCustom Strategy = iota
	// StrategyBreadthFirst orders the frontier FIFO.
	StrategyBreadthFirst
	// StrategyDepthFirst orders the frontier LIFO.
	StrategyDepthFirst
	// StrategyBestFirst orders the frontier by ascending heuristic, oldest first on ties.
	StrategyBestFirst
)

// Strategies lists the built-in strategies in a stable order.
var Strategies = []Strategy{StrategyBreadthFirst, StrategyDepthFirst, StrategyBestFirst}

func (s Strategy) String() string {
	switch s {
	case StrategyBreadthFirst:
		return "breadth-first"
	case StrategyDepthFirst:
		return "depth-first"
	case StrategyBestFirst:
		return "best-first"
	default:
		return "custom"
	}
}

// ParseStrategy accepts the String form or the short aliases bfs, dfs, best and greedy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadth_first":
		return StrategyBreadthFirst, nil
	case "dfs", "depth-first", "depth_first":
		return StrategyDepthFirst, nil
	case "best", "best-first", "best_first", "greedy":
		return StrategyBestFirst, nil
	default:
		return StrategyCustom, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Event describes a node at the moment a hook fires.
type Event struct {
	// State is the node's state, boxed for strategy-agnostic hooks.
	State any
	// Depth is the node's depth in the search tree.
	Depth int
	// Priority is the frontier priority (the heuristic value for informed searches, else 0).
	Priority int
	// Frontier is the number of pending nodes after the event.
	Frontier int
	// Expanded is the number of nodes expanded so far.
	Expanded int
}

// Option configures the driver via functional arguments.
// Invalid options are recorded and surface as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks of one search invocation.
type Options struct {
	// Ctx parents the tracing span. The traversal itself is never cancelled.
	Ctx context.Context

	// Logger receives start and finish records at debug level.
	Logger *slog.Logger

	// OnEnqueue is called after a node enters the frontier.
	OnEnqueue func(Event)

	// OnExpand is called right before a node is expanded. A non-nil error aborts the
	// search and is returned wrapped.
	OnExpand func(Event) error

	// MaxExpansions, if > 0, stops the search with ErrExpansionLimit once that many
	// nodes have been expanded. 0 means no limit.
	MaxExpansions int

	// Informed makes the driver push nodes with their heuristic as priority.
	Informed bool

	strategy Strategy
	err      error
}

// DefaultOptions returns options with a background context, slog.Default as logger,
// no-op hooks, no expansion limit and uninformed priorities.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.Default(),
		OnEnqueue: func(Event) {},
		OnExpand:  func(Event) error { return nil },
		strategy:  StrategyCustom,
	}
}

// WithContext sets the context used as parent of the search span.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback run after every frontier insertion.
func WithOnEnqueue(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run before every expansion; an error aborts the search.
func WithOnExpand(fn func(Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0: invalid option -> ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristicPriority pushes nodes with problem.Heuristic as their frontier priority.
// Only meaningful with a priority-ordered frontier.
func WithHeuristicPriority() Option {
	return func(o *Options) { o.Informed = true }
}

func withStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// Stats summarises the work done by a search.
type Stats struct {
	// Expanded counts nodes whose children were generated.
	Expanded int
	// Generated counts children produced by expansion, duplicates included.
	Generated int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Result holds the outcome of a search.
//
// On success Node is the goal node and Actions/States its reconstructed path.
// With ErrNoSolution or ErrExpansionLimit only Strategy and Stats are set.
type Result[S comparable, A comparable] struct {
	Node     *node.Node[S, A]
	Actions  []A
	States   []S
	Strategy Strategy
	Stats    Stats
}

// Len returns the number of actions of the solution, or -1 without one.
func (r *Result[S, A]) Len() int {
	if r == nil || r.Node == nil {
		return -1
	}

	return len(r.Actions)
}
