// Package reach provides tunable options, error definitions and the graph type
// produced by the reachability builder.
package reach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for reachability builds and queries.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNotReached is returned when a query names a state absent from the graph.
	ErrNotReached = errors.New("reach: state not reached")
)

// Option configures Build via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Event describes a newly discovered state.
type Event struct {
	// State is the discovered state, boxed.
	State any
	// Layer is the BFS depth of first discovery.
	Layer int
	// Nodes is the number of states discovered so far, this one included.
	Nodes int
}

// Options holds parameters and callbacks of one build.
type Options struct {
	// Ctx parents the tracing span. The build itself is never cancelled.
	Ctx context.Context

	// Logger receives start and finish records at debug level.
	Logger *slog.Logger

	// MaxDepth, if > 0, records states at depth MaxDepth without expanding them.
	// A value of 0 explicitly disables the bound.
	MaxDepth int

	// OnDiscover is called once per state, at first discovery.
	OnDiscover func(Event)

	err error
}

// DefaultOptions returns Options with a background context, slog.Default,
// no depth bound and a no-op OnDiscover hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Logger:     slog.Default(),
		MaxDepth:   0,
		OnDiscover: func(Event) {},
	}
}

// WithContext sets the context used as parent of the build span.
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

// WithOnDiscover registers a callback run on every first discovery.
func WithOnDiscover(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxDepth bounds the exploration depth.
//
//	d > 0: states at depth d are recorded but not expanded
//	d == 0: explicit no bound
//	d < 0: invalid option -> ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Role classifies a state for display, in decreasing precedence.
type Role int

const (
	// RoleExplored is any reached state not covered by another role.
	RoleExplored Role = iota
	// RoleSolution is a state on the overlaid solution path.
	RoleSolution
	// RoleGoal is a reached state satisfying the goal predicate.
	RoleGoal
	// RoleInitial is the initial state.
	RoleInitial
)

func (r Role) String() string {
	switch r {
	case RoleInitial:
		return "initial"
	case RoleGoal:
		return "goal"
	case RoleSolution:
		return "solution"
	default:
		return "explored"
	}
}

// Edge is a transition recorded on first discovery of To.
type Edge[S comparable, A comparable] struct {
	From   S
	To     S
	Action A
}
