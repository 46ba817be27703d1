// Package waterjug models the two-jug measuring puzzle.
//
// Jug A holds up to CapacityA litres, jug B up to CapacityB. Both start empty.
// The goal is to have exactly Target litres in jug A; the content of jug B does not
// matter, so several states can be goals.
//
// Actions, in enumeration order, each offered only when it changes something:
//
//	Fill A     A is not full
//	Fill B     B is not full
//	Empty A    A is not empty
//	Empty B    B is not empty
//	Pour A->B  A is not empty and B is not full
//	Pour B->A  B is not empty and A is not full
//
// Pouring stops when the source is empty or the destination is full.
// The heuristic is |A - Target|.
package waterjug

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/problem"
)

// Default puzzle parameters.
const (
	DefaultCapacityA = 4
	DefaultCapacityB = 3
	DefaultTarget    = 2
)

// Sentinel errors for puzzle construction.
var (
	// ErrBadCapacity is returned for a jug capacity below 1.
	ErrBadCapacity = errors.New("waterjug: capacity must be positive")

	// ErrBadTarget is returned for a target outside [0, CapacityA].
	ErrBadTarget = errors.New("waterjug: target out of range")

	// ErrUnknownAction is returned by ParseAction.
	ErrUnknownAction = errors.New("waterjug: unknown action")
)

// State is the pair of fill levels in litres.
type State struct {
	A int
	B int
}

func (s State) String() string { return fmt.Sprintf("(%d,%d)", s.A, s.B) }

// Action is one of the six jug operations.
type Action int

// The six operations in enumeration order.
const (
	FillA Action = iota
	FillB
	EmptyA
	EmptyB
	PourAB
	PourBA
)

var actionNames = [...]string{
	FillA:  "Fill A",
	FillB:  "Fill B",
	EmptyA: "Empty A",
	EmptyB: "Empty B",
	PourAB: "Pour A->B",
	PourBA: "Pour B->A",
}

func (a Action) String() string {
	if a < FillA || a > PourBA {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// ParseAction maps an action label such as "Pour A->B" back to its Action.
func ParseAction(label string) (Action, error) {
	for i, name := range actionNames {
		if strings.EqualFold(strings.TrimSpace(label), name) {
			return Action(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, label)
}

// Problem is a configured water-jug puzzle. It is read-only after New.
type Problem struct {
	capA, capB, target int
}

var _ problem.Problem[State, Action] = (*Problem)(nil)

// Option configures New.
type Option func(*Problem)

// WithCapacities sets the jug capacities.
func WithCapacities(a, b int) Option {
	return func(p *Problem) { p.capA, p.capB = a, b }
}

// WithTarget sets the quantity wanted in jug A.
func WithTarget(litres int) Option {
	return func(p *Problem) { p.target = litres }
}

// New returns the 4/3/2 puzzle unless options say otherwise.
func New(opts ...Option) (*Problem, error) {
	p := &Problem{capA: DefaultCapacityA, capB: DefaultCapacityB, target: DefaultTarget}
	for _, opt := range opts {
		opt(p)
	}
	if p.capA < 1 || p.capB < 1 {
		return nil, fmt.Errorf("%w: A=%d B=%d", ErrBadCapacity, p.capA, p.capB)
	}
	if p.target < 0 || p.target > p.capA {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrBadTarget, p.target, p.capA)
	}

	return p, nil
}

// Capacities returns the capacities of jug A and jug B.
func (p *Problem) Capacities() (int, int) { return p.capA, p.capB }

// Target returns the quantity wanted in jug A.
func (p *Problem) Target() int { return p.target }

// Initial returns (0,0).
func (p *Problem) Initial() State { return State{} }

// IsGoal reports whether jug A holds the target quantity.
func (p *Problem) IsGoal(s State) bool { return s.A == p.target }

// Actions lists the operations that change s.
func (p *Problem) Actions(s State) []Action {
	out := make([]Action, 0, 4)
	if s.A < p.capA {
		out = append(out, FillA)
	}
	if s.B < p.capB {
		out = append(out, FillB)
	}
	if s.A > 0 {
		out = append(out, EmptyA)
	}
	if s.B > 0 {
		out = append(out, EmptyB)
	}
	if s.A > 0 && s.B < p.capB {
		out = append(out, PourAB)
	}
	if s.B > 0 && s.A < p.capA {
		out = append(out, PourBA)
	}

	return out
}

// Result applies a to s.
func (p *Problem) Result(s State, a Action) (State, error) {
	if err := problem.ValidateAction[State, Action](p, s, a); err != nil {
		return State{}, err
	}
	switch a {
	case FillA:
		s.A = p.capA
	case FillB:
		s.B = p.capB
	case EmptyA:
		s.A = 0
	case EmptyB:
		s.B = 0
	case PourAB:
		n := min(s.A, p.capB-s.B)
		s.A, s.B = s.A-n, s.B+n
	case PourBA:
		n := min(s.B, p.capA-s.A)
		s.A, s.B = s.A+n, s.B-n
	}

	return s, nil
}

// Heuristic returns how far jug A is from the target.
func (p *Problem) Heuristic(s State) int {
	if d := s.A - p.target; d > 0 {
		return d
	}

	return p.target - s.A
}
