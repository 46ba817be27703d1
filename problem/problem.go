package problem

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations of a Problem implementation.
var (
	// ErrInvalidAction is returned by Result when the action is not applicable to the state.
	ErrInvalidAction = errors.New("problem: action not applicable to state")

	// ErrInvalidHeuristic is returned when a heuristic yields a negative estimate.
	ErrInvalidHeuristic = errors.New("problem: heuristic returned a negative value")

	// ErrNilProblem is returned when a nil Problem is handed to a search routine.
	ErrNilProblem = errors.New("problem: problem is nil")
)

// Problem describes a state space: where it starts, which states are goals,
// which actions apply in each state, where they lead, and how far a goal seems to be.
type Problem[S comparable, A comparable] interface {
	// Initial returns the start state. It is constant for the lifetime of the Problem.
	Initial() S

	// IsGoal reports whether s satisfies the goal predicate.
	IsGoal(s S) bool

	// Actions returns the actions legally applicable in s, in a deterministic order.
	Actions(s S) []A

	// Result returns the state reached by applying a in s.
	// It fails with ErrInvalidAction if a is not in Actions(s).
	Result(s S, a A) (S, error)

	// Heuristic estimates the number of actions left to reach a goal from s.
	Heuristic(s S) int
}

// ValidateAction checks that a is one of the actions p offers in s.
// Implementations call it at the top of Result.
func ValidateAction[S comparable, A comparable](p Problem[S, A], s S, a A) error {
	for _, legal := range p.Actions(s) {
		if legal == a {
			return nil
		}
	}

	return fmt.Errorf("%w: %v in %v", ErrInvalidAction, a, s)
}

// CheckedHeuristic evaluates p.Heuristic(s) and rejects negative estimates.
func CheckedHeuristic[S comparable, A comparable](p Problem[S, A], s S) (int, error) {
	h := p.Heuristic(s)
	if h < 0 {
		return 0, fmt.Errorf("%w: h(%v) = %d", ErrInvalidHeuristic, s, h)
	}

	return h, nil
}
