// Package problem defines the capability set every searchable domain implements.
//
// What
//
//   - Problem[S, A] exposes the five operations a search needs:
//     Initial, IsGoal, Actions, Result and Heuristic.
//   - S is the state type and must be comparable: two states are equal iff they are
//     structurally identical, so they can be used directly as map keys.
//   - A is the action label type. Actions distinguish outgoing edges of one state.
//
// Contract
//
//   - Actions(s) is deterministic: the same state always yields the same ordered slice.
//     An empty slice marks a dead end, never an error.
//   - Result(s, a) is a pure function of (s, a). Calling it with an action that is not in
//     Actions(s) returns an error wrapping ErrInvalidAction.
//   - Heuristic(s) estimates the remaining number of actions and must be non-negative.
//     It is only consulted by informed strategies; CheckedHeuristic turns a negative
//     value into ErrInvalidHeuristic.
//
// Domains are added by writing a new implementation, not by embedding a shared base.
// See problems/waterjug, problems/nqueens and problems/tilepuzzle.
package problem
