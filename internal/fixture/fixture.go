// Package fixture provides a small explicit-graph Problem used by the tests of the
// search packages. States and actions are strings; the action label of an edge is
// the destination state, so Result is a table lookup.
package fixture

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/statespace/problem"
)

// Graph is a Problem over an explicit adjacency list.
type Graph struct {
	Start string
	Adj   map[string][]string
	Goals map[string]bool
	H     map[string]int
}

// New returns a Graph rooted at start with no edges and no goals.
func New(start string) *Graph {
	return &Graph{
		Start: start,
		Adj:   make(map[string][]string),
		Goals: make(map[string]bool),
		H:     make(map[string]int),
	}
}

// Edge appends from->to to the adjacency list and returns g for chaining.
func (g *Graph) Edge(from, to string) *Graph {
	g.Adj[from] = append(g.Adj[from], to)

	return g
}

// Goal marks the given states as goals.
func (g *Graph) Goal(states ...string) *Graph {
	for _, s := range states {
		g.Goals[s] = true
	}

	return g
}

// Heur sets the heuristic estimate for s.
func (g *Graph) Heur(s string, h int) *Graph {
	g.H[s] = h

	return g
}

// Initial returns the start state.
func (g *Graph) Initial() string { return g.Start }

// IsGoal reports whether s was marked with Goal.
func (g *Graph) IsGoal(s string) bool { return g.Goals[s] }

// Actions returns the successors of s in insertion order; each action names its target.
func (g *Graph) Actions(s string) []string { return g.Adj[s] }

// Heuristic returns the estimate set by Heur, or 0.
func (g *Graph) Heuristic(s string) int { return g.H[s] }

// Result returns a when it is one of the actions of s, or a wrapped
// problem.ErrInvalidAction.
func (g *Graph) Result(s, a string) (string, error) {
	if err := problem.ValidateAction[string, string](g, s, a); err != nil {
		return "", err
	}

	return a, nil
}

// Chain builds s0->s1->...->s(n-1) with s(n-1) as the only goal.
func Chain(n int) *Graph {
	g := New("s0")
	for i := 0; i < n-1; i++ {
		g.Edge(name(i), name(i+1))
	}
	g.Goal(name(n - 1))

	return g
}

// BinaryTree builds a complete binary tree with nodes t1..t(2^depth-1); t_i has children
// t_2i and t_2i+1. No goals are set.
func BinaryTree(depth int) *Graph {
	g := New("t1")
	last := (1 << depth) - 1
	for i := 1; 2*i+1 <= last; i++ {
		g.Edge(fmt.Sprintf("t%d", i), fmt.Sprintf("t%d", 2*i))
		g.Edge(fmt.Sprintf("t%d", i), fmt.Sprintf("t%d", 2*i+1))
	}

	return g
}

func name(i int) string { return "s" + strconv.Itoa(i) }
