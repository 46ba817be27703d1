package reach

import "fmt"

// Graph is the explored state space: every reached state tagged with its layer,
// plus the edge that discovered it. Each state except the initial one has exactly
// one incoming edge, so the edges form a BFS tree rooted at Initial.
//
// A Graph is immutable after Build returns and may be shared between goroutines.
type Graph[S comparable, A comparable] struct {
	initial S
	nodes   []S
	layer   map[S]int
	edges   []Edge[S, A]
	out     map[S][]int // state -> indices into edges
	in      map[S]int   // state -> index of its discovering edge
	goals   []S
	isGoal  map[S]bool
	depth   int
}

func newGraph[S comparable, A comparable](initial S) *Graph[S, A] {
	return &Graph[S, A]{
		initial: initial,
		layer:   make(map[S]int),
		out:     make(map[S][]int),
		in:      make(map[S]int),
		isGoal:  make(map[S]bool),
	}
}

// addNode records s at layer d. Callers guarantee s is new.
func (g *Graph[S, A]) addNode(s S, d int, goal bool) {
	g.nodes = append(g.nodes, s)
	g.layer[s] = d
	if d > g.depth {
		g.depth = d
	}
	if goal {
		g.goals = append(g.goals, s)
		g.isGoal[s] = true
	}
}

// addEdge records the discovery transition from -> to.
func (g *Graph[S, A]) addEdge(from, to S, a A) {
	g.edges = append(g.edges, Edge[S, A]{From: from, To: to, Action: a})
	idx := len(g.edges) - 1
	g.out[from] = append(g.out[from], idx)
	g.in[to] = idx
}

// Initial returns the initial state.
func (g *Graph[S, A]) Initial() S { return g.initial }

// Nodes returns the reached states in discovery order. The slice is a copy.
func (g *Graph[S, A]) Nodes() []S { return append([]S(nil), g.nodes...) }

// Edges returns the discovery edges in discovery order. The slice is a copy.
func (g *Graph[S, A]) Edges() []Edge[S, A] { return append([]Edge[S, A](nil), g.edges...) }

// Goals returns the reached goal states in discovery order. The slice is a copy.
func (g *Graph[S, A]) Goals() []S { return append([]S(nil), g.goals...) }

// NodeCount returns the number of reached states.
func (g *Graph[S, A]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of discovery edges (always NodeCount()-1).
func (g *Graph[S, A]) EdgeCount() int { return len(g.edges) }

// Depth returns the largest layer in the graph.
func (g *Graph[S, A]) Depth() int { return g.depth }

// Contains reports whether s was reached.
func (g *Graph[S, A]) Contains(s S) bool {
	_, ok := g.layer[s]

	return ok
}

// IsGoal reports whether s was reached and satisfies the goal predicate.
func (g *Graph[S, A]) IsGoal(s S) bool { return g.isGoal[s] }

// Layer returns the BFS depth at which s was first discovered.
func (g *Graph[S, A]) Layer(s S) (int, bool) {
	d, ok := g.layer[s]

	return d, ok
}

// LayerMap returns a copy of the state -> layer map.
func (g *Graph[S, A]) LayerMap() map[S]int {
	out := make(map[S]int, len(g.layer))
	for s, d := range g.layer {
		out[s] = d
	}

	return out
}

// Layers groups states by layer; Layers()[d] lists layer d in discovery order.
func (g *Graph[S, A]) Layers() [][]S {
	out := make([][]S, g.depth+1)
	for _, s := range g.nodes {
		d := g.layer[s]
		out[d] = append(out[d], s)
	}

	return out
}

// Successors returns the discovery edges leaving s, in action order.
func (g *Graph[S, A]) Successors(s S) []Edge[S, A] {
	idx := g.out[s]
	out := make([]Edge[S, A], len(idx))
	for i, e := range idx {
		out[i] = g.edges[e]
	}

	return out
}

// PathTo returns the states along discovery edges from Initial to s.
// Its length minus one equals Layer(s).
func (g *Graph[S, A]) PathTo(s S) ([]S, error) {
	d, ok := g.layer[s]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, s)
	}
	path := make([]S, d+1)
	cur := s
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = g.edges[g.in[cur]].From
	}
	path[0] = cur

	return path, nil
}

// Overlay classifies every reached state against a solution path, using the
// precedence initial > goal > solution > explored. States of path that were not
// reached are ignored.
func (g *Graph[S, A]) Overlay(path []S) map[S]Role {
	onPath := make(map[S]bool, len(path))
	for _, s := range path {
		onPath[s] = true
	}
	roles := make(map[S]Role, len(g.nodes))
	for _, s := range g.nodes {
		switch {
		case s == g.initial:
			roles[s] = RoleInitial
		case g.isGoal[s]:
			roles[s] = RoleGoal
		case onPath[s]:
			roles[s] = RoleSolution
		default:
			roles[s] = RoleExplored
		}
	}

	return roles
}

// OnPath reports whether e joins two consecutive states of path.
func OnPath[S comparable, A comparable](e Edge[S, A], path []S) bool {
	for i := 1; i < len(path); i++ {
		if path[i-1] == e.From && path[i] == e.To {
			return true
		}
	}

	return false
}
