package node

import (
	"fmt"

	"github.com/katalvlaran/statespace/problem"
)

// StepCost is the cost of a single action under the unit-cost model.
const StepCost = 1

// Node is one entry of a search tree.
type Node[S comparable, A comparable] struct {
	// State is the configuration this node stands for.
	State S

	// Parent is the node this one was expanded from; nil for the root.
	Parent *Node[S, A]

	// Action produced State from Parent.State. Meaningless for the root.
	Action A

	// Depth is the number of actions from the root (0 for the root).
	Depth int

	// PathCost is the cumulative cost from the root; non-decreasing along any path.
	PathCost int
}

// NewRoot wraps the initial state into a root node.
func NewRoot[S comparable, A comparable](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Child builds the node reached from n by applying a.
func (n *Node[S, A]) Child(p problem.Problem[S, A], a A) (*Node[S, A], error) {
	next, err := p.Result(n.State, a)
	if err != nil {
		return nil, fmt.Errorf("node: expanding %v with %v: %w", n.State, a, err)
	}

	return &Node[S, A]{
		State:    next,
		Parent:   n,
		Action:   a,
		Depth:    n.Depth + 1,
		PathCost: n.PathCost + StepCost,
	}, nil
}

// Expand returns one child per action in p.Actions(n.State), in action order.
// A state without actions yields an empty slice and no error.
func (n *Node[S, A]) Expand(p problem.Problem[S, A]) ([]*Node[S, A], error) {
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		c, err := n.Child(p, a)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	return children, nil
}

// Solution returns the actions leading from the root to n.
func (n *Node[S, A]) Solution() []A {
	out := make([]A, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		out[cur.Depth-1] = cur.Action
	}

	return out
}

// Path returns the states from the root to n, both ends included.
func (n *Node[S, A]) Path() []S {
	out := make([]S, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		out[cur.Depth] = cur.State
	}

	return out
}

// Ancestors returns the nodes from the root to n, both ends included.
func (n *Node[S, A]) Ancestors() []*Node[S, A] {
	out := make([]*Node[S, A], n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		out[cur.Depth] = cur
	}

	return out
}

func (n *Node[S, A]) String() string {
	return fmt.Sprintf("<Node %v>", n.State)
}
