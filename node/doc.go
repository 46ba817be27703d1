// Package node implements the search-tree node shared by every graph-search strategy.
//
// A Node records a state, the node it was generated from, the action that produced it,
// its depth and its cumulative path cost. Nodes are immutable once built: a child holds a
// pointer to its parent but never owns it, and a parent is shared by all of its children.
// Because a node is only ever constructed as the child of an already existing node, the
// parent links form a forward-only tree without cycles.
//
// Path reconstruction (Solution, Path, Ancestors) walks parent links back to the root in
// O(depth) and never mutates a node.
//
// The cost model is unit cost: every action adds 1 to PathCost.
package node
