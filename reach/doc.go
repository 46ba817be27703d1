// Package reach materialises the state space of a problem.Problem as an explicit graph.
//
// What
//
//   - Build(p, opts...) runs an unconditional breadth-first enumeration from p.Initial():
//     it never stops at a goal and never revisits a state.
//   - Every reached state is tagged with its layer, the BFS depth of first discovery,
//     which equals the minimum number of actions from the initial state.
//   - An edge (from, to, action) is recorded only when it discovers to, so the edge set
//     is a breadth-first spanning tree of the reachable space.
//   - Goal states met on the way are collected in discovery order.
//
// Why
//
//	A renderer positions states by layer and overlays a solution path found by any
//	strategy of package graphsearch. Overlay and OnPath provide that classification
//	as plain data; nothing here draws.
//
// Determinism
//
//	States are discovered in the order the problem enumerates actions, so two builds
//	over the same problem yield identical node, edge and goal sequences.
//
// Options
//
//   - WithMaxDepth(d)    record states at depth d without expanding them (d>0; 0 = no bound).
//   - WithOnDiscover(fn) hook on each first discovery.
//   - WithLogger(l)      slog logger for debug records.
//   - WithContext(ctx)   parent context of the tracing span (no cancellation).
//
// Errors
//
//   - problem.ErrNilProblem    if p is nil.
//   - ErrOptionViolation       for invalid options (e.g. negative MaxDepth).
//   - problem.ErrInvalidAction (wrapped) if the problem breaks its own contract.
//   - ErrNotReached            from PathTo for states outside the graph.
//
// Complexity (V = reached states, E = transitions examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, the layer map and the edge list.
package reach
