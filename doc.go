// Package statespace is a small toolkit for classical state-space search:
// describe a problem once, then solve it with breadth-first, depth-first or
// greedy best-first graph search, or enumerate everything it can reach.
//
// 🚀 What is statespace?
//
//	A generic, single-threaded search core plus three ready-made puzzles:
//		• Problem contract: initial state, goal test, actions, transitions, heuristic
//		• Search nodes with parent links, depth and path cost
//		• Frontiers: FIFO queue, LIFO stack, stable min-priority queue
//		• Graph search with visited-set deduplication and hooks
//		• Reachability graphs in breadth-first layers with solution overlays
//		• Exporters: Graphviz DOT, JSON, YAML
//
// ✨ Why statespace?
//
//   - Generic: states and actions are any comparable Go types
//   - Deterministic: same problem, same strategy, same answer
//   - Observable: slog logging, OpenTelemetry spans, Prometheus counters
//
// Packages:
//
//	problem/     : the Problem[S, A] contract and its checked helpers
//	node/        : search tree nodes and path reconstruction
//	frontier/    : Queue, Stack and PriorityQueue
//	graphsearch/ : Search plus BreadthFirst, DepthFirst, BestFirst
//	reach/       : layered reachability graphs
//	export/      : DOT, JSON and YAML documents
//	problems/    : waterjug, nqueens, tilepuzzle
//
// Quick ASCII example (4 L and 3 L jugs, measure 2 L):
//
//	(0,0) ─Fill A→ (4,0) ─Pour A->B→ (1,3) ─Empty B→ (1,0)
//	      ─Pour A->B→ (0,1) ─Fill A→ (4,1) ─Pour A->B→ (2,3)
//
// The command in cmd/statespace wraps all of it:
//
//	go install github.com/katalvlaran/statespace/cmd/statespace@latest
package statespace
