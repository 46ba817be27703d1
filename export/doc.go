// Package export turns a reachability graph and an optional solution into plain
// data and serialises it as JSON, YAML or Graphviz DOT.
//
// A Document is built once with NewDocument and holds only strings and ints, so
// every encoder sees the same content:
//
//	nodes     one per reached state, in discovery order, with its layer and role
//	edges     the discovery edges, flagged when they lie on the solution path
//	solution  the action and state labels of the overlaid search result, if any
//
// Roles follow reach.Graph.Overlay: initial > goal > solution > explored.
//
// DOT output lays layers out left to right (rankdir=LR), pins each layer to one
// rank and colours nodes by role:
//
//	initial   #2ecc71
//	goal      #e74c3c
//	solution  #f39c12
//	explored  #aed6f1
//
// Solution edges are drawn bold in #c0392b, the rest thin in #bdc3c7.
package export
