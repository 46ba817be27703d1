// Package tilepuzzle models the sliding-tile puzzle on a w x w board (the 8-puzzle
// for w = 3).
//
// A State lists the tiles in row-major order with 0 standing for the blank. A move
// slides the blank one cell Up, Down, Left or Right; moves are enumerated in that
// order and filtered by the board edges, so a corner offers two moves, an edge cell
// three and an inner cell four. Applying a move swaps the blank with the adjacent
// tile and keeps everything else in place.
//
// Heuristics:
//
//	Misplaced       number of non-blank tiles not on their goal cell (default)
//	MisplacedBlank  number of cells, blank included, not holding their goal tile
//	Manhattan       sum of grid distances of non-blank tiles to their goal cells
//
// All three are 0 exactly on the goal. MisplacedBlank can overestimate by one
// when a single tile is left to slide, so only the other two are admissible.
//
// Solvability:
//
// Half of all tile arrangements cannot reach a given goal. Solvable decides it in
// O(w^4) from permutation parity: a move is one transposition and shifts the blank by
// one cell, so the parity of the permutation relative to the goal must equal the
// parity of the blank's grid distance to its goal cell. New rejects unsolvable pairs
// with ErrUnsolvable unless WithoutSolvabilityCheck is given.
//
// Complexity:
//
//   - Actions, Result: O(1) beyond the state copy.
//   - Heuristic:       O(w^2).
//   - Reachable space: (w^2)!/2 states (181440 for the 8-puzzle).
package tilepuzzle
