// Package nqueens models incremental N-queens placement.
//
// Queens are placed one column at a time, left to right. The only legal actions in a
// state are the rows of the leftmost empty column that no placed queen attacks, so
// every generated state is conflict-free and dead ends simply have no actions.
// A state is a goal when all N columns hold a queen and no pair attacks.
//
// The heuristic counts attacking pairs among the placed queens. Under the
// column-by-column action rule it is always 0 for generated states, which makes
// best-first search degrade to FIFO order through its insertion tie-break.
package nqueens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/problem"
)

// MaxN is the largest supported board.
const MaxN = 16

// Unplaced marks a column without a queen.
const Unplaced = -1

// ErrBadSize is returned by New for n outside [1, MaxN].
var ErrBadSize = errors.New("nqueens: board size out of range")

// State holds the row of the queen in each column, Unplaced for empty columns.
// Only the first N entries are meaningful; the rest stay Unplaced.
type State struct {
	Rows [MaxN]int8
	N    int8
}

// Placed returns the number of filled columns, which is also the leftmost empty column.
func (s State) Placed() int {
	for c := 0; c < int(s.N); c++ {
		if s.Rows[c] == Unplaced {
			return c
		}
	}

	return int(s.N)
}

// Row returns the row of the queen in column col, or Unplaced.
func (s State) Row(col int) int { return int(s.Rows[col]) }

// String renders the compact form, e.g. "(1,3,_,_)".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for c := 0; c < int(s.N); c++ {
		if c > 0 {
			b.WriteByte(',')
		}
		if s.Rows[c] == Unplaced {
			b.WriteByte('_')
		} else {
			fmt.Fprintf(&b, "%d", s.Rows[c])
		}
	}
	b.WriteByte(')')

	return b.String()
}

// Action is the row to place a queen in, within the leftmost empty column.
type Action int

func (a Action) String() string { return fmt.Sprintf("row %d", int(a)) }

// Problem is an N-queens instance.
type Problem struct {
	n int
}

// New returns the n-queens problem.
func New(n int) (*Problem, error) {
	if n < 1 || n > MaxN {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadSize, n, MaxN)
	}

	return &Problem{n: n}, nil
}

// N returns the board size.
func (p *Problem) N() int { return p.n }

// Initial returns the empty board.
func (p *Problem) Initial() State {
	s := State{N: int8(p.n)}
	for c := range s.Rows {
		s.Rows[c] = Unplaced
	}

	return s
}

// IsGoal reports whether every column is filled without conflicts.
func (p *Problem) IsGoal(s State) bool {
	return s.Placed() == p.n && Conflicts(s) == 0
}

// Actions returns the safe rows of the leftmost empty column in ascending order.
func (p *Problem) Actions(s State) []Action {
	col := s.Placed()
	if col >= p.n {
		return nil
	}
	out := make([]Action, 0, p.n)
	for row := 0; row < p.n; row++ {
		if !attacked(s, col, row) {
			out = append(out, Action(row))
		}
	}

	return out
}

// Result places a queen in the leftmost empty column at row a.
func (p *Problem) Result(s State, a Action) (State, error) {
	if err := problem.ValidateAction[State, Action](p, s, a); err != nil {
		return State{}, err
	}
	s.Rows[s.Placed()] = int8(a)

	return s, nil
}

// Heuristic returns the number of attacking pairs.
func (p *Problem) Heuristic(s State) int { return Conflicts(s) }

// Conflicts counts the pairs of placed queens sharing a row or a diagonal.
func Conflicts(s State) int {
	n := 0
	for c1 := 0; c1 < int(s.N); c1++ {
		if s.Rows[c1] == Unplaced {
			continue
		}
		for c2 := c1 + 1; c2 < int(s.N); c2++ {
			if s.Rows[c2] == Unplaced {
				continue
			}
			if conflict(c1, int(s.Rows[c1]), c2, int(s.Rows[c2])) {
				n++
			}
		}
	}

	return n
}

// Board draws s as an N x N grid of '.' and 'Q', one line per row.
func Board(s State) string {
	var b strings.Builder
	for row := 0; row < int(s.N); row++ {
		for c := 0; c < int(s.N); c++ {
			if int(s.Rows[c]) == row {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// attacked reports whether a queen at (col,row) would conflict with a placed queen.
func attacked(s State, col, row int) bool {
	for c := 0; c < col; c++ {
		if r := int(s.Rows[c]); r != Unplaced && conflict(c, r, col, row) {
			return true
		}
	}

	return false
}

func conflict(c1, r1, c2, r2 int) bool {
	if r1 == r2 {
		return true
	}
	d := c1 - c2
	if d < 0 {
		d = -d
	}
	dr := r1 - r2
	if dr < 0 {
		dr = -dr
	}

	return d == dr
}
