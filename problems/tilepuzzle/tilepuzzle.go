package tilepuzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/problem"
)

// Board limits.
const (
	MinWidth = 2
	MaxWidth = 4
	// Blank is the tile value of the empty cell.
	Blank = 0
)

// Sentinel errors.
var (
	// ErrBadWidth is returned for boards narrower than MinWidth or wider than MaxWidth.
	ErrBadWidth = errors.New("tilepuzzle: board width out of range")

	// ErrBadState is returned when the tiles are not a permutation of 0..w*w-1.
	ErrBadState = errors.New("tilepuzzle: tiles must be a permutation of 0..w*w-1")

	// ErrWidthMismatch is returned by New when initial and goal differ in width.
	ErrWidthMismatch = errors.New("tilepuzzle: initial and goal widths differ")

	// ErrUnsolvable is returned by New when the goal cannot be reached.
	ErrUnsolvable = errors.New("tilepuzzle: goal not reachable from initial state")

	// ErrUnknownHeuristic is returned by ParseHeuristic.
	ErrUnknownHeuristic = errors.New("tilepuzzle: unknown heuristic")
)

// State is a board in row-major order. Cells past Width*Width are unused and zero.
type State struct {
	Tiles [MaxWidth * MaxWidth]int8
	Width int8
}

// NewState validates tiles as a w x w board.
func NewState(tiles ...int) (State, error) {
	w := 0
	for w*w < len(tiles) {
		w++
	}
	if w*w != len(tiles) || w < MinWidth || w > MaxWidth {
		return State{}, fmt.Errorf("%w: %d tiles", ErrBadWidth, len(tiles))
	}
	var seen [MaxWidth * MaxWidth]bool
	s := State{Width: int8(w)}
	for i, t := range tiles {
		if t < 0 || t >= len(tiles) || seen[t] {
			return State{}, fmt.Errorf("%w: %v", ErrBadState, tiles)
		}
		seen[t] = true
		s.Tiles[i] = int8(t)
	}

	return s, nil
}

// ParseState reads a comma-separated tile list such as "2,4,3,1,5,6,7,8,0".
func ParseState(text string) (State, error) {
	fields := strings.Split(text, ",")
	tiles := make([]int, len(fields))
	for i, f := range fields {
		t, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return State{}, fmt.Errorf("%w: %q", ErrBadState, text)
		}
		tiles[i] = t
	}

	return NewState(tiles...)
}

// DefaultGoal returns 1..w*w-1 followed by the blank.
func DefaultGoal(w int) (State, error) {
	if w < MinWidth || w > MaxWidth {
		return State{}, fmt.Errorf("%w: %d", ErrBadWidth, w)
	}
	s := State{Width: int8(w)}
	for i := 0; i < w*w-1; i++ {
		s.Tiles[i] = int8(i + 1)
	}

	return s, nil
}

// Len returns the number of cells.
func (s State) Len() int { return int(s.Width) * int(s.Width) }

// BlankIndex returns the cell holding the blank.
func (s State) BlankIndex() int {
	for i := 0; i < s.Len(); i++ {
		if s.Tiles[i] == Blank {
			return i
		}
	}

	return -1
}

// String renders the tile tuple, e.g. "(2,4,3,1,5,6,7,8,0)".
func (s State) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s.Tiles[i])))
	}
	b.WriteByte(')')

	return b.String()
}

// Grid draws s as w lines of right-aligned tiles with '.' for the blank.
func Grid(s State) string {
	cell := len(strconv.Itoa(s.Len() - 1))
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		if i%int(s.Width) != 0 {
			b.WriteByte(' ')
		}
		label := "."
		if s.Tiles[i] != Blank {
			label = strconv.Itoa(int(s.Tiles[i]))
		}
		b.WriteString(strings.Repeat(" ", cell-len(label)))
		b.WriteString(label)
		if i%int(s.Width) == int(s.Width)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Move is the direction the blank slides.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveNames = [...]string{"Up", "Down", "Left", "Right"}

func (m Move) String() string {
	if m < Up || m > Right {
		return fmt.Sprintf("Move(%d)", int(m))
	}

	return moveNames[m]
}

// Heuristic selects the distance estimate.
type Heuristic int

const (
	Misplaced Heuristic = iota
	Manhattan
	// MisplacedBlank counts the blank too when it is off its goal cell.
	MisplacedBlank
)

func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case MisplacedBlank:
		return "misplaced-blank"
	default:
		return "misplaced"
	}
}

// ParseHeuristic accepts "misplaced", "misplaced-blank" or "manhattan",
// case-insensitively.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "misplaced":
		return Misplaced, nil
	case "misplaced-blank":
		return MisplacedBlank, nil
	case "manhattan":
		return Manhattan, nil
	default:
		return Misplaced, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Option configures a Problem.
type Option func(*Problem)

// WithHeuristic selects the estimate returned by Problem.Heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(p *Problem) { p.h = h }
}

// WithoutSolvabilityCheck lets New accept pairs that Solvable rejects.
func WithoutSolvabilityCheck() Option {
	return func(p *Problem) { p.skipCheck = true }
}

// Problem is a sliding-tile instance.
type Problem struct {
	initial   State
	goal      State
	goalPos   [MaxWidth * MaxWidth]int8
	h         Heuristic
	skipCheck bool
}

// New validates initial and goal and returns the puzzle.
func New(initial, goal State, opts ...Option) (*Problem, error) {
	for _, s := range []State{initial, goal} {
		if _, err := NewState(s.tileSlice()...); err != nil {
			return nil, err
		}
	}
	if initial.Width != goal.Width {
		return nil, fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, initial.Width, goal.Width)
	}
	p := &Problem{initial: initial, goal: goal}
	for _, opt := range opts {
		opt(p)
	}
	for i := 0; i < goal.Len(); i++ {
		p.goalPos[goal.Tiles[i]] = int8(i)
	}
	if !p.skipCheck && !Solvable(initial, goal) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnsolvable, initial, goal)
	}

	return p, nil
}

// Goal returns the goal board.
func (p *Problem) Goal() State { return p.goal }

// Initial returns the start board.
func (p *Problem) Initial() State { return p.initial }

// IsGoal reports whether s equals the goal board.
func (p *Problem) IsGoal(s State) bool { return s == p.goal }

// Actions returns the legal blank moves in Up, Down, Left, Right order.
func (p *Problem) Actions(s State) []Move {
	w := int(s.Width)
	i := s.BlankIndex()
	out := make([]Move, 0, 4)
	if i >= w {
		out = append(out, Up)
	}
	if i < s.Len()-w {
		out = append(out, Down)
	}
	if i%w != 0 {
		out = append(out, Left)
	}
	if i%w != w-1 {
		out = append(out, Right)
	}

	return out
}

// Result swaps the blank with the neighbour in direction m.
func (p *Problem) Result(s State, m Move) (State, error) {
	if err := problem.ValidateAction[State, Move](p, s, m); err != nil {
		return State{}, err
	}
	i := s.BlankIndex()
	j := i + delta(m, int(s.Width))
	s.Tiles[i], s.Tiles[j] = s.Tiles[j], s.Tiles[i]

	return s, nil
}

// Heuristic returns the configured estimate of the moves left.
func (p *Problem) Heuristic(s State) int {
	switch p.h {
	case Manhattan:
		return p.manhattan(s)
	case MisplacedBlank:
		return p.misplaced(s, true)
	default:
		return p.misplaced(s, false)
	}
}

func (p *Problem) misplaced(s State, blank bool) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if (blank || s.Tiles[i] != Blank) && s.Tiles[i] != p.goal.Tiles[i] {
			n++
		}
	}

	return n
}

func (p *Problem) manhattan(s State) int {
	w := int(s.Width)
	sum := 0
	for i := 0; i < s.Len(); i++ {
		t := s.Tiles[i]
		if t == Blank {
			continue
		}
		j := int(p.goalPos[t])
		sum += abs(i/w-j/w) + abs(i%w-j%w)
	}

	return sum
}

// Solvable reports whether goal is reachable from s. Both boards must have the
// same width and hold the same tiles.
func Solvable(s, goal State) bool {
	if s.Width != goal.Width {
		return false
	}
	var pos [MaxWidth * MaxWidth]int
	for i := 0; i < goal.Len(); i++ {
		pos[goal.Tiles[i]] = i
	}
	n := s.Len()
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = pos[s.Tiles[i]]
	}
	inversions := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	w := int(s.Width)
	b, g := s.BlankIndex(), goal.BlankIndex()
	dist := abs(b/w-g/w) + abs(b%w-g%w)

	return inversions%2 == dist%2
}

func (s State) tileSlice() []int {
	out := make([]int, s.Len())
	for i := range out {
		out[i] = int(s.Tiles[i])
	}

	return out
}

func delta(m Move, w int) int {
	switch m {
	case Up:
		return -w
	case Down:
		return w
	case Left:
		return -1
	default:
		return 1
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
