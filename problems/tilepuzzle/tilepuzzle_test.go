package tilepuzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/reach"
)

type (
	S = tilepuzzle.State
	M = tilepuzzle.Move
)

const scenario = "2,4,3,1,5,6,7,8,0"

func mustState(t *testing.T, text string) S {
	t.Helper()
	s, err := tilepuzzle.ParseState(text)
	require.NoError(t, err)

	return s
}

func eightPuzzle(t *testing.T, opts ...tilepuzzle.Option) *tilepuzzle.Problem {
	t.Helper()
	goal, err := tilepuzzle.DefaultGoal(3)
	require.NoError(t, err)
	p, err := tilepuzzle.New(mustState(t, scenario), goal, opts...)
	require.NoError(t, err)

	return p
}

func TestParseState(t *testing.T) {
	s := mustState(t, " 2, 4,3,1,5,6,7,8,0 ")
	assert.Equal(t, int8(3), s.Width)
	assert.Equal(t, 8, s.BlankIndex())
	assert.Equal(t, "(2,4,3,1,5,6,7,8,0)", s.String())

	for _, bad := range []string{"1,2,3", "1,2,3,4", "1,1,2,0", "a,b,c,d", "0"} {
		_, err := tilepuzzle.ParseState(bad)
		assert.Error(t, err, bad)
	}
	_, err := tilepuzzle.ParseState("1,2,3,4,5")
	assert.ErrorIs(t, err, tilepuzzle.ErrBadWidth)
	_, err = tilepuzzle.ParseState("1,2,2,0")
	assert.ErrorIs(t, err, tilepuzzle.ErrBadState)
}

func TestDefaultGoalAndGrid(t *testing.T) {
	g, err := tilepuzzle.DefaultGoal(3)
	require.NoError(t, err)
	assert.Equal(t, "(1,2,3,4,5,6,7,8,0)", g.String())
	assert.Equal(t, "1 2 3\n4 5 6\n7 8 .\n", tilepuzzle.Grid(g))

	g4, err := tilepuzzle.DefaultGoal(4)
	require.NoError(t, err)
	assert.Equal(t, " 1  2  3  4\n 5  6  7  8\n 9 10 11 12\n13 14 15  .\n", tilepuzzle.Grid(g4))

	_, err = tilepuzzle.DefaultGoal(5)
	assert.ErrorIs(t, err, tilepuzzle.ErrBadWidth)
}

func TestNew_Validation(t *testing.T) {
	goal, _ := tilepuzzle.DefaultGoal(3)
	_, err := tilepuzzle.New(mustState(t, "1,2,3,0"), goal)
	assert.ErrorIs(t, err, tilepuzzle.ErrWidthMismatch)
	_, err = tilepuzzle.New(S{}, goal)
	assert.ErrorIs(t, err, tilepuzzle.ErrBadWidth)

	swapped := mustState(t, "1,2,3,4,5,6,8,7,0")
	_, err = tilepuzzle.New(swapped, goal)
	assert.ErrorIs(t, err, tilepuzzle.ErrUnsolvable)
	_, err = tilepuzzle.New(swapped, goal, tilepuzzle.WithoutSolvabilityCheck())
	assert.NoError(t, err)
}

func TestActions_ByBlankPosition(t *testing.T) {
	p := eightPuzzle(t)
	cases := map[string][]M{
		"0,1,2,3,4,5,6,7,8": {tilepuzzle.Down, tilepuzzle.Right},
		"1,0,2,3,4,5,6,7,8": {tilepuzzle.Down, tilepuzzle.Left, tilepuzzle.Right},
		"1,2,3,4,0,5,6,7,8": {tilepuzzle.Up, tilepuzzle.Down, tilepuzzle.Left, tilepuzzle.Right},
		"1,2,3,4,5,0,6,7,8": {tilepuzzle.Up, tilepuzzle.Down, tilepuzzle.Left},
		"1,2,3,4,5,6,7,8,0": {tilepuzzle.Up, tilepuzzle.Left},
	}
	for text, want := range cases {
		assert.Equal(t, want, p.Actions(mustState(t, text)), text)
	}
}

func TestResult_SwapsBlankWithNeighbour(t *testing.T) {
	p := eightPuzzle(t)
	s := mustState(t, scenario)

	up, err := p.Result(s, tilepuzzle.Up)
	require.NoError(t, err)
	assert.Equal(t, mustState(t, "2,4,3,1,5,0,7,8,6"), up)

	left, err := p.Result(s, tilepuzzle.Left)
	require.NoError(t, err)
	assert.Equal(t, mustState(t, "2,4,3,1,5,6,7,0,8"), left)

	_, err = p.Result(s, tilepuzzle.Down)
	assert.ErrorIs(t, err, problem.ErrInvalidAction)
	_, err = p.Result(s, tilepuzzle.Right)
	assert.ErrorIs(t, err, problem.ErrInvalidAction)
}

// Every successor differs from its parent in exactly the two cells that swapped.
func TestResult_AdjacentSwapProperty(t *testing.T) {
	p := eightPuzzle(t)
	g, err := reach.Build[S, M](p, reach.WithMaxDepth(4))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		var diff []int
		for i := 0; i < e.From.Len(); i++ {
			if e.From.Tiles[i] != e.To.Tiles[i] {
				diff = append(diff, i)
			}
		}
		require.Len(t, diff, 2, "%v -> %v", e.From, e.To)
		a, b := diff[0], diff[1]
		assert.Equal(t, e.From.Tiles[a], e.To.Tiles[b])
		assert.Equal(t, e.From.Tiles[b], e.To.Tiles[a])
		assert.Contains(t, []int{a, b}, e.From.BlankIndex())
		assert.Contains(t, []int{a, b}, e.To.BlankIndex())
		if b-a != 3 {
			assert.Equal(t, 1, b-a)
			assert.Equal(t, a/3, b/3, "horizontal move stays in the row")
		}
	}
}

func TestHeuristics(t *testing.T) {
	s := mustState(t, scenario)
	assert.Equal(t, 3, eightPuzzle(t).Heuristic(s))
	assert.Equal(t, 4, eightPuzzle(t, tilepuzzle.WithHeuristic(tilepuzzle.Manhattan)).Heuristic(s))

	p := eightPuzzle(t)
	assert.Equal(t, 0, p.Heuristic(p.Goal()))

	h, err := tilepuzzle.ParseHeuristic("Manhattan")
	require.NoError(t, err)
	assert.Equal(t, tilepuzzle.Manhattan, h)
	_, err = tilepuzzle.ParseHeuristic("euclid")
	assert.ErrorIs(t, err, tilepuzzle.ErrUnknownHeuristic)
}

func TestHeuristics_BlankCounting(t *testing.T) {
	withBlank := eightPuzzle(t, tilepuzzle.WithHeuristic(tilepuzzle.MisplacedBlank))
	plain := eightPuzzle(t)

	oneSlide := mustState(t, "1,2,3,4,5,6,7,0,8")
	assert.Equal(t, 1, plain.Heuristic(oneSlide))
	assert.Equal(t, 2, withBlank.Heuristic(oneSlide))

	// the blank already sits on its goal cell
	s := mustState(t, scenario)
	assert.Equal(t, plain.Heuristic(s), withBlank.Heuristic(s))
	assert.Equal(t, 0, withBlank.Heuristic(withBlank.Goal()))

	h, err := tilepuzzle.ParseHeuristic(" Misplaced-Blank ")
	require.NoError(t, err)
	assert.Equal(t, tilepuzzle.MisplacedBlank, h)
	assert.Equal(t, "misplaced-blank", h.String())

	res, err := graphsearch.BestFirst[S, tilepuzzle.Move](withBlank)
	require.NoError(t, err)
	assert.Equal(t, withBlank.Goal(), res.States[len(res.States)-1])
}

func TestSolvable(t *testing.T) {
	goal, _ := tilepuzzle.DefaultGoal(3)
	assert.True(t, tilepuzzle.Solvable(mustState(t, scenario), goal))
	assert.False(t, tilepuzzle.Solvable(mustState(t, "1,2,3,4,5,6,8,7,0"), goal))

	g2 := mustState(t, "1,2,3,0")
	assert.True(t, tilepuzzle.Solvable(mustState(t, "3,1,2,0"), g2))
	assert.False(t, tilepuzzle.Solvable(mustState(t, "2,1,3,0"), g2))

	g4, _ := tilepuzzle.DefaultGoal(4)
	assert.False(t, tilepuzzle.Solvable(mustState(t, "1,2,3,4,5,6,7,8,9,10,11,12,13,15,14,0"), g4))
	assert.True(t, tilepuzzle.Solvable(mustState(t, "1,2,3,4,5,6,7,8,9,10,11,12,13,14,0,15"), g4))
	assert.False(t, tilepuzzle.Solvable(mustState(t, scenario), g2))
}

func TestSolvable_MatchesReachability(t *testing.T) {
	goal := mustState(t, "1,2,3,0")
	p, err := tilepuzzle.New(goal, goal)
	require.NoError(t, err)
	g, err := reach.Build[S, M](p)
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	for _, s := range g.Nodes() {
		assert.True(t, tilepuzzle.Solvable(s, goal), s)
	}
}

func TestEightPuzzle_Scenario(t *testing.T) {
	want := []M{
		tilepuzzle.Up, tilepuzzle.Left, tilepuzzle.Up, tilepuzzle.Left,
		tilepuzzle.Down, tilepuzzle.Right, tilepuzzle.Right, tilepuzzle.Down,
	}

	bfs, err := graphsearch.BreadthFirst[S, M](eightPuzzle(t))
	require.NoError(t, err)
	assert.Equal(t, want, bfs.Actions)

	for _, h := range []tilepuzzle.Heuristic{tilepuzzle.Misplaced, tilepuzzle.Manhattan} {
		best, err := graphsearch.BestFirst[S, M](eightPuzzle(t, tilepuzzle.WithHeuristic(h)))
		require.NoError(t, err, h)
		assert.Equal(t, want, best.Actions, h)
		assert.Less(t, best.Stats.Expanded, bfs.Stats.Expanded, h)
	}

	dfs, err := graphsearch.DepthFirst[S, M](eightPuzzle(t))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, dfs.Len(), bfs.Len())
}

func TestEightPuzzle_GoalLayerIsSolutionLength(t *testing.T) {
	p := eightPuzzle(t)
	bfs, err := graphsearch.BreadthFirst[S, M](p)
	require.NoError(t, err)

	g, err := reach.Build[S, M](p, reach.WithMaxDepth(bfs.Len()))
	require.NoError(t, err)
	assert.Equal(t, 268, g.NodeCount())
	assert.Equal(t, []S{p.Goal()}, g.Goals())
	layer, ok := g.Layer(p.Goal())
	require.True(t, ok)
	assert.Equal(t, bfs.Len(), layer)
	assert.Equal(t, bfs.Len(), g.Depth())
}

func TestUnsolvable_NoSolution(t *testing.T) {
	goal := mustState(t, "1,2,3,0")
	p, err := tilepuzzle.New(mustState(t, "2,1,3,0"), goal, tilepuzzle.WithoutSolvabilityCheck())
	require.NoError(t, err)

	res, err := graphsearch.BreadthFirst[S, M](p)
	assert.ErrorIs(t, err, graphsearch.ErrNoSolution)
	require.NotNil(t, res)
	assert.Equal(t, 12, res.Stats.Expanded)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "Up", tilepuzzle.Up.String())
	assert.Equal(t, "Right", tilepuzzle.Right.String())
	assert.Equal(t, "Move(7)", tilepuzzle.Move(7).String())
}
