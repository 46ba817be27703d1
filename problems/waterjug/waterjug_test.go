package waterjug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/problems/waterjug"
	"github.com/katalvlaran/statespace/reach"
)

type (
	S = waterjug.State
	A = waterjug.Action
)

func newDefault(t *testing.T) *waterjug.Problem {
	t.Helper()
	p, err := waterjug.New()
	require.NoError(t, err)

	return p
}

func TestNew_Validation(t *testing.T) {
	_, err := waterjug.New(waterjug.WithCapacities(0, 3))
	assert.ErrorIs(t, err, waterjug.ErrBadCapacity)
	_, err = waterjug.New(waterjug.WithTarget(5))
	assert.ErrorIs(t, err, waterjug.ErrBadTarget)
	_, err = waterjug.New(waterjug.WithTarget(-1))
	assert.ErrorIs(t, err, waterjug.ErrBadTarget)

	p, err := waterjug.New(waterjug.WithCapacities(5, 3), waterjug.WithTarget(4))
	require.NoError(t, err)
	a, b := p.Capacities()
	assert.Equal(t, 5, a)
	assert.Equal(t, 3, b)
	assert.Equal(t, 4, p.Target())
}

func TestActions_Legality(t *testing.T) {
	p := newDefault(t)
	assert.Equal(t, []A{waterjug.FillA, waterjug.FillB}, p.Actions(S{0, 0}))
	assert.Equal(t, []A{waterjug.EmptyA, waterjug.EmptyB}, p.Actions(S{4, 3}))
	assert.Equal(t,
		[]A{waterjug.FillA, waterjug.FillB, waterjug.EmptyA, waterjug.EmptyB, waterjug.PourAB, waterjug.PourBA},
		p.Actions(S{1, 1}))
}

func TestResult(t *testing.T) {
	p := newDefault(t)
	cases := []struct {
		from S
		a    A
		want S
	}{
		{S{0, 0}, waterjug.FillA, S{4, 0}},
		{S{0, 0}, waterjug.FillB, S{0, 3}},
		{S{4, 1}, waterjug.PourAB, S{2, 3}},
		{S{1, 3}, waterjug.PourBA, S{4, 0}},
		{S{0, 2}, waterjug.PourBA, S{2, 0}},
		{S{3, 3}, waterjug.EmptyB, S{3, 0}},
	}
	for _, c := range cases {
		got, err := p.Result(c.from, c.a)
		require.NoError(t, err, "%v %v", c.from, c.a)
		assert.Equal(t, c.want, got, "%v %v", c.from, c.a)
	}

	_, err := p.Result(S{4, 0}, waterjug.FillA)
	assert.ErrorIs(t, err, problem.ErrInvalidAction)
	_, err = p.Result(S{0, 0}, waterjug.PourAB)
	assert.ErrorIs(t, err, problem.ErrInvalidAction)
}

func TestGoalAndHeuristic(t *testing.T) {
	p := newDefault(t)
	assert.True(t, p.IsGoal(S{2, 0}))
	assert.True(t, p.IsGoal(S{2, 3}))
	assert.False(t, p.IsGoal(S{0, 2}))
	assert.Equal(t, 2, p.Heuristic(S{0, 0}))
	assert.Equal(t, 2, p.Heuristic(S{4, 1}))
	assert.Equal(t, 0, p.Heuristic(S{2, 1}))
}

func TestBreadthFirst_ReferenceSolution(t *testing.T) {
	res, err := graphsearch.BreadthFirst[S, A](newDefault(t))
	require.NoError(t, err)

	assert.Equal(t, []A{
		waterjug.FillA, waterjug.PourAB, waterjug.EmptyB,
		waterjug.PourAB, waterjug.FillA, waterjug.PourAB,
	}, res.Actions)
	assert.Equal(t, []S{{0, 0}, {4, 0}, {1, 3}, {1, 0}, {0, 1}, {4, 1}, {2, 3}}, res.States)
	assert.Equal(t, 6, res.Node.PathCost)
}

func TestDepthFirst_Solution(t *testing.T) {
	res, err := graphsearch.DepthFirst[S, A](newDefault(t))
	require.NoError(t, err)
	assert.Equal(t, []S{{0, 0}, {0, 3}, {3, 0}, {3, 3}, {4, 2}, {0, 2}, {2, 0}}, res.States)
}

func TestBestFirst_Solution(t *testing.T) {
	p := newDefault(t)
	res, err := graphsearch.BestFirst[S, A](p)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Len())
	assert.True(t, p.IsGoal(res.States[len(res.States)-1]))
}

func TestShortestPathProperty(t *testing.T) {
	for _, caps := range [][3]int{{4, 3, 2}, {5, 3, 4}, {7, 5, 6}, {3, 2, 1}} {
		p, err := waterjug.New(waterjug.WithCapacities(caps[0], caps[1]), waterjug.WithTarget(caps[2]))
		require.NoError(t, err)

		bfs, err := graphsearch.BreadthFirst[S, A](p)
		require.NoError(t, err, caps)
		for _, s := range []graphsearch.Strategy{graphsearch.StrategyDepthFirst, graphsearch.StrategyBestFirst} {
			other, err := graphsearch.Run[S, A](p, s)
			require.NoError(t, err, caps)
			assert.LessOrEqual(t, bfs.Len(), other.Len(), "%v %s", caps, s)
		}
	}
}

func TestUnreachableTarget(t *testing.T) {
	// 4 and 2 only ever measure even quantities
	p, err := waterjug.New(waterjug.WithCapacities(4, 2), waterjug.WithTarget(1))
	require.NoError(t, err)
	for _, s := range graphsearch.Strategies {
		_, err = graphsearch.Run[S, A](p, s)
		assert.ErrorIs(t, err, graphsearch.ErrNoSolution, s.String())
	}
}

func TestReachabilityGraph(t *testing.T) {
	g, err := reach.Build[S, A](newDefault(t))
	require.NoError(t, err)

	assert.Equal(t, 14, g.NodeCount())
	assert.Equal(t, 13, g.EdgeCount())
	assert.Equal(t, []S{{2, 3}, {2, 0}}, g.Goals())
	assert.Equal(t, 6, g.Depth())

	layer, ok := g.Layer(S{4, 2})
	require.True(t, ok)
	assert.Equal(t, 4, layer)
}

// reachState turns "reach exactly s" into the goal.
type reachState struct {
	*waterjug.Problem
	want S
}

func (r reachState) IsGoal(s S) bool { return s == r.want }

func TestLayerEqualsShortestDistance(t *testing.T) {
	p := newDefault(t)
	g, err := reach.Build[S, A](p)
	require.NoError(t, err)

	for _, s := range g.Nodes() {
		res, err := graphsearch.BreadthFirst[S, A](reachState{Problem: p, want: s})
		require.NoError(t, err, s)
		layer, _ := g.Layer(s)
		assert.Equal(t, layer, res.Len(), s)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []A{waterjug.FillA, waterjug.FillB, waterjug.EmptyA, waterjug.EmptyB, waterjug.PourAB, waterjug.PourBA} {
		got, err := waterjug.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := waterjug.ParseAction("Drink A")
	assert.ErrorIs(t, err, waterjug.ErrUnknownAction)
	assert.Equal(t, "Action(9)", waterjug.Action(9).String())
}
