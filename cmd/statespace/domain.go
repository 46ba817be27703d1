package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/problems/nqueens"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/problems/waterjug"
	"github.com/katalvlaran/statespace/reach"
)

// domain binds a concrete problem to its display helpers.
type domain[S comparable, A comparable] struct {
	name string
	p    problem.Problem[S, A]
	// board draws a state on several lines; nil when the one-line form suffices.
	board func(S) string
	// boundGraph limits graph to the nearest goal's layer when no max depth is set.
	boundGraph bool
}

// command is implemented once per subcommand as a set of generic entry points.
type command interface {
	waterJug(ctx context.Context, d domain[waterjug.State, waterjug.Action]) error
	nQueens(ctx context.Context, d domain[nqueens.State, nqueens.Action]) error
	tilePuzzle(ctx context.Context, d domain[tilepuzzle.State, tilepuzzle.Move]) error
}

// dispatch builds the configured problem and hands it to c.
func (a *app) dispatch(ctx context.Context, c command) error {
	switch a.cfg.Problem {
	case config.ProblemWaterJug:
		p, err := a.cfg.WaterJugProblem()
		if err != nil {
			return err
		}

		return c.waterJug(ctx, domain[waterjug.State, waterjug.Action]{name: a.cfg.Problem, p: p})
	case config.ProblemNQueens:
		p, err := a.cfg.NQueensProblem()
		if err != nil {
			return err
		}

		return c.nQueens(ctx, domain[nqueens.State, nqueens.Action]{name: a.cfg.Problem, p: p, board: nqueens.Board})
	case config.ProblemTilePuzzle:
		p, err := a.cfg.TilePuzzleProblem()
		if err != nil {
			return err
		}

		return c.tilePuzzle(ctx, domain[tilepuzzle.State, tilepuzzle.Move]{
			name: a.cfg.Problem, p: p, board: tilepuzzle.Grid, boundGraph: true,
		})
	default:
		return fmt.Errorf("%w: problem %q", config.ErrInvalidConfig, a.cfg.Problem)
	}
}

// searchOptions returns the options shared by every search the CLI runs.
func (a *app) searchOptions(ctx context.Context) []graphsearch.Option {
	return []graphsearch.Option{
		graphsearch.WithContext(ctx),
		graphsearch.WithLogger(a.logger),
		graphsearch.WithMaxExpansions(a.cfg.MaxExpansions),
	}
}

// reachOptions returns the options for a graph build bounded at depth.
func (a *app) reachOptions(ctx context.Context, depth int) []reach.Option {
	return []reach.Option{
		reach.WithContext(ctx),
		reach.WithLogger(a.logger),
		reach.WithMaxDepth(depth),
	}
}
