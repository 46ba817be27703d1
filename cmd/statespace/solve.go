package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/problems/nqueens"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/problems/waterjug"
)

type solveCmd struct {
	a      *app
	w      io.Writer
	boards bool
}

func newSolveCmd(a *app) *cobra.Command {
	s := &solveCmd{a: a}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a solution and print it step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s.w = cmd.OutOrStdout()

			return a.dispatch(cmd.Context(), s)
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.flags.Strategy, "strategy", a.flags.Strategy, "search strategy: bfs, dfs or best-first")
	f.IntVar(&a.flags.MaxExpansions, "max-expansions", 0, "stop after this many expansions (0 = unlimited)")
	f.BoolVar(&s.boards, "boards", false, "draw the board after every step")

	return cmd
}

func (s *solveCmd) waterJug(ctx context.Context, d domain[waterjug.State, waterjug.Action]) error {
	return solve(ctx, s, d)
}

func (s *solveCmd) nQueens(ctx context.Context, d domain[nqueens.State, nqueens.Action]) error {
	return solve(ctx, s, d)
}

func (s *solveCmd) tilePuzzle(ctx context.Context, d domain[tilepuzzle.State, tilepuzzle.Move]) error {
	return solve(ctx, s, d)
}

func solve[S comparable, A comparable](ctx context.Context, s *solveCmd, d domain[S, A]) error {
	strategy, err := graphsearch.ParseStrategy(s.a.cfg.Strategy)
	if err != nil {
		return err
	}
	res, err := graphsearch.Run(d.p, strategy, s.a.searchOptions(ctx)...)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.w, "%s, %s: %d steps\n", d.name, res.Strategy, res.Len())
	fmt.Fprintf(s.w, "  %-12s: %v\n", "Start", res.States[0])
	printBoard(s, d, res.States[0])
	for i, act := range res.Actions {
		fmt.Fprintf(s.w, "  %-12v: %v\n", act, res.States[i+1])
		printBoard(s, d, res.States[i+1])
	}
	fmt.Fprintf(s.w, "expanded %d, generated %d, max frontier %d\n",
		res.Stats.Expanded, res.Stats.Generated, res.Stats.MaxFrontier)

	return nil
}

// printBoard indents the multi-line drawing of st when --boards is set.
func printBoard[S comparable, A comparable](s *solveCmd, d domain[S, A], st S) {
	if !s.boards || d.board == nil {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(d.board(st), "\n"), "\n") {
		fmt.Fprintf(s.w, "      %s\n", line)
	}
}
