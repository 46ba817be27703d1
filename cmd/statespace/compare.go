package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/problems/nqueens"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/problems/waterjug"
)

type compareCmd struct {
	a *app
	w io.Writer
}

func newCompareCmd(a *app) *cobra.Command {
	c := &compareCmd{a: a}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy and compare solution lengths and effort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.w = cmd.OutOrStdout()

			return a.dispatch(cmd.Context(), c)
		},
	}
	cmd.Flags().IntVar(&a.flags.MaxExpansions, "max-expansions", 0, "stop each search after this many expansions (0 = unlimited)")

	return cmd
}

func (c *compareCmd) waterJug(ctx context.Context, d domain[waterjug.State, waterjug.Action]) error {
	return compare(ctx, c, d)
}

func (c *compareCmd) nQueens(ctx context.Context, d domain[nqueens.State, nqueens.Action]) error {
	return compare(ctx, c, d)
}

func (c *compareCmd) tilePuzzle(ctx context.Context, d domain[tilepuzzle.State, tilepuzzle.Move]) error {
	return compare(ctx, c, d)
}

// compare prints one row per strategy. Searches ending without a solution are
// reported in the table rather than failing the command.
func compare[S comparable, A comparable](ctx context.Context, c *compareCmd, d domain[S, A]) error {
	fmt.Fprintln(c.w, d.name)
	tw := tabwriter.NewWriter(c.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tlength\texpanded\tgenerated\tmax frontier")
	for _, s := range graphsearch.Strategies {
		res, err := graphsearch.Run(d.p, s, c.a.searchOptions(ctx)...)
		length := "-"
		switch {
		case err == nil:
			length = fmt.Sprint(res.Len())
		case errors.Is(err, graphsearch.ErrNoSolution):
			length = "none"
		case errors.Is(err, graphsearch.ErrExpansionLimit):
			length = "limit"
		default:
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
			s, length, res.Stats.Expanded, res.Stats.Generated, res.Stats.MaxFrontier)
	}

	return tw.Flush()
}
