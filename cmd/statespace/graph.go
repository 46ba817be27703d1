package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/export"
	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/problem"
	"github.com/katalvlaran/statespace/problems/nqueens"
	"github.com/katalvlaran/statespace/problems/tilepuzzle"
	"github.com/katalvlaran/statespace/problems/waterjug"
	"github.com/katalvlaran/statespace/reach"
)

// overlayNone disables the solution overlay.
const overlayNone = "none"

type graphCmd struct {
	a       *app
	w       io.Writer
	overlay string
}

func newGraphCmd(a *app) *cobra.Command {
	g := &graphCmd{a: a}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the reachability graph with a solution overlay",
		Long: "Builds every state reachable from the initial state in breadth-first layers and\n" +
			"writes it as DOT, JSON or YAML. The tile puzzle graph stops at the layer of the\n" +
			"nearest goal unless --max-depth is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g.w = cmd.OutOrStdout()

			return a.dispatch(cmd.Context(), g)
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.flags.Format, "format", a.flags.Format, "output format: dot, json or yaml")
	f.IntVar(&a.flags.MaxDepth, "max-depth", 0, "do not expand states at this depth (0 = unlimited)")
	f.StringVar(&g.overlay, "overlay", "", "strategy whose solution is highlighted, or none (default: configured strategy)")

	return cmd
}

func (g *graphCmd) waterJug(ctx context.Context, d domain[waterjug.State, waterjug.Action]) error {
	return graph(ctx, g, d)
}

func (g *graphCmd) nQueens(ctx context.Context, d domain[nqueens.State, nqueens.Action]) error {
	return graph(ctx, g, d)
}

func (g *graphCmd) tilePuzzle(ctx context.Context, d domain[tilepuzzle.State, tilepuzzle.Move]) error {
	return graph(ctx, g, d)
}

func graph[S comparable, A comparable](ctx context.Context, g *graphCmd, d domain[S, A]) error {
	format, err := export.ParseFormat(g.a.cfg.Format)
	if err != nil {
		return err
	}

	var sol *graphsearch.Result[S, A]
	name := g.overlay
	if name == "" {
		name = g.a.cfg.Strategy
	}
	if !strings.EqualFold(name, overlayNone) {
		strategy, err := graphsearch.ParseStrategy(name)
		if err != nil {
			return err
		}
		sol, err = graphsearch.Run(d.p, strategy, g.a.searchOptions(ctx)...)
		switch {
		case errors.Is(err, graphsearch.ErrNoSolution), errors.Is(err, graphsearch.ErrExpansionLimit):
			g.a.logger.Warn("statespace: exporting without overlay", slog.String("error", err.Error()))
			sol = nil
		case err != nil:
			return err
		}
	}

	depth := g.a.cfg.MaxDepth
	if depth == 0 && d.boundGraph {
		if depth, err = goalLayer(ctx, g.a, d.p, sol); err != nil {
			return err
		}
	}
	rg, err := reach.Build(d.p, g.a.reachOptions(ctx, depth)...)
	if err != nil {
		return err
	}
	g.a.logger.Info("statespace: graph built",
		slog.String("problem", d.name),
		slog.Int("states", rg.NodeCount()),
		slog.Int("transitions", rg.EdgeCount()),
		slog.Int("goals", len(rg.Goals())),
		slog.Int("solution_length", sol.Len()),
	)

	return export.Write(g.w, export.NewDocument(rg, sol, d.name), format)
}

// goalLayer returns the breadth-first layer of the goal nearest to the initial
// state, reusing sol when it is already a breadth-first solution. It returns 0
// when no goal is found within the expansion limit.
func goalLayer[S comparable, A comparable](
	ctx context.Context,
	a *app,
	p problem.Problem[S, A],
	sol *graphsearch.Result[S, A],
) (int, error) {
	if sol != nil && sol.Strategy == graphsearch.StrategyBreadthFirst {
		return sol.Len(), nil
	}
	res, err := graphsearch.BreadthFirst(p, a.searchOptions(ctx)...)
	switch {
	case errors.Is(err, graphsearch.ErrNoSolution), errors.Is(err, graphsearch.ErrExpansionLimit):
		return 0, nil
	case err != nil:
		return 0, err
	}

	return res.Len(), nil
}
