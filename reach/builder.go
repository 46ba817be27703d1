package reach

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/problem"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable build state.
type walker[S comparable, A comparable] struct {
	p     problem.Problem[S, A]
	opts  Options
	queue []queueItem[S]
	head  int
	g     *Graph[S, A]
}

// Build enumerates every state reachable from p.Initial() in strict breadth-first
// order and returns them as a Graph. It never stops at a goal and never revisits a
// state: the layer and the incoming edge of a state are fixed at first discovery,
// so Layer(s) is the length of a shortest action sequence from the initial state.
//
// With WithMaxDepth(d), states at depth d are recorded but not expanded.
// Returns problem.ErrNilProblem, ErrOptionViolation, or a wrapped problem contract error.
func Build[S comparable, A comparable](p problem.Problem[S, A], opts ...Option) (*Graph[S, A], error) {
	if p == nil {
		return nil, problem.ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ctx, span := telemetry.StartSpan(o.Ctx, "reach.Build",
		attribute.Int("reach.max_depth", o.MaxDepth),
	)
	logger := telemetry.LoggerWithTrace(ctx, o.Logger)

	w := &walker[S, A]{
		p:    p,
		opts: o,
		g:    newGraph[S, A](p.Initial()),
	}
	w.discover(w.g.initial, 0)
	err := w.loop()

	telemetry.EndSpan(span, err,
		attribute.Int("reach.nodes", w.g.NodeCount()),
		attribute.Int("reach.edges", w.g.EdgeCount()),
		attribute.Int("reach.goals", len(w.g.goals)),
	)
	if err != nil {
		return nil, err
	}
	telemetry.RecordReach(w.g.NodeCount())
	logger.Debug("reach: graph built",
		slog.Int("nodes", w.g.NodeCount()),
		slog.Int("edges", w.g.EdgeCount()),
		slog.Int("goals", len(w.g.goals)),
		slog.Int("depth", w.g.depth),
	)

	return w.g, nil
}

// discover records s at depth d, fires OnDiscover and enqueues it.
func (w *walker[S, A]) discover(s S, d int) {
	w.g.addNode(s, d, w.p.IsGoal(s))
	w.opts.OnDiscover(Event{State: s, Layer: d, Nodes: w.g.NodeCount()})
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until it is empty.
func (w *walker[S, A]) loop() error {
	for w.head < len(w.queue) {
		item := w.dequeue()
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker[S, A]) dequeue() queueItem[S] {
	item := w.queue[w.head]
	w.head++

	return item
}

// expand applies every action of item.state and discovers the unseen successors.
func (w *walker[S, A]) expand(item queueItem[S]) error {
	for _, a := range w.p.Actions(item.state) {
		next, err := w.p.Result(item.state, a)
		if err != nil {
			return fmt.Errorf("reach: expanding %v with %v: %w", item.state, a, err)
		}
		if w.g.Contains(next) {
			continue
		}
		w.discover(next, item.depth+1)
		w.g.addEdge(item.state, next, a)
	}

	return nil
}
