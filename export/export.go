package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/graphsearch"
	"github.com/katalvlaran/statespace/reach"
)

// ErrUnknownFormat is returned by ParseFormat and Write.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format names an encoder.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encoders.
var Formats = []Format{FormatDOT, FormatJSON, FormatYAML}

// ParseFormat accepts dot, json, yaml and yml, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dot", "gv", "graphviz":
		return FormatDOT, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Node is one reached state.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Layer int    `json:"layer" yaml:"layer"`
	Role  string `json:"role" yaml:"role"`
}

// Edge is one transition. Tree edges are the discovery edges of the graph;
// the others are solution steps that reached an already discovered state.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Action string `json:"action" yaml:"action"`
	Tree   bool   `json:"tree" yaml:"tree"`
	OnPath bool   `json:"on_path,omitempty" yaml:"on_path,omitempty"`
}

// Solution is the overlaid search result.
type Solution struct {
	Strategy string   `json:"strategy" yaml:"strategy"`
	Length   int      `json:"length" yaml:"length"`
	Actions  []string `json:"actions" yaml:"actions"`
	States   []string `json:"states" yaml:"states"`
}

// Document is the serialisable view of a graph.
type Document struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Initial  string    `json:"initial" yaml:"initial"`
	Goals    []string  `json:"goals" yaml:"goals"`
	Depth    int       `json:"depth" yaml:"depth"`
	Nodes    []Node    `json:"nodes" yaml:"nodes"`
	Edges    []Edge    `json:"edges" yaml:"edges"`
	Solution *Solution `json:"solution,omitempty" yaml:"solution,omitempty"`
}

// NewDocument flattens g. When sol holds a solution its path is overlaid on the
// graph; a nil or unsolved sol yields a document without Solution.
// Every solution step between two reached states appears as an OnPath edge,
// appended after the tree edges when it is not one of them.
// State and action labels come from fmt's %v.
func NewDocument[S comparable, A comparable](
	g *reach.Graph[S, A],
	sol *graphsearch.Result[S, A],
	title string,
) *Document {
	var (
		path    []S
		actions []A
	)
	doc := &Document{
		Title:   title,
		Initial: label(g.Initial()),
		Goals:   []string{},
		Depth:   g.Depth(),
	}
	if sol != nil && sol.Node != nil {
		path, actions = sol.States, sol.Actions
		doc.Solution = &Solution{
			Strategy: sol.Strategy.String(),
			Length:   sol.Len(),
			Actions:  labels(sol.Actions),
			States:   labels(sol.States),
		}
	}

	roles := g.Overlay(path)
	ids := make(map[S]string, g.NodeCount())
	doc.Nodes = make([]Node, 0, g.NodeCount())
	for i, s := range g.Nodes() {
		id := fmt.Sprintf("n%d", i)
		ids[s] = id
		layer, _ := g.Layer(s)
		doc.Nodes = append(doc.Nodes, Node{
			ID:    id,
			Label: label(s),
			Layer: layer,
			Role:  roles[s].String(),
		})
	}
	for _, s := range g.Goals() {
		doc.Goals = append(doc.Goals, label(s))
	}
	steps := make(map[[2]S]bool, len(path))
	for i := 1; i < len(path); i++ {
		steps[[2]S{path[i-1], path[i]}] = true
	}
	drawn := make(map[[2]S]bool, len(steps))
	doc.Edges = make([]Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		key := [2]S{e.From, e.To}
		on := steps[key]
		if on {
			drawn[key] = true
		}
		doc.Edges = append(doc.Edges, Edge{
			From:   ids[e.From],
			To:     ids[e.To],
			Action: label(e.Action),
			Tree:   true,
			OnPath: on,
		})
	}
	for i := 1; i < len(path); i++ {
		key := [2]S{path[i-1], path[i]}
		from, okFrom := ids[key[0]]
		to, okTo := ids[key[1]]
		if drawn[key] || !okFrom || !okTo {
			continue
		}
		drawn[key] = true
		doc.Edges = append(doc.Edges, Edge{
			From:   from,
			To:     to,
			Action: label(actions[i-1]),
			OnPath: true,
		})
	}

	return doc
}

// Write encodes doc in format f.
func Write(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatDOT:
		return WriteDOT(w, doc)
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatYAML:
		return WriteYAML(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}

	return nil
}

// WriteYAML writes doc as YAML with two-space indentation.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}

	return nil
}

func label(v any) string { return fmt.Sprint(v) }

func labels[T any](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = label(v)
	}

	return out
}
