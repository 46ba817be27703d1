package export

import (
	"fmt"
	"io"
	"strings"
)

var roleColors = map[string]string{
	"initial":  "#2ecc71",
	"goal":     "#e74c3c",
	"solution": "#f39c12",
	"explored": "#aed6f1",
}

const (
	pathEdgeColor = "#c0392b"
	edgeColor     = "#bdc3c7"
)

// WriteDOT writes doc as a Graphviz digraph.
func WriteDOT(w io.Writer, doc *Document) error {
	var sb strings.Builder

	sb.WriteString("digraph StateSpace {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box, style=filled, fontname=monospace];\n")
	if doc.Title != "" {
		fmt.Fprintf(&sb, "  label=%s;\n  labelloc=t;\n", quote(doc.Title))
	}
	sb.WriteString("\n")

	layers := make([][]string, doc.Depth+1)
	for _, n := range doc.Nodes {
		fmt.Fprintf(&sb, "  %s [label=%s, fillcolor=%s];\n",
			n.ID, quote(n.Label), quote(roleColors[n.Role]))
		if n.Layer >= 0 && n.Layer < len(layers) {
			layers[n.Layer] = append(layers[n.Layer], n.ID)
		}
	}
	sb.WriteString("\n")

	for _, ids := range layers {
		if len(ids) > 0 {
			fmt.Fprintf(&sb, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}
	sb.WriteString("\n")

	for _, e := range doc.Edges {
		switch {
		case e.OnPath && !e.Tree:
			fmt.Fprintf(&sb, "  %s -> %s [label=%s, color=%s, penwidth=2.5, style=dashed];\n",
				e.From, e.To, quote(e.Action), quote(pathEdgeColor))
		case e.OnPath:
			fmt.Fprintf(&sb, "  %s -> %s [label=%s, color=%s, penwidth=2.5];\n",
				e.From, e.To, quote(e.Action), quote(pathEdgeColor))
		default:
			fmt.Fprintf(&sb, "  %s -> %s [label=%s, color=%s];\n",
				e.From, e.To, quote(e.Action), quote(edgeColor))
		}
	}

	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("export: dot: %w", err)
	}

	return nil
}

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return `"` + s + `"`
}
