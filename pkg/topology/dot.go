package topology

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/nmlgraph/nmlgraph/pkg/nml"
)

// Options configures DOT rendering of a topology.
type Options struct {
	// Detailed includes entity identifiers in labels. When false, only
	// names are shown.
	Detailed bool
}

// ToDOT converts the manager's topology to Graphviz DOT format: one box
// per node and one undirected-looking edge per bilink between the owning
// nodes. The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG]. Output follows creation order and is deterministic.
func ToDOT(m *Manager, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph topology {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range m.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.Identifier(), fmtLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, bl := range m.Bilinks() {
		from, okA := m.NodeOf(bl.A)
		to, okB := m.NodeOf(bl.B)
		if !okA || !okB {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n",
			from.Identifier(), to.Identifier(), edgeLabel(bl))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e *nml.Entity, detailed bool) string {
	name := e.Name().Or(e.Identifier())
	if !detailed {
		return name
	}
	return name + "\n" + e.Identifier()
}

func edgeLabel(bl Bilink) string {
	parts := []string{
		bl.A.Name().Or(bl.A.Identifier()),
		bl.B.Name().Or(bl.B.Identifier()),
	}
	return strings.Join(parts, " / ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
