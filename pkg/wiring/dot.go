// Package wiring renders panel wiring diagrams.
//
// A diagram shows every physical panel as a node on its grid position, with
// edges following the electrical chain from each output connector through
// its panels. This is useful for double-checking a topology and a mapper
// parameter string against the panels actually on the wall.
//
// The DOT output can be viewed with any Graphviz tool; [RenderSVG] renders
// it in-process.
package wiring

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	errs "github.com/ledgrid/panelmap/pkg/errors"
)

// Layout describes the panel grid to diagram.
type Layout struct {
	// Chain is the number of panels wired in series per output.
	Chain int

	// Parallel is the number of parallel output chains.
	Parallel int

	// PanelCols and PanelRows are the pixel dimensions of one panel,
	// shown in the node labels. Zero hides the pixel size.
	PanelCols int
	PanelRows int
}

// ToDOT converts a layout to Graphviz DOT format. Panels keep their grid
// positions; each chain gets a connector node feeding its first panel.
func ToDOT(l Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wiring {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [color=grey40];\n")
	buf.WriteString("\n")

	for out := 0; out < l.Parallel; out++ {
		fmt.Fprintf(&buf, "  out%d [label=\"output %d\", shape=cds, fillcolor=lightgrey];\n", out, out)
	}
	buf.WriteString("\n")

	for out := 0; out < l.Parallel; out++ {
		for pos := 0; pos < l.Chain; pos++ {
			index := out*l.Chain + pos
			fmt.Fprintf(&buf, "  p%d [label=%q];\n", index, panelLabel(l, index))
		}
	}

	buf.WriteString("\n")
	for out := 0; out < l.Parallel; out++ {
		fmt.Fprintf(&buf, "  out%d -> p%d;\n", out, out*l.Chain)
		for pos := 1; pos < l.Chain; pos++ {
			index := out*l.Chain + pos
			fmt.Fprintf(&buf, "  p%d -> p%d;\n", index-1, index)
		}
	}

	// Keep each chain on its own rank so rows match the mounted grid.
	buf.WriteString("\n")
	for out := 0; out < l.Parallel; out++ {
		buf.WriteString("  { rank=same;")
		for pos := 0; pos < l.Chain; pos++ {
			fmt.Fprintf(&buf, " p%d;", out*l.Chain+pos)
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func panelLabel(l Layout, index int) string {
	if l.PanelCols > 0 && l.PanelRows > 0 {
		return fmt.Sprintf("panel %d\n%dx%d", index, l.PanelCols, l.PanelRows)
	}
	return fmt.Sprintf("panel %d", index)
}

// RenderSVG renders a DOT diagram to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
