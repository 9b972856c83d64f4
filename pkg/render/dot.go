package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/jgrunert/amaze/pkg/maze"
)

// ToDOT converts the carved room graph to Graphviz DOT. Rooms become nodes
// named "x,y" and carved connecting walls become undirected edges, which
// makes the spanning-tree structure of a perfect maze directly visible.
// Rooms on the solved path are filled with the theme's path color.
func ToDOT(g *maze.Grid, overlay Overlay, theme Theme) string {
	onPath := make(map[maze.Position]bool, len(overlay.Path))
	for _, p := range overlay.Path {
		onPath[p] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fontsize=10, margin=\"0.05,0.02\"];\n")
	buf.WriteString("\n")

	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x += 2 {
			room := maze.Position{X: x, Y: y}
			if !g.IsPassage(room) {
				continue
			}
			attrs := fmt.Sprintf("pos=%q", fmt.Sprintf("%d,%d!", x/2, -y/2))
			if onPath[room] {
				attrs += fmt.Sprintf(", fillcolor=%q", theme.PathColor)
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(room), attrs)
		}
	}

	buf.WriteString("\n")
	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x += 2 {
			room := maze.Position{X: x, Y: y}
			// Right and down only, so each corridor appears once.
			for _, d := range []maze.Position{{X: 2, Y: 0}, {X: 0, Y: 2}} {
				next := room.Add(d.X, d.Y)
				if g.IsPassage(room) && g.IsPassage(next) && g.IsPassage(maze.WallBetween(room, next)) {
					fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(room), nodeID(next))
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p maze.Position) string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// RenderDOT rasterizes a DOT graph with Graphviz. Supported formats are
// [graphviz.SVG] and [graphviz.PNG].
func RenderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG rasterizes the room graph to PNG.
func RenderPNG(ctx context.Context, g *maze.Grid, overlay Overlay, theme Theme) ([]byte, error) {
	return RenderDOT(ctx, ToDOT(g, overlay, theme), graphviz.PNG)
}
