package render

import (
	"strings"

	"github.com/jgrunert/amaze/pkg/maze"
)

// CellClass is the visual category of a cell after overlays are applied.
// Precedence is start/end > path > visited > passage/wall.
type CellClass uint8

const (
	ClassWall CellClass = iota
	ClassPassage
	ClassVisited
	ClassPath
	ClassStart
	ClassEnd
)

// Overlay marks solution data on top of a grid. All fields are optional;
// Start and End are taken from the path's endpoints.
type Overlay struct {
	Path    maze.Path
	Visited []maze.Position
}

// Classify returns the visual class of every cell, row-major.
func Classify(g *maze.Grid, overlay Overlay) [][]CellClass {
	classes := make([][]CellClass, g.Height())
	for y := range classes {
		classes[y] = make([]CellClass, g.Width())
		for x := range classes[y] {
			if g.IsPassage(maze.Position{X: x, Y: y}) {
				classes[y][x] = ClassPassage
			}
		}
	}

	mark := func(p maze.Position, c CellClass) {
		if g.InBounds(p) {
			classes[p.Y][p.X] = c
		}
	}
	for _, p := range overlay.Visited {
		mark(p, ClassVisited)
	}
	for _, p := range overlay.Path {
		mark(p, ClassPath)
	}
	if len(overlay.Path) > 0 {
		mark(overlay.Path[0], ClassStart)
		mark(overlay.Path[len(overlay.Path)-1], ClassEnd)
	}
	return classes
}

// Glyph returns the theme glyph for a cell class.
func (t Theme) Glyph(c CellClass) string {
	switch c {
	case ClassPassage:
		return t.PassageGlyph
	case ClassVisited:
		return t.VisitedGlyph
	case ClassPath:
		return t.PathGlyph
	case ClassStart:
		return t.StartGlyph
	case ClassEnd:
		return t.EndGlyph
	default:
		return t.WallGlyph
	}
}

// Color returns the theme color for a cell class.
func (t Theme) Color(c CellClass) string {
	switch c {
	case ClassPassage:
		return t.PassageColor
	case ClassVisited:
		return t.VisitedColor
	case ClassPath:
		return t.PathColor
	case ClassStart:
		return t.StartColor
	case ClassEnd:
		return t.EndColor
	default:
		return t.WallColor
	}
}

// ASCII renders the grid as plain text, one line per row, using the theme's
// glyphs. The trailing newline is included.
func ASCII(g *maze.Grid, overlay Overlay, theme Theme) string {
	classes := Classify(g, overlay)
	var b strings.Builder
	b.Grow(g.Height() * (g.Width()*len(theme.WallGlyph) + 1))
	for _, row := range classes {
		for _, c := range row {
			b.WriteString(theme.Glyph(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
