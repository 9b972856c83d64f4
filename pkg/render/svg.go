package render

import (
	"bytes"
	"fmt"

	"github.com/jgrunert/amaze/pkg/maze"
)

// CellSize is the edge length in SVG units of one grid cell.
const CellSize = 16

// SVG renders the grid as one rect per cell. The output is self-contained
// and viewBox-normalized so it scales cleanly in browsers and image viewers.
func SVG(g *maze.Grid, overlay Overlay, theme Theme) []byte {
	classes := Classify(g, overlay)
	w := g.Width() * CellSize
	h := g.Height() * CellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, theme.WallColor)

	for y, row := range classes {
		for x, c := range row {
			if c == ClassWall {
				continue // background already painted
			}
			fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x*CellSize, y*CellSize, CellSize, CellSize, theme.Color(c))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
