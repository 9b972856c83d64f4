package maze

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest usable grid width or height. Anything below
// this cannot hold two rooms and a connecting wall.
const MinDimension = 3

// ErrDimensionTooSmall is returned by [New] when width or height is below
// [MinDimension].
var ErrDimensionTooSmall = errors.New("grid dimensions must be at least 3")

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall blocks movement. Grids start fully walled.
	Wall Cell = iota
	// Passage is an open cell carved by a generator.
	Passage
)

// Position is a 0-indexed cell coordinate.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// String returns the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns the position offset by dx, dy.
func (p Position) Add(dx, dy int) Position { return Position{X: p.X + dx, Y: p.Y + dy} }

// Manhattan returns the L1 distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Path is an ordered sequence of positions from start to end inclusive.
// Consecutive entries are 4-adjacent passage cells. An empty path means
// "no route found" and is a valid terminal result, not an error.
type Path []Position

// Grid is a rectangular wall/passage field. The zero value is not usable;
// use [New]. Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a fully walled grid. Returns [ErrDimensionTooSmall] if either
// dimension is below [MinDimension]; dimensions are never clamped silently.
// Callers should prefer odd dimensions: with even ones the outermost row or
// column has no room centers and stays walled.
func New(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensionTooSmall, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell state at p. Out-of-bounds positions read as [Wall],
// so traversal code can probe neighbors without bounds checks of its own.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.width+p.X]
}

// IsPassage reports whether p is an in-bounds passage cell.
func (g *Grid) IsPassage(p Position) bool { return g.At(p) == Passage }

// Carve opens the cell at p. Out-of-bounds positions are ignored.
// Only generators should call this; solvers never mutate a grid.
func (g *Grid) Carve(p Position) {
	if g.InBounds(p) {
		g.cells[p.Y*g.width+p.X] = Passage
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Cells returns the underlying cell slice in row-major order. The slice is
// shared with the grid; treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// PassageCount returns the number of carved cells.
func (g *Grid) PassageCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Passage {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// CardinalDirections are the four unit steps used when walking corridors.
var CardinalDirections = [4]Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

// RoomDirections are the four two-step offsets between adjacent room centers.
var RoomDirections = [4]Position{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

// RoomCols returns the number of room-center columns (even x coordinates).
func (g *Grid) RoomCols() int { return (g.width + 1) / 2 }

// RoomRows returns the number of room-center rows (even y coordinates).
func (g *Grid) RoomRows() int { return (g.height + 1) / 2 }

// LastRoom returns the bottom-right-most room center, the growth target of
// the A*-ordered generator.
func (g *Grid) LastRoom() Position {
	return Position{X: (g.width - 1) / 2 * 2, Y: (g.height - 1) / 2 * 2}
}

// IsRoom reports whether p is a room center under the two-step convention.
func IsRoom(p Position) bool { return p.X%2 == 0 && p.Y%2 == 0 }

// WallBetween returns the connecting-wall cell between two rooms that are
// one two-step apart.
func WallBetween(a, b Position) Position {
	return Position{X: a.X + (b.X-a.X)/2, Y: a.Y + (b.Y-a.Y)/2}
}
