package mazefile

import (
	"strings"
	"time"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/maze"
)

// Cell glyphs used in the row strings.
const (
	GlyphWall    = '#'
	GlyphPassage = '.'
)

// Maze is the serialized form of a grid plus its provenance.
type Maze struct {
	Width     int      `json:"width" bson:"width"`
	Height    int      `json:"height" bson:"height"`
	Algorithm string   `json:"algorithm,omitempty" bson:"algorithm,omitempty"`
	Seed      uint64   `json:"seed,omitempty" bson:"seed,omitempty"`
	Rows      []string `json:"rows" bson:"rows"`
}

// Solution is the serialized result of solving a maze.
type Solution struct {
	Algorithm string          `json:"algorithm" bson:"algorithm"`
	Start     maze.Position   `json:"start" bson:"start"`
	End       maze.Position   `json:"end" bson:"end"`
	Path      []maze.Position `json:"path" bson:"path"`
	Visited   []maze.Position `json:"visited,omitempty" bson:"visited,omitempty"`
}

// Document wraps a maze with server-side identity for storage. The ID is a
// UUID assigned by the service, never by the core.
type Document struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Maze      Maze      `json:"maze" bson:"maze"`
}

// FromGrid converts a grid to its serialized form.
func FromGrid(g *maze.Grid, algorithm string, seed uint64) Maze {
	rows := make([]string, g.Height())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.Reset()
		for x := 0; x < g.Width(); x++ {
			if g.IsPassage(maze.Position{X: x, Y: y}) {
				b.WriteByte(GlyphPassage)
			} else {
				b.WriteByte(GlyphWall)
			}
		}
		rows[y] = b.String()
	}
	return Maze{
		Width:     g.Width(),
		Height:    g.Height(),
		Algorithm: algorithm,
		Seed:      seed,
		Rows:      rows,
	}
}

// FromSolveResult converts a solver result to its serialized form.
func FromSolveResult(algorithm string, start, end maze.Position, path maze.Path, visited []maze.Position) Solution {
	return Solution{
		Algorithm: algorithm,
		Start:     start,
		End:       end,
		Path:      path,
		Visited:   visited,
	}
}

// Grid validates the serialized maze and reconstructs the grid.
// Malformed documents fail with descriptive INVALID_INPUT errors.
func (m Maze) Grid() (*maze.Grid, error) {
	if err := apperrors.ValidateDimensions(m.Width, m.Height); err != nil {
		return nil, err
	}
	if len(m.Rows) != m.Height {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"maze has %d rows, header says %d", len(m.Rows), m.Height)
	}

	g, err := maze.New(m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	for y, row := range m.Rows {
		if len(row) != m.Width {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
				"row %d has %d cells, header says %d", y, len(row), m.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case GlyphPassage:
				g.Carve(maze.Position{X: x, Y: y})
			case GlyphWall:
				// stays walled
			default:
				return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
					"row %d col %d: unknown cell %q", y, x, row[x])
			}
		}
	}
	return g, nil
}

// PathLength returns the number of steps in the solution (cells minus one),
// or zero for an empty path.
func (s Solution) PathLength() int {
	if len(s.Path) == 0 {
		return 0
	}
	return len(s.Path) - 1
}
