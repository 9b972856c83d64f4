package mazefile

import (
	"path/filepath"
	"testing"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/maze"
	"github.com/jgrunert/amaze/pkg/maze/algo"
)

func TestFromGrid_Grid_RoundTrip(t *testing.T) {
	g, err := algo.Generate(algo.DFS, 9, 7, 13)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	m := FromGrid(g, "dfs", 13)
	if m.Width != 9 || m.Height != 7 || len(m.Rows) != 7 {
		t.Fatalf("FromGrid header = %dx%d/%d rows, want 9x7/7", m.Width, m.Height, len(m.Rows))
	}

	back, err := m.Grid()
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if !g.Equal(back) {
		t.Error("round trip changed the grid")
	}
}

func TestMaze_Grid_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		m    Maze
		code apperrors.Code
	}{
		{
			"dimensions below minimum",
			Maze{Width: 2, Height: 5, Rows: []string{"##", "##", "##", "##", "##"}},
			apperrors.ErrCodeInvalidDimensions,
		},
		{
			"row count mismatch",
			Maze{Width: 3, Height: 3, Rows: []string{"###", "###"}},
			apperrors.ErrCodeInvalidInput,
		},
		{
			"row width mismatch",
			Maze{Width: 3, Height: 3, Rows: []string{"###", "##", "###"}},
			apperrors.ErrCodeInvalidInput,
		},
		{
			"unknown glyph",
			Maze{Width: 3, Height: 3, Rows: []string{"###", "#x#", "###"}},
			apperrors.ErrCodeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.Grid(); !apperrors.Is(err, tt.code) {
				t.Errorf("Grid() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	g, _ := algo.Generate(algo.Prim, 7, 7, 3)
	m := FromGrid(g, "prim", 3)
	path := filepath.Join(t.TempDir(), "maze.json")

	if err := WriteFile(m, path); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if got.Algorithm != "prim" || got.Seed != 3 {
		t.Errorf("provenance = %s/%d, want prim/3", got.Algorithm, got.Seed)
	}
	back, err := got.Grid()
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if !g.Equal(back) {
		t.Error("file round trip changed the grid")
	}
}

func TestSolution_PathLength(t *testing.T) {
	empty := Solution{}
	if empty.PathLength() != 0 {
		t.Errorf("PathLength() = %d for empty path, want 0", empty.PathLength())
	}
	s := FromSolveResult("bfs", maze.Position{}, maze.Position{X: 2, Y: 0},
		maze.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, nil)
	if s.PathLength() != 2 {
		t.Errorf("PathLength() = %d, want 2", s.PathLength())
	}
}
