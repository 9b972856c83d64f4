package algo

import (
	"errors"
	"testing"

	"github.com/jgrunert/amaze/pkg/maze"
)

func TestList_StableOrder(t *testing.T) {
	want := []ID{DFS, BFS, AStar, Prim}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("List() returned %d descriptors, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.ID != want[i] {
			t.Errorf("List()[%d].ID = %q, want %q", i, d.ID, want[i])
		}
		if d.Name == "" || d.Complexity == "" || d.Description == "" {
			t.Errorf("List()[%d] = %+v has empty metadata", i, d)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, id := range IDs() {
		a, err := Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", id, err)
		}
		if a.Generate == nil || a.Solve == nil {
			t.Errorf("Lookup(%q) returned algorithm with nil functions", id)
		}
	}

	if _, err := Lookup("dijkstra"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Lookup(\"dijkstra\") error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestGenerate_ByID(t *testing.T) {
	g, err := Generate(Prim, 9, 9, 11)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if g.PassageCount() == 0 {
		t.Error("Generate produced an empty grid")
	}

	if _, err := Generate("nope", 9, 9, 0); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Generate with unknown id error = %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := Generate(DFS, 1, 1, 0); !errors.Is(err, maze.ErrDimensionTooSmall) {
		t.Errorf("Generate(1, 1) error = %v, want ErrDimensionTooSmall", err)
	}
}

func TestSolve_ByID(t *testing.T) {
	g, _ := Generate(DFS, 9, 9, 2)
	res, err := Solve(AStar, g, maze.Position{}, g.LastRoom())
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}
	if len(res.Path) == 0 {
		t.Error("Solve returned empty path on connected maze")
	}

	if _, err := Solve("nope", g, maze.Position{}, maze.Position{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Solve with unknown id error = %v, want ErrUnknownAlgorithm", err)
	}
}
