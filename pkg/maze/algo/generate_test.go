package algo

import (
	"errors"
	"testing"

	"github.com/jgrunert/amaze/pkg/maze"
)

// assertPerfect checks that the carved rooms form a spanning tree: a single
// connected component with exactly rooms-1 carved connecting walls, and no
// passage cells outside the two-step lattice.
func assertPerfect(t *testing.T, g *maze.Grid) {
	t.Helper()

	var rooms []maze.Position
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			if !g.IsPassage(p) {
				continue
			}
			if x%2 == 1 && y%2 == 1 {
				t.Fatalf("passage at %v: cells with two odd coordinates are never carvable", p)
			}
			if maze.IsRoom(p) {
				rooms = append(rooms, p)
			}
		}
	}
	if len(rooms) == 0 {
		t.Fatal("no rooms carved")
	}

	// Count carved connecting walls, looking right and down only so each
	// edge is counted once.
	edges := 0
	for _, r := range rooms {
		for _, d := range []maze.Position{{X: 2, Y: 0}, {X: 0, Y: 2}} {
			next := r.Add(d.X, d.Y)
			if g.IsPassage(next) && g.IsPassage(maze.WallBetween(r, next)) {
				edges++
			}
		}
	}
	if edges != len(rooms)-1 {
		t.Errorf("carved walls = %d, want rooms-1 = %d", edges, len(rooms)-1)
	}

	// Flood the room graph from the first room.
	seen := map[maze.Position]bool{rooms[0]: true}
	queue := []maze.Position{rooms[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range maze.RoomDirections {
			next := cur.Add(d.X, d.Y)
			if seen[next] || !g.IsPassage(next) || !g.IsPassage(maze.WallBetween(cur, next)) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	if len(seen) != len(rooms) {
		t.Errorf("connected rooms = %d, want %d (isolated rooms exist)", len(seen), len(rooms))
	}
}

func TestGenerators_ProducePerfectMazes(t *testing.T) {
	sizes := []struct{ width, height int }{
		{5, 5},
		{7, 7},
		{15, 9},
		{21, 21},
		{10, 12}, // even dimensions: outermost row/column stays walled
	}
	for _, a := range All() {
		for _, size := range sizes {
			g, err := a.Generate(size.width, size.height, NewRand(42))
			if err != nil {
				t.Fatalf("%s: Generate(%d, %d) error = %v", a.ID, size.width, size.height, err)
			}
			if g.Width() != size.width || g.Height() != size.height {
				t.Fatalf("%s: grid is %dx%d, want %dx%d",
					a.ID, g.Width(), g.Height(), size.width, size.height)
			}
			assertPerfect(t, g)
		}
	}
}

func TestGenerators_FullCoverage(t *testing.T) {
	// DFS, BFS and Prim reach every room of the lattice. A*-ordered stops
	// at the target corner and intentionally leaves rooms unvisited.
	for _, id := range []ID{DFS, BFS, Prim} {
		g, err := Generate(id, 11, 11, 7)
		if err != nil {
			t.Fatalf("%s: Generate error = %v", id, err)
		}
		for y := 0; y < g.Height(); y += 2 {
			for x := 0; x < g.Width(); x += 2 {
				if !g.IsPassage(maze.Position{X: x, Y: y}) {
					t.Errorf("%s: room (%d,%d) not carved", id, x, y)
				}
			}
		}
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	for _, a := range All() {
		first, err := a.Generate(21, 21, NewRand(1234))
		if err != nil {
			t.Fatalf("%s: Generate error = %v", a.ID, err)
		}
		second, err := a.Generate(21, 21, NewRand(1234))
		if err != nil {
			t.Fatalf("%s: Generate error = %v", a.ID, err)
		}
		if !first.Equal(second) {
			t.Errorf("%s: identical seeds produced different grids", a.ID)
		}
	}
}

func TestGenerators_SeedChangesRandomizedOutput(t *testing.T) {
	for _, id := range []ID{DFS, BFS, Prim} {
		first, _ := Generate(id, 31, 31, 1)
		second, _ := Generate(id, 31, 31, 2)
		if first.Equal(second) {
			t.Errorf("%s: different seeds produced identical 31x31 grids", id)
		}
	}
}

func TestGenerateAStar_ReachesTargetCorner(t *testing.T) {
	g, err := Generate(AStar, 15, 15, 0)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if !g.IsPassage(maze.Position{X: 0, Y: 0}) {
		t.Error("start room (0,0) not carved")
	}
	if !g.IsPassage(g.LastRoom()) {
		t.Errorf("target room %v not carved", g.LastRoom())
	}
}

func TestGenerators_RejectSmallDimensions(t *testing.T) {
	for _, a := range All() {
		if _, err := a.Generate(2, 9, NewRand(0)); !errors.Is(err, maze.ErrDimensionTooSmall) {
			t.Errorf("%s: Generate(2, 9) error = %v, want ErrDimensionTooSmall", a.ID, err)
		}
	}
}
