package algo

import (
	"testing"

	"github.com/jgrunert/amaze/pkg/maze"
)

// solvers under test, with whether they guarantee shortest paths.
var solvers = []struct {
	name     string
	solve    SolveFunc
	shortest bool
}{
	{"dfs", SolveDFS, false},
	{"bfs", SolveBFS, true},
	{"astar", SolveAStar, true},
}

// assertValidPath checks endpoint anchoring, 4-adjacency and passage-only cells.
func assertValidPath(t *testing.T, g *maze.Grid, path maze.Path, start, end maze.Position) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Fatalf("path runs %v..%v, want %v..%v", path[0], path[len(path)-1], start, end)
	}
	for i, p := range path {
		if !g.IsPassage(p) {
			t.Fatalf("path[%d] = %v is not a passage cell", i, p)
		}
		if i > 0 && maze.Manhattan(path[i-1], p) != 1 {
			t.Fatalf("path[%d-1..%d] = %v..%v not 4-adjacent", i, i, path[i-1], p)
		}
	}
}

// referenceDistance is an exhaustive breadth-first distance count used to
// cross-check the optimal solvers.
func referenceDistance(g *maze.Grid, start, end maze.Position) int {
	dist := map[maze.Position]int{start: 0}
	queue := []maze.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur]
		}
		for _, d := range maze.CardinalDirections {
			next := cur.Add(d.X, d.Y)
			if _, seen := dist[next]; seen || !g.IsPassage(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestSolvers_FindValidPaths(t *testing.T) {
	for seed := uint64(0); seed < 4; seed++ {
		for _, gen := range All() {
			g, err := gen.Generate(13, 13, NewRand(seed))
			if err != nil {
				t.Fatalf("generate %s: %v", gen.ID, err)
			}
			start := maze.Position{}
			end := g.LastRoom()
			want := referenceDistance(g, start, end)
			if want < 0 {
				t.Fatalf("generate %s produced maze with unreachable corner", gen.ID)
			}

			for _, s := range solvers {
				res := s.solve(g, start, end)
				assertValidPath(t, g, res.Path, start, end)
				if s.shortest && len(res.Path)-1 != want {
					t.Errorf("%s on %s maze (seed %d): path length %d, want %d",
						s.name, gen.ID, seed, len(res.Path)-1, want)
				}
				if len(res.Visited) < len(res.Path) {
					t.Errorf("%s: visited %d cells, fewer than path length %d",
						s.name, len(res.Visited), len(res.Path))
				}
			}
		}
	}
}

func TestSolvers_StartEqualsEnd(t *testing.T) {
	g, _ := Generate(DFS, 7, 7, 1)
	p := maze.Position{}
	for _, s := range solvers {
		res := s.solve(g, p, p)
		if len(res.Path) != 1 || res.Path[0] != p {
			t.Errorf("%s: Path = %v, want [%v]", s.name, res.Path, p)
		}
	}
}

func TestSolvers_Unreachable(t *testing.T) {
	// Two carved rooms, deliberately disconnected.
	g, err := maze.New(7, 7)
	if err != nil {
		t.Fatal(err)
	}
	start := maze.Position{X: 0, Y: 0}
	end := maze.Position{X: 6, Y: 6}
	g.Carve(start)
	g.Carve(end)

	for _, s := range solvers {
		res := s.solve(g, start, end)
		if len(res.Path) != 0 {
			t.Errorf("%s: Path = %v on disconnected grid, want empty", s.name, res.Path)
		}
	}
}

func TestSolvers_WallEndpoints(t *testing.T) {
	g, _ := Generate(BFS, 9, 9, 3)
	wall := maze.Position{X: 1, Y: 1} // odd-odd cells are never carved
	open := maze.Position{}

	for _, s := range solvers {
		if res := s.solve(g, wall, open); len(res.Path) != 0 {
			t.Errorf("%s: wall start returned path %v, want empty", s.name, res.Path)
		}
		if res := s.solve(g, open, wall); len(res.Path) != 0 {
			t.Errorf("%s: wall end returned path %v, want empty", s.name, res.Path)
		}
	}
}

func TestSolvers_GridNotMutated(t *testing.T) {
	g, _ := Generate(Prim, 11, 11, 5)
	snapshot := g.Clone()
	for _, s := range solvers {
		s.solve(g, maze.Position{}, g.LastRoom())
	}
	if !g.Equal(snapshot) {
		t.Error("solving mutated the grid")
	}
}

func TestSolveAStar_VisitsNoMoreThanBFS(t *testing.T) {
	g, _ := Generate(DFS, 21, 21, 9)
	start := maze.Position{}
	end := g.LastRoom()

	bfs := SolveBFS(g, start, end)
	astar := SolveAStar(g, start, end)
	if len(astar.Visited) > len(bfs.Visited) {
		t.Errorf("A* visited %d cells, BFS %d; heuristic should not expand more",
			len(astar.Visited), len(bfs.Visited))
	}
}
