package algo

import (
	"math/rand/v2"

	"github.com/jgrunert/amaze/pkg/maze"
)

// ID identifies an algorithm variant. The set of identifiers is a closed
// enumeration; see [List] for the stable ordering.
type ID string

// Algorithm identifiers.
const (
	DFS   ID = "dfs"
	BFS   ID = "bfs"
	AStar ID = "astar"
	Prim  ID = "prim"
)

// Descriptor holds the immutable display metadata for an algorithm variant.
// It carries no executable behavior.
type Descriptor struct {
	ID          ID     `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Complexity  string `json:"complexity" bson:"complexity"`
	Description string `json:"description" bson:"description"`
}

// GenerateFunc carves a perfect maze into a freshly created grid.
// Implementations validate dimensions via maze.New and fail fast on bad input.
// The RNG may be ignored by deterministic variants.
type GenerateFunc func(width, height int, rng *rand.Rand) (*maze.Grid, error)

// SolveFunc finds a route between two passage cells of an existing grid.
// The grid is never mutated. Unreachable targets and WALL endpoints yield an
// empty path; there is no separate error channel for unreachability.
type SolveFunc func(g *maze.Grid, start, end maze.Position) *SolveResult

// SolveResult carries the route plus the solver's exploration trace.
type SolveResult struct {
	// Path is the route from start to end inclusive, or empty when none exists.
	Path maze.Path
	// Visited lists cells in the order the solver took them on, for
	// "explored cells" animation. Observational only: it never influences
	// the returned path.
	Visited []maze.Position
}

// Algorithm bundles a generator, a solver, and descriptive metadata.
type Algorithm struct {
	Descriptor
	Generate GenerateFunc
	Solve    SolveFunc
}

// NewRand returns the seeded RNG used for reproducible generation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// randomRoom picks a uniformly random room center (even coordinates).
func randomRoom(g *maze.Grid, rng *rand.Rand) maze.Position {
	return maze.Position{
		X: 2 * rng.IntN(g.RoomCols()),
		Y: 2 * rng.IntN(g.RoomRows()),
	}
}

// shuffledRoomDirections returns the four two-step directions in uniformly
// random order.
func shuffledRoomDirections(rng *rand.Rand) [4]maze.Position {
	dirs := maze.RoomDirections
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// endpointsUsable reports whether both endpoints are passage cells. Solving
// from or to a wall is defined to produce an empty path rather than a crash.
func endpointsUsable(g *maze.Grid, start, end maze.Position) bool {
	return g.IsPassage(start) && g.IsPassage(end)
}

// reconstruct walks parent links from end back to start and reverses.
func reconstruct(parent map[maze.Position]maze.Position, start, end maze.Position) maze.Path {
	path := maze.Path{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
