package algo

import (
	"math/rand/v2"

	"github.com/jgrunert/amaze/pkg/maze"
)

// GenerateBFS carves a maze by randomized frontier expansion with a FIFO
// queue. Compared to the backtracker it branches more often near the seed and
// produces shorter average corridor runs.
//
// The connecting wall is carved when a neighbor is discovered (at enqueue),
// not when it is dequeued. The queued set therefore doubles as the
// "wall already carved" guard and is tracked separately from the passage
// marks, which are only applied on dequeue. Every room is enqueued exactly
// once, so every carved wall joins a new room to the tree.
func GenerateBFS(width, height int, rng *rand.Rand) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}

	start := randomRoom(g, rng)
	queue := []maze.Position{start}
	queued := map[maze.Position]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		g.Carve(cur)

		for _, d := range shuffledRoomDirections(rng) {
			next := cur.Add(d.X, d.Y)
			if !g.InBounds(next) || queued[next] {
				continue
			}
			g.Carve(maze.WallBetween(cur, next))
			queued[next] = true
			queue = append(queue, next)
		}
	}

	return g, nil
}

// SolveBFS finds the shortest path in cell count. All corridor edges have
// unit cost, so exploring in FIFO order visits cells in non-decreasing
// distance from start. Cells are marked visited at enqueue time; marking at
// dequeue would re-expand cells exponentially on open areas.
func SolveBFS(g *maze.Grid, start, end maze.Position) *SolveResult {
	res := &SolveResult{}
	if !endpointsUsable(g, start, end) {
		return res
	}
	if start == end {
		res.Path = maze.Path{start}
		res.Visited = []maze.Position{start}
		return res
	}

	visited := map[maze.Position]bool{start: true}
	parent := make(map[maze.Position]maze.Position)
	queue := []maze.Position{start}
	res.Visited = append(res.Visited, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range maze.CardinalDirections {
			next := cur.Add(d.X, d.Y)
			if !g.IsPassage(next) || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			res.Visited = append(res.Visited, next)
			if next == end {
				res.Path = reconstruct(parent, start, end)
				return res
			}
			queue = append(queue, next)
		}
	}

	return res
}
