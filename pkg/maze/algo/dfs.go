package algo

import (
	"math/rand/v2"

	"github.com/jgrunert/amaze/pkg/maze"
)

// GenerateDFS carves a maze with a randomized backtracker. Starting at a
// random room it repeatedly steps into a random unvisited two-step neighbor,
// carving the wall in between, and backtracks when none remain. Carving only
// ever proceeds into unvisited rooms, so the result is a spanning tree of the
// reachable room graph.
//
// The walk uses an explicit stack: recursion depth would otherwise grow with
// the room count and overflow on large grids.
func GenerateDFS(width, height int, rng *rand.Rand) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}

	start := randomRoom(g, rng)
	g.Carve(start)

	stack := []maze.Position{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		next, ok := randomUnvisitedNeighbor(g, cur, rng)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		g.Carve(maze.WallBetween(cur, next))
		g.Carve(next)
		stack = append(stack, next)
	}

	return g, nil
}

// randomUnvisitedNeighbor shuffles the two-step directions and returns the
// first in-bounds neighbor room that is still walled.
func randomUnvisitedNeighbor(g *maze.Grid, cur maze.Position, rng *rand.Rand) (maze.Position, bool) {
	for _, d := range shuffledRoomDirections(rng) {
		next := cur.Add(d.X, d.Y)
		if g.InBounds(next) && !g.IsPassage(next) {
			return next, true
		}
	}
	return maze.Position{}, false
}

// SolveDFS walks the corridor graph depth-first and returns the first path
// found, which is not necessarily the shortest. The visited set guards
// against revisiting cells; an explicit stack bounds memory deterministically.
func SolveDFS(g *maze.Grid, start, end maze.Position) *SolveResult {
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
	stack := []maze.Position{start}
	res.Visited = append(res.Visited, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		advanced := false
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
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return res
}
