package algo

import (
	"math/rand/v2"

	"github.com/jgrunert/amaze/pkg/maze"
)

// frontierWall is a candidate connecting wall on the edge of the grown tree,
// remembering the visited room it was reached from so the room on the far
// side can be found by mirroring.
type frontierWall struct {
	wall maze.Position
	from maze.Position
}

// GeneratePrim carves a maze by randomized minimum-spanning-tree growth.
// Starting from a random room, the walls around the visited region form a
// frontier. Each round picks one frontier wall uniformly at random (a plain
// uniform choice, not priority-ordered); if the room mirrored through the
// wall is still unvisited, the wall and that room are carved and the room's
// own walls join the frontier. Walls whose far room was visited in the
// meantime are dropped without carving.
//
// Every carved wall joins a new room to the existing tree, so the result is
// a perfect maze with more uniform branching than the backtracker produces.
func GeneratePrim(width, height int, rng *rand.Rand) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}

	start := randomRoom(g, rng)
	g.Carve(start)

	frontier := appendFrontier(nil, g, start)
	for len(frontier) > 0 {
		i := rng.IntN(len(frontier))
		fw := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		to := maze.Position{X: 2*fw.wall.X - fw.from.X, Y: 2*fw.wall.Y - fw.from.Y}
		if !g.InBounds(to) || g.IsPassage(to) {
			continue
		}

		g.Carve(fw.wall)
		g.Carve(to)
		frontier = appendFrontier(frontier, g, to)
	}

	return g, nil
}

// appendFrontier adds the walls between room and its unvisited two-step
// neighbors to the frontier.
func appendFrontier(frontier []frontierWall, g *maze.Grid, room maze.Position) []frontierWall {
	for _, d := range maze.RoomDirections {
		next := room.Add(d.X, d.Y)
		if g.InBounds(next) && !g.IsPassage(next) {
			frontier = append(frontier, frontierWall{wall: maze.WallBetween(room, next), from: room})
		}
	}
	return frontier
}
