package algo

import (
	"container/heap"
	"math/rand/v2"

	"github.com/jgrunert/amaze/pkg/maze"
)

// posHeap is a min-heap of positions keyed by priority. Entries carry a
// monotonically increasing sequence number so equal priorities pop in
// insertion order, which keeps both A* variants fully deterministic.
type posHeap struct {
	items []heapItem
	seq   int
}

type heapItem struct {
	pos      maze.Position
	priority int
	seq      int
}

func (h *posHeap) Len() int { return len(h.items) }

func (h *posHeap) Less(i, j int) bool {
	if h.items[i].priority != h.items[j].priority {
		return h.items[i].priority < h.items[j].priority
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *posHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *posHeap) Push(x any) { h.items = append(h.items, x.(heapItem)) }

func (h *posHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

func (h *posHeap) push(p maze.Position, priority int) {
	heap.Push(h, heapItem{pos: p, priority: priority, seq: h.seq})
	h.seq++
}

func (h *posHeap) pop() maze.Position {
	return heap.Pop(h).(heapItem).pos
}

// GenerateAStar grows the maze in the order of an A* search from the
// top-left room toward the bottom-right-most room, with f = g + h where g is
// carve steps so far and h the Manhattan distance to the target. Each pop
// marks the popped room as passage and carves the wall to its predecessor;
// a neighbor is re-pushed whenever a strictly shorter tentative g is found.
//
// There is no randomness here: the rng parameter exists only to satisfy
// [GenerateFunc]. Growth stops once the target room is popped, and corridors
// are biased toward straight runs pointing at the target corner. Both are
// deliberate structural properties of this variant.
func GenerateAStar(width, height int, _ *rand.Rand) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}

	start := maze.Position{}
	target := g.LastRoom()

	gScore := map[maze.Position]int{start: 0}
	cameFrom := make(map[maze.Position]maze.Position)

	open := &posHeap{}
	open.push(start, maze.Manhattan(start, target))

	for open.Len() > 0 {
		cur := open.pop()
		if g.IsPassage(cur) {
			continue // already finalized via a shorter route
		}
		g.Carve(cur)
		if from, ok := cameFrom[cur]; ok {
			g.Carve(maze.WallBetween(from, cur))
		}
		if cur == target {
			break
		}

		for _, d := range maze.RoomDirections {
			next := cur.Add(d.X, d.Y)
			if !g.InBounds(next) || g.IsPassage(next) {
				continue
			}
			tentative := gScore[cur] + 1
			if old, seen := gScore[next]; !seen || tentative < old {
				gScore[next] = tentative
				cameFrom[next] = cur
				open.push(next, tentative+maze.Manhattan(next, target))
			}
		}
	}

	return g, nil
}

// SolveAStar finds the shortest path with an A* search keyed by
// f = path-length-so-far + Manhattan distance to end. Manhattan distance on a
// 4-connected unit-cost grid is admissible and consistent, so the result
// matches BFS while typically expanding fewer cells. A closed set skips
// already-finalized cells popped again through stale heap entries.
func SolveAStar(g *maze.Grid, start, end maze.Position) *SolveResult {
	res := &SolveResult{}
	if !endpointsUsable(g, start, end) {
		return res
	}
	if start == end {
		res.Path = maze.Path{start}
		res.Visited = []maze.Position{start}
		return res
	}

	gScore := map[maze.Position]int{start: 0}
	parent := make(map[maze.Position]maze.Position)
	closed := make(map[maze.Position]bool)

	open := &posHeap{}
	open.push(start, maze.Manhattan(start, end))

	for open.Len() > 0 {
		cur := open.pop()
		if closed[cur] {
			continue
		}
		closed[cur] = true
		res.Visited = append(res.Visited, cur)

		if cur == end {
			res.Path = reconstruct(parent, start, end)
			return res
		}

		for _, d := range maze.CardinalDirections {
			next := cur.Add(d.X, d.Y)
			if !g.IsPassage(next) || closed[next] {
				continue
			}
			tentative := gScore[cur] + 1
			if old, seen := gScore[next]; !seen || tentative < old {
				gScore[next] = tentative
				parent[next] = cur
				open.push(next, tentative+maze.Manhattan(next, end))
			}
		}
	}

	return res
}
