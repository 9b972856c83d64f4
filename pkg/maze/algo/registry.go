package algo

import (
	"errors"
	"fmt"

	"github.com/jgrunert/amaze/pkg/maze"
)

// ErrUnknownAlgorithm is returned by [Lookup] for identifiers outside the
// closed enumeration. Hitting it is a caller programming error, not a
// recoverable runtime condition.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// algorithms is the fixed registry in stable display order. Prim has no
// solving counterpart, so it pairs with the BFS solver.
var algorithms = []Algorithm{
	{
		Descriptor: Descriptor{
			ID:          DFS,
			Name:        "Depth First Search",
			Complexity:  "O(V + E)",
			Description: "Explores the maze as deep as possible before backtracking",
		},
		Generate: GenerateDFS,
		Solve:    SolveDFS,
	},
	{
		Descriptor: Descriptor{
			ID:          BFS,
			Name:        "Breadth First Search",
			Complexity:  "O(V + E)",
			Description: "Explores the maze level by level from the seed",
		},
		Generate: GenerateBFS,
		Solve:    SolveBFS,
	},
	{
		Descriptor: Descriptor{
			ID:          AStar,
			Name:        "A* Search",
			Complexity:  "O(E log V)",
			Description: "Grows and solves along a Manhattan-distance heuristic",
		},
		Generate: GenerateAStar,
		Solve:    SolveAStar,
	},
	{
		Descriptor: Descriptor{
			ID:          Prim,
			Name:        "Prim's Algorithm",
			Complexity:  "O(E log V)",
			Description: "Grows the maze as a random minimum spanning tree",
		},
		Generate: GeneratePrim,
		Solve:    SolveBFS,
	},
}

// All returns the registered algorithms in stable order.
func All() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// List returns the descriptors of all algorithms in stable order.
func List() []Descriptor {
	out := make([]Descriptor, len(algorithms))
	for i, a := range algorithms {
		out[i] = a.Descriptor
	}
	return out
}

// IDs returns the valid identifiers in stable order.
func IDs() []ID {
	out := make([]ID, len(algorithms))
	for i, a := range algorithms {
		out[i] = a.ID
	}
	return out
}

// Lookup resolves an identifier to its algorithm. Lookup is total over the
// registry: any other identifier fails fast with [ErrUnknownAlgorithm].
func Lookup(id ID) (Algorithm, error) {
	for _, a := range algorithms {
		if a.ID == id {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownAlgorithm, id, IDs())
}

// Generate resolves id and generates a maze with an RNG seeded from seed.
// Identical seeds produce byte-identical grids.
func Generate(id ID, width, height int, seed uint64) (*maze.Grid, error) {
	a, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return a.Generate(width, height, NewRand(seed))
}

// Solve resolves id and solves an existing grid between start and end.
func Solve(id ID, g *maze.Grid, start, end maze.Position) (*SolveResult, error) {
	a, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return a.Solve(g, start, end), nil
}
