// Package algo implements the maze generation and solving algorithms and the
// registry that maps algorithm identifiers to them.
//
// Each [Algorithm] pairs a generator with a solver and a [Descriptor] used for
// UI labeling. Generators turn a fresh wall-filled grid into a perfect maze (a
// spanning tree of the room graph: exactly one simple path between any two
// rooms). Solvers walk the carved corridor graph between two passage cells and
// report both the path and the cells they explored along the way.
//
// All calls are synchronous and hold no state between invocations. Randomized
// generators take an injected *rand.Rand so results are reproducible: the same
// seed produces byte-identical grids.
//
//	alg, err := algo.Lookup(algo.DFS)
//	if err != nil {
//	    return err
//	}
//	g, err := alg.Generate(41, 41, rand.New(rand.NewPCG(7, 7)))
//	if err != nil {
//	    return err
//	}
//	res := alg.Solve(g, maze.Position{}, g.LastRoom())
//	if len(res.Path) == 0 {
//	    // unreachable, not an error
//	}
package algo
