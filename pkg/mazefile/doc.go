// Package mazefile defines the serialization format for mazes and solutions.
//
// This is the canonical wire format for amaze's data: JSON files on disk, API
// responses, cache entries, and MongoDB documents (via the bson tags). The
// core grid types never serialize themselves; all save/load lives here, at
// the boundary.
//
// The format is human-readable and round-trip faithful: a maze is stored as
// one string per row, '#' for wall and '.' for passage:
//
//	{
//	  "width": 5,
//	  "height": 5,
//	  "algorithm": "dfs",
//	  "seed": 7,
//	  "rows": [".....", ".###.", ".#...", ".#.##", "...#."]
//	}
//
// Common operations:
//
//	m, _ := mazefile.ReadFile("maze.json")     // file → Maze
//	g, _ := m.Grid()                           // Maze → *maze.Grid
//	mazefile.WriteFile(mazefile.FromGrid(g, "dfs", 7), "out.json")
package mazefile
