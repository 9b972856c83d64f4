// Package maze provides the grid data model shared by all maze generators
// and solvers.
//
// A [Grid] is a rectangular field of cells, each either [Wall] or [Passage].
// Generation follows the two-step convention: cells at even coordinates are
// room centers, and the cell directly between two adjacent rooms is the
// connecting wall. Carving that wall joins the rooms, which keeps every
// corridor exactly one cell wide.
//
// Grids are created wall-filled and mutated only while a generator owns them.
// Solvers treat grids as read-only. A Grid is not safe for concurrent use;
// callers must keep at most one generation or solve in flight per grid.
package maze
