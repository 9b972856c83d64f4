// Package render turns grids and solutions into displayable artifacts.
//
// Three renderers are provided:
//   - [ASCII]: one glyph per cell, for terminals and the interactive player
//   - [SVG]: one rect per cell, for files and the HTTP API
//   - [ToDOT] + [RenderDOT]: the room graph in Graphviz DOT, which makes the
//     spanning-tree structure of a perfect maze visible
//
// All renderers are pure functions over (grid, overlay, theme); none of them
// mutate the grid. Overlays mark the solved path and the solver's explored
// cells and are purely visual.
package render
