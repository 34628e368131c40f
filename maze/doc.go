// Package maze generates perfect mazes over a grid of wall-bitmask
// cells and renders them as character grids.
//
// What:
//
//   - Wall: a four-bit direction mask; each cell stores the set of walls
//     it has carved open toward its neighbors.
//   - Maze: a width×height cell store addressed by (row, col) Locations,
//     row 0 at the top.
//   - AldousBroder: unbiased random-walk carving — walk until every cell
//     has been visited, opening a wall whenever the walk first enters an
//     unvisited cell.
//   - Render: expands the w×h cell maze into a (2w+1)×(2h+1) character
//     grid of '#' walls and '.' corridors, with entry and exit corners
//     opened.
//
// Why:
//
//   - Maze-shaped puzzle inputs: a perfect maze guarantees exactly one
//     path between any two cells, which generators rely on when placing
//     start and goal markers.
//
// Complexity: AldousBroder runs in O(n log n) expected steps for n cells
// (cover time of the grid random walk); Render is O(W×H).
package maze
