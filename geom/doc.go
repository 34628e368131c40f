// Package geom provides the integer-grid value primitives shared by the
// rest of the module: 2D points, compass directions, and axis-aligned
// bounds.
//
// What:
//
//   - Point: an (X, Y) integer coordinate with direction queries,
//     reflections, and Manhattan distance.
//   - Direction / Cardinal: compass enums whose values double as bitmasks
//     (North=1, NorthEast=2, East=4, ..., NorthWest=128); the masks are
//     identical across both enums for any shared direction.
//   - Bound2D: an inclusive axis-aligned rectangle, derivable as the tight
//     bounding box of a point set.
//
// Why:
//
//   - Lattice-path mutation, grid carving and maze generation all reason
//     about the same small vocabulary of coordinates and headings; keeping
//     them in a leaf package avoids import cycles and copies.
//
// Conventions:
//
//   - Y grows toward North, X grows toward East.
//   - All types here are plain values: copy freely, compare with ==.
//
// Complexity: every operation in this package is O(1) time and space,
// except BoundFromPoints which is O(n) over its input.
package geom
