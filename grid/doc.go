// Package grid provides a generic rectangular container addressed by
// geom.Point, the raster surface callers paint lattice paths and filler
// glyphs onto.
//
// What:
//
//   - Grid[T]: a width×height cell store with point-addressed Get/Set,
//     strict bounds checks, and row access for rendering.
//   - CharGrid: the byte specialization used for textual puzzle inputs,
//     with a RenderChars helper that joins rows into one string.
//
// Why:
//
//   - Generators rasterize point sequences into character grids; a shared
//     container with honest bounds semantics keeps that code short and
//     keeps out-of-range writes visible (Set reports false instead of
//     silently clipping or panicking).
//
// Bounds semantics: a point (x, y) is in bounds iff 0 <= x < Width and
// 0 <= y < Height. Both upper comparisons are strict.
//
// Complexity: Get/Set/InBounds are O(1); construction and rendering are
// O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension below 1, or a source slice with no rows
//     or no columns.
//   - ErrNonRectangular: source rows of differing lengths.
package grid
