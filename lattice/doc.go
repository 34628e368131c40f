// Package lattice models unit-step polygonal paths on the integer grid
// and evolves them through randomized, invariant-preserving local edits.
//
// What:
//
//   - PointPath: the contract satisfied by any ordered point sequence
//     describing a path (length, indexed access, iteration, insertion,
//     removal, translation).
//   - Path / ClosedPath: the two concrete variants; a ClosedPath keeps its
//     first and last point identical, representing a loop.
//   - Mutator: a transform that edits a PointPath in place and reports
//     whether anything changed. Four implementations:
//     Condenser (drop collinear interior points),
//     Scaler (multiply coordinates by per-axis factors),
//     Reflector (mirror across the x-axis, y-axis, or both),
//     SegmentAdder (randomly bump edges outward/inward while keeping the
//     path unit-step and self-avoiding).
//
// Why:
//
//   - Procedural input generation: grow an irregular self-avoiding loop
//     from a seed rectangle, then condense/scale/reflect it before the
//     caller rasterizes the point sequence into a character grid.
//
// Validity model:
//
//   - Storage and validity are deliberately separated. Paths store points
//     and never validate self-avoidance, unit-step segments, or closure;
//     each mutator establishes and maintains exactly the properties it
//     cares about. Breaking a ClosedPath's closure through direct edits is
//     a caller responsibility, not a runtime-checked invariant.
//
// Determinism:
//
//   - SegmentAdder consumes an injected *rand.Rand. Use WithSeed (or
//     WithRand with a seeded source) to reproduce a path exactly.
//
// Complexity:
//
//   - Condenser/Scaler/Reflector: O(n) over the path.
//   - SegmentAdder: O(passes × n) expected, plus O(n) avoidance-set memory.
//
// Errors:
//
//   - ErrInvalidDimension: Rect called with width or height < 1.
//   - ErrInvalidFactor: NewScaler called with a factor < 1.
package lattice
