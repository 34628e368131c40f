// Package gen provides small randomized input generators: integer lists,
// unique point sets, and string tokens.
//
// What:
//
//   - Generator[T]: the uniform contract — produce one value of T from an
//     injected *rand.Rand.
//   - IntList: a random-length slice of uniform integers.
//   - PointList / Point3List: a random-length set of distinct 2D / 3D
//     points.
//   - Token: a random string drawn from a configured charset.
//
// Why:
//
//   - Puzzle-input generators mix structured geometry (see lattice and
//     maze) with unstructured noise: filler numbers, scattered
//     coordinates, short keyword-ish tokens. These cover the noise side
//     with validated, reproducible configuration.
//
// Conventions:
//
//   - All ranges are half-open: [min, max). A range is valid iff
//     min < max.
//   - Configuration is validated at construction and returns sentinel
//     errors; Generate itself fails only where documented.
//   - Determinism: pass a seeded *rand.Rand and the output is
//     reproducible.
package gen
