// Package gridloom is an in-memory toolkit for procedurally generating
// lattice paths, grids, mazes and randomized list inputs — the reusable
// geometry underneath puzzle-shaped test-input generators.
//
// 🚀 What is gridloom?
//
//	A small, deterministic-by-choice library that brings together:
//		• Geometry primitives: integer points, compass directions, bounds
//		• Lattice paths: open & closed unit-step paths with a mutation protocol
//		• Path mutators: condense, scale, reflect, and the stochastic
//		  self-avoiding segment adder
//		• Grids: generic rectangular containers with strict bounds checks
//		• Mazes: wall-bitmask grids + Aldous–Broder carving
//		• Generators: random int lists, unique point sets, string tokens
//
// ✨ Why choose gridloom?
//
//   - Reproducible – every stochastic component takes an injected *rand.Rand
//   - Invariant-bearing – mutated paths stay unit-step and self-avoiding
//   - Pure Go – no cgo, no services, no I/O anywhere in the library
//   - Composable – mutators share one tiny PointPath contract
//
// Everything is organized under focused subpackages:
//
//	geom/    — Point, Cardinal/Direction, Bound2D value primitives
//	lattice/ — PointPath, Path, ClosedPath and the four path mutators
//	grid/    — generic rectangular Grid[T] container
//	maze/    — perfect-maze generation over wall-bitmask cells
//	gen/     — randomized int/point/token input generators
//
// Quick ASCII example of a closed lattice path after a few bumps:
//
//	    ┌──┐ ┌┐
//	    │  └─┘│
//	    └┐    │
//	     └────┘
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/gridloom/gridloom
package gridloom
