package grid

import (
	"strings"

	"github.com/gridloom/gridloom/geom"
)

// Grid is a rectangular store of cells addressed by geom.Point, with
// cells[y][x] layout. Row 0 is y == 0; callers choose whether y grows
// upward or downward when they render.
type Grid[T any] struct {
	cells  [][]T
	width  int
	height int
}

// New builds a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid when either dimension is below 1.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, height)
	for y := range cells {
		row := make([]T, width)
		for x := range row {
			row[x] = fill
		}
		cells[y] = row
	}
	return &Grid[T]{cells: cells, width: width, height: height}, nil
}

// From2D builds a grid that takes ownership of rows (no copy is made).
// Returns ErrEmptyGrid when rows has no rows or no columns, and
// ErrNonRectangular when row lengths differ.
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	return &Grid[T]{cells: rows, width: width, height: len(rows)}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p addresses a cell: 0 <= X < Width and
// 0 <= Y < Height, both upper comparisons strict.
func (g *Grid[T]) InBounds(p geom.Point) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

// Get returns the cell at p, and false when p is out of bounds.
func (g *Grid[T]) Get(p geom.Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y][p.X], true
}

// Set writes v at p and reports whether p was in bounds.
func (g *Grid[T]) Set(p geom.Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y][p.X] = v
	return true
}

// Row returns the backing slice for row y. Mutations through it are
// visible in the grid. Panics when y is out of range, like any slice
// index.
func (g *Grid[T]) Row(y int) []T { return g.cells[y] }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = v
		}
	}
}

// Lines renders the grid row by row, formatting each cell with the
// supplied function and concatenating cells without separators.
// Complexity: O(W×H).
func (g *Grid[T]) Lines(cell func(T) string) []string {
	lines := make([]string, g.height)
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		for _, v := range row {
			sb.WriteString(cell(v))
		}
		lines[y] = sb.String()
	}
	return lines
}

// CharGrid is the byte specialization used for textual puzzle inputs.
type CharGrid = Grid[byte]

// NewCharGrid builds a width×height character grid filled with fill.
func NewCharGrid(width, height int, fill byte) (*CharGrid, error) {
	return New[byte](width, height, fill)
}

// RenderChars joins a character grid's rows with newlines.
func RenderChars(g *CharGrid) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
