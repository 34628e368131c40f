package maze

import (
	"errors"
	"math/rand"
	"strings"
)

var (
	// ErrEmptyMaze indicates a maze dimension below 1.
	ErrEmptyMaze = errors.New("maze: width and height must each be at least 1")
	// ErrNilRand indicates a carving algorithm was handed a nil RNG.
	ErrNilRand = errors.New("maze: rng must not be nil")
)

// Wall is a bitmask of the four cell sides. A cell's value is the set of
// sides it has carved open; a zero cell is unvisited.
type Wall uint8

const (
	WallNorth Wall = 1
	WallSouth Wall = 2
	WallEast  Wall = 4
	WallWest  Wall = 8
)

// Opposite returns the wall on the other side of the shared edge: the
// neighbor's WallSouth faces our WallNorth.
func (w Wall) Opposite() Wall {
	switch w {
	case WallNorth:
		return WallSouth
	case WallSouth:
		return WallNorth
	case WallEast:
		return WallWest
	case WallWest:
		return WallEast
	default:
		return 0
	}
}

// Location addresses a maze cell by row and column, row 0 at the top.
type Location struct {
	Row, Col int
}

// DirTo returns the side of l that faces other, assuming the two
// locations share a row or column. Equal locations return 0.
func (l Location) DirTo(other Location) Wall {
	switch {
	case l == other:
		return 0
	case l.Row == other.Row:
		if l.Col < other.Col {
			return WallEast
		}
		return WallWest
	default:
		if l.Row < other.Row {
			return WallSouth
		}
		return WallNorth
	}
}

// Neighbor pairs a candidate cell with the side of the current cell that
// faces it and the candidate's current value.
type Neighbor struct {
	Dir   Wall
	Loc   Location
	Value Wall
}

// Maze is a rectangular grid of wall-bitmask cells.
type Maze struct {
	cells  [][]Wall
	width  int
	height int
}

// New builds a width×height maze with every wall intact (all cells
// zero). Returns ErrEmptyMaze when either dimension is below 1.
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyMaze
	}
	cells := make([][]Wall, height)
	for r := range cells {
		cells[r] = make([]Wall, width)
	}
	return &Maze{cells: cells, width: width, height: height}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Size returns the total number of cells.
func (m *Maze) Size() int { return m.width * m.height }

// Contains reports whether l addresses a cell.
func (m *Maze) Contains(l Location) bool {
	return 0 <= l.Row && l.Row < m.height && 0 <= l.Col && l.Col < m.width
}

// Get returns the cell value at l, and false when l is out of range.
func (m *Maze) Get(l Location) (Wall, bool) {
	if !m.Contains(l) {
		return 0, false
	}
	return m.cells[l.Row][l.Col], true
}

// Set writes v at l and reports whether l was in range.
func (m *Maze) Set(l Location, v Wall) bool {
	if !m.Contains(l) {
		return false
	}
	m.cells[l.Row][l.Col] = v
	return true
}

// RandomCell returns a uniformly random in-range location.
func (m *Maze) RandomCell(rng *rand.Rand) Location {
	return Location{Row: rng.Intn(m.height), Col: rng.Intn(m.width)}
}

// Neighbors returns the in-range cardinal neighbors of l with the side
// of l that faces each and the neighbor's current value.
func (m *Maze) Neighbors(l Location) []Neighbor {
	offsets := [4]struct {
		dir    Wall
		dr, dc int
	}{
		{WallNorth, -1, 0},
		{WallEast, 0, 1},
		{WallSouth, 1, 0},
		{WallWest, 0, -1},
	}
	ns := make([]Neighbor, 0, 4)
	for _, o := range offsets {
		loc := Location{Row: l.Row + o.dr, Col: l.Col + o.dc}
		if !m.Contains(loc) {
			continue
		}
		ns = append(ns, Neighbor{Dir: o.dir, Loc: loc, Value: m.cells[loc.Row][loc.Col]})
	}
	return ns
}

// AldousBroder carves a perfect maze by unbiased random walk: wander
// from cell to cell, and whenever the walk enters an unvisited cell,
// open the wall between it and the cell just left. Every spanning tree
// of the grid is equally likely.
//
// The maze should be freshly constructed (all cells zero); carving an
// already-carved maze keeps the walk from terminating early but wastes
// work. Returns ErrNilRand on a nil rng.
func (m *Maze) AldousBroder(rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRand
	}

	unvisited := m.Size() - 1
	cell := m.RandomCell(rng)
	cellValue, _ := m.Get(cell)

	for unvisited > 0 {
		ns := m.Neighbors(cell)
		n := ns[rng.Intn(len(ns))]

		v := n.Value
		if v == 0 {
			v |= n.Dir.Opposite()
			m.Set(n.Loc, v)
			m.Set(cell, cellValue|n.Dir)
			unvisited--
		}

		cell = n.Loc
		cellValue = v
	}

	return nil
}

// Render expands the maze into a (2*width+1)×(2*height+1) byte grid of
// '#' walls and '.' corridors. Cell (r, c) maps to (2r+1, 2c+1); an open
// east or south wall clears the byte between the two cell centers. The
// top-left and bottom-right corner openings mark entry and exit.
func (m *Maze) Render() [][]byte {
	h := m.height*2 + 1
	w := m.width*2 + 1
	out := make([][]byte, h)
	for r := range out {
		out[r] = make([]byte, w)
		for c := range out[r] {
			out[r][c] = '#'
		}
	}

	// corner goals
	out[0][1] = '.'
	out[h-1][w-2] = '.'

	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			v := m.cells[r][c]
			if v == 0 {
				continue
			}
			out[r*2+1][c*2+1] = '.'
			if v&WallEast != 0 {
				out[r*2+1][c*2+2] = '.'
			}
			if v&WallSouth != 0 {
				out[r*2+2][c*2+1] = '.'
			}
		}
	}

	return out
}

// String implements fmt.Stringer via Render.
func (m *Maze) String() string {
	rows := m.Render()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
