// Package match3 holds the match-detection and swap-validation logic of the
// puzzle board. It has no dependency on the terminal UI: callers pass a Grid
// snapshot in and get fresh results back, and every mutation is explicit.
package match3

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOutOfBounds is returned by grid accessors for coordinates outside the board.
	ErrOutOfBounds = errors.New("match3: coordinate out of bounds")

	// ErrInvalidSize is returned when a grid is created with a non-positive dimension.
	ErrInvalidSize = errors.New("match3: invalid grid size")

	// ErrRaggedRows is returned when fixture rows do not share one width.
	ErrRaggedRows = errors.New("match3: rows have different lengths")

	// ErrInvalidSwap is returned by EvaluateSwap when CanSwap rejects the pair.
	ErrInvalidSwap = errors.New("match3: invalid swap")
)

// Generator supplies the kind for each slot when a grid is filled.
type Generator interface {
	Next(c Coord) PieceKind
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(c Coord) PieceKind

// Next calls f(c).
func (f GeneratorFunc) Next(c Coord) PieceKind {
	return f(c)
}

// RandomGenerator picks uniformly from kinds using rng.
// An empty kinds slice falls back to PlayableKinds.
func RandomGenerator(rng *rand.Rand, kinds []PieceKind) Generator {
	if len(kinds) == 0 {
		kinds = PlayableKinds()
	}
	pool := append([]PieceKind(nil), kinds...)
	return GeneratorFunc(func(Coord) PieceKind {
		return pool[rng.Intn(len(pool))]
	})
}

// Grid is a fixed-size width x height board of piece kinds.
// Cells are stored in row-major order: index = y*w + x.
// Grid is not safe for concurrent mutation; callers serialize writes.
type Grid struct {
	w     int
	h     int
	cells []PieceKind
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]PieceKind, w*h),
	}, nil
}

// NewGridFromRows builds a grid from fixture rows; rows[y][x] is the kind at (x, y).
func NewGridFromRows(rows [][]PieceKind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), g.w)
		}
		copy(g.cells[y*g.w:(y+1)*g.w], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// Get returns the kind stored at c, or Empty when the slot has no piece.
func (g *Grid) Get(c Coord) (PieceKind, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.w, g.h)
	}
	return g.cells[g.index(c)], nil
}

// at is the unchecked read used by the scanners after a bounds test.
func (g *Grid) at(c Coord) PieceKind {
	return g.cells[g.index(c)]
}

// Set overwrites the slot at c.
func (g *Grid) Set(c Coord, kind PieceKind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.w, g.h)
	}
	g.cells[g.index(c)] = kind
	return nil
}

// Swap exchanges the contents of a and b. Adjacency is not checked here.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, a, g.w, g.h)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, b, g.w, g.h)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	return nil
}

// Fill assigns gen.Next(c) to every slot in row-major order.
func (g *Grid) Fill(gen Generator) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			g.cells[g.index(c)] = gen.Next(c)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]PieceKind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, k := range g.cells {
		if k != other.cells[i] {
			return false
		}
	}
	return true
}

// Coords returns every coordinate in row-major order.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Rows returns a copy of the board as rows[y][x].
func (g *Grid) Rows() [][]PieceKind {
	rows := make([][]PieceKind, g.h)
	for y := range rows {
		rows[y] = make([]PieceKind, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}

// String renders the board with the top row first, one character per piece.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.w+1)*g.h)
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			buf = append(buf, g.at(C(x, y)).Char())
		}
		if y > 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
