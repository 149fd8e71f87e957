package pixel

import (
	"fmt"

	"github.com/ironsheep/dotart-mcp/internal/colors"
)

// Cell is one grid position. The zero Cell is transparent.
type Cell struct {
	Color   colors.RGB
	Painted bool
}

// Transparent is the unpainted cell.
var Transparent = Cell{}

// Paint returns an opaque cell of colour c.
func Paint(c colors.RGB) Cell {
	return Cell{Color: c, Painted: true}
}

// Grid is a cols x rows array of cells.
//
// The backing slice always has exactly rows rows of exactly cols cells; the
// only way to change dimensions is Resize, which rebuilds it.
type Grid struct {
	cols, rows int
	cells      [][]Cell
}

// MaxGridSide is the largest number of columns or rows a grid may have.
const MaxGridSide = 4096

func checkDimensions(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cols, rows)
	}
	if cols > MaxGridSide || rows > MaxGridSide {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrInvalidDimension, cols, rows, MaxGridSide, MaxGridSide)
	}
	return nil
}

// NewGrid allocates a transparent grid. Both dimensions must be positive and
// at most MaxGridSide.
func NewGrid(cols, rows int) (*Grid, error) {
	if err := checkDimensions(cols, rows); err != nil {
		return nil, err
	}
	return &Grid{cols: cols, rows: rows, cells: allocCells(cols, rows)}, nil
}

func allocCells(cols, rows int) [][]Cell {
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return cells
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: g.cols - 1, Y2: g.rows - 1}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, g.outOfBounds(x, y)
	}
	return g.cells[y][x], nil
}

// Set replaces the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[y][x] = c
	return nil
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.cols, g.rows)
}

// Resize rebuilds the grid at the new dimensions. Cells inside both the old
// and new bounds keep their colour; new cells are transparent and cells beyond
// the new bounds are discarded. On error the grid is unchanged.
func (g *Grid) Resize(cols, rows int) error {
	if err := checkDimensions(cols, rows); err != nil {
		return err
	}
	cells := allocCells(cols, rows)
	for y := 0; y < min(rows, g.rows); y++ {
		copy(cells[y], g.cells[y][:min(cols, g.cols)])
	}
	g.cols, g.rows, g.cells = cols, rows, cells
	return nil
}

// FillAll sets every cell to c.
func (g *Grid) FillAll(c Cell) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = c
		}
	}
}

// FillRect sets every cell of r to c. The corners may be given in any order
// and the rectangle is clamped to the grid; a rectangle with no cell inside
// the grid is rejected. It returns the filled area.
func (g *Grid) FillRect(r Rect, c Cell) (Rect, error) {
	clamped, ok := r.Clamp(g.cols, g.rows)
	if !ok {
		return Rect{}, fmt.Errorf("%w: rect (%d,%d)-(%d,%d)", ErrOutOfBounds, r.X1, r.Y1, r.X2, r.Y2)
	}
	for y := clamped.Y1; y <= clamped.Y2; y++ {
		for x := clamped.X1; x <= clamped.X2; x++ {
			g.cells[y][x] = c
		}
	}
	return clamped, nil
}

// Painted returns the number of non-transparent cells.
func (g *Grid) Painted() int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c.Painted {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{cols: g.cols, rows: g.rows, cells: allocCells(g.cols, g.rows)}
	for y := range g.cells {
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// Snapshot copies the cells of r into a detached buffer. r must be a
// normalized rectangle inside the grid.
func (g *Grid) Snapshot(r Rect) (*Buffer, error) {
	if !g.InBounds(r.X1, r.Y1) || !g.InBounds(r.X2, r.Y2) || r.X1 > r.X2 || r.Y1 > r.Y2 {
		return nil, fmt.Errorf("%w: snapshot (%d,%d)-(%d,%d)", ErrOutOfBounds, r.X1, r.Y1, r.X2, r.Y2)
	}
	buf := &Buffer{width: r.Width(), height: r.Height(), cells: make([]Cell, r.Width()*r.Height())}
	for y := 0; y < buf.height; y++ {
		copy(buf.cells[y*buf.width:(y+1)*buf.width], g.cells[r.Y1+y][r.X1:r.X2+1])
	}
	return buf, nil
}

// Paste writes the painted cells of buf with its top-left corner at (x, y).
// Transparent buffer cells leave the destination as it is, and cells falling
// outside the grid are skipped.
func (g *Grid) Paste(buf *Buffer, x, y int) {
	for by := 0; by < buf.height; by++ {
		for bx := 0; bx < buf.width; bx++ {
			c := buf.cells[by*buf.width+bx]
			if !c.Painted || !g.InBounds(x+bx, y+by) {
				continue
			}
			g.cells[y+by][x+bx] = c
		}
	}
}

// Buffer is a detached, read-only block of cells.
type Buffer struct {
	width, height int
	cells         []Cell
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// At returns the buffered cell at (x, y), relative to the buffer origin.
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	return b.cells[y*b.width+x]
}
