package core

import "fmt"

// Cell is one slot of the board: the logical tile value plus its animated
// visual state.
type Cell struct {
	Value    int // 0 means empty
	Position Vec2
	Velocity Vec2
	Size     Vec2
	Rotation float64 // radians
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool { return c.Value == 0 }

// Layout holds the parameters every cell position is derived from.
type Layout struct {
	Origin   Vec2
	GridSize int
	CellSize float64
	Gutter   float64
	MarginX  float64
	MarginY  float64
}

// NewLayout returns a layout whose margins equal the gutter, which places the
// cells inside a background panel of Extent(gutter, cellSize, gridSize).
func NewLayout(origin Vec2, gridSize int, gutter, cellSize float64) Layout {
	return Layout{
		Origin:   origin,
		GridSize: gridSize,
		CellSize: cellSize,
		Gutter:   gutter,
		MarginX:  gutter,
		MarginY:  gutter,
	}
}

// Rest returns the resting screen position of cell (row, col).
func (l Layout) Rest(row, col int) Vec2 {
	pitch := l.CellSize + l.Gutter
	return Vec2{
		X: l.Origin.X + l.MarginX + float64(col)*pitch,
		Y: l.Origin.Y + l.MarginY + float64(row)*pitch,
	}
}

// Extent returns the rendered side length of a square grid.
func Extent(gutter, cellSize float64, gridSize int) float64 {
	return float64(gridSize)*cellSize + float64(gridSize+1)*gutter
}

// Grid stores the board cells in row-major order.
type Grid struct {
	layout Layout
	cells  []Cell
}

// NewGrid allocates a grid and lays out its cells.
func NewGrid(l Layout) *Grid {
	g := &Grid{}
	g.Init(l)
	return g
}

// Init (re)allocates GridSize*GridSize empty cells at their resting positions.
// A non-positive GridSize yields an empty grid.
func (g *Grid) Init(l Layout) {
	g.layout = l
	n := 0
	if l.GridSize > 0 {
		n = l.GridSize * l.GridSize
	}
	g.cells = make([]Cell, n)
	for row := 0; row < l.GridSize; row++ {
		for col := 0; col < l.GridSize; col++ {
			g.cells[row*l.GridSize+col] = Cell{
				Position: l.Rest(row, col),
				Size:     Vec2{X: l.CellSize, Y: l.CellSize},
			}
		}
	}
	if len(g.cells) != n {
		panic(fmt.Sprintf("core: grid holds %d cells, want %d", len(g.cells), n))
	}
}

// Layout returns the parameters the grid was initialized with.
func (g *Grid) Layout() Layout { return g.layout }

// Size returns the number of rows (and columns).
func (g *Grid) Size() int { return g.layout.GridSize }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Extent returns the rendered side length of this grid.
func (g *Grid) Extent() float64 {
	return Extent(g.layout.Gutter, g.layout.CellSize, g.layout.GridSize)
}

// Index returns the slice index for (row, col). Out-of-range coordinates are
// a programming error.
func (g *Grid) Index(row, col int) int {
	n := g.layout.GridSize
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, n, n))
	}
	return row*n + col
}

// Coords is the inverse of Index.
func (g *Grid) Coords(i int) (row, col int) {
	g.check(i)
	return i / g.layout.GridSize, i % g.layout.GridSize
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) *Cell { return &g.cells[g.Index(row, col)] }

// Cell returns the cell at slice index i.
func (g *Grid) Cell(i int) *Cell {
	g.check(i)
	return &g.cells[i]
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Rest returns the resting position of (row, col).
func (g *Grid) Rest(row, col int) Vec2 {
	g.Index(row, col)
	return g.layout.Rest(row, col)
}

// RestAt returns the resting position of the cell at slice index i.
func (g *Grid) RestAt(i int) Vec2 {
	row, col := g.Coords(i)
	return g.layout.Rest(row, col)
}

// Clear empties cell i and snaps it back to rest.
func (g *Grid) Clear(i int) {
	c := g.Cell(i)
	c.Value = 0
	c.Position = g.RestAt(i)
	c.Velocity = Vec2{}
}

// ClearAll empties every cell.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.Clear(i)
	}
}

// Empty appends the indices of empty cells to dst in row-major order.
func (g *Grid) Empty(dst []int) []int {
	for i := range g.cells {
		if g.cells[i].Empty() {
			dst = append(dst, i)
		}
	}
	return dst
}

func (g *Grid) check(i int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("core: cell index %d outside [0,%d)", i, len(g.cells)))
	}
}
