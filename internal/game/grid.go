package game

import (
	"math"
	"math/rand"
)

// TileGrid is the playfield map. Cells are stored row-major as board[row][col]
// and addressed either by cell or by playfield pixel.
type TileGrid struct {
	Cols     int
	Rows     int
	TileSize int
	cells    [][]TileType
}

// NewGrid returns a grid of the given size filled with grass.
func NewGrid(cols, rows, tileSize int) *TileGrid {
	cells := make([][]TileType, rows)
	for y := range cells {
		cells[y] = make([]TileType, cols)
	}
	return &TileGrid{Cols: cols, Rows: rows, TileSize: tileSize, cells: cells}
}

// GenerateGrid builds a procedural checkerboard layout.
//
// Layout rules:
//   - Cells on an even row or even column are grass at the four corners and
//     a random pick of grass or brick elsewhere
//   - All other cells are a random pick of water or steel
func GenerateGrid(config GameConfig, rng *rand.Rand) *TileGrid {
	g := NewGrid(config.Cols, config.Rows, config.TileSize)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			switch {
			case g.isCorner(col, row):
				g.cells[row][col] = Grass
			case row%2 == 0 || col%2 == 0:
				g.cells[row][col] = Grass + TileType(rng.Intn(2))
			default:
				g.cells[row][col] = Water + TileType(rng.Intn(2))
			}
		}
	}
	return g
}

func (g *TileGrid) isCorner(col, row int) bool {
	return (col == 0 || col == g.Cols-1) && (row == 0 || row == g.Rows-1)
}

// InBounds reports whether the cell lies on the grid.
func (g *TileGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// CellOf maps a playfield pixel to its cell. Negative pixels map to negative
// cells so they stay out of bounds.
func (g *TileGrid) CellOf(x, y int) Cell {
	return Cell{Col: floorDiv(x, g.TileSize), Row: floorDiv(y, g.TileSize)}
}

// CellRect returns the pixel box of a cell.
func (g *TileGrid) CellRect(c Cell) Rect {
	return Rect{X: c.Col * g.TileSize, Y: c.Row * g.TileSize, W: g.TileSize, H: g.TileSize}
}

// TypeAt returns the tile type of a cell, Steel when off the grid.
func (g *TileGrid) TypeAt(col, row int) TileType {
	if !g.InBounds(col, row) {
		return Steel
	}
	return g.cells[row][col]
}

// CellAt returns the tile of a cell, the Steel sentinel when off the grid.
func (g *TileGrid) CellAt(col, row int) Tile {
	return TileOf(g.TypeAt(col, row))
}

// TileAt returns the tile under a playfield pixel, the Steel sentinel when
// the pixel is outside the grid.
func (g *TileGrid) TileAt(x, y int) Tile {
	c := g.CellOf(x, y)
	return g.CellAt(c.Col, c.Row)
}

// TileAtF is TileAt for sub-pixel positions.
func (g *TileGrid) TileAtF(x, y float64) Tile {
	return g.TileAt(int(math.Floor(x)), int(math.Floor(y)))
}

// Set overwrites a cell. Off-grid cells and invalid types are ignored.
func (g *TileGrid) Set(col, row int, t TileType) {
	if !g.InBounds(col, row) || !t.Valid() {
		return
	}
	g.cells[row][col] = t
}

// ConvertToGrass turns the brick under a playfield pixel into grass. Any other
// tile is left alone. It reports whether a brick was destroyed.
func (g *TileGrid) ConvertToGrass(x, y int) bool {
	c := g.CellOf(x, y)
	return g.convertCell(c.Col, c.Row)
}

func (g *TileGrid) convertCell(col, row int) bool {
	if g.TypeAt(col, row) != Brick {
		return false
	}
	g.cells[row][col] = Grass
	return true
}

// GrassCells lists every grass cell at least margin cells away from each
// border, column by column.
func (g *TileGrid) GrassCells(margin int) []Cell {
	var out []Cell
	for col := margin; col < g.Cols-margin; col++ {
		for row := margin; row < g.Rows-margin; row++ {
			if g.cells[row][col] == Grass {
				out = append(out, Cell{Col: col, Row: row})
			}
		}
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *TileGrid) Clone() *TileGrid {
	cp := NewGrid(g.Cols, g.Rows, g.TileSize)
	for y := range g.cells {
		copy(cp.cells[y], g.cells[y])
	}
	return cp
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
