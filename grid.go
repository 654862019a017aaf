package citygrid

import (
	"encoding/json"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
)

// Grid is a dense rows x cols array of tiles. It's sized once when the city
// is built & never resized.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile // row major
}

// newGrid returns a grid of Unknown tiles
func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, tiles: make([]Tile, rows*cols)}
}

// gridFits returns if a rows x cols grid is allowed
func gridFits(rows, cols int) bool {
	if rows < 0 || cols < 0 || rows > MaxTiles || cols > MaxTiles {
		return false
	}
	return int64(rows)*int64(cols) <= MaxTiles
}

// buildGrid sizes a grid for the variant & classifies every cell.
func buildGrid(v Variant, l Layout) (*Grid, error) {
	rows, err := v.Length(l.BlocksX, l.BlockSize)
	if err != nil {
		return nil, err
	}
	cols, err := v.Length(l.BlocksY, l.BlockSize)
	if err != nil {
		return nil, err
	}
	if !gridFits(rows, cols) {
		return nil, errors.Wrapf(ErrInvalidLayout, "grid would be %dx%d", rows, cols)
	}

	g := newGrid(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t, err := v.Classify(l.BlockSize, i, j)
			if err != nil {
				return nil, err
			}
			g.tiles[g.index(i, j)] = t
		}
	}

	return g, nil
}

// Rows returns the number of rows (the X axis)
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns (the Y axis)
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Contains returns if p is inside the grid
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.rows && p.Y >= 0 && p.Y < g.cols
}

// At returns the tile at row, col
func (g *Grid) At(row, col int) (Tile, error) {
	if !g.Contains(Pos(row, col)) {
		return Unknown(), errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.tiles[g.index(row, col)], nil
}

// Tile returns the tile at p
func (g *Grid) Tile(p Position) (Tile, error) {
	return g.At(p.X, p.Y)
}

// Counts returns the number of tiles of each kind
func (g *Grid) Counts() map[TileKind]int {
	out := map[TileKind]int{}
	for _, t := range g.tiles {
		out[t.Kind]++
	}
	return out
}

// Verify returns ErrClassificationGap naming the first Unknown cell, if any.
func (g *Grid) Verify() error {
	for i, t := range g.tiles {
		if t.Kind == TileUnknown {
			return errors.Wrapf(ErrClassificationGap, "at %v", Pos(i/g.cols, i%g.cols))
		}
	}
	return nil
}

// Mask returns a bitmap with one bit per cell (row major) set where fn is true.
func (g *Grid) Mask(fn func(Tile) bool) bitmap.Bitmap {
	bm := bitmap.New(len(g.tiles))
	for i, t := range g.tiles {
		if fn(t) {
			bm.Set(i, true)
		}
	}
	return bm
}

// Drivable returns a mask of the road & light tiles.
func (g *Grid) Drivable() bitmap.Bitmap {
	return g.Mask(Tile.Drivable)
}

// MaskAt reads the bit for row, col out of a mask made by Mask()
func (g *Grid) MaskAt(bm bitmap.Bitmap, row, col int) bool {
	if !g.Contains(Pos(row, col)) {
		return false
	}
	return bm.Get(g.index(row, col))
}

// Row returns a copy of a single row
func (g *Grid) Row(row int) ([]Tile, error) {
	if row < 0 || row >= g.rows {
		return nil, errors.Wrapf(ErrOutOfBounds, "row %d of %d", row, g.rows)
	}
	out := make([]Tile, g.cols)
	copy(out, g.tiles[row*g.cols:(row+1)*g.cols])
	return out, nil
}

// MarshalJSON writes the grid as a list of rows of tile names.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]Tile, g.rows)
	for i := range rows {
		rows[i] = g.tiles[i*g.cols : (i+1)*g.cols]
	}
	return json.Marshal(rows)
}
