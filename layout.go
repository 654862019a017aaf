package citygrid

import (
	"github.com/pkg/errors"
)

// MaxTiles caps the number of tiles in a grid. Since every axis is at least
// one tile long it also caps each axis, which keeps grid dimensions inside
// the uint32 fields of a snapshot.
const MaxTiles = 1 << 24

// Layout holds the block parameters a city is generated from.
type Layout struct {
	// number of blocks along the first (row) axis
	BlocksX int `json:"blocks_x" yaml:"blocks_x"`

	// number of blocks along the second (column) axis
	BlocksY int `json:"blocks_y" yaml:"blocks_y"`

	// width & height of the building interior of a block, in tiles
	BlockSize int `json:"block_size" yaml:"block_size"`
}

// unit is the repeat length of the block pattern: the building interior
// plus the park ring & two road lanes that follow it.
func (l Layout) unit() int {
	return l.BlockSize + 4
}

// span returns the longest axis any variant makes from n blocks, or -1 if
// that would pass MaxTiles.
func (l Layout) span(n int) int {
	unit := l.unit()
	if n > (MaxTiles-2)/unit {
		return -1
	}
	return unit*n + 2
}

// Validate checks all values are positive & that no variant would build a
// grid of more than MaxTiles tiles from them.
func (l Layout) Validate() error {
	if l.BlocksX < 1 || l.BlocksY < 1 {
		return errors.Wrapf(ErrInvalidLayout, "block counts must be >= 1, got %dx%d", l.BlocksX, l.BlocksY)
	}
	if l.BlockSize < 1 {
		return errors.Wrapf(ErrInvalidLayout, "block size must be >= 1, got %d", l.BlockSize)
	}
	if l.BlockSize > MaxTiles {
		return errors.Wrapf(ErrInvalidLayout, "block size %d is over %d", l.BlockSize, MaxTiles)
	}

	rows, cols := l.span(l.BlocksX), l.span(l.BlocksY)
	if rows < 0 || cols < 0 || int64(rows)*int64(cols) > MaxTiles {
		return errors.Wrapf(ErrInvalidLayout, "%dx%d blocks of size %d is over %d tiles", l.BlocksX, l.BlocksY, l.BlockSize, MaxTiles)
	}
	return nil
}
