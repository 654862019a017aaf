package citygrid

import (
	"encoding/json"
	"os"
)

// City is a generated city block layout. Once built it is never modified &
// may be read from any number of goroutines.
type City struct {
	variant     Variant
	layout      Layout
	grid        *Grid
	entryPoints []Position
	buildings   []Target
}

// New builds a city from the given configuration.
func New(cfg *CityConfig) (*City, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v, err := VariantFor(cfg.Variant)
	if err != nil {
		return nil, err
	}
	return NewCity(v, cfg.BlocksX, cfg.BlocksY, cfg.BlockSize)
}

// NewCity builds a city of the given variant & layout.
func NewCity(v Variant, blocksX, blocksY, blockSize int) (*City, error) {
	c := &City{
		variant: v,
		layout:  Layout{BlocksX: blocksX, BlocksY: blocksY, BlockSize: blockSize},
	}
	err := c.build()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// build runs generation. Grid, entry points & building targets are all
// independent of each other; any one failing fails the city.
func (c *City) build() error {
	err := c.layout.Validate()
	if err != nil {
		return err
	}

	c.grid, err = buildGrid(c.variant, c.layout)
	if err != nil {
		return err
	}

	c.entryPoints, err = c.variant.EntryPoints(c.layout)
	if err != nil {
		return err
	}

	c.buildings, err = c.variant.BuildingTargets(c.layout)
	return err
}

// Variant returns the layout variant the city was built with
func (c *City) Variant() Variant {
	return c.variant
}

// Layout returns the block parameters
func (c *City) Layout() Layout {
	return c.layout
}

// Grid returns the classified tiles
func (c *City) Grid() *Grid {
	return c.grid
}

// EntryPoints returns a copy of the entry points, in generation order.
func (c *City) EntryPoints() []Position {
	out := make([]Position, len(c.entryPoints))
	copy(out, c.entryPoints)
	return out
}

// EntryPointCount returns how many entry points there are. Zero is a valid
// (if unhelpful) answer for a single block city.
func (c *City) EntryPointCount() int {
	return len(c.entryPoints)
}

// BuildingTargets returns a copy of the building targets.
// Currently always empty.
func (c *City) BuildingTargets() []Target {
	out := make([]Target, len(c.buildings))
	copy(out, c.buildings)
	return out
}

// BuildingTargetCount returns how many building targets there are
func (c *City) BuildingTargetCount() int {
	return len(c.buildings)
}

// cityJSON is the exported shape of a City
type cityJSON struct {
	Variant         VariantType
	Layout          Layout
	Rows            int
	Cols            int
	Tiles           *Grid
	EntryPoints     []Position
	BuildingTargets []Target
}

// JSON returns the city as json.
func (c *City) JSON() ([]byte, error) {
	return json.Marshal(&cityJSON{
		Variant:         c.variant.Type(),
		Layout:          c.layout,
		Rows:            c.grid.Rows(),
		Cols:            c.grid.Cols(),
		Tiles:           c.grid,
		EntryPoints:     c.entryPoints,
		BuildingTargets: c.buildings,
	})
}

// SaveJSON writes a json file to the given path.
func (c *City) SaveJSON(fpath string) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}
