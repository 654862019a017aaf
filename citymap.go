package citygrid

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// CityMap is a graphical representation of a City. Generation never needs
// one; it's here for people looking at the result.
type CityMap interface {
	// Text returns one glyph per tile, one line per row
	Text() string

	// Save as a PNG using the DefaultScheme
	Save(fpath string) error

	// SaveAdv saves as a PNG with the given colour scheme & pixels per tile
	SaveAdv(fpath string, scheme *ColourScheme, scale int) error

	// CustomImage returns an image with the given colour scheme & pixels per tile
	CustomImage(scheme *ColourScheme, scale int) (image.Image, error)
}

// ColourScheme defines how tiles should be coloured.
type ColourScheme struct {
	Buildings  color.Color
	ParkFree   color.Color
	ParkFull   color.Color
	LightGreen color.Color
	LightRed   color.Color
	OneWay     color.Color
	TwoWay     color.Color
	Unknown    color.Color

	// lane direction markers drawn over road tiles
	Arrows color.Color

	// outline drawn around entry points that sit inside the grid
	EntryPoints color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Buildings:   colornames.Slategray,
		ParkFree:    colornames.Lightgreen,
		ParkFull:    colornames.Darkgreen,
		LightGreen:  colornames.Limegreen,
		LightRed:    colornames.Crimson,
		OneWay:      colornames.Dimgray,
		TwoWay:      colornames.Darkgray,
		Unknown:     colornames.Fuchsia,
		Arrows:      colornames.White,
		EntryPoints: colornames.Gold,
	}
}

// defaultScale is pixels per tile for Save()
const defaultScale = 16

var (
	oneWayGlyphs = map[OneWayDirection]rune{
		OneWayUp:     '↑',
		OneWayLeft:   '←',
		OneWayBottom: '↓',
		OneWayRight:  '→',
	}

	twoWayGlyphs = map[TwoWayDirection]rune{
		TwoWayUpLeft:    '↖',
		TwoWayUpRight:   '↗',
		TwoWayDownLeft:  '↙',
		TwoWayDownRight: '↘',
	}

	// unit vectors (dx, dy in image space) for each lane direction
	oneWayVectors = map[OneWayDirection][2]float64{
		OneWayUp:     {0, -1},
		OneWayLeft:   {-1, 0},
		OneWayBottom: {0, 1},
		OneWayRight:  {1, 0},
	}
)

// Glyph returns a single printable rune for the tile
func (t Tile) Glyph() rune {
	switch t.Kind {
	case TileBuilding:
		return '#'
	case TilePark:
		if t.Park == ParkFull {
			return 'P'
		}
		return '.'
	case TileLight:
		if t.Light == LightRed {
			return 'R'
		}
		return 'G'
	case TileRoad:
		if d, ok := t.IsTwoWay(); ok {
			return twoWayGlyphs[d]
		}
		return oneWayGlyphs[t.Road.OneWay]
	}
	return '?'
}

// colour returns the fill for a tile under this scheme
func (s *ColourScheme) colour(t Tile) color.Color {
	switch t.Kind {
	case TileBuilding:
		return s.Buildings
	case TilePark:
		if t.Park == ParkFull {
			return s.ParkFull
		}
		return s.ParkFree
	case TileLight:
		if t.Light == LightRed {
			return s.LightRed
		}
		return s.LightGreen
	case TileRoad:
		if t.Road.Kind == RoadTwoWay {
			return s.TwoWay
		}
		return s.OneWay
	}
	return s.Unknown
}

// Map returns a CityMap for drawing the city
func (c *City) Map() CityMap {
	return &gridMap{city: c}
}

// gridMap draws a City's grid. Rows run down the image, columns across.
type gridMap struct {
	city *City
}

// Text returns the grid as glyphs
func (m *gridMap) Text() string {
	g := m.city.grid

	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			sb.WriteRune(g.tiles[g.index(i, j)].Glyph())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Save the map as a PNG with the default scheme
func (m *gridMap) Save(fpath string) error {
	return m.SaveAdv(fpath, DefaultScheme(), defaultScale)
}

// SaveAdv essentially saves the CityMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (m *gridMap) SaveAdv(fpath string, scheme *ColourScheme, scale int) error {
	im, err := m.CustomImage(scheme, scale)
	if err != nil {
		return err
	}
	return gg.SavePNG(fpath, im)
}

// CustomImage returns the grid drawn with the given scheme
func (m *gridMap) CustomImage(scheme *ColourScheme, scale int) (image.Image, error) {
	if scale < 1 {
		scale = 1
	}
	g := m.city.grid
	s := float64(scale)

	ctx := gg.NewContext(g.cols*scale, g.rows*scale)
	drivable := g.Drivable()

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			t := g.tiles[g.index(i, j)]
			x, y := float64(j)*s, float64(i)*s

			ctx.SetColor(scheme.colour(t))
			ctx.DrawRectangle(x, y, s, s)
			ctx.Fill()

			if scale >= 4 && g.MaskAt(drivable, i, j) {
				drawLanes(ctx, t, x, y, s, scheme.Arrows)
			}
		}
	}

	// the far side entry points sit one past the grid, so only some get drawn
	ctx.SetColor(scheme.EntryPoints)
	ctx.SetLineWidth(maxf(1, s/8))
	for _, p := range m.city.entryPoints {
		if !g.Contains(p) {
			continue
		}
		pt := p.Point()
		ctx.DrawRectangle(float64(pt.X)*s, float64(pt.Y)*s, s, s)
		ctx.Stroke()
	}

	return ctx.Image(), nil
}

// drawLanes marks the direction(s) of traffic on a road tile. Lights are
// drivable but have no lanes of their own.
func drawLanes(ctx *gg.Context, t Tile, x, y, s float64, col color.Color) {
	var dirs []OneWayDirection
	switch t.Road.Kind {
	case RoadOneWay:
		dirs = []OneWayDirection{t.Road.OneWay}
	case RoadTwoWay:
		dirs = twoWayParts(t.Road.TwoWay)
	}
	if t.Kind != TileRoad || len(dirs) == 0 {
		return
	}

	cx, cy := x+s/2, y+s/2
	ctx.SetColor(col)
	ctx.SetLineWidth(maxf(1, s/10))
	for _, d := range dirs {
		v := oneWayVectors[d]
		ctx.DrawLine(cx, cy, cx+v[0]*s*0.35, cy+v[1]*s*0.35)
		ctx.Stroke()
	}
	ctx.DrawCircle(cx, cy, maxf(1, s/12))
	ctx.Fill()
}

// twoWayParts returns the one way lanes that meet at a corner
func twoWayParts(d TwoWayDirection) []OneWayDirection {
	switch d {
	case TwoWayUpLeft:
		return []OneWayDirection{OneWayUp, OneWayLeft}
	case TwoWayUpRight:
		return []OneWayDirection{OneWayUp, OneWayRight}
	case TwoWayDownLeft:
		return []OneWayDirection{OneWayBottom, OneWayLeft}
	case TwoWayDownRight:
		return []OneWayDirection{OneWayBottom, OneWayRight}
	}
	return nil
}
