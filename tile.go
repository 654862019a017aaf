package citygrid

import (
	"fmt"

	"github.com/pkg/errors"
)

// TileKind is the top level classification of a grid cell.
type TileKind uint8

const (
	// TileUnknown is the zero value. It is never a legitimate output of the
	// Default classifier; seeing one means the classifier has a hole in it.
	TileUnknown TileKind = iota
	TileBuilding
	TilePark
	TileLight
	TileRoad
)

// ParkType tells us if a park tile is occupied
type ParkType uint8

const (
	ParkFree ParkType = iota
	ParkFull
)

// LightState is the colour of a traffic light
type LightState uint8

const (
	LightGreen LightState = iota
	LightRed
)

// RoadKind tells us which of the two direction enums in a Road applies
type RoadKind uint8

const (
	RoadOneWay RoadKind = iota
	RoadTwoWay
)

// OneWayDirection is the single direction traffic flows on a one way lane
type OneWayDirection uint8

const (
	OneWayUp OneWayDirection = iota
	OneWayLeft
	OneWayBottom
	OneWayRight
)

// TwoWayDirection is the pair of directions at a corner where two
// perpendicular one way lanes cross.
type TwoWayDirection uint8

const (
	TwoWayUpLeft TwoWayDirection = iota
	TwoWayUpRight
	TwoWayDownLeft
	TwoWayDownRight
)

// Road describes a road tile. Only one of OneWay / TwoWay is meaningful,
// according to Kind.
type Road struct {
	Kind   RoadKind
	OneWay OneWayDirection
	TwoWay TwoWayDirection
}

// Tile is the classification of one cell in the Grid.
// Sub fields (Park, Light, Road) only carry meaning for the matching Kind and
// are left zero otherwise, so Tiles can be compared with ==.
type Tile struct {
	Kind  TileKind
	Park  ParkType
	Light LightState
	Road  Road
}

// Unknown returns the sentinel tile
func Unknown() Tile {
	return Tile{Kind: TileUnknown}
}

// Building returns a building tile
func Building() Tile {
	return Tile{Kind: TileBuilding}
}

// Park returns a park tile with the given occupancy
func Park(p ParkType) Tile {
	return Tile{Kind: TilePark, Park: p}
}

// Light returns a traffic light tile
func Light(s LightState) Tile {
	return Tile{Kind: TileLight, Light: s}
}

// OneWayRoad returns a single direction road tile
func OneWayRoad(d OneWayDirection) Tile {
	return Tile{Kind: TileRoad, Road: Road{Kind: RoadOneWay, OneWay: d}}
}

// TwoWayRoad returns a corner road tile
func TwoWayRoad(d TwoWayDirection) Tile {
	return Tile{Kind: TileRoad, Road: Road{Kind: RoadTwoWay, TwoWay: d}}
}

// IsOneWay returns if this is a one way road, and which way it goes
func (t Tile) IsOneWay() (OneWayDirection, bool) {
	if t.Kind != TileRoad || t.Road.Kind != RoadOneWay {
		return 0, false
	}
	return t.Road.OneWay, true
}

// IsTwoWay returns if this is a two way corner road, and which corner
func (t Tile) IsTwoWay() (TwoWayDirection, bool) {
	if t.Kind != TileRoad || t.Road.Kind != RoadTwoWay {
		return 0, false
	}
	return t.Road.TwoWay, true
}

// Drivable returns if a car could occupy this tile (roads & lights)
func (t Tile) Drivable() bool {
	return t.Kind == TileRoad || t.Kind == TileLight
}

var (
	// every valid tile, in encoding order
	allTiles = []Tile{
		Unknown(),
		Building(),
		Park(ParkFree), Park(ParkFull),
		Light(LightGreen), Light(LightRed),
		OneWayRoad(OneWayUp), OneWayRoad(OneWayLeft), OneWayRoad(OneWayBottom), OneWayRoad(OneWayRight),
		TwoWayRoad(TwoWayUpLeft), TwoWayRoad(TwoWayUpRight), TwoWayRoad(TwoWayDownLeft), TwoWayRoad(TwoWayDownRight),
	}

	oneWayNames = map[OneWayDirection]string{
		OneWayUp:     "up",
		OneWayLeft:   "left",
		OneWayBottom: "bottom",
		OneWayRight:  "right",
	}

	twoWayNames = map[TwoWayDirection]string{
		TwoWayUpLeft:    "up-left",
		TwoWayUpRight:   "up-right",
		TwoWayDownLeft:  "down-left",
		TwoWayDownRight: "down-right",
	}

	tileForName = map[string]Tile{}
)

func init() {
	for _, t := range allTiles {
		tileForName[t.String()] = t
	}
}

// AllTiles returns every valid tile value (including Unknown)
func AllTiles() []Tile {
	out := make([]Tile, len(allTiles))
	copy(out, allTiles)
	return out
}

// String returns a stable name for the tile, eg. "road(one-way:up)"
func (t Tile) String() string {
	switch t.Kind {
	case TileBuilding:
		return "building"
	case TilePark:
		if t.Park == ParkFull {
			return "park(full)"
		}
		return "park(free)"
	case TileLight:
		if t.Light == LightRed {
			return "light(red)"
		}
		return "light(green)"
	case TileRoad:
		if t.Road.Kind == RoadTwoWay {
			return fmt.Sprintf("road(two-way:%s)", twoWayNames[t.Road.TwoWay])
		}
		return fmt.Sprintf("road(one-way:%s)", oneWayNames[t.Road.OneWay])
	}
	return "unknown"
}

// MarshalText encodes the tile as its String()
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (t *Tile) UnmarshalText(data []byte) error {
	v, ok := tileForName[string(data)]
	if !ok {
		return errors.Errorf("unknown tile name %q", string(data))
	}
	*t = v
	return nil
}

// id returns the tile as a (kind, sub variant) pair. Road sub variants are
// numbered one way first (0-3) then two way (4-7).
func (t Tile) id() (uint8, uint8) {
	switch t.Kind {
	case TilePark:
		return uint8(t.Kind), uint8(t.Park)
	case TileLight:
		return uint8(t.Kind), uint8(t.Light)
	case TileRoad:
		if t.Road.Kind == RoadTwoWay {
			return uint8(t.Kind), 4 + uint8(t.Road.TwoWay)
		}
		return uint8(t.Kind), uint8(t.Road.OneWay)
	}
	return uint8(t.Kind), 0
}

// tileForID is the inversion of Tile.id()
func tileForID(kind, sub uint8) (Tile, error) {
	switch TileKind(kind) {
	case TileUnknown:
		return Unknown(), nil
	case TileBuilding:
		return Building(), nil
	case TilePark:
		if sub <= uint8(ParkFull) {
			return Park(ParkType(sub)), nil
		}
	case TileLight:
		if sub <= uint8(LightRed) {
			return Light(LightState(sub)), nil
		}
	case TileRoad:
		if sub <= uint8(OneWayRight) {
			return OneWayRoad(OneWayDirection(sub)), nil
		}
		if sub >= 4 && sub-4 <= uint8(TwoWayDownRight) {
			return TwoWayRoad(TwoWayDirection(sub - 4)), nil
		}
	}
	return Unknown(), errors.Errorf("no tile for kind %d sub %d", kind, sub)
}
