package citygrid

// Classify returns the tile at (row, col) of a city with the given variant &
// block size.
//
// For the Default variant each axis is reduced to a residue within its block
// (negative inside the building interior, 0-3 across the park ring & lanes).
// The row residue picks the Left/Right lane and the column residue picks the
// Up/Bottom lane; the two per-axis intents are then combined into one tile.
func Classify(v Variant, blockSize, row, col int) (Tile, error) {
	return v.Classify(blockSize, row, col)
}

// classifyDefault assumes blockSize >= 1 and row, col >= 0
func classifyDefault(blockSize, row, col int) Tile {
	unit := blockSize + 4
	axisA := row%unit - blockSize
	axisB := col%unit - blockSize
	return combineIntents(xIntent(axisB), yIntent(axisA))
}

// xIntent is what the column residue asks for.
func xIntent(residue int) Tile {
	switch residue {
	case 0, 3:
		return Park(ParkFree)
	case 1:
		return OneWayRoad(OneWayBottom)
	case 2:
		return OneWayRoad(OneWayUp)
	}
	return Building()
}

// yIntent is what the row residue asks for.
func yIntent(residue int) Tile {
	switch residue {
	case 0, 3:
		return Park(ParkFree)
	case 1:
		return OneWayRoad(OneWayLeft)
	case 2:
		return OneWayRoad(OneWayRight)
	}
	return Building()
}

// combineIntents merges the two axis intents, x first.
// Anything not covered resolves to Unknown.
func combineIntents(x, y Tile) Tile {
	switch x.Kind {
	case TilePark:
		switch y.Kind {
		case TilePark:
			return Light(LightGreen)
		case TileBuilding:
			return Park(ParkFree)
		case TileRoad:
			return y
		}
	case TileBuilding:
		switch y.Kind {
		case TileBuilding:
			return Building()
		case TilePark:
			return Park(ParkFree)
		case TileRoad:
			return y
		}
	case TileRoad:
		switch y.Kind {
		case TileBuilding, TilePark:
			return x
		case TileRoad:
			return mergeRoads(x, y)
		}
	}
	return Unknown()
}

// mergeRoads turns two crossing one way lanes into a two way corner.
func mergeRoads(x, y Tile) Tile {
	xd, xok := x.IsOneWay()
	yd, yok := y.IsOneWay()
	if !xok || !yok {
		return Unknown()
	}

	switch {
	case yd == OneWayRight && xd == OneWayUp:
		return TwoWayRoad(TwoWayUpRight)
	case yd == OneWayLeft && xd == OneWayUp:
		return TwoWayRoad(TwoWayUpLeft)
	case yd == OneWayRight && xd == OneWayBottom:
		return TwoWayRoad(TwoWayDownRight)
	case yd == OneWayLeft && xd == OneWayBottom:
		return TwoWayRoad(TwoWayDownLeft)
	}
	return Unknown()
}
