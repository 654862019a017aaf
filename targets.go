package citygrid

import (
	"encoding/json"
	"fmt"
)

// TargetType tags what a vehicle is heading toward.
type TargetType uint8

const (
	TargetBuilding TargetType = iota // a building to park near
	TargetExit                       // leaving the city
	TargetPosition                   // just somewhere
)

var targetNames = map[TargetType]string{
	TargetBuilding: "building",
	TargetExit:     "exit",
	TargetPosition: "position",
}

// String returns the name of the target type
func (t TargetType) String() string {
	name, ok := targetNames[t]
	if !ok {
		return fmt.Sprintf("target(%d)", uint8(t))
	}
	return name
}

// MarshalJSON encodes the type by name
func (t TargetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Target is a destination for a vehicle.
type Target struct {
	Type     TargetType
	Position Position
}
