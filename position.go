package citygrid

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// Position is a grid coordinate. Both components are non-negative.
// X indexes rows of the Grid and Y indexes columns.
type Position struct {
	X int
	Y int
}

// Direction is a relative offset between two Positions.
type Direction = Position

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p moved by d
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p - o. Positions never go negative, so if either component
// would we return ErrNegativePosition instead of wrapping around.
func (p Position) Sub(o Position) (Position, error) {
	if o.X > p.X || o.Y > p.Y {
		return p, errors.Wrapf(ErrNegativePosition, "%v - %v", p, o)
	}
	return Position{X: p.X - o.X, Y: p.Y - o.Y}, nil
}

// Point returns the position as an image.Point (X as column, Y as row) for
// drawing.
func (p Position) Point() image.Point {
	return image.Pt(p.Y, p.X)
}

// String returns "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
