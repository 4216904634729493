package sheet

import (
	"math"

	"github.com/pkg/errors"
)

// Direction is one sprite sheet row: a compass heading and the screen
// angle its arrow points at. Angles are in degrees with y growing down,
// so South is 90 and North is 270.
type Direction struct {
	Name     string
	AngleDeg float64
}

// Directions maps sheet rows, top to bottom, to compass headings. The
// animation code indexes rows by this order, so it never changes.
var Directions = [Rows]Direction{
	{"South", 90},
	{"South-East", 45},
	{"East", 0},
	{"North-East", 315},
	{"North", 270},
	{"North-West", 225},
	{"West", 180},
	{"South-West", 135},
}

// DirectionByRow returns the direction drawn on the passed sheet row.
func DirectionByRow(row int) (Direction, error) {
	if row < 0 || row >= Rows {
		return Direction{}, errors.Errorf("direction row %d out of range [0,%d)", row, Rows)
	}
	return Directions[row], nil
}

// ArrowEndpoint returns where the heading arrow for a sheet row ends
// when it starts at (cx, cy). row must be in [0,Rows).
func ArrowEndpoint(row int, cx, cy float64) (x, y float64) {
	rad := Directions[row].AngleDeg * math.Pi / 180
	return cx + math.Cos(rad)*arrowLength, cy + math.Sin(rad)*arrowLength
}
