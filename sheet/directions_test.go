package sheet

import (
	"math"
	"testing"
)

func TestDirectionTable(t *testing.T) {
	want := []struct {
		name  string
		angle float64
	}{
		{"South", 90},
		{"South-East", 45},
		{"East", 0},
		{"North-East", 315},
		{"North", 270},
		{"North-West", 225},
		{"West", 180},
		{"South-West", 135},
	}
	if len(want) != Rows {
		t.Fatalf("test table has %d rows; want %d", len(want), Rows)
	}
	for row, w := range want {
		d, err := DirectionByRow(row)
		if err != nil {
			t.Fatalf("row %d: %v", row, err)
		}
		if d.Name != w.name || d.AngleDeg != w.angle {
			t.Errorf("row %d: got %q at %v°; want %q at %v°", row, d.Name, d.AngleDeg, w.name, w.angle)
		}
	}
}

func TestDirectionByRowRange(t *testing.T) {
	for _, row := range []int{-1, Rows, 100} {
		if _, err := DirectionByRow(row); err == nil {
			t.Errorf("row %d: want an error", row)
		}
	}
}

func TestArrowEndpoint(t *testing.T) {
	const eps = 1e-9
	cases := []struct {
		name   string
		row    int
		wx, wy float64
	}{
		{"south grows y", 0, 48, 63},
		{"east grows x", 2, 63, 48},
		{"north shrinks y", 4, 48, 33},
		{"west shrinks x", 6, 33, 48},
	}
	for _, c := range cases {
		x, y := ArrowEndpoint(c.row, 48, 48)
		if math.Abs(x-c.wx) > eps || math.Abs(y-c.wy) > eps {
			t.Errorf("%s: got (%v,%v); want (%v,%v)", c.name, x, y, c.wx, c.wy)
		}
	}
}

func TestArrowEndpointDiagonalLength(t *testing.T) {
	// Diagonals keep the same arrow length, just split across axes.
	x, y := ArrowEndpoint(1, 0, 0) // South-East
	if got := math.Hypot(x, y); math.Abs(got-arrowLength) > 1e-9 {
		t.Errorf("length: got %v; want %v", got, float64(arrowLength))
	}
	if x <= 0 || y <= 0 {
		t.Errorf("south-east quadrant: got (%v,%v); want both positive", x, y)
	}
}
