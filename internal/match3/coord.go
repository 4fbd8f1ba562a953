package match3

import "fmt"

// Coord addresses a single slot on the board.
// X grows to the right, Y grows upward (row 0 is the bottom row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate n unit steps away in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	u := d.Normalize()
	return c.Add(u.DX*n, u.DY*n)
}

// Direction is a scan direction along one axis.
type Direction struct {
	DX int
	DY int
}

// Unit scan directions.
var (
	Right = Direction{DX: 1, DY: 0}
	Left  = Direction{DX: -1, DY: 0}
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
)

// Normalize clamps each component to [-1, 1] so any magnitude becomes a unit step.
func (d Direction) Normalize() Direction {
	return Direction{DX: sign(d.DX), DY: sign(d.DY)}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether the direction has no movement on either axis.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a human-readable name for unit directions.
func (d Direction) String() string {
	switch d.Normalize() {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
