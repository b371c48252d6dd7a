package snake

// Cell is a single grid coordinate. Value type, comparable.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Step returns the cell one unit away in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is the bounded 2D cell space the game is played on.
// Pure and stateless beyond its fixed dimensions.
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether the cell lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap maps a cell back onto the grid modulo its dimensions.
// Handles negative coordinates.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{
		X: ((c.X % g.Width) + g.Width) % g.Width,
		Y: ((c.Y % g.Height) + g.Height) % g.Height,
	}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Area returns the total number of cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}
