// Package direction defines the four movement directions used for keyboard
// navigation and resizing.
package direction

// Direction is one of the four grid directions.
type Direction int

const (
	// None means no movement.
	None Direction = iota
	Up
	Down
	Left
	Right
)

var names = map[Direction]string{
	None:  "none",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return "unknown"
}

// RowOffset returns -1 for Up, 1 for Down and 0 otherwise.
func (d Direction) RowOffset() int {
	switch d {
	case Up:
		return -1
	case Down:
		return 1
	}
	return 0
}

// ColumnOffset returns -1 for Left, 1 for Right and 0 otherwise.
func (d Direction) ColumnOffset() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

// Parse maps a direction name ("up", "down", "left", "right") to a Direction.
func Parse(name string) (Direction, bool) {
	for d, n := range names {
		if d != None && n == name {
			return d, true
		}
	}
	return None, false
}
