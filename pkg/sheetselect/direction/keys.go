package direction

// Key names as reported by browser-style keyboard events.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyTab        = "Tab"
)

// KeyEvent is the part of a keyboard event that determines movement.
type KeyEvent struct {
	Key   string
	Shift bool
}

// FromKeyEvent derives the movement direction of a key press.
// Shift+Tab moves left. Any other shifted key yields None, because shifted
// arrows resize the selection and are handled by the caller.
func FromKeyEvent(e KeyEvent) Direction {
	if e.Shift {
		if e.Key == KeyTab {
			return Left
		}
		return None
	}
	switch e.Key {
	case KeyArrowUp:
		return Up
	case KeyArrowDown:
		return Down
	case KeyArrowLeft:
		return Left
	case KeyArrowRight, KeyTab:
		return Right
	}
	return None
}
