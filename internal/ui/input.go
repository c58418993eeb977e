package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	touches func([]ebiten.TouchID) []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldTouches := appendTouchIDs
	oldTouchPos := touchPosition
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	appendTouchIDs = touches
	touchPosition = touchPos
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		appendTouchIDs = oldTouches
		touchPosition = oldTouchPos
	}
}

// pointer merges the mouse and the first touch into one polled pointer.
type pointer struct {
	touchIDs []ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

// sample returns whether the pointer is down and where. The frame a touch
// ends reports its last position so the release lands under the finger.
func (p *pointer) sample() (bool, float64, float64) {
	p.touchIDs = appendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touching = true
		p.lastX, p.lastY = touchPosition(p.touchIDs[0])
		return true, float64(p.lastX), float64(p.lastY)
	}
	if p.touching {
		p.touching = false
		return false, float64(p.lastX), float64(p.lastY)
	}
	p.lastX, p.lastY = cursorPosition()
	return isMouseButtonPressed(ebiten.MouseButtonLeft), float64(p.lastX), float64(p.lastY)
}
