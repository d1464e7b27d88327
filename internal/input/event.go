// Package input defines the small, closed set of events produced by the
// window layer.
package input

import "fmt"

// Type identifies the kind of an Event.
type Type int

const (
	MouseMotion Type = iota
	MouseDown
	MouseUp
	KeyDown
	KeyUp
)

func (t Type) String() string {
	switch t {
	case MouseMotion:
		return "mouse-motion"
	case MouseDown:
		return "mouse-down"
	case MouseUp:
		return "mouse-up"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// IsMouse reports whether events of this type carry a pointer position.
func (t Type) IsMouse() bool {
	return t == MouseMotion || t == MouseDown || t == MouseUp
}

// Event is a translated input notification. X and Y are relative to the
// window's top-left corner and are only set for mouse events; key events
// carry no payload.
type Event struct {
	Type Type
	X    int
	Y    int
}

func (e Event) String() string {
	if e.Type.IsMouse() {
		return fmt.Sprintf("%s x=%d y=%d", e.Type, e.X, e.Y)
	}
	return e.Type.String()
}
