package input

import "testing"

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Type: MouseMotion, X: 3, Y: 4}, "mouse-motion x=3 y=4"},
		{Event{Type: MouseDown, X: 0, Y: 271}, "mouse-down x=0 y=271"},
		{Event{Type: MouseUp, X: 480, Y: 0}, "mouse-up x=480 y=0"},
		{Event{Type: KeyDown}, "key-down"},
		{Event{Type: KeyUp}, "key-up"},
		{Event{Type: Type(42)}, "Type(42)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Fatalf("%#v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestTypeIsMouse(t *testing.T) {
	for _, typ := range []Type{MouseMotion, MouseDown, MouseUp} {
		if !typ.IsMouse() {
			t.Fatalf("%s: expected mouse type", typ)
		}
	}
	for _, typ := range []Type{KeyDown, KeyUp} {
		if typ.IsMouse() {
			t.Fatalf("%s: expected non-mouse type", typ)
		}
	}
}
