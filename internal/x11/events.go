package x11

import (
	"fmt"
	"strings"

	"github.com/1broseidon/eglo/internal/input"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Poll drains at most one queued X event and translates it. It never
// blocks: with nothing queued it returns false at once. Events outside the
// known set are consumed, logged, and reported as false.
func (w *Window) Poll() (input.Event, bool) {
	ev, xerr := w.events.PollForEvent()
	if xerr != nil {
		w.log.Info("x11: unhandled error reply", "error", xerr.Error())
		return input.Event{}, false
	}
	if ev == nil {
		return input.Event{}, false
	}

	out, ok := translate(ev)
	if !ok {
		w.log.Info("x11: unhandled event", "type", eventName(ev), "code", eventCode(ev))
	}
	return out, ok
}

func translate(ev xgb.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case xproto.MotionNotifyEvent:
		return input.Event{Type: input.MouseMotion, X: int(e.EventX), Y: int(e.EventY)}, true
	case xproto.ButtonPressEvent:
		return input.Event{Type: input.MouseDown, X: int(e.EventX), Y: int(e.EventY)}, true
	case xproto.ButtonReleaseEvent:
		return input.Event{Type: input.MouseUp, X: int(e.EventX), Y: int(e.EventY)}, true
	case xproto.KeyPressEvent:
		// No keycode mapping yet.
		return input.Event{Type: input.KeyDown}, true
	case xproto.KeyReleaseEvent:
		return input.Event{Type: input.KeyUp}, true
	default:
		return input.Event{}, false
	}
}

// eventName turns xproto.ExposeEvent into "Expose".
func eventName(ev xgb.Event) string {
	name := fmt.Sprintf("%T", ev)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Event")
}

// eventCode returns the core protocol event number, without the
// SendEvent bit.
func eventCode(ev xgb.Event) int {
	buf := ev.Bytes()
	if len(buf) == 0 {
		return 0
	}
	return int(buf[0] & 0x7f)
}
