package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boyrun/obj"
)

// eventPoller collects this tick's input edges. The key slices are reused
// between ticks.
type eventPoller struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// Poll appends the events seen since the previous tick to dst.
func (p *eventPoller) Poll(dst []obj.Event) []obj.Event {
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	dst = keyEvents(dst, p.pressed, p.released)
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, obj.Event{Kind: obj.EventQuit})
	}
	return dst
}

// keyEvents maps ebiten keys to loop events. Presses come before releases so
// a tap shorter than one tick still registers as down then up.
func keyEvents(dst []obj.Event, pressed, released []ebiten.Key) []obj.Event {
	for _, k := range pressed {
		if key, ok := toKey(k); ok {
			dst = append(dst, obj.Event{Kind: obj.EventKeyDown, Key: key})
		}
	}
	for _, k := range released {
		if key, ok := toKey(k); ok {
			dst = append(dst, obj.Event{Kind: obj.EventKeyUp, Key: key})
		}
	}
	return dst
}

func toKey(k ebiten.Key) (obj.Key, bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		return obj.KeyLeft, true
	case ebiten.KeyArrowRight:
		return obj.KeyRight, true
	case ebiten.KeyArrowUp:
		return obj.KeyUp, true
	case ebiten.KeyArrowDown:
		return obj.KeyDown, true
	case ebiten.KeyEscape:
		return obj.KeyEscape, true
	default:
		return obj.KeyNone, false
	}
}
