package obj

import (
	"testing"

	"github.com/milk9111/boyrun/common"
)

func down(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
func up(k Key) Event   { return Event{Kind: EventKeyUp, Key: k} }

func TestInputDirectionAccumulates(t *testing.T) {
	cases := []struct {
		name     string
		events   []Event
		wantDir  common.Vector
		wantFlip bool
	}{
		{"right", []Event{down(KeyRight)}, common.Vector{X: 1}, false},
		{"left", []Event{down(KeyLeft)}, common.Vector{X: -1}, true},
		{"up_is_positive_y", []Event{down(KeyUp)}, common.Vector{Y: 1}, false},
		{"down_is_negative_y", []Event{down(KeyDown)}, common.Vector{Y: -1}, false},
		{"right_then_up", []Event{down(KeyRight), down(KeyUp)}, common.Vector{X: 1, Y: 1}, false},
		{"left_right_cancel", []Event{down(KeyLeft), down(KeyRight)}, common.Vector{}, false},
		{"left_right_release_left", []Event{down(KeyLeft), down(KeyRight), up(KeyLeft)}, common.Vector{X: 1}, false},
		{"left_right_release_both", []Event{down(KeyLeft), down(KeyRight), up(KeyLeft), up(KeyRight)}, common.Vector{}, false},
		{"left_right_release_right_first", []Event{down(KeyLeft), down(KeyRight), up(KeyRight), up(KeyLeft)}, common.Vector{}, false},
		{"up_down_cancel", []Event{down(KeyUp), down(KeyDown)}, common.Vector{}, false},
		{"release_keeps_facing", []Event{down(KeyLeft), up(KeyLeft)}, common.Vector{}, true},
		{"stray_release_ignored", []Event{up(KeyRight)}, common.Vector{}, false},
		{"repeat_press_ignored", []Event{down(KeyRight), down(KeyRight)}, common.Vector{X: 1}, false},
		{"repeat_press_then_release", []Event{down(KeyRight), down(KeyRight), up(KeyRight)}, common.Vector{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := newTestCharacter()
			in := NewInput()
			for _, ev := range c.events {
				if !in.Apply(ev, ch) {
					t.Fatalf("event %s should not stop the loop", ev)
				}
			}
			if ch.Direction != c.wantDir {
				t.Fatalf("expected direction %+v, got %+v", c.wantDir, ch.Direction)
			}
			if ch.Flip != c.wantFlip {
				t.Fatalf("expected flip=%v, got %v", c.wantFlip, ch.Flip)
			}
		})
	}
}

func TestInputQuit(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		stop bool
	}{
		{"quit", Event{Kind: EventQuit}, true},
		{"escape_down", down(KeyEscape), true},
		{"escape_up", up(KeyEscape), false},
		{"arrow", down(KeyUp), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := !NewInput().Apply(c.ev, newTestCharacter()); got != c.stop {
				t.Fatalf("expected stop=%v, got %v", c.stop, got)
			}
		})
	}
}

func TestInputHeld(t *testing.T) {
	ch := newTestCharacter()
	in := NewInput()
	in.Apply(down(KeyUp), ch)
	if !in.Held(KeyUp) {
		t.Fatalf("up should be held")
	}
	in.Apply(up(KeyUp), ch)
	if in.Held(KeyUp) {
		t.Fatalf("up should be released")
	}
}
