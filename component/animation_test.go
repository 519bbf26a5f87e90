package component

import (
	"errors"
	"image"
	"testing"
)

func rowClips(n, w, h, row int) []Clip {
	clips := make([]Clip, n)
	for i := range clips {
		clips[i] = Clip{X: i * w, Y: row * h, W: w, H: h}
	}
	return clips
}

func TestAnimationTableAdvanceIsCyclic(t *testing.T) {
	cases := []struct {
		name   string
		frames int
		steps  int
	}{
		{"single_frame", 1, 7},
		{"eight_frames_partial", 8, 5},
		{"eight_frames_wrap", 8, 8},
		{"eight_frames_many", 8, 123},
		{"three_frames", 3, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewAnimationTable(rowClips(c.frames, 100, 100, 0), 0.05)
			if err != nil {
				t.Fatalf("NewAnimationTable: %v", err)
			}
			for i := 0; i < c.steps; i++ {
				a.Advance()
				if a.Frame() < 0 || a.Frame() >= a.Len() {
					t.Fatalf("cursor %d escaped [0,%d)", a.Frame(), a.Len())
				}
			}
			if want := c.steps % c.frames; a.Frame() != want {
				t.Fatalf("expected frame %d after %d advances, got %d", want, c.steps, a.Frame())
			}
			if got, want := a.CurrentClip(), rowClips(c.frames, 100, 100, 0)[c.steps%c.frames]; got != want {
				t.Fatalf("expected clip %v, got %v", want, got)
			}
		})
	}
}

func TestNewAnimationTableRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		clips   []Clip
		delay   float64
		wantErr error
	}{
		{"empty", nil, 0.1, ErrEmptyTable},
		{"zero_delay", rowClips(2, 10, 10, 0), 0, ErrBadDelay},
		{"negative_delay", rowClips(2, 10, 10, 0), -1, ErrBadDelay},
		{"zero_width", []Clip{{X: 0, Y: 0, W: 0, H: 10}}, 0.1, nil},
		{"negative_height", []Clip{{X: 0, Y: 0, W: 10, H: -1}}, 0.1, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewAnimationTable(c.clips, c.delay)
			if err == nil {
				t.Fatalf("expected error, got table %+v", a)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestAnimationTableReplaceKeepsCursorInRange(t *testing.T) {
	a, err := NewAnimationTable(rowClips(8, 100, 100, 0), 0.05)
	if err != nil {
		t.Fatalf("NewAnimationTable: %v", err)
	}
	for i := 0; i < 6; i++ {
		a.Advance()
	}

	if err := a.Replace(rowClips(4, 50, 50, 1), 0.1); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if a.Frame() != 2 {
		t.Fatalf("expected cursor 6 mod 4 = 2, got %d", a.Frame())
	}
	if a.Delay() != 0.1 {
		t.Fatalf("expected delay 0.1, got %v", a.Delay())
	}

	if err := a.Replace(nil, 0.2); err == nil {
		t.Fatalf("expected error replacing with no clips")
	}
	if a.Len() != 4 || a.Delay() != 0.1 {
		t.Fatalf("failed Replace must leave table untouched, got len=%d delay=%v", a.Len(), a.Delay())
	}
}

func TestAnimationTableReset(t *testing.T) {
	a, _ := NewAnimationTable(rowClips(3, 10, 10, 0), 0.1)
	a.Advance()
	a.Advance()
	a.Reset()
	if a.Frame() != 0 {
		t.Fatalf("expected frame 0 after Reset, got %d", a.Frame())
	}
}

func TestClipValidate(t *testing.T) {
	sheet := image.Rect(0, 0, 800, 400)
	cases := []struct {
		name string
		clip Clip
		ok   bool
	}{
		{"inside", Clip{X: 0, Y: 300, W: 100, H: 100}, true},
		{"touching_corner", Clip{X: 700, Y: 300, W: 100, H: 100}, true},
		{"past_right_edge", Clip{X: 750, Y: 0, W: 100, H: 100}, false},
		{"negative_origin", Clip{X: -1, Y: 0, W: 10, H: 10}, false},
		{"zero_size", Clip{X: 0, Y: 0, W: 0, H: 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.clip.Validate(sheet)
			if c.ok && err != nil {
				t.Fatalf("expected valid clip, got %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected clip %v to be rejected", c.clip)
			}
		})
	}
}
