package component

import (
	"errors"
	"fmt"
	"image"
)

// Clip is one animation frame's rectangle in sprite sheet pixel space.
// The origin is the sheet's top-left corner.
type Clip struct {
	X, Y int
	W, H int
}

// Rect returns the clip as an image rectangle suitable for SubImage.
func (c Clip) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
}

// Validate reports whether the clip has a positive size and lies inside bounds.
func (c Clip) Validate(bounds image.Rectangle) error {
	if c.W <= 0 || c.H <= 0 {
		return fmt.Errorf("component: clip %v has non-positive size", c)
	}
	if !c.Rect().In(bounds) {
		return fmt.Errorf("component: clip %v outside sheet bounds %v", c, bounds)
	}
	return nil
}

var (
	ErrEmptyTable = errors.New("component: animation table has no clips")
	ErrBadDelay   = errors.New("component: animation delay must be positive")
)

// AnimationTable is an ordered, looping list of clips with a shared frame
// delay. The cursor is advanced in place once per drawn frame, so whoever
// holds the table shares its animation progress.
type AnimationTable struct {
	clips   []Clip
	delay   float64
	current int
}

// NewAnimationTable creates a table starting at frame 0. `delay` is the number
// of seconds between frame advances.
func NewAnimationTable(clips []Clip, delay float64) (*AnimationTable, error) {
	a := &AnimationTable{}
	if err := a.Replace(clips, delay); err != nil {
		return nil, err
	}
	return a, nil
}

// Replace swaps in new clips and delay. The cursor is kept, wrapped to the new
// length. On error the table is left untouched.
func (a *AnimationTable) Replace(clips []Clip, delay float64) error {
	if len(clips) == 0 {
		return ErrEmptyTable
	}
	if delay <= 0 {
		return ErrBadDelay
	}
	for i, c := range clips {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("component: clip %d %v has non-positive size", i, c)
		}
	}
	a.clips = append(a.clips[:0:0], clips...)
	a.delay = delay
	a.current %= len(a.clips)
	return nil
}

// Validate checks every clip against the sheet bounds.
func (a *AnimationTable) Validate(bounds image.Rectangle) error {
	for i, c := range a.clips {
		if err := c.Validate(bounds); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// CurrentClip returns the clip under the cursor.
func (a *AnimationTable) CurrentClip() Clip {
	return a.clips[a.current]
}

// Advance moves the cursor to the next frame, wrapping at the end.
func (a *AnimationTable) Advance() {
	a.current = (a.current + 1) % len(a.clips)
}

// Reset sets the animation back to the first frame.
func (a *AnimationTable) Reset() {
	a.current = 0
}

func (a *AnimationTable) Frame() int { return a.current }

func (a *AnimationTable) Len() int { return len(a.clips) }

// Delay returns the seconds between frame advances.
func (a *AnimationTable) Delay() float64 { return a.delay }

// Clips returns a copy of the table's clips.
func (a *AnimationTable) Clips() []Clip {
	return append([]Clip(nil), a.clips...)
}
