package obj

import (
	"image"

	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
)

type drawCall struct {
	op       string
	img      Image
	src      component.Clip
	dst      common.Point
	w, h     float64
	mirrored bool
}

// recordingCanvas records every call instead of drawing.
type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) Clear() {
	r.calls = append(r.calls, drawCall{op: "clear"})
}

func (r *recordingCanvas) DrawImage(img Image, center common.Point) {
	r.calls = append(r.calls, drawCall{op: "image", img: img, dst: center})
}

func (r *recordingCanvas) DrawClipped(img Image, src component.Clip, dst common.Point, w, h float64, mirrored bool) {
	r.calls = append(r.calls, drawCall{op: "clip", img: img, src: src, dst: dst, w: w, h: h, mirrored: mirrored})
}

func (r *recordingCanvas) clipped() []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.op == "clip" {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingCanvas) last() drawCall {
	return r.calls[len(r.calls)-1]
}

func (r *recordingCanvas) reset() {
	r.calls = r.calls[:0]
}

type fakeImage struct {
	w, h int
}

func (f fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

func testTable(frames int, row int, delay float64) *component.AnimationTable {
	clips := make([]component.Clip, frames)
	for i := range clips {
		clips[i] = component.Clip{X: i * 100, Y: row * 100, W: 100, H: 100}
	}
	a, err := component.NewAnimationTable(clips, delay)
	if err != nil {
		panic(err)
	}
	return a
}

func newTestCharacter() *Character {
	c, err := NewCharacter(common.Point{X: 640, Y: 512}, testTable(8, 3, 0.1), testTable(8, 1, 0.05))
	if err != nil {
		panic(err)
	}
	return c
}
