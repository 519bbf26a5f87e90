package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
	"github.com/milk9111/boyrun/obj"
)

var _ obj.Canvas = (*screenCanvas)(nil)

// screenCanvas draws into an ebiten image. World coordinates are y-up with
// the origin at the bottom-left; everything is drawn centred on its position.
type screenCanvas struct {
	target *ebiten.Image
	clear  color.Color
}

func newScreenCanvas(target *ebiten.Image, clear color.Color) *screenCanvas {
	return &screenCanvas{target: target, clear: clear}
}

func (c *screenCanvas) Clear() {
	c.target.Fill(c.clear)
}

func (c *screenCanvas) DrawImage(handle obj.Image, center common.Point) {
	img, ok := handle.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	x, y := toScreen(center, c.height())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-w/2, y-h/2)
	c.target.DrawImage(img, op)
}

func (c *screenCanvas) DrawClipped(handle obj.Image, src component.Clip, dst common.Point, w, h float64, mirrored bool) {
	img, ok := handle.(*ebiten.Image)
	if !ok || img == nil || src.W <= 0 || src.H <= 0 {
		return
	}
	sub := img.SubImage(src.Rect()).(*ebiten.Image)
	sx := w / float64(src.W)
	sy := h / float64(src.H)
	x, y := toScreen(dst, c.height())

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if mirrored {
		op.GeoM.Scale(-sx, sy)
		// flipped around x=0, so shift right by the full width
		op.GeoM.Translate(x+w/2, y-h/2)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x-w/2, y-h/2)
	}
	c.target.DrawImage(sub, op)
}

func (c *screenCanvas) height() float64 {
	return float64(c.target.Bounds().Dy())
}

// toScreen converts a y-up world point into y-down screen space.
func toScreen(p common.Point, height float64) (float64, float64) {
	return p.X, height - p.Y
}
