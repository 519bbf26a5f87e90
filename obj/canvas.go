package obj

import (
	"image"

	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
)

// Image is a loaded picture handle. The canvas implementation decides what
// concrete type stands behind it.
type Image interface {
	Bounds() image.Rectangle
}

// Canvas is the drawing surface one loop step renders into. Positions are
// world coordinates (y-up) and name the centre of what is drawn.
type Canvas interface {
	Clear()
	DrawImage(img Image, center common.Point)
	// DrawClipped draws the src region of img scaled to w x h, mirrored
	// horizontally when mirrored is set.
	DrawClipped(img Image, src component.Clip, dst common.Point, w, h float64, mirrored bool)
}
