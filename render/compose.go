package render

import (
	"math"

	"lunie/vmath"
)

// Frame is the per-tick composition target at half-block resolution:
// cols x rows*2 pixels for a cols x rows cell screen. The widget converts
// pixel row pairs into ▀ cells.
type Frame struct {
	grid *PixelGrid
}

// NewFrame creates a frame for a terminal of cols x rows cells
func NewFrame(cols, rows int) *Frame {
	return &Frame{grid: NewPixelGrid(cols, rows*2)}
}

// Size returns the frame dimensions in pixels
func (f *Frame) Size() (w, h int) {
	return f.grid.W, f.grid.H
}

// At returns the composed pixel at (x, y)
func (f *Frame) At(x, y int) Pixel {
	return f.grid.At(x, y)
}

// FillSky paints the background gradient
func (f *Frame) FillSky(column []Pixel) {
	for y := 0; y < f.grid.H; y++ {
		var p Pixel
		if y < len(column) {
			p = column[y]
		}
		for x := 0; x < f.grid.W; x++ {
			f.grid.Set(x, y, p)
		}
	}
}

// DrawDisc composites the cached disc artifact through the per-frame
// transform: translated by offset, squashed vertically about the disc
// center by vscale (the blink). Nearest-neighbor sampling keeps the
// transform cheap and the cached grid untouched.
func (f *Frame) DrawDisc(d *DiscState, offset vmath.Vec2, vscale float64) {
	if d == nil || d.Img == nil {
		return
	}
	vscale = vmath.Clamp(vscale, 0.01, 1)

	cx := d.Center.X + offset.X
	cy := d.Center.Y + offset.Y
	srcHalfW := float64(d.Img.W) / 2
	srcHalfH := float64(d.Img.H) / 2

	x0 := int(math.Floor(cx - srcHalfW))
	x1 := int(math.Ceil(cx + srcHalfW))
	y0 := int(math.Floor(cy - srcHalfH*vscale))
	y1 := int(math.Ceil(cy + srcHalfH*vscale))

	for y := y0; y <= y1; y++ {
		srcY := int(math.Floor((float64(y)+0.5-cy)/vscale + srcHalfH))
		for x := x0; x <= x1; x++ {
			srcX := int(math.Floor(float64(x) + 0.5 - cx + srcHalfW))
			p := d.Img.At(srcX, srcY)
			if p.Transparent {
				continue
			}
			f.grid.Set(x, y, p)
		}
	}
}
