package render

import (
	"lunie/parameter"
	"lunie/vmath"
)

// DrawFace paints the two eyes onto a composed frame. The vertical eye
// radius follows the blink scale, so the eyes squint shut while the disc
// itself only squashes slightly. Drawn per-frame; never part of the
// cached disc artifact.
func DrawFace(f *Frame, center vmath.Vec2, radius, blinkScale float64) {
	ry := radius * parameter.EyeRadiusY * vmath.Clamp(blinkScale, parameter.MinBlinkScale, 1)
	rx := radius * parameter.EyeRadiusX
	cy := center.Y - radius*parameter.EyeOffsetY

	for _, side := range []float64{-1, 1} {
		cx := center.X + side*radius*parameter.EyeOffsetX
		drawEye(f, cx, cy, rx, ry, radius, blinkScale)
	}
}

func drawEye(f *Frame, cx, cy, rx, ry, radius, blinkScale float64) {
	x0, x1 := int(cx-rx)-1, int(cx+rx)+1
	y0, y1 := int(cy-ry)-1, int(cy+ry)+1

	eye := toPixel(eyeColor)
	light := toPixel(catchlight)
	lightR := radius * parameter.CatchlightR

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if !vmath.EllipseContains(dx, dy, rx, ry) {
				continue
			}
			// Catchlight only while the eye is mostly open
			if blinkScale > 0.5 &&
				vmath.EllipseContains(dx-rx*0.3, dy+ry*0.3, lightR, lightR) {
				f.grid.Set(x, y, light)
				continue
			}
			f.grid.Set(x, y, eye)
		}
	}
}
