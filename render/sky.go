package render

import "lunie/parameter"

// SkyColumn returns the night gradient, one color per pixel row, dark at
// the top easing to a lighter blue at the horizon
func SkyColumn(height int) []Pixel {
	col := make([]Pixel, height)
	if height == 0 {
		return col
	}
	steps := parameter.SkySteps
	for y := range col {
		// Quantized like the original's banded canvas gradient
		band := y * steps / height
		t := float64(band) / float64(steps)
		col[y] = toPixel(skyTop.BlendLab(skyBottom, t))
	}
	return col
}
