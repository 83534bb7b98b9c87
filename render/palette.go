package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"lunie/parameter"
)

// Palette colors are fixed at init; a bad hex literal is a programming
// error, not a runtime condition
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	litColor   = mustHex(parameter.LitColorHex)
	darkColor  = mustHex(parameter.DarkColorHex)
	skyTop     = mustHex(parameter.SkyTopHex)
	skyBottom  = mustHex(parameter.SkyBottomHex)
	eyeColor   = mustHex("#10141f")
	catchlight = mustHex("#f4f6ff")
)

func toPixel(c colorful.Color) Pixel {
	r, g, b := c.RGB255()
	return Pixel{R: r, G: g, B: b}
}
