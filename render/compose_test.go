package render

import (
	"testing"

	"lunie/vmath"
)

func composedFrame(t *testing.T, offset vmath.Vec2, vscale float64) (*Frame, *DiscState) {
	t.Helper()
	d, err := newTestRenderer().Render(term(0.5), 12, vmath.Vec2{X: 40, Y: 30})
	if err != nil {
		t.Fatal(err)
	}
	f := NewFrame(80, 30)
	f.FillSky(SkyColumn(60))
	f.DrawDisc(d, offset, vscale)
	return f, d
}

func discPixelBounds(f *Frame, sky []Pixel) (minX, minY, maxX, maxY int, found bool) {
	w, h := f.Size()
	minX, minY = w, h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.At(x, y) == sky[y] {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return
}

// TestDrawDiscTranslates verifies the parallax offset moves the composited
// disc without re-rendering it
func TestDrawDiscTranslates(t *testing.T) {
	sky := SkyColumn(60)
	base, _ := composedFrame(t, vmath.Vec2{}, 1)
	moved, _ := composedFrame(t, vmath.Vec2{X: 5, Y: -4}, 1)

	bx0, by0, _, _, ok := discPixelBounds(base, sky)
	if !ok {
		t.Fatal("no disc pixels in base frame")
	}
	mx0, my0, _, _, ok := discPixelBounds(moved, sky)
	if !ok {
		t.Fatal("no disc pixels in moved frame")
	}
	if mx0-bx0 != 5 || my0-by0 != -4 {
		t.Errorf("disc moved by (%d,%d), want (5,-4)", mx0-bx0, my0-by0)
	}
}

// TestDrawDiscBlinkSquash verifies the blink scale squashes the disc
// vertically about its center without touching the cached artifact
func TestDrawDiscBlinkSquash(t *testing.T) {
	sky := SkyColumn(60)
	open, d := composedFrame(t, vmath.Vec2{}, 1)
	closed, _ := composedFrame(t, vmath.Vec2{}, 0.05)

	_, oy0, _, oy1, _ := discPixelBounds(open, sky)
	_, cy0, _, cy1, ok := discPixelBounds(closed, sky)
	if !ok {
		t.Fatal("squashed disc vanished entirely")
	}

	openH := oy1 - oy0 + 1
	closedH := cy1 - cy0 + 1
	if closedH > openH/4 {
		t.Errorf("blink scale 0.05: height %d vs open %d, expected a sliver", closedH, openH)
	}

	// Artifact untouched by the transform
	fresh, err := newTestRenderer().Render(term(0.5), 12, vmath.Vec2{X: 40, Y: 30})
	if err != nil {
		t.Fatal(err)
	}
	if !d.Img.Equal(fresh.Img) {
		t.Error("composite transform mutated the cached disc grid")
	}
}

// TestDrawFaceEyes verifies the face overlay lands on the frame and
// follows the blink scale
func TestDrawFaceEyes(t *testing.T) {
	countEye := func(f *Frame) int {
		eye := toPixel(eyeColor)
		light := toPixel(catchlight)
		n := 0
		w, h := f.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if p := f.At(x, y); p == eye || p == light {
					n++
				}
			}
		}
		return n
	}

	open, d := composedFrame(t, vmath.Vec2{}, 1)
	DrawFace(open, d.Center, d.Radius, 1)
	openCount := countEye(open)
	if openCount == 0 {
		t.Fatal("no eye pixels drawn on the open face")
	}

	closed, _ := composedFrame(t, vmath.Vec2{}, 0.05)
	DrawFace(closed, d.Center, d.Radius, 0.05)
	if closedCount := countEye(closed); closedCount >= openCount {
		t.Errorf("closed eyes (%d px) should be smaller than open (%d px)", closedCount, openCount)
	}
}

// TestFillSkyGradient verifies the gradient darkens top to bottom and
// covers the frame
func TestFillSkyGradient(t *testing.T) {
	col := SkyColumn(60)
	if len(col) != 60 {
		t.Fatalf("expected 60 rows, got %d", len(col))
	}
	top, bottom := col[0], col[59]
	if top == bottom {
		t.Error("gradient endpoints should differ")
	}
	if int(top.R)+int(top.G)+int(top.B) >= int(bottom.R)+int(bottom.G)+int(bottom.B) {
		t.Error("sky should lighten toward the horizon")
	}

	f := NewFrame(10, 30)
	f.FillSky(col)
	if f.At(0, 0) != col[0] || f.At(9, 59) != col[59] {
		t.Error("frame rows should take their column color")
	}
}
