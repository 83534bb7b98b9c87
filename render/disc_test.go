package render

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"lunie/shade"
	"lunie/vmath"
)

func newTestRenderer() *Renderer {
	return NewRenderer(0.04, zap.NewNop().Sugar())
}

func term(frac float64) shade.Terminator {
	limb := 0.0
	if frac >= 0.5 {
		limb = math.Pi
	}
	return shade.Terminator{PhaseFraction: frac, Waxing: frac < 0.5, LimbAngle: limb}
}

// TestRenderDeterministic verifies identical inputs produce identical
// artifacts across independent renderers
func TestRenderDeterministic(t *testing.T) {
	center := vmath.Vec2{X: 40, Y: 30}
	a, err := newTestRenderer().Render(term(0.3), 20, center)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestRenderer().Render(term(0.3), 20, center)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Img.Equal(b.Img) {
		t.Error("same inputs rendered different pixel grids")
	}
}

// TestRenderCacheReuse verifies repeat calls hit the cache instead of
// recomputing
func TestRenderCacheReuse(t *testing.T) {
	r := newTestRenderer()
	center := vmath.Vec2{X: 40, Y: 30}

	a, _ := r.Render(term(0.3), 20, center)
	b, _ := r.Render(term(0.3), 20, center)
	if a != b {
		t.Error("expected the cached artifact pointer on a repeat render")
	}

	c, _ := r.Render(term(0.31), 20, center)
	if a == c {
		t.Error("geometry change should invalidate the cache")
	}
}

// TestRenderCenterTranslates verifies a changed center moves the artifact
// without altering its shading pattern
func TestRenderCenterTranslates(t *testing.T) {
	a, _ := newTestRenderer().Render(term(0.3), 20, vmath.Vec2{X: 40, Y: 30})
	b, _ := newTestRenderer().Render(term(0.3), 20, vmath.Vec2{X: 55, Y: 12})

	if !a.Img.Equal(b.Img) {
		t.Error("center change altered the shading pattern")
	}
	if a.Center == b.Center {
		t.Error("center change not reflected in the artifact")
	}
}

// TestRenderBoundaryPhases verifies new/full/quarter discs produce the
// expected lit coverage
func TestRenderBoundaryPhases(t *testing.T) {
	cases := []struct {
		frac     float64
		min, max float64
	}{
		{0.0, 0, 0.01},     // new: fully unlit
		{0.5, 0.99, 1},     // full: fully lit
		{0.25, 0.45, 0.55}, // first quarter: half lit
		{0.75, 0.45, 0.55}, // last quarter: half lit
	}
	for _, c := range cases {
		d, err := newTestRenderer().Render(term(c.frac), 30, vmath.Vec2{X: 40, Y: 40})
		if err != nil {
			t.Fatal(err)
		}
		got := LitPixelFraction(d.Img)
		if got < c.min || got > c.max {
			t.Errorf("fraction %.2f: lit coverage %f outside [%f, %f]", c.frac, got, c.min, c.max)
		}
	}
}

// TestRenderLitAreaMonotonic verifies pixel coverage tracks the shading
// model's monotonicity through the waxing half
func TestRenderLitAreaMonotonic(t *testing.T) {
	r := newTestRenderer()
	prev := -1.0
	for i := 0; i <= 20; i++ {
		frac := 0.5 * float64(i) / 20
		d, err := r.Render(term(frac), 30, vmath.Vec2{X: 40, Y: 40})
		if err != nil {
			t.Fatal(err)
		}
		cur := LitPixelFraction(d.Img)
		if cur < prev-0.01 {
			t.Fatalf("lit coverage dropped at fraction %.2f: %f -> %f", frac, prev, cur)
		}
		prev = cur
	}
}

// TestRenderSizeInvalid verifies the non-positive radius error
func TestRenderSizeInvalid(t *testing.T) {
	for _, radius := range []float64{0, -3} {
		if _, err := newTestRenderer().Render(term(0.5), radius, vmath.Vec2{}); !errors.Is(err, ErrRenderSizeInvalid) {
			t.Errorf("radius %f: expected ErrRenderSizeInvalid, got %v", radius, err)
		}
	}
}
