package render

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"lunie/shade"
	"lunie/vmath"
)

// ErrRenderSizeInvalid means a non-positive disc radius was requested.
// Callers recover by clamping to parameter.MinDiscRadius and retrying.
var ErrRenderSizeInvalid = errors.New("render size invalid")

// DiscState is the cached drawable for one (terminator, radius, center)
// triple. The grid is recomputed only when one of those changes; parallax
// and blink are composite-time transforms and never touch it.
type DiscState struct {
	Radius float64
	Center vmath.Vec2
	Img    *PixelGrid
}

type cacheKey struct {
	term   shade.Terminator
	radius float64
	center vmath.Vec2
}

// Renderer produces shaded disc artifacts with a single-entry cache.
// The phase changes at most once per day and the radius only on resize,
// so one entry covers every frame in between.
type Renderer struct {
	softness float64 // terminator blend band, fraction of radius
	logger   *zap.SugaredLogger

	key    cacheKey
	cached *DiscState
}

// NewRenderer creates a disc renderer. Softness outside (0, 0.5] falls
// back to the default band width.
func NewRenderer(softness float64, logger *zap.SugaredLogger) *Renderer {
	if softness <= 0 || softness > 0.5 {
		softness = 0.04
	}
	return &Renderer{softness: softness, logger: logger}
}

// Render returns the drawable disc for the given geometry. Deterministic:
// identical inputs yield an identical pixel grid, and a changed center
// only moves where the widget composites it.
func (r *Renderer) Render(t shade.Terminator, radius float64, center vmath.Vec2) (*DiscState, error) {
	if radius <= 0 {
		return nil, ErrRenderSizeInvalid
	}

	key := cacheKey{term: t, radius: radius, center: center}
	if r.cached != nil && r.key == key {
		return r.cached, nil
	}

	state := &DiscState{
		Radius: radius,
		Center: center,
		Img:    r.shadeDisc(t, radius),
	}
	r.key = key
	r.cached = state
	r.logger.Debugw("disc rendered",
		"phase_fraction", t.PhaseFraction, "radius", radius, "lit", t.LitFraction())
	return state, nil
}

// shadeDisc rasterizes the two-sphere projection: each pixel inside the
// disc gets the lit or dark surface color by the sign of normal·sun, with
// a smoothstep band around the terminator instead of a hard edge.
func (r *Renderer) shadeDisc(t shade.Terminator, radius float64) *PixelGrid {
	size := int(math.Ceil(2 * radius))
	if size < 1 {
		size = 1
	}
	grid := NewPixelGrid(size, size)

	sx, sy, sz := t.SunVector()
	half := float64(size) / 2
	band := r.softness

	for j := 0; j < size; j++ {
		y := (float64(j) + 0.5 - half) / radius
		for i := 0; i < size; i++ {
			x := (float64(i) + 0.5 - half) / radius
			r2 := x*x + y*y
			if r2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - r2)
			ndot := x*sx + y*sy + nz*sz
			blend := vmath.Smoothstep(0.5 + ndot/(2*band))
			grid.Set(i, j, toPixel(darkColor.BlendLab(litColor, blend)))
		}
	}
	return grid
}

// LitPixelFraction counts the fraction of disc pixels closer to the lit
// color than the dark one. Exposed for the renderer's own boundary tests.
func LitPixelFraction(g *PixelGrid) float64 {
	lit, total := 0, 0
	litPx := toPixel(litColor)
	darkPx := toPixel(darkColor)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := g.At(x, y)
			if p.Transparent {
				continue
			}
			total++
			if colorDistSq(p, litPx) < colorDistSq(p, darkPx) {
				lit++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(lit) / float64(total)
}

func colorDistSq(a, b Pixel) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
