package render

// Pixel is a single half-block pixel: one terminal cell holds two of
// these stacked vertically
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// PixelGrid is a dense pixel buffer in row-major order
type PixelGrid struct {
	W, H int
	pix  []Pixel
}

// NewPixelGrid creates a fully transparent grid
func NewPixelGrid(w, h int) *PixelGrid {
	g := &PixelGrid{W: w, H: h, pix: make([]Pixel, w*h)}
	g.Fill(Pixel{Transparent: true})
	return g
}

// At returns the pixel at (x, y); out-of-bounds reads are transparent
func (g *PixelGrid) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Pixel{Transparent: true}
	}
	return g.pix[y*g.W+x]
}

// Set writes the pixel at (x, y); out-of-bounds writes are dropped
func (g *PixelGrid) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.pix[y*g.W+x] = p
}

// Fill sets every pixel to p
func (g *PixelGrid) Fill(p Pixel) {
	for i := range g.pix {
		g.pix[i] = p
	}
}

// Equal reports whether two grids hold identical pixels
func (g *PixelGrid) Equal(o *PixelGrid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}
