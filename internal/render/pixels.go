// Package render turns a simulation grid into pixels or terminal text. It
// only reads the grid through core.GridView.
package render

import (
	"image"
	"image/color"

	"caw/internal/core"
)

// Default cell colors.
var (
	DefaultAlive = color.RGBA{R: 244, G: 84, B: 255, A: 255}
	DefaultDead  = color.RGBA{A: 255}
)

// Darken subtracts amount from every color channel, saturating at zero.
func Darken(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

// ImageRenderer paints each cell as a solid block in an RGBA image, fading
// live cells towards black as they age.
type ImageRenderer struct {
	img   *image.RGBA
	Alive color.RGBA
	Dead  color.RGBA
}

// NewImageRenderer allocates an output image of w*h pixels.
func NewImageRenderer(w, h int) *ImageRenderer {
	r := &ImageRenderer{Alive: DefaultAlive, Dead: DefaultDead}
	r.SetSize(w, h)
	return r
}

// SetSize reallocates the output image.
func (r *ImageRenderer) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Size returns the output dimensions in pixels.
func (r *ImageRenderer) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the output buffer. It is overwritten by every Render.
func (r *ImageRenderer) Image() *image.RGBA { return r.img }

// Scale returns the block size of one cell in pixels.
func (r *ImageRenderer) Scale(g core.GridView) (int, int) {
	w, h := r.Size()
	return w / g.Width(), h / g.Height()
}

// ScreenToGrid maps a pixel position onto the cell under it, clamped into
// the grid.
func (r *ImageRenderer) ScreenToGrid(g core.GridView, px, py int) (int, int) {
	sx, sy := r.Scale(g)
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	return clamp(px/sx, 0, g.Width()-1), clamp(py/sy, 0, g.Height()-1)
}

// Render repaints the whole grid. Pixels right of or below the last full
// cell block are left untouched.
func (r *ImageRenderer) Render(g core.GridView) {
	cw, ch := r.Scale(g)
	if cw == 0 || ch == 0 {
		return
	}
	w := g.Width()
	alive, ages := g.Alive(), g.Ages()
	for i, a := range alive {
		c := r.Dead
		if a {
			c = Darken(r.Alive, ages[i])
		}
		x, y := i%w, i/w
		r.fillRect(x*cw, y*ch, cw, ch, c)
	}
}

func (r *ImageRenderer) fillRect(x, y, w, h int, c color.RGBA) {
	pix, stride := r.img.Pix, r.img.Stride
	for oy := 0; oy < h; oy++ {
		base := (y+oy)*stride + x*4
		for ox := 0; ox < w; ox++ {
			p := base + ox*4
			pix[p+0] = c.R
			pix[p+1] = c.G
			pix[p+2] = c.B
			pix[p+3] = 255
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
