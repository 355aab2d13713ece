//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the brush footprint under the mouse cursor.
type Overlay struct {
	scale int
	color color.RGBA
}

// NewOverlay constructs an overlay for a window drawn at scale pixels per cell.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale, color: color.RGBA{G: 255, A: 64}}
}

// Draw renders a disc matching the painted area of a brush of the given size.
func (o *Overlay) Draw(screen *ebiten.Image, brush int) {
	cx, cy := ebiten.CursorPosition()
	r := float32(brush) / 2 * float32(o.scale)
	if r < 1 {
		r = 1
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, o.color, true)
}
