//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
	hudWidth      = 150
)

// HUD draws a translucent status panel in the top-left corner.
type HUD struct {
	src     StatusSource
	panel   *ebiten.Image
	visible bool
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src StatusSource) *HUD {
	return &HUD{src: src, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, brush int) {
	if h == nil || !h.visible {
		return
	}
	lines := StatusLines(h.src, brush)
	height := hudPadding*2 + len(lines)*hudLineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
