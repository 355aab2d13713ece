//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"caw/internal/config"
	"caw/internal/render"
	"caw/internal/ui"
	"caw/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim      *life.Life
	renderer *render.ImageRenderer
	canvas   *ebiten.Image
	hud      *ui.HUD
	overlay  *ui.Overlay
	brush    Brush
	log      *slog.Logger

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, cfg *config.Config, logger *slog.Logger) *Game {
	scale := cfg.Window.Scale
	w, h := sim.Width()*scale, sim.Height()*scale
	r := render.NewImageRenderer(w, h)
	r.Alive = rgba(cfg.Render.Alive)
	r.Dead = rgba(cfg.Render.Dead)
	return &Game{
		sim:      sim,
		renderer: r,
		canvas:   ebiten.NewImage(w, h),
		hud:      ui.NewHUD(sim),
		overlay:  ui.NewOverlay(scale),
		brush:    NewBrush(cfg.Window.BrushSize, cfg.Window.BrushMax),
		log:      logger,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation by one cycle.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		running := g.sim.ToggleRunning()
		g.log.Debug("toggled running", "running", running, "tick", g.sim.Ticks())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.sim.Running() {
		g.sim.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.SetTicksPerCycle(g.sim.TicksPerCycle() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.SetTicksPerCycle(g.sim.TicksPerCycle() - 1)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.brush.Scroll(dy)
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		cx, cy := ebiten.CursorPosition()
		x, y := g.renderer.ScreenToGrid(g.sim, cx, cy)
		g.sim.SetRegion(x, y, g.brush.Size, left)
	}

	g.sim.Cycle()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.sim)
	g.canvas.WritePixels(g.renderer.Image().Pix)
	screen.DrawImage(g.canvas, &ebiten.DrawImageOptions{})
	g.overlay.Draw(screen, g.brush.Size)
	g.hud.Draw(screen, g.brush.Size)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Size()
}

func rgba(c config.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
