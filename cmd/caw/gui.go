//go:build ebiten

package main

import (
	"errors"
	"log/slog"

	"caw/internal/app"
	"caw/internal/config"
	"caw/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(sim *life.Life, cfg *config.Config, logger *slog.Logger) error {
	game := app.New(sim, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("caw - cellular automata workspace")
	tps := cfg.Sim.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
