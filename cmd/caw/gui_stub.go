//go:build !ebiten

package main

import (
	"errors"
	"log/slog"

	"caw/internal/config"
	"caw/pkg/sims/life"
)

func runGUI(*life.Life, *config.Config, *slog.Logger) error {
	return errors.New("the GUI build of caw requires the ebiten build tag; " +
		"re-run with `go run -tags ebiten ./cmd/caw` or pass -headless")
}
