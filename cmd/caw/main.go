package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"caw/internal/app"
	"caw/internal/config"
	"caw/internal/logging"
	"caw/pkg/sims/life"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("caw failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// The config file is loaded before the remaining flags are bound so its
	// values become their defaults.
	pre := flag.NewFlagSet("caw", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	configPath := pre.String("config", "", "")
	_ = pre.Parse(configArgs(args))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("caw", flag.ExitOnError)
	fs.String("config", *configPath, "path to a YAML config file (empty = use defaults)")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	seed := cfg.Grid.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := life.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	sim.SetTicksPerCycle(cfg.Sim.TicksPerCycle)
	sim.Reset(seed)
	logger.Info("board ready", "width", sim.Width(), "height", sim.Height(), "seed", seed)

	if cfg.Headless {
		return runHeadless(sim, cfg, logger)
	}
	return runGUI(sim, cfg, logger)
}

func runHeadless(sim *life.Life, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := app.NewHeadless(sim, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Console {
		h.SetConsole(os.Stdout)
	}
	_, runErr := h.Run(ctx)
	if err := h.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing telemetry: %w", err)
	}
	return runErr
}

// configArgs keeps only the -config flag and its value so the first parsing
// pass does not trip over flags it does not know.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-config" || a == "--config":
			out = append(out, args[i:min(i+2, len(args))]...)
			i++
		case strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config="):
			out = append(out, a)
		}
	}
	return out
}
