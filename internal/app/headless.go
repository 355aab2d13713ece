package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"caw/internal/config"
	"caw/internal/core"
	"caw/internal/render"
	"caw/internal/telemetry"
	"caw/pkg/sims/life"
)

// Headless drives a simulation without a window: it paces cycles, samples
// statistics into the log and stats.csv, and optionally prints each frame.
type Headless struct {
	sim     *life.Life
	cfg     *config.Config
	log     *slog.Logger
	out     *telemetry.Writer
	console *render.ConsoleRenderer
	runID   string
	summary telemetry.Summary
	bucket  uint64
	sampled bool
	last    uint64
}

// NewHeadless prepares a runner. When telemetry output is enabled the
// output directory receives stats.csv and a copy of the configuration.
func NewHeadless(sim *life.Life, cfg *config.Config, logger *slog.Logger) (*Headless, error) {
	h := &Headless{
		sim:   sim,
		cfg:   cfg,
		log:   logger,
		runID: telemetry.NewRunID(),
	}
	out, err := telemetry.NewWriter(cfg.Telemetry.OutputDir)
	if err != nil {
		return nil, err
	}
	h.out = out
	if out != nil {
		if err := cfg.WriteYAML(filepath.Join(out.Dir(), "config.yaml")); err != nil {
			out.Close()
			return nil, err
		}
	}
	return h, nil
}

// RunID identifies this run in logs and stats.csv.
func (h *Headless) RunID() string { return h.runID }

// SetConsole enables frame output to w. A nil writer disables it.
func (h *Headless) SetConsole(w io.Writer) {
	if w == nil {
		h.console = nil
		return
	}
	h.console = render.NewConsoleRenderer(w)
}

// Run cycles the simulation until ctx is cancelled or the configured tick
// limit is reached. Cancellation is a normal shutdown and is not reported as
// an error.
func (h *Headless) Run(ctx context.Context) (telemetry.Report, error) {
	var pacer *core.FixedStep
	if h.cfg.Sim.TPS > 0 {
		pacer = core.NewFixedStep(h.cfg.Sim.TPS)
	}
	maxTicks := uint64(h.cfg.Sim.MaxTicks)
	if h.sim.TicksPerCycle() == 0 {
		h.log.Warn("ticks per cycle is zero, the board will not advance")
	}

	h.log.Info("starting headless simulation",
		"run_id", h.runID,
		"width", h.sim.Width(),
		"height", h.sim.Height(),
		"ticks_per_cycle", h.sim.TicksPerCycle(),
		"tps", h.cfg.Sim.TPS,
		"max_ticks", maxTicks,
	)

	for {
		if maxTicks > 0 && h.sim.Ticks() >= maxTicks {
			h.log.Info("max ticks reached", "tick", h.sim.Ticks())
			break
		}
		if ctx.Err() != nil {
			h.log.Info("simulation interrupted", "tick", h.sim.Ticks())
			break
		}
		if pacer != nil && !pacer.ShouldStep() {
			sleep(ctx, pacer.Remaining())
			continue
		}

		h.sim.Cycle()

		if h.console != nil {
			if err := h.console.Render(h.sim); err != nil {
				return h.summary.Report(), fmt.Errorf("rendering frame: %w", err)
			}
		}
		if err := h.maybeSample(); err != nil {
			return h.summary.Report(), err
		}
	}

	if err := h.sample(); err != nil {
		return h.summary.Report(), err
	}
	rep := h.summary.Report()
	h.log.Info("simulation finished", "run_id", h.runID, "summary", rep)
	return rep, nil
}

// Close releases the telemetry output.
func (h *Headless) Close() error {
	return h.out.Close()
}

func (h *Headless) maybeSample() error {
	every := uint64(h.cfg.Telemetry.LogEvery)
	if every == 0 {
		return nil
	}
	bucket := h.sim.Ticks() / every
	if bucket == h.bucket {
		return nil
	}
	h.bucket = bucket
	return h.sample()
}

// sample records the current stats unless this tick was already recorded.
func (h *Headless) sample() error {
	tick := h.sim.Ticks()
	if h.sampled && h.last == tick {
		return nil
	}
	h.sampled, h.last = true, tick
	rec := telemetry.NewRecord(h.runID, tick, h.sim.Stats())
	h.summary.Add(rec)
	h.log.Info("stats", "record", rec)
	return h.out.Write(rec)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
