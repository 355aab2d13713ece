// Package telemetry records population statistics of a run: CSV rows for
// later analysis and an aggregate summary for the end-of-run log line.
package telemetry

import (
	"log/slog"

	"caw/pkg/sims/life"

	"github.com/google/uuid"
)

// Record is one sampled row of stats.csv.
type Record struct {
	RunID   string `csv:"run_id"`
	Tick    uint64 `csv:"tick"`
	Alive   int    `csv:"alive"`
	Moving  int    `csv:"moving"`
	Stopped int    `csv:"stopped"`
}

// NewRecord samples the stats of the last cycle.
func NewRecord(runID string, tick uint64, s life.Stats) Record {
	return Record{
		RunID:   runID,
		Tick:    tick,
		Alive:   s.Total(),
		Moving:  s.Moving,
		Stopped: s.Stopped,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", r.Tick),
		slog.Int("alive", r.Alive),
		slog.Int("moving", r.Moving),
		slog.Int("stopped", r.Stopped),
	)
}

// NewRunID returns a fresh identifier for tagging a run's output.
func NewRunID() string {
	return uuid.NewString()
}
