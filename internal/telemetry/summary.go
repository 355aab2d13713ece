package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Summary accumulates the live population of every sampled record.
type Summary struct {
	alive []float64
	last  Record
}

// Add folds r into the summary.
func (s *Summary) Add(r Record) {
	s.alive = append(s.alive, float64(r.Alive))
	s.last = r
}

// Report is the aggregate over all records added to a Summary.
type Report struct {
	Samples   int
	LastTick  uint64
	MeanAlive float64
	StdAlive  float64
	MinAlive  int
	MaxAlive  int
	Final     Record
}

// Report computes the aggregate. An empty summary reports zeros.
func (s *Summary) Report() Report {
	n := len(s.alive)
	if n == 0 {
		return Report{}
	}
	rep := Report{
		Samples:  n,
		LastTick: s.last.Tick,
		Final:    s.last,
		MinAlive: int(s.alive[0]),
		MaxAlive: int(s.alive[0]),
	}
	if n > 1 {
		rep.MeanAlive, rep.StdAlive = stat.MeanStdDev(s.alive, nil)
	} else {
		rep.MeanAlive = s.alive[0]
	}
	for _, v := range s.alive[1:] {
		if int(v) < rep.MinAlive {
			rep.MinAlive = int(v)
		}
		if int(v) > rep.MaxAlive {
			rep.MaxAlive = int(v)
		}
	}
	return rep
}

// LogValue implements slog.LogValuer for structured logging.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("samples", r.Samples),
		slog.Uint64("last_tick", r.LastTick),
		slog.Float64("alive_mean", r.MeanAlive),
		slog.Float64("alive_std", r.StdAlive),
		slog.Int("alive_min", r.MinAlive),
		slog.Int("alive_max", r.MaxAlive),
	)
}
