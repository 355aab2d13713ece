package life

import "log/slog"

// Stats splits the live population into cells that are still changing and
// cells whose age has saturated.
type Stats struct {
	Moving  int
	Stopped int
}

// Total returns the number of live cells covered by the snapshot.
func (s Stats) Total() int { return s.Moving + s.Stopped }

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("moving", s.Moving),
		slog.Int("stopped", s.Stopped),
	)
}

// StatsFromGrid classifies every live cell in a single pass. Dead cells are
// not counted.
func (l *Life) StatsFromGrid() Stats {
	var s Stats
	for i, alive := range l.alive {
		if !alive {
			continue
		}
		if l.age[i] == MaxAge {
			s.Stopped++
		} else {
			s.Moving++
		}
	}
	return s
}
