package ui

import (
	"fmt"

	"caw/internal/core"
	"caw/pkg/sims/life"
)

// StatusSource is what the HUD reads from a running simulation.
type StatusSource interface {
	core.GridView
	Stats() life.Stats
	Running() bool
	TicksPerCycle() int
}

// StatusLines formats the HUD text for the current frame.
func StatusLines(src StatusSource, brush int) []string {
	state := "running"
	if !src.Running() {
		state = "paused"
	}
	s := src.Stats()
	return []string{
		fmt.Sprintf("tick %d (%s)", src.Ticks(), state),
		fmt.Sprintf("moving  %d", s.Moving),
		fmt.Sprintf("stopped %d", s.Stopped),
		fmt.Sprintf("ticks/cycle %d", src.TicksPerCycle()),
		fmt.Sprintf("brush %d", brush),
	}
}
