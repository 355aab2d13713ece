// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid,
// tracking how long each cell has stayed alive so renderers can fade stable
// structures.
package life

import (
	"errors"
	"fmt"
	"time"

	"caw/pkg/core"
)

// MaxAge is the saturation point of the per-cell age counter.
const MaxAge uint8 = 200

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("life: invalid dimensions")

// offsets lists the eight compass neighbours: W, SW, S, SE, E, NE, N, NW.
var offsets = [8][2]int{
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
}

// Life owns the grid, the age buffer and the run state of one simulation.
// It has no internal locking; hosts that share it between goroutines must
// serialize access.
type Life struct {
	grid core.Torus

	alive   []bool
	nxt     []bool
	age     []uint8
	nxtAge  []uint8
	rng     *core.RNG
	ticks   uint64
	perCyc  int
	running bool
	stats   Stats
}

// New returns a Life simulation with the provided dimensions. All cells
// start dead and the simulation starts running with one tick per cycle.
func New(w, h int) (*Life, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	total := w * h
	return &Life{
		grid:    core.Torus{W: w, H: h},
		alive:   make([]bool, total),
		nxt:     make([]bool, total),
		age:     make([]uint8, total),
		nxtAge:  make([]uint8, total),
		rng:     core.NewRNG(time.Now().UnixNano()),
		perCyc:  1,
		running: true,
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Width returns the number of columns.
func (l *Life) Width() int { return l.grid.W }

// Height returns the number of rows.
func (l *Life) Height() int { return l.grid.H }

// Alive exposes the current cell states. The slice is owned by the
// simulation and is only valid until the next mutating call.
func (l *Life) Alive() []bool { return l.alive }

// Ages exposes the per-cell age counters with the same ownership rules as Alive.
func (l *Life) Ages() []uint8 { return l.age }

// Ticks returns the number of generations computed since construction.
func (l *Life) Ticks() uint64 { return l.ticks }

// Running reports whether Cycle advances the grid.
func (l *Life) Running() bool { return l.running }

// SetRunning pauses or resumes the simulation.
func (l *Life) SetRunning(running bool) { l.running = running }

// ToggleRunning flips the running flag and returns the new value.
func (l *Life) ToggleRunning() bool {
	l.running = !l.running
	return l.running
}

// TicksPerCycle returns how many ticks one Cycle performs.
func (l *Life) TicksPerCycle() int { return l.perCyc }

// SetTicksPerCycle changes how many ticks subsequent cycles perform.
// Negative values are treated as zero, which turns Cycle into a no-op.
func (l *Life) SetTicksPerCycle(n int) {
	if n < 0 {
		n = 0
	}
	l.perCyc = n
}

// Stats returns the snapshot computed at the end of the last cycle.
func (l *Life) Stats() Stats { return l.stats }

// Index converts grid coordinates to a slice index. It panics when (x, y)
// lies outside the grid.
func (l *Life) Index(x, y int) int { return l.grid.Index(x, y) }

// Position converts a slice index back to grid coordinates. It panics when
// idx lies outside the grid.
func (l *Life) Position(idx int) (int, int) { return l.grid.Position(idx) }

// SetCell overrides a single cell and resets its age, even when the state
// does not change.
func (l *Life) SetCell(x, y int, alive bool) {
	idx := l.grid.Index(x, y)
	l.alive[idx] = alive
	l.age[idx] = 0
}

// SetRegion paints a disc of cells around (x, y). The window spans
// [-r, r) on both axes with r = radius/2, so even radii leave the disc one
// cell shorter on the positive side. Radii below 2 paint only the centre.
func (l *Life) SetRegion(x, y, radius int, alive bool) {
	if radius < 1 {
		radius = 1
	}
	r := radius / 2
	if r == 0 {
		l.SetCell(x, y, alive)
		return
	}
	for ry := -r; ry < r; ry++ {
		for rx := -r; rx < r; rx++ {
			if rx*rx+ry*ry > r*r {
				continue
			}
			wx, wy := l.grid.Wrap(x+rx, y+ry)
			l.SetCell(wx, wy, alive)
		}
	}
}

// Reset reseeds the random source and randomizes the board, giving a
// reproducible starting state for a given seed.
func (l *Life) Reset(seed int64) {
	l.rng.Seed(seed)
	l.Randomize()
}

// Randomize gives every cell an independent even chance of being alive and
// clears all ages.
func (l *Life) Randomize() {
	l.rng.FillBool(l.alive)
	clear(l.age)
}

// Clear kills every cell. The tick counter and run settings are untouched.
func (l *Life) Clear() {
	clear(l.alive)
	clear(l.age)
}

// AliveNeighbors counts the live cells around idx, wrapping at the edges.
func (l *Life) AliveNeighbors(idx int) int {
	x, y := l.grid.Position(idx)
	count := 0
	for _, off := range offsets {
		nx, ny := l.grid.Wrap(x+off[0], y+off[1])
		if l.alive[nx+ny*l.grid.W] {
			count++
		}
	}
	return count
}

// Tick advances the simulation by one generation. Next states are computed
// from the current buffer into a scratch buffer and swapped in afterwards.
func (l *Life) Tick() {
	for idx, was := range l.alive {
		n := l.AliveNeighbors(idx)
		now := n == 3 || (was && n == 2)
		l.nxt[idx] = now
		switch {
		case !now:
			l.nxtAge[idx] = 0
		case was && l.age[idx] < MaxAge:
			l.nxtAge[idx] = l.age[idx] + 1
		case was:
			l.nxtAge[idx] = MaxAge
		default:
			l.nxtAge[idx] = 0
		}
	}
	l.alive, l.nxt = l.nxt, l.alive
	l.age, l.nxtAge = l.nxtAge, l.age
	l.ticks++
}

// Cycle runs TicksPerCycle ticks and refreshes the statistics once. It does
// nothing while the simulation is paused or set to zero ticks per cycle.
func (l *Life) Cycle() {
	if !l.running || l.perCyc == 0 {
		return
	}
	for i := 0; i < l.perCyc; i++ {
		l.Tick()
	}
	l.stats = l.StatsFromGrid()
}

// AliveCount returns the number of live cells.
func (l *Life) AliveCount() int {
	n := 0
	for _, a := range l.alive {
		if a {
			n++
		}
	}
	return n
}
