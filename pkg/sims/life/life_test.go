package life

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLife(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	require.NoError(t, err)
	return l
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		l, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d,%d) err=%v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if l != nil {
			t.Fatalf("New(%d,%d) returned a partial simulation", dims[0], dims[1])
		}
	}
}

func TestNewDefaults(t *testing.T) {
	l := newLife(t, 4, 3)
	assert.Len(t, l.Alive(), 12)
	assert.Len(t, l.Ages(), 12)
	assert.Equal(t, 0, l.AliveCount())
	assert.Equal(t, uint64(0), l.Ticks())
	assert.Equal(t, 1, l.TicksPerCycle())
	assert.True(t, l.Running())
	assert.Equal(t, Stats{}, l.Stats())
}

func TestIndex(t *testing.T) {
	l := newLife(t, 10, 10)
	assert.Equal(t, 0, l.Index(0, 0))
	assert.Equal(t, 9, l.Index(9, 0))
	assert.Equal(t, 90, l.Index(0, 9))
	assert.Equal(t, 99, l.Index(9, 9))
}

func TestPosition(t *testing.T) {
	l := newLife(t, 10, 10)
	tests := map[int][2]int{0: {0, 0}, 9: {9, 0}, 90: {0, 9}, 99: {9, 9}}
	for idx, want := range tests {
		x, y := l.Position(idx)
		assert.Equal(t, want, [2]int{x, y}, "index %d", idx)
	}
}

func TestIndexPositionInverse(t *testing.T) {
	l := newLife(t, 6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			gx, gy := l.Position(l.Index(x, y))
			require.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	for i := 0; i < 24; i++ {
		require.Equal(t, i, l.Index(l.Position(i)))
	}
}

func TestSetCellOutOfRangePanics(t *testing.T) {
	l := newLife(t, 3, 3)
	assert.Panics(t, func() { l.SetCell(3, 0, true) })
	assert.Panics(t, func() { l.SetCell(0, -1, true) })
}

func TestAliveNeighbors(t *testing.T) {
	l := newLife(t, 3, 3)

	// $+-
	// ++-
	// --+
	l.SetCell(1, 0, true)
	l.SetCell(0, 1, true)
	l.SetCell(1, 1, true)
	l.SetCell(2, 2, true)
	assert.Equal(t, 4, l.AliveNeighbors(0))

	// -+-
	// +$-
	// --+
	l.Clear()
	l.SetCell(1, 0, true)
	l.SetCell(0, 1, true)
	l.SetCell(2, 2, true)
	assert.Equal(t, 3, l.AliveNeighbors(l.Index(1, 1)))
}

func TestAliveNeighborsWrapsCorners(t *testing.T) {
	l := newLife(t, 3, 3)
	l.SetCell(2, 2, true)
	l.SetCell(2, 0, true)
	l.SetCell(0, 2, true)
	assert.Equal(t, 3, l.AliveNeighbors(l.Index(0, 0)))
}

func TestBlinkerOscillation(t *testing.T) {
	l := newLife(t, 5, 5)
	l.SetCell(1, 2, true)
	l.SetCell(2, 2, true)
	l.SetCell(3, 2, true)

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	check := func(step int, expects map[[2]int]bool) {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := l.Alive()[l.Index(x, y)]
				if expects[[2]int{x, y}] != alive {
					t.Fatalf("step %d: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, expects[[2]int{x, y}])
				}
			}
		}
	}

	l.Tick()
	check(1, vertical)
	l.Tick()
	check(2, horizontal)
	l.Tick()
	check(3, vertical)
	assert.Equal(t, uint64(3), l.Ticks())
}

func TestTickAging(t *testing.T) {
	l := newLife(t, 6, 6)
	// 2x2 block is a still life: every cell survives each tick.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		l.SetCell(p[0], p[1], true)
	}
	l.Tick()
	assert.Equal(t, uint8(1), l.Ages()[l.Index(1, 1)])
	l.Tick()
	assert.Equal(t, uint8(2), l.Ages()[l.Index(1, 1)])

	for i := 0; i < 500; i++ {
		l.Tick()
	}
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Equal(t, MaxAge, l.Ages()[l.Index(p[0], p[1])])
	}
}

func TestTickNewbornAndDeadAgesAreZero(t *testing.T) {
	l := newLife(t, 5, 5)
	l.SetCell(1, 2, true)
	l.SetCell(2, 2, true)
	l.SetCell(3, 2, true)
	l.Tick()
	// Centre survives, the ends die, (2,1) and (2,3) are born.
	assert.Equal(t, uint8(1), l.Ages()[l.Index(2, 2)])
	assert.Equal(t, uint8(0), l.Ages()[l.Index(1, 2)])
	assert.Equal(t, uint8(0), l.Ages()[l.Index(2, 1)])
}

func TestTickKeepsAgesConsistent(t *testing.T) {
	l := newLife(t, 32, 24)
	l.Reset(42)
	for step := 0; step < 300; step++ {
		l.Tick()
		for i, a := range l.Ages() {
			if a > MaxAge {
				t.Fatalf("step %d: age %d exceeds max at %d", step, a, i)
			}
			if a > 0 && !l.Alive()[i] {
				t.Fatalf("step %d: dead cell %d carries age %d", step, i, a)
			}
		}
	}
}

func TestSetCellResetsAge(t *testing.T) {
	l := newLife(t, 6, 6)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		l.SetCell(p[0], p[1], true)
	}
	l.Tick()
	l.Tick()
	require.Equal(t, uint8(2), l.Ages()[l.Index(1, 1)])
	l.SetCell(1, 1, true)
	assert.Equal(t, uint8(0), l.Ages()[l.Index(1, 1)])
	assert.True(t, l.Alive()[l.Index(1, 1)])
}

func TestSetRegionSmallRadiusMatchesSetCell(t *testing.T) {
	for _, radius := range []int{-3, 0, 1} {
		l := newLife(t, 7, 7)
		l.SetRegion(3, 4, radius, true)
		assert.Equal(t, 1, l.AliveCount(), "radius %d", radius)
		assert.True(t, l.Alive()[l.Index(3, 4)], "radius %d", radius)
	}
}

func TestSetRegionDisc(t *testing.T) {
	l := newLife(t, 9, 9)
	l.SetRegion(4, 4, 4, true)

	// r=2, offsets in [-2,2) filtered by rx²+ry² <= 4.
	want := 0
	for ry := -2; ry < 2; ry++ {
		for rx := -2; rx < 2; rx++ {
			if rx*rx+ry*ry <= 4 {
				want++
				assert.True(t, l.Alive()[l.Index(4+rx, 4+ry)], "offset (%d,%d)", rx, ry)
			}
		}
	}
	assert.Equal(t, want, l.AliveCount())
	// Exclusive upper bound leaves the +r column and row untouched.
	assert.False(t, l.Alive()[l.Index(6, 4)])
	assert.False(t, l.Alive()[l.Index(4, 6)])
	assert.True(t, l.Alive()[l.Index(2, 4)])
}

func TestSetRegionWraps(t *testing.T) {
	l := newLife(t, 8, 8)
	l.SetRegion(0, 0, 4, true)
	assert.True(t, l.Alive()[l.Index(7, 0)])
	assert.True(t, l.Alive()[l.Index(0, 7)])
	assert.True(t, l.Alive()[l.Index(6, 0)])
}

func TestClearIsIdempotent(t *testing.T) {
	l := newLife(t, 10, 10)
	l.Reset(3)
	l.SetTicksPerCycle(4)
	l.Cycle()
	ticks := l.Ticks()

	l.Clear()
	alive := append([]bool(nil), l.Alive()...)
	ages := append([]uint8(nil), l.Ages()...)
	l.Clear()

	assert.Equal(t, alive, l.Alive())
	assert.Equal(t, ages, l.Ages())
	assert.Equal(t, 0, l.AliveCount())
	assert.Equal(t, ticks, l.Ticks())
	assert.Equal(t, 4, l.TicksPerCycle())
	assert.True(t, l.Running())
}

func TestRandomizeResetsAges(t *testing.T) {
	l := newLife(t, 20, 20)
	l.Reset(1)
	for i := 0; i < 10; i++ {
		l.Tick()
	}
	l.Randomize()
	for i, a := range l.Ages() {
		require.Zero(t, a, "cell %d", i)
	}
	n := l.AliveCount()
	assert.Greater(t, n, 100)
	assert.Less(t, n, 300)
}

func TestResetIsDeterministic(t *testing.T) {
	a := newLife(t, 16, 16)
	b := newLife(t, 16, 16)
	a.Reset(99)
	b.Reset(99)
	assert.Equal(t, a.Alive(), b.Alive())
}

func TestCyclePausedIsNoop(t *testing.T) {
	l := newLife(t, 12, 12)
	l.Reset(5)
	l.Cycle()
	stats := l.Stats()
	alive := append([]bool(nil), l.Alive()...)
	ages := append([]uint8(nil), l.Ages()...)

	l.SetRunning(false)
	l.Cycle()

	assert.Equal(t, alive, l.Alive())
	assert.Equal(t, ages, l.Ages())
	assert.Equal(t, uint64(1), l.Ticks())
	assert.Equal(t, stats, l.Stats())
	assert.True(t, l.ToggleRunning())
}

func TestCycleRunsTicksPerCycle(t *testing.T) {
	l := newLife(t, 12, 12)
	l.Reset(5)
	l.SetTicksPerCycle(3)
	l.Cycle()
	assert.Equal(t, uint64(3), l.Ticks())

	l.SetTicksPerCycle(0)
	l.Cycle()
	assert.Equal(t, uint64(3), l.Ticks())

	l.SetTicksPerCycle(-2)
	assert.Equal(t, 0, l.TicksPerCycle())
}

func TestStatsOnlyRefreshPerCycle(t *testing.T) {
	l := newLife(t, 12, 12)
	l.Reset(8)
	l.Tick()
	assert.Equal(t, Stats{}, l.Stats())
	l.Cycle()
	assert.Equal(t, l.AliveCount(), l.Stats().Total())
}

func TestStatsClassification(t *testing.T) {
	l := newLife(t, 10, 10)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		l.SetCell(p[0], p[1], true)
	}
	l.SetCell(6, 6, true)
	l.SetCell(7, 6, true)
	l.SetCell(8, 6, true)
	l.SetTicksPerCycle(int(MaxAge) + 2)
	l.Cycle()

	// The block and the blinker's pivot never die; the blinker's ends flip
	// every tick.
	s := l.Stats()
	assert.Equal(t, 5, s.Stopped)
	assert.Equal(t, 2, s.Moving)
	assert.Equal(t, l.AliveCount(), s.Total())
}

func TestStatsTotalMatchesAliveAfterCycles(t *testing.T) {
	l := newLife(t, 24, 24)
	l.Reset(11)
	l.SetTicksPerCycle(7)
	for i := 0; i < 50; i++ {
		l.Cycle()
		require.Equal(t, l.AliveCount(), l.Stats().Total(), "cycle %d", i)
	}
}
