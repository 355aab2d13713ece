package core

// GridView is the read side of a simulation consumed by renderers and the
// HUD. Slices are snapshots owned by the simulation; callers must not
// modify them or hold them across a Cycle.
type GridView interface {
	Width() int
	Height() int
	Alive() []bool
	Ages() []uint8
	Ticks() uint64
}
