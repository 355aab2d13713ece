package core

import "fmt"

// Torus maps between row-major slice indices and grid coordinates on a
// surface whose edges wrap around to the opposite side.
type Torus struct {
	W, H int
}

// Len returns the number of cells on the surface.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for (x, y). Coordinates must already
// be in bounds; use Wrap first for arbitrary offsets.
func (t Torus) Index(x, y int) int {
	if x < 0 || x >= t.W || y < 0 || y >= t.H {
		panic(fmt.Sprintf("core: position (%d,%d) outside %dx%d grid", x, y, t.W, t.H))
	}
	return x + y*t.W
}

// Position is the inverse of Index.
func (t Torus) Position(idx int) (int, int) {
	if idx < 0 || idx >= t.Len() {
		panic(fmt.Sprintf("core: index %d outside %dx%d grid", idx, t.W, t.H))
	}
	return idx % t.W, idx / t.W
}

// Wrap applies toroidal wrapping to the provided coordinates. The modulus is
// floored so negative offsets land on the far edge.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}
