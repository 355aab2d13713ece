package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTorusIndexPositionRoundTrip(t *testing.T) {
	tor := Torus{W: 7, H: 5}
	for y := 0; y < tor.H; y++ {
		for x := 0; x < tor.W; x++ {
			gx, gy := tor.Position(tor.Index(x, y))
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
	for i := 0; i < tor.Len(); i++ {
		assert.Equal(t, i, tor.Index(tor.Position(i)))
	}
}

func TestTorusWrap(t *testing.T) {
	tor := Torus{W: 10, H: 4}
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 3, 2, 3, 2},
		{"negative x", -1, 0, 9, 0},
		{"negative y", 0, -1, 0, 3},
		{"past right edge", 10, 0, 0, 0},
		{"far negative", -21, -9, 9, 3},
		{"far positive", 25, 9, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tor.Wrap(tt.x, tt.y)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestTorusIndexPanicsOutOfRange(t *testing.T) {
	tor := Torus{W: 3, H: 3}
	assert.Panics(t, func() { tor.Index(3, 0) })
	assert.Panics(t, func() { tor.Index(-1, 0) })
	assert.Panics(t, func() { tor.Position(9) })
}

func TestRNGSeedIsReproducible(t *testing.T) {
	a := make([]bool, 64)
	b := make([]bool, 64)
	r := NewRNG(7)
	r.FillBool(a)
	r.Seed(7)
	r.FillBool(b)
	assert.Equal(t, a, b)
}
