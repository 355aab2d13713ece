package app

// Brush is the painting tool driven by the mouse. Size is the diameter in
// cells handed to life.SetRegion.
type Brush struct {
	Size int
	Max  int
}

// NewBrush returns a brush of the given size, clamped into [1, max].
func NewBrush(size, max int) Brush {
	if max < 1 {
		max = 1
	}
	b := Brush{Max: max}
	b.Set(size)
	return b
}

// Set changes the size, clamped into [1, Max].
func (b *Brush) Set(size int) {
	switch {
	case size < 1:
		size = 1
	case size > b.Max:
		size = b.Max
	}
	b.Size = size
}

// Scroll grows or shrinks the brush by a wheel delta.
func (b *Brush) Scroll(dy float64) {
	b.Set(b.Size + int(dy))
}
