package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"caw/internal/core"
)

// ConsoleRenderer draws the grid with box-drawing characters, one row per
// line, with the tick counter embedded in the top border.
type ConsoleRenderer struct {
	w io.Writer
	// NoClear skips the ANSI clear-screen prefix.
	NoClear bool
}

// NewConsoleRenderer returns a renderer writing to w.
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{w: w}
}

// Render writes one full frame.
func (c *ConsoleRenderer) Render(g core.GridView) error {
	bw := bufio.NewWriter(c.w)
	if !c.NoClear {
		bw.WriteString("\x1b[2J\x1b[1;1H")
	}
	writeHeader(bw, g)
	alive := g.Alive()
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		bw.WriteString("║")
		for _, a := range alive[y*w : (y+1)*w] {
			if a {
				bw.WriteString("█")
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString("║\n")
	}
	bw.WriteString("╚")
	bw.WriteString(strings.Repeat("═", w))
	bw.WriteString("╝\n")
	return bw.Flush()
}

func writeHeader(bw *bufio.Writer, g core.GridView) {
	tick := strconv.FormatUint(g.Ticks(), 10)
	bw.WriteString("╔═(")
	bw.WriteString(tick)
	bw.WriteString(")═")
	// The label takes len(tick)+4 columns after the corner.
	fill := g.Width() - len(tick) - 4
	if fill > 0 {
		bw.WriteString(strings.Repeat("═", fill))
	}
	bw.WriteString("╗\n")
}
