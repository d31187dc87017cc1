package effects

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	s       string
	covered bool
}

// canvas is a fixed-size grid of styled cells. Wide glyphs cover the cell to
// their right.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) place(x, y int, glyph string, style lipgloss.Style) {
	if y < 0 || y >= c.height || x < 0 {
		return
	}
	w := runewidth.StringWidth(glyph)
	if w < 1 || x+w > c.width {
		return
	}
	for i := 0; i < w; i++ {
		if c.cells[y][x+i].s != "" || c.cells[y][x+i].covered {
			return
		}
	}
	c.cells[y][x] = cell{s: style.Render(glyph)}
	for i := 1; i < w; i++ {
		c.cells[y][x+i] = cell{covered: true}
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			switch {
			case cl.covered:
			case cl.s == "":
				b.WriteByte(' ')
			default:
				b.WriteString(cl.s)
			}
		}
		out[y] = b.String()
	}
	return out
}

func (c *canvas) String() string {
	return strings.Join(c.lines(), "\n")
}
