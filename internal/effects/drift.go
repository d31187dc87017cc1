package effects

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

var driftColors = []lipgloss.Color{"#A5B4FC", "#F9A8D4", "#93C5FD", "#FDE047", "#F87171"}

// Drift lifts a row of symbols up the screen, one after another.
type Drift struct {
	symbols []string
	offsets []float64
}

// NewDrift spreads symbols across the width with a little jitter.
func NewDrift(rnd *rand.Rand, symbols []string) *Drift {
	offsets := make([]float64, len(symbols))
	for i := range symbols {
		base := 0.1 + float64(i)*(0.8/float64(len(symbols)))
		offsets[i] = base + (rnd.Float64()*0.05 - 0.025)
	}
	return &Drift{symbols: append([]string(nil), symbols...), offsets: offsets}
}

// Render draws each symbol rising from the bottom row, staggered by its index.
func (d *Drift) Render(width, height, frame int) string {
	c := newCanvas(width, height)
	for i, sym := range d.symbols {
		rise := frame - i
		if rise < 0 {
			continue
		}
		y := height - 1 - rise
		style := lipgloss.NewStyle().Foreground(driftColors[i%len(driftColors)])
		c.place(int(d.offsets[i]*float64(width)), y, sym, style)
	}
	return c.String()
}
