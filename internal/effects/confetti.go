package effects

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

var (
	confettiGlyphs = []string{"▪", "▮", "◆", "●", "✶"}
	confettiColors = []lipgloss.Color{"#EC4899", "#A855F7", "#38BDF8", "#FDE047"}
)

// ConfettiPiece falls from above the area after Delay frames.
type ConfettiPiece struct {
	X     float64
	Start int
	Delay int
	Glyph string
	Color lipgloss.Color
}

// Confetti is a burst of falling pieces.
type Confetti struct {
	Pieces []ConfettiPiece
}

// NewConfetti creates count pieces starting up to ten rows above the area.
func NewConfetti(rnd *rand.Rand, count int) *Confetti {
	pieces := make([]ConfettiPiece, 0, count)
	for i := 0; i < count; i++ {
		pieces = append(pieces, ConfettiPiece{
			X:     rnd.Float64(),
			Start: -rnd.Intn(10) - 1,
			Delay: rnd.Intn(10),
			Glyph: pick(rnd, confettiGlyphs),
			Color: pick(rnd, confettiColors),
		})
	}
	return &Confetti{Pieces: pieces}
}

// Row returns the row of a piece on the given frame.
func (p ConfettiPiece) Row(frame int) int {
	if frame < p.Delay {
		return p.Start
	}
	return p.Start + frame - p.Delay
}

// Done reports whether every piece has left an area of the given height.
func (c *Confetti) Done(height, frame int) bool {
	for _, p := range c.Pieces {
		if p.Row(frame) < height {
			return false
		}
	}
	return true
}

// Render draws the pieces still inside the area.
func (c *Confetti) Render(width, height, frame int) string {
	cv := newCanvas(width, height)
	for _, p := range c.Pieces {
		cv.place(int(p.X*float64(width)), p.Row(frame), p.Glyph, lipgloss.NewStyle().Foreground(p.Color))
	}
	return cv.String()
}
