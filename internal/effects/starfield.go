package effects

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

var (
	starGlyphs = []string{"·", "✦", "✧", "⋆", "*"}
	starColors = []lipgloss.Color{"#7DD3FC", "#D8B4FE", "#F9A8D4", "#94A3B8"}

	burstGlyphs = []string{"💖", "✨", "💜", "🌟", "💕"}
	burstColors = []lipgloss.Color{"#F472B6", "#FDE047", "#C084FC", "#7DD3FC", "#EC4899"}
)

// Star is a single point in the starfield. X and Y are fractions of the area.
type Star struct {
	X     float64
	Y     float64
	Glyph string
	Color lipgloss.Color
	Phase int
}

// Starfield is a twinkling band of stars.
type Starfield struct {
	Stars []Star
}

// NewStarfield scatters count stars.
func NewStarfield(rnd *rand.Rand, count int) *Starfield {
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, Star{
			X:     rnd.Float64(),
			Y:     rnd.Float64(),
			Glyph: pick(rnd, starGlyphs),
			Color: pick(rnd, starColors),
			Phase: rnd.Intn(20),
		})
	}
	return &Starfield{Stars: stars}
}

// NewBurst scatters heart and sparkle particles for the hug animation.
func NewBurst(rnd *rand.Rand, count int) *Starfield {
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, Star{
			X:     rnd.Float64()*0.8 + 0.1,
			Y:     rnd.Float64()*0.6 + 0.2,
			Glyph: burstGlyphs[i%len(burstGlyphs)],
			Color: burstColors[i%len(burstColors)],
			Phase: rnd.Intn(20),
		})
	}
	return &Starfield{Stars: stars}
}

// Visible reports whether a star shows on the given frame. Each star is dark
// for three frames out of every twenty, offset by its phase.
func (s Star) Visible(frame int) bool {
	return (frame+s.Phase)%20 >= 3
}

// Render draws the stars into a width x height area.
func (f *Starfield) Render(width, height, frame int) string {
	c := newCanvas(width, height)
	for _, star := range f.Stars {
		if !star.Visible(frame) {
			continue
		}
		x := int(star.X * float64(width))
		y := int(star.Y * float64(height))
		c.place(x, y, star.Glyph, lipgloss.NewStyle().Foreground(star.Color))
	}
	return c.String()
}
