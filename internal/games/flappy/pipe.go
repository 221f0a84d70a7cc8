package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one obstacle: a top and a bottom rectangle with a gap between them.
// Pass stays true until the player reaches the pipe, then it is cleared so
// the pipe scores only once.
type Pipe struct {
	Top    core.Rect
	Bottom core.Rect
	Pass   bool
}

// GapRange bounds the vertical placement of a pipe's gap.
// The gap centre is drawn from [Min, Max).
type GapRange struct {
	Gap    float64 // Opening between the two rectangles
	Min    float64
	Max    float64
	Height float64 // Playfield height; the bottom rectangle ends here
}

// X returns the pipe's leading x-coordinate.
func (p Pipe) X() float64 {
	return p.Top.X
}

// Width returns the pipe width.
func (p Pipe) Width() float64 {
	return p.Top.W
}

// SetX moves both rectangles to x.
func (p *Pipe) SetX(x float64) {
	p.Top.X = x
	p.Bottom.X = x
}

// Scroll moves both rectangles horizontally by dx.
func (p *Pipe) Scroll(dx float64) {
	p.Top.X += dx
	p.Bottom.X += dx
}

// IsOutOfBounds reports whether the pipe has scrolled fully past the left
// edge, at least margin beyond its own width.
func (p Pipe) IsOutOfBounds(margin float64) bool {
	return p.Top.X <= -p.Top.W-margin
}

// RecycleHorizontal moves the pipe right by the pool span. Every pipe keeps
// exactly one stride to its neighbours no matter which one recycles first.
func (p *Pipe) RecycleHorizontal(span float64) {
	p.Scroll(span)
}

// RandomizeVerticalGap picks a new gap centre uniformly from the range and
// rebuilds both rectangles around it. The top rectangle ends at
// centre-gap/2 and the bottom one starts at centre+gap/2.
func (p *Pipe) RandomizeVerticalGap(rng *rand.Rand, r GapRange) {
	pivot := r.Min + rng.Float64()*(r.Max-r.Min)
	half := r.Gap / 2

	topEdge := pivot - half
	bottomEdge := pivot + half

	p.Top.Y = 0
	p.Top.H = topEdge
	p.Bottom.Y = bottomEdge
	p.Bottom.H = r.Height - bottomEdge
}

// HasBeenPassed reports whether the player has reached this pipe and the
// pipe has not scored yet. Callers clear Pass after scoring.
func (p Pipe) HasBeenPassed(playerX float64) bool {
	return playerX >= p.Top.X && p.Pass
}
