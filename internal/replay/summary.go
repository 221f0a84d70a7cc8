package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Summary describes what happened during a recording.
type Summary struct {
	Frames      int // Frames replayed, including paused ones
	Ticks       uint64
	Resets      int
	PipesScored int
	Best        int
}

func (s *Summary) add(res core.StepResult) {
	s.Frames++
	s.Ticks = res.State.Ticks
	s.Resets = res.State.Resets
	s.PipesScored += res.Scored
	s.Best = res.State.Best
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("frames=%d ticks=%d resets=%d pipes=%d best=%d",
		s.Frames, s.Ticks, s.Resets, s.PipesScored, s.Best)
}

// Simulate replays a whole recording without rendering.
func Simulate(rec *Recording) (Summary, error) {
	if len(rec.Frames) == 0 {
		return Summary{}, ErrNoFrames
	}
	p, err := NewPlayer(rec)
	if err != nil {
		return Summary{}, err
	}
	for !p.Done() {
		p.Next()
	}
	return p.Summary(), nil
}
