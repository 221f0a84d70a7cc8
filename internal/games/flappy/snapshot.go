package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is an immutable copy of everything a renderer needs.
// It shares no memory with the game, so it can be drawn while the next
// tick is simulated.
type Snapshot struct {
	Tick     uint64
	Score    int
	Best     int
	Resets   int
	Paused   bool
	Player   core.Vector2
	Velocity core.Vector2
	Body     core.Rect
	Pipes    []Pipe
	Ground   core.Rect
	Width    float64 // Playfield width in world units
	Height   float64 // Playfield height in world units
}

// Snapshot returns a copy of the current state for rendering and
// determinism checks.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, g.pipes.Len())
	copy(pipes, g.pipes.Pipes())

	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		Best:     g.best,
		Resets:   g.resets,
		Paused:   g.paused,
		Player:   g.player.Position,
		Velocity: g.player.Velocity,
		Body:     g.player.Rect(),
		Pipes:    pipes,
		Ground:   g.pipes.Ground(),
		Width:    g.cfg.Screen.Width,
		Height:   g.cfg.Screen.Height,
	}
}
