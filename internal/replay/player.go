package replay

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Player feeds a recording back into a fresh game, one frame at a time.
type Player struct {
	rec   *Recording
	game  *flappy.Game
	pos   int
	stats Summary
}

// NewPlayer prepares playback of rec. The recording's config is verified
// and validated first.
func NewPlayer(rec *Recording) (*Player, error) {
	cfg, err := rec.Config()
	if err != nil {
		return nil, err
	}
	g := flappy.New(cfg)
	g.Reset(core.RuntimeConfig{Seed: rec.Seed, TickRate: cfg.Screen.TargetFPS})
	return &Player{rec: rec, game: g}, nil
}

// Game returns the game being driven.
func (p *Player) Game() *flappy.Game {
	return p.game
}

// Next replays one frame. It returns false once the recording is exhausted.
func (p *Player) Next() (core.StepResult, bool) {
	if p.pos >= len(p.rec.Frames) {
		return core.StepResult{State: p.game.State()}, false
	}
	f := p.rec.Frames[p.pos]
	p.pos++

	res := p.game.Step(f.Input(), f.DT)
	p.stats.add(res)
	return res, true
}

// Done reports whether every frame has been replayed.
func (p *Player) Done() bool {
	return p.pos >= len(p.rec.Frames)
}

// Progress returns the number of frames replayed and the total.
func (p *Player) Progress() (int, int) {
	return p.pos, len(p.rec.Frames)
}

// Summary returns statistics for the frames replayed so far.
func (p *Player) Summary() Summary {
	return p.stats
}
