// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through the gaps of a stream of
// recycled pipes. Touching a pipe or the ground restarts the run.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID identifies the game in file names, logs and recordings.
const GameID = "flappy"

// Game owns the whole simulation state: player, pipe pool and score.
// It is driven one frame at a time by a frontend.
type Game struct {
	cfg    config.FlappyConfig
	player *Player
	pipes  *PipeManager
	score  int
	best   int
	resets int
	ticks  uint64
	paused bool
}

var _ core.Game = (*Game)(nil)

// New creates a game from a validated configuration.
// Call Reset before the first Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:    cfg,
		player: NewPlayer(cfg.Player, cfg.Physics),
		pipes:  NewPipeManager(0, cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Screen.Title != "" {
		return g.cfg.Screen.Title
	}
	return "Flappy Bird"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a new session: the RNG is reseeded and all counters,
// including the session best, are cleared.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.pipes.Reseed(rc.Seed)
	g.restart()
	g.best = 0
	g.resets = 0
	g.ticks = 0
	g.paused = false
}

// restart puts player, pipes and score back to their initial state in one
// step. Used for collisions; the RNG keeps its sequence so the next run
// gets different gaps.
func (g *Game) restart() {
	g.player.Reset()
	g.pipes.Reset()
	g.score = 0
}

// Step advances the game by one frame of dt seconds.
//
// Order matters: the player moves, then the pipes scroll and recycle, then
// passed pipes score, and finally a collision resets everything.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if dt < 0 {
		dt = 0
	}

	g.ticks++

	g.player.Update(in.Has(core.ActionJump), dt)
	g.pipes.Update(dt)
	scored := g.pipes.EvaluateScore(g.player, &g.score)
	if g.score > g.best {
		g.best = g.score
	}

	crashed := g.pipes.CheckPlayerCollision(g.player)
	if crashed {
		g.restart()
		g.resets++
	}

	return core.StepResult{
		State:  g.State(),
		Scored: scored,
		Reset:  crashed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Best:   g.best,
		Resets: g.resets,
		Ticks:  g.ticks,
		Paused: g.paused,
	}
}
