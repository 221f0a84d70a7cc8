package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeManager owns a fixed pool of pipes. The pool is allocated once and
// never resized; pipes that leave the screen are recycled in place.
type PipeManager struct {
	pipes  []Pipe
	rng    *rand.Rand
	obs    config.ObstacleConfig
	speed  float64
	gaps   GapRange
	ground core.Rect
}

// NewPipeManager creates a pool laid out for a fresh game.
func NewPipeManager(seed int64, cfg config.FlappyConfig) *PipeManager {
	obs := cfg.Obstacles
	pm := &PipeManager{
		pipes: make([]Pipe, obs.Count),
		rng:   rand.New(rand.NewSource(seed)),
		obs:   obs,
		speed: cfg.Physics.ScrollSpeed,
		gaps: GapRange{
			Gap:    obs.Gap,
			Min:    obs.MarginTop,
			Max:    cfg.Screen.Height - obs.MarginBottom,
			Height: cfg.Screen.Height,
		},
		ground: core.NewRect(
			0,
			cfg.Screen.Height-cfg.Ground.Height,
			cfg.Screen.Width,
			cfg.Ground.Height,
		),
	}
	for i := range pm.pipes {
		pm.pipes[i].Top.W = obs.Width
		pm.pipes[i].Bottom.W = obs.Width
	}
	pm.Reset()
	return pm
}

// Reseed restarts the gap sequence from seed.
func (pm *PipeManager) Reseed(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
}

// Reset lays the whole pool out again: slot i goes to
// baseOffset + i*stride with a fresh gap and its pass flag set.
func (pm *PipeManager) Reset() {
	stride := pm.obs.Stride()
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.RandomizeVerticalGap(pm.rng, pm.gaps)
		p.Pass = true
		p.SetX(pm.obs.BaseOffset + float64(i)*stride)
	}
}

// Update scrolls every pipe left by scrollSpeed*dt and recycles the ones
// that left the screen during this frame. A pipe that scrolled more than a
// whole span is recycled until it is back past the threshold. Returns the
// number of pipes recycled.
func (pm *PipeManager) Update(dt float64) int {
	dx := -pm.speed * dt
	span := pm.obs.Span()
	recycled := 0

	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.Scroll(dx)
		if p.IsOutOfBounds(pm.obs.RecycleMargin) && span > 0 {
			for p.IsOutOfBounds(pm.obs.RecycleMargin) {
				p.RecycleHorizontal(span)
			}
			p.RandomizeVerticalGap(pm.rng, pm.gaps)
			p.Pass = true
			recycled++
		}
	}
	return recycled
}

// CheckPlayerCollision reports whether the player touches the ground or any
// pipe. Stops at the first hit.
func (pm *PipeManager) CheckPlayerCollision(player *Player) bool {
	box := player.Rect()
	if core.Intersects(box, pm.ground) {
		return true
	}
	for i := range pm.pipes {
		if core.Intersects(box, pm.pipes[i].Top) || core.Intersects(box, pm.pipes[i].Bottom) {
			return true
		}
	}
	return false
}

// EvaluateScore adds one to score for every pipe the player has reached
// since it was last reset or recycled, and clears that pipe's pass flag.
// Returns how many pipes scored.
func (pm *PipeManager) EvaluateScore(player *Player, score *int) int {
	scored := 0
	for i := range pm.pipes {
		if pm.pipes[i].HasBeenPassed(player.Position.X) {
			*score++
			pm.pipes[i].Pass = false
			scored++
		}
	}
	return scored
}

// Pipes returns the pool. The slice is owned by the manager; callers must
// not modify it. Use Game.Snapshot for a copy.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Len returns the pool size.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}

// Ground returns the ground strip.
func (pm *PipeManager) Ground() core.Rect {
	return pm.ground
}
