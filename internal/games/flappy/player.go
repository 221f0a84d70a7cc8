package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the bird. Position is the centre of its body.
type Player struct {
	Position core.Vector2
	Velocity core.Vector2

	spawn       core.Vector2
	width       float64
	height      float64
	gravity     float64
	jumpImpulse float64
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(pc config.PlayerConfig, phys config.PhysicsConfig) *Player {
	p := &Player{
		spawn:       core.NewVector2(pc.SpawnX, pc.SpawnY),
		width:       pc.Width,
		height:      pc.Height,
		gravity:     phys.Gravity,
		jumpImpulse: phys.JumpImpulse,
	}
	p.Reset()
	return p
}

// Update advances the player by one frame.
//
// A jump sets velocity.y to the jump impulse; otherwise gravity is added
// scaled by dt. Position then moves by the whole velocity, unscaled: velocity
// is a per-frame displacement, and the constants are tuned for that.
func (p *Player) Update(jump bool, dt float64) {
	if jump {
		p.Velocity.Y = p.jumpImpulse
	} else {
		p.Velocity.Y += p.gravity * dt
	}
	p.Position.Y += p.Velocity.Y
}

// Reset moves the player back to the spawn point and stops it.
func (p *Player) Reset() {
	p.Position = p.spawn
	p.Velocity = core.Zero()
}

// Spawn returns the spawn point.
func (p *Player) Spawn() core.Vector2 {
	return p.spawn
}

// Rect returns the player's collision box, centred on Position.
func (p *Player) Rect() core.Rect {
	half := core.NewVector2(p.width/2, p.height/2)
	return core.RectAt(p.Position.Sub(half), p.width, p.height)
}
