package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frameDT = 1.0 / 60.0

func newTestPlayer() *Player {
	cfg := config.DefaultFlappyConfig()
	return NewPlayer(cfg.Player, cfg.Physics)
}

func TestPlayerStartsAtSpawn(t *testing.T) {
	p := newTestPlayer()
	if p.Position != core.NewVector2(320, 400) {
		t.Errorf("Position = %+v, expected spawn (320, 400)", p.Position)
	}
	if p.Velocity != core.Zero() {
		t.Errorf("Velocity = %+v, expected zero", p.Velocity)
	}
}

func TestPlayerJumpImpulse(t *testing.T) {
	priors := []float64{-20, -7, 0, 3.5, 42}
	for _, v := range priors {
		p := newTestPlayer()
		p.Velocity.Y = v
		p.Update(true, frameDT)
		if p.Velocity.Y != -7.0 {
			t.Errorf("prior velocity %v: Velocity.Y after jump = %v, expected exactly -7", v, p.Velocity.Y)
		}
	}
}

func TestPlayerGravityMonotonic(t *testing.T) {
	p := newTestPlayer()
	dts := []float64{frameDT, 0.001, 0.05, frameDT, 0.1, 0.0166, 0.02}

	prevVel := p.Velocity.Y
	prevY := p.Position.Y
	for i := 0; i < 50; i++ {
		p.Update(false, dts[i%len(dts)])
		if p.Velocity.Y < prevVel {
			t.Fatalf("frame %d: velocity decreased from %v to %v", i, prevVel, p.Velocity.Y)
		}
		if p.Position.Y <= prevY {
			t.Fatalf("frame %d: player should keep falling, y went from %v to %v", i, prevY, p.Position.Y)
		}
		prevVel = p.Velocity.Y
		prevY = p.Position.Y
	}
}

func TestPlayerPositionStepIsUnscaled(t *testing.T) {
	p := newTestPlayer()

	// Velocity gains gravity*dt, position gains the whole velocity.
	p.Update(false, 0.5)
	wantVel := 19.62 * 0.5
	if math.Abs(p.Velocity.Y-wantVel) > 1e-12 {
		t.Errorf("Velocity.Y = %v, expected %v", p.Velocity.Y, wantVel)
	}
	if math.Abs(p.Position.Y-(400+wantVel)) > 1e-12 {
		t.Errorf("Position.Y = %v, expected %v", p.Position.Y, 400+wantVel)
	}

	// A jump moves the player up by the full impulse in the same frame.
	before := p.Position.Y
	p.Update(true, 0.5)
	if p.Position.Y != before-7 {
		t.Errorf("Position.Y after jump = %v, expected %v", p.Position.Y, before-7)
	}
}

func TestPlayerHorizontalPositionFixed(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 20; i++ {
		p.Update(i%5 == 0, frameDT)
	}
	if p.Position.X != 320 {
		t.Errorf("Position.X = %v, expected 320", p.Position.X)
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 10; i++ {
		p.Update(i == 3, frameDT)
	}
	p.Reset()

	if p.Position != p.Spawn() {
		t.Errorf("Position = %+v, expected spawn %+v", p.Position, p.Spawn())
	}
	if p.Velocity != core.Zero() {
		t.Errorf("Velocity = %+v, expected zero", p.Velocity)
	}
}

func TestPlayerRectCentred(t *testing.T) {
	p := newTestPlayer()
	r := p.Rect()
	expected := core.NewRect(296, 376, 48, 48)
	if r != expected {
		t.Errorf("Rect() = %+v, expected %+v", r, expected)
	}
	if c := core.NewVector2(r.X+r.W/2, r.Y+r.H/2); c != p.Position {
		t.Errorf("Rect() centre = %+v, expected %+v", c, p.Position)
	}
}
