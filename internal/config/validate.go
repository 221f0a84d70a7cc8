package config

import (
	"errors"
	"fmt"
)

// Validation errors. Validate wraps one of these for every problem it finds.
var (
	ErrNonPositive     = errors.New("must be positive")
	ErrEmptyGapRange   = errors.New("gap centre range is empty")
	ErrGapOffScreen    = errors.New("gap margin smaller than half the gap")
	ErrPipesOverlap    = errors.New("stride does not clear the pipe width")
	ErrPoolTooShort    = errors.New("pool span too short to recycle past the right edge")
	ErrFrameTooLong    = errors.New("max frame time lets a pipe skip a whole stride")
	ErrGroundTooTall   = errors.New("ground does not fit on screen")
	ErrJumpDirection   = errors.New("jump impulse must point up (negative)")
	ErrRecycleOnScreen = errors.New("recycle margin would recycle pipes while still visible")
	ErrSpawnInPipe     = errors.New("first pipe overlaps the spawn point")
)

// Validate checks the configuration for values the simulation cannot run
// with. All problems are reported together.
func Validate(cfg FlappyConfig) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s (%v): %w", name, v, ErrNonPositive))
		}
	}

	positive("screen.width", cfg.Screen.Width)
	positive("screen.height", cfg.Screen.Height)
	positive("screen.target_fps", float64(cfg.Screen.TargetFPS))
	positive("physics.gravity", cfg.Physics.Gravity)
	positive("physics.scroll_speed", cfg.Physics.ScrollSpeed)
	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)
	positive("obstacles.count", float64(cfg.Obstacles.Count))
	positive("obstacles.width", cfg.Obstacles.Width)
	positive("obstacles.gap", cfg.Obstacles.Gap)
	positive("obstacles.stride_factor", cfg.Obstacles.StrideFactor)
	positive("display.max_frame_time", cfg.Display.MaxFrameTime)
	if len(errs) > 0 {
		// Derived checks below assume sane sizes.
		return errors.Join(errs...)
	}

	if cfg.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("config: physics.jump_impulse (%v): %w", cfg.Physics.JumpImpulse, ErrJumpDirection))
	}

	if cfg.Ground.Height < 0 || cfg.Ground.Height >= cfg.Screen.Height {
		errs = append(errs, fmt.Errorf("config: ground.height (%v): %w", cfg.Ground.Height, ErrGroundTooTall))
	}

	obs := cfg.Obstacles
	half := obs.Gap / 2
	if obs.MarginTop < half || obs.MarginBottom < half {
		errs = append(errs, fmt.Errorf("config: obstacles.margin_top/margin_bottom (%v/%v) < %v: %w",
			obs.MarginTop, obs.MarginBottom, half, ErrGapOffScreen))
	}
	if lo, hi := obs.MarginTop, cfg.Screen.Height-obs.MarginBottom; hi <= lo {
		errs = append(errs, fmt.Errorf("config: gap centre range [%v, %v): %w", lo, hi, ErrEmptyGapRange))
	}

	if obs.RecycleMargin < 0 {
		errs = append(errs, fmt.Errorf("config: obstacles.recycle_margin (%v): %w", obs.RecycleMargin, ErrRecycleOnScreen))
	}
	if spawnRight := cfg.Player.SpawnX + cfg.Player.Width/2; obs.BaseOffset <= spawnRight {
		errs = append(errs, fmt.Errorf("config: obstacles.base_offset (%v) <= spawn right edge %v: %w",
			obs.BaseOffset, spawnRight, ErrSpawnInPipe))
	}
	if obs.Stride() <= obs.Width {
		errs = append(errs, fmt.Errorf("config: obstacles.stride_factor (%v): %w", obs.StrideFactor, ErrPipesOverlap))
	}
	if recycled := obs.OutOfBoundsX() + obs.Span(); recycled <= cfg.Screen.Width {
		errs = append(errs, fmt.Errorf("config: recycled pipe lands at x=%v inside width %v: %w",
			recycled, cfg.Screen.Width, ErrPoolTooShort))
	}
	if step := cfg.Physics.ScrollSpeed * cfg.Display.MaxFrameTime; step >= obs.Stride() {
		errs = append(errs, fmt.Errorf("config: scroll step %v per frame >= stride %v: %w",
			step, obs.Stride(), ErrFrameTooLong))
	}

	return errors.Join(errs...)
}
