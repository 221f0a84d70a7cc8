package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml and is used when the embedded document
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:     640,
			Height:    800,
			Title:     "FlappyBird",
			TargetFPS: 60,
		},
		Physics: PhysicsConfig{
			Gravity:     9.81 * 2.0,
			JumpImpulse: -7.0,
			ScrollSpeed: 180,
		},
		Player: PlayerConfig{
			SpawnX: 320,
			SpawnY: 400,
			Width:  48,
			Height: 48,
		},
		Obstacles: ObstacleConfig{
			Count:         4,
			Width:         80,
			Gap:           200,
			StrideFactor:  3,
			BaseOffset:    640,
			RecycleMargin: 20,
			MarginTop:     150,
			MarginBottom:  250,
		},
		Ground: GroundConfig{
			Height: 100,
		},
		Display: DisplayConfig{
			MaxFrameTime: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
