// Package config provides YAML-based game configuration loading and
// validation.
package config

// FlappyConfig contains all tunable values for the game.
// World units are pixels of the reference playfield; time is in seconds.
type FlappyConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Ground    GroundConfig   `yaml:"ground"`
	Display   DisplayConfig  `yaml:"display"`
}

// ScreenConfig defines the playfield and the window that shows it.
type ScreenConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Title     string  `yaml:"title"`
	TargetFPS int     `yaml:"target_fps"`
}

// PhysicsConfig defines gravity, jump and scroll parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity.y per second
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity.y set on jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Pipe movement per second
}

// PlayerConfig defines the spawn point and body size.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines the pipe pool.
type ObstacleConfig struct {
	Count         int     `yaml:"count"`          // Pool size, fixed for the session
	Width         float64 `yaml:"width"`          // Pipe width
	Gap           float64 `yaml:"gap"`            // Vertical opening between top and bottom pipe
	StrideFactor  float64 `yaml:"stride_factor"`  // Horizontal stride in pipe widths
	BaseOffset    float64 `yaml:"base_offset"`    // X of the first pipe after reset
	RecycleMargin float64 `yaml:"recycle_margin"` // Extra distance past the left edge before recycling
	MarginTop     float64 `yaml:"margin_top"`     // Lowest allowed gap centre, from the top
	MarginBottom  float64 `yaml:"margin_bottom"`  // Distance of the highest allowed gap centre from the bottom
}

// GroundConfig defines the ground strip at the bottom of the playfield.
type GroundConfig struct {
	Height float64 `yaml:"height"`
}

// DisplayConfig holds frontend timing limits.
type DisplayConfig struct {
	MaxFrameTime float64 `yaml:"max_frame_time"` // Upper bound on a single tick's dt
}

// Stride returns the horizontal distance between consecutive pipes.
func (c ObstacleConfig) Stride() float64 {
	return c.StrideFactor * c.Width
}

// Span returns the total horizontal extent covered by the pool.
func (c ObstacleConfig) Span() float64 {
	return float64(c.Count) * c.Stride()
}

// OutOfBoundsX returns the x at or below which a pipe is recycled.
func (c ObstacleConfig) OutOfBoundsX() float64 {
	return -c.Width - c.RecycleMargin
}
