package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(DefaultFlappyConfig()); err != nil {
		t.Fatalf("DefaultFlappyConfig() should validate, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML differs from DefaultFlappyConfig():\n got      %+v\n expected %+v", cfg, DefaultFlappyConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 30\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != 30 {
		t.Errorf("Gravity = %v, expected 30", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != DefaultFlappyConfig().Physics.JumpImpulse {
		t.Errorf("JumpImpulse = %v, expected default", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.Count != 4 {
		t.Errorf("Obstacles.Count = %d, expected default 4", cfg.Obstacles.Count)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.Count != 6 {
		t.Errorf("Obstacles.Count = %d, expected 6", cfg.Obstacles.Count)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	// Screen shorter than the margins: no room for a gap centre.
	if err := os.WriteFile(path, []byte("screen:\n  height: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrEmptyGapRange) {
		t.Errorf("Load() error = %v, expected ErrEmptyGapRange", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   error
	}{
		{"zero width", func(c *FlappyConfig) { c.Screen.Width = 0 }, ErrNonPositive},
		{"negative gravity", func(c *FlappyConfig) { c.Physics.Gravity = -1 }, ErrNonPositive},
		{"empty pool", func(c *FlappyConfig) { c.Obstacles.Count = 0 }, ErrNonPositive},
		{"downward jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 3 }, ErrJumpDirection},
		{"margins collapse range", func(c *FlappyConfig) { c.Obstacles.MarginTop = 600 }, ErrEmptyGapRange},
		{"gap pokes above screen", func(c *FlappyConfig) { c.Obstacles.MarginTop = 50 }, ErrGapOffScreen},
		{"stride equals width", func(c *FlappyConfig) { c.Obstacles.StrideFactor = 1 }, ErrPipesOverlap},
		{"pool too short", func(c *FlappyConfig) { c.Obstacles.Count = 2 }, ErrPoolTooShort},
		{"frame too long", func(c *FlappyConfig) { c.Display.MaxFrameTime = 2 }, ErrFrameTooLong},
		{"ground too tall", func(c *FlappyConfig) { c.Ground.Height = 800 }, ErrGroundTooTall},
		{"negative recycle margin", func(c *FlappyConfig) { c.Obstacles.RecycleMargin = -500 }, ErrRecycleOnScreen},
		{"first pipe on spawn", func(c *FlappyConfig) { c.Obstacles.BaseOffset = 300 }, ErrSpawnInPipe},
		{"first pipe touches spawn", func(c *FlappyConfig) { c.Obstacles.BaseOffset = 344 }, ErrSpawnInPipe},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestObstacleGeometry(t *testing.T) {
	obs := DefaultFlappyConfig().Obstacles
	if obs.Stride() != 240 {
		t.Errorf("Stride() = %v, expected 240", obs.Stride())
	}
	if obs.Span() != 960 {
		t.Errorf("Span() = %v, expected 960", obs.Span())
	}
	if obs.OutOfBoundsX() != -100 {
		t.Errorf("OutOfBoundsX() = %v, expected -100", obs.OutOfBoundsX())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config should parse back to the same value")
	}
}
