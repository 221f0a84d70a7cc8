package window

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestAssetsDecode(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{TextureBird, 48, 48},
		{TexturePipe, 16, 16},
		{TextureGround, 32, 32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := decodeAsset(tc.name)
			if err != nil {
				t.Fatalf("decodeAsset(%q) failed: %v", tc.name, err)
			}
			b := img.Bounds()
			if b.Dx() != tc.w || b.Dy() != tc.h {
				t.Errorf("%s is %dx%d, expected %dx%d", tc.name, b.Dx(), b.Dy(), tc.w, tc.h)
			}
		})
	}
}

func TestDecodeMissingAsset(t *testing.T) {
	if _, err := decodeAsset("missing.png"); err == nil {
		t.Error("expected error for a missing asset")
	}
}

func TestStretchGeoM(t *testing.T) {
	g := stretchGeoM(core.NewRect(100, 50, 80, 300), 16, 16)

	x, y := g.Apply(0, 0)
	if x != 100 || y != 50 {
		t.Errorf("origin maps to (%v, %v), expected (100, 50)", x, y)
	}
	x, y = g.Apply(16, 16)
	if x != 180 || y != 350 {
		t.Errorf("far corner maps to (%v, %v), expected (180, 350)", x, y)
	}
}

func TestTileOrigins(t *testing.T) {
	origins := tileOrigins(core.NewRect(0, 700, 640, 100), 32, 32)

	// 20 columns x 4 rows
	if len(origins) != 80 {
		t.Fatalf("len(origins) = %d, expected 80", len(origins))
	}
	if origins[0] != core.NewVector2(0, 700) {
		t.Errorf("first tile at %+v, expected (0, 700)", origins[0])
	}
	if last := origins[len(origins)-1]; last != core.NewVector2(608, 796) {
		t.Errorf("last tile at %+v, expected (608, 796)", last)
	}
	if tileOrigins(core.NewRect(0, 0, 0, 10), 32, 32) != nil {
		t.Error("empty rect should have no tiles")
	}
}

func TestRectBounds(t *testing.T) {
	b := rectBounds(core.NewRect(1.5, 2.2, 10, 3.1))
	if b.Min.X != 1 || b.Min.Y != 2 || b.Max.X != 12 || b.Max.Y != 6 {
		t.Errorf("rectBounds() = %v, expected (1,2)-(12,6)", b)
	}
}
