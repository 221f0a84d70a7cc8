package window

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// stretchGeoM maps a w x h texture onto r.
func stretchGeoM(r core.Rect, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	if w > 0 && h > 0 {
		g.Scale(r.W/float64(w), r.H/float64(h))
	}
	g.Translate(r.X, r.Y)
	return g
}

// drawStretched draws img scaled to fill r.
func drawStretched(dst, img *ebiten.Image, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = stretchGeoM(r, b.Dx(), b.Dy())
	dst.DrawImage(img, op)
}

// tileOrigins returns the top-left corners of w x h tiles covering r,
// left to right, top to bottom.
func tileOrigins(r core.Rect, w, h int) []core.Vector2 {
	if w <= 0 || h <= 0 || r.W <= 0 || r.H <= 0 {
		return nil
	}
	var out []core.Vector2
	for y := r.Y; y < r.Bottom(); y += float64(h) {
		for x := r.X; x < r.Right(); x += float64(w) {
			out = append(out, core.NewVector2(x, y))
		}
	}
	return out
}

// drawTiled repeats img across r. Tiles past r's edge are clipped by a
// sub-image of dst.
func drawTiled(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	clip := dst.SubImage(rectBounds(r)).(*ebiten.Image)
	for _, o := range tileOrigins(r, b.Dx(), b.Dy()) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X, o.Y)
		clip.DrawImage(img, op)
	}
}

// rectBounds returns the pixel rectangle covering r.
func rectBounds(r core.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}
