package window

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for embedded textures

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/*.png
var assetFS embed.FS

// Texture names.
const (
	TextureBird   = "bird.png"
	TexturePipe   = "pipe.png"
	TextureGround = "ground.png"
)

// decodeAsset reads and decodes an embedded image.
func decodeAsset(name string) (image.Image, error) {
	data, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("window: asset %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", name, err)
	}
	return img, nil
}

// textures holds every image the window draws.
type textures struct {
	bird   *ebiten.Image
	pipe   *ebiten.Image
	ground *ebiten.Image
}

// loadTextures decodes all textures. Any failure is fatal for the window.
func loadTextures() (textures, error) {
	var t textures
	for _, a := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{TextureBird, &t.bird},
		{TexturePipe, &t.pipe},
		{TextureGround, &t.ground},
	} {
		img, err := decodeAsset(a.name)
		if err != nil {
			return textures{}, err
		}
		*a.dst = ebiten.NewImageFromImage(img)
	}
	return t, nil
}
