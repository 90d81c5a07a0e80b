package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/broadside/components"
)

// Assets holds the loaded textures, indexed by TextureID. The textures
// are procedural placeholders generated at startup; no files ship with
// the binary.
type Assets struct {
	textures []rl.Texture2D
	byKind   map[components.SpriteKind]components.TextureID
}

// LoadAssets generates the placeholder textures. Must be called after the
// raylib window is created.
func LoadAssets() *Assets {
	a := &Assets{byKind: make(map[components.SpriteKind]components.TextureID)}

	a.register(components.SpriteShip, genShipTexture())
	a.register(components.SpriteEnemy, genSolidTexture(32, 32, rl.Color{R: 200, G: 60, B: 60, A: 255}))
	a.register(components.SpriteBullet, genSolidTexture(4, 4, rl.Color{R: 255, G: 230, B: 120, A: 255}))
	a.register(components.SpriteMirror, genSolidTexture(32, 4, rl.Color{R: 170, G: 120, B: 255, A: 255}))
	a.register(components.SpriteBackground, genBackgroundTexture())

	return a
}

func (a *Assets) register(kind components.SpriteKind, img *rl.Image) {
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	a.byKind[kind] = components.TextureID(len(a.textures))
	a.textures = append(a.textures, tex)
}

// Texture returns the texture handle for a sprite kind.
func (a *Assets) Texture(kind components.SpriteKind) components.TextureID {
	if id, ok := a.byKind[kind]; ok {
		return id
	}
	return components.TextureNone
}

// Get resolves a texture handle.
func (a *Assets) Get(id components.TextureID) rl.Texture2D {
	return a.textures[id]
}

// Unload releases all textures.
func (a *Assets) Unload() {
	for _, tex := range a.textures {
		rl.UnloadTexture(tex)
	}
	a.textures = nil
}

func genSolidTexture(w, h int, color rl.Color) *rl.Image {
	return rl.GenImageColor(w, h, color)
}

// genShipTexture draws a simple wedge into a 32x32 image.
func genShipTexture() *rl.Image {
	img := rl.GenImageColor(32, 32, rl.Blank)
	hull := rl.Color{R: 120, G: 180, B: 240, A: 255}
	for y := 0; y < 32; y++ {
		// Narrow at the top, wide at the base
		span := 2 + y*14/32
		for x := 16 - span; x < 16+span; x++ {
			rl.ImageDrawPixel(img, int32(x), int32(y), hull)
		}
	}
	return img
}

// genBackgroundTexture renders a sparse starfield.
func genBackgroundTexture() *rl.Image {
	img := rl.GenImageColor(256, 192, rl.Color{R: 8, G: 10, B: 18, A: 255})
	// Fixed pattern; the backdrop never changes between runs.
	for i := 0; i < 96; i++ {
		x := (i * 37) % 256
		y := (i * 53) % 192
		shade := uint8(90 + (i*29)%140)
		rl.ImageDrawPixel(img, int32(x), int32(y), rl.Color{R: shade, G: shade, B: shade, A: 255})
	}
	return img
}
