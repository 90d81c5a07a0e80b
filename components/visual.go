package components

// TextureID is an opaque handle into the asset collaborator's texture
// table. The simulation never interprets it.
type TextureID int32

// TextureNone draws the sprite as a flat rectangle instead of a texture.
const TextureNone TextureID = -1

// SpriteKind selects how the render collaborator draws an entity.
type SpriteKind uint8

const (
	SpriteShip SpriteKind = iota
	SpriteEnemy
	SpriteBullet
	SpriteMirror
	SpriteBackground
)

// Sprite describes an entity's visual: the kind, an opaque texture handle,
// and the size to draw at (world units, before camera zoom).
type Sprite struct {
	Kind    SpriteKind
	Texture TextureID
	W, H    float32
}
