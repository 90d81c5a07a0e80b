// Package components defines the ECS components of the game.
package components

// Position is an entity's world position. The play field is centered on
// the origin, so x spans [-fieldW/2, fieldW/2] and y spans
// [-fieldH/2, fieldH/2] with y pointing up.
type Position struct {
	X, Y float32
}

// Rotation is an entity's orientation around the z axis, in radians.
// Only mirrors carry a nonzero rotation.
type Rotation struct {
	Angle float32
}

// Scale is a render scale. Collision extents are unscaled; entities
// without a Scale component draw at 1:1.
type Scale struct {
	X, Y float32
}
