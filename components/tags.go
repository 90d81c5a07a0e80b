package components

// Role tags are zero-size components. System filters include them in
// their type lists to select which entities a pass acts on; they are the
// "is this a bullet" mechanism.

// Player tags the controllable ship.
type Player struct{}

// Enemy tags hostile ships created by enemy spawners.
type Enemy struct{}

// Bullet tags player projectiles.
type Bullet struct{}

// Mirror tags the rotated deflector bars. Bullets hitting a mirror are
// destroyed; there is no reflection.
type Mirror struct{}

// Background tags the static backdrop entity.
type Background struct{}
