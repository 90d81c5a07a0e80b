package components

// Movement holds the physics state consumed by the movement integrator.
// Acceleration is set externally each tick: from input for the player,
// from the spawner profile for enemies, zero for bullets and mirrors.
// Velocity is written only by the integrator and the bounds clamp.
type Movement struct {
	AccelX, AccelY float32
	VelX, VelY     float32
	Damping        float32 // fraction of velocity shed per tick without acceleration
	MaxSpeed       float32 // post-integration speed clamp
}
