package components

// EnemySpawner periodically creates enemies from a fixed template. It
// lives on a standalone, non-visual entity; several independently
// configured spawners coexist.
type EnemySpawner struct {
	Timer    Timer
	Texture  TextureID
	Movement Movement     // initial movement profile stamped onto each enemy
	Box      ColliderAABB // collider stamped onto each enemy
	Lifetime float32      // seconds granted to each enemy
}

// MirrorSpawner periodically creates a mirror at the spawner's own
// position, rotated by the fixed deflection angle chosen at creation.
type MirrorSpawner struct {
	Timer Timer
	Angle float32 // radians
}
