package components

// ColliderAABB is a bounding box in local (unrotated) space, given as half
// extents around the entity position. The axis-aligned overlap test and
// the world-bounds checks use it directly; the oriented overlap test
// combines it with the entity's Rotation.
type ColliderAABB struct {
	HalfW, HalfH float32
}
