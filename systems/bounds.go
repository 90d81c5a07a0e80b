package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// Bounds is the play field, centered on the origin.
type Bounds struct {
	HalfW, HalfH float32
}

// BoundsSystem keeps the player's box fully inside the play field. When an
// axis gets clamped its velocity component is zeroed in the same tick, so
// held acceleration can't pin the ship into the wall.
type BoundsSystem struct {
	filter ecs.Filter4[components.Position, components.Movement, components.ColliderAABB, components.Player]
	bounds Bounds
}

// NewBoundsSystem creates the player bounds clamp.
func NewBoundsSystem(w *ecs.World, bounds Bounds) *BoundsSystem {
	return &BoundsSystem{
		filter: *ecs.NewFilter4[components.Position, components.Movement, components.ColliderAABB, components.Player](w),
		bounds: bounds,
	}
}

// Update clamps every player after integration.
func (s *BoundsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, mov, box, _ := query.Get()

		minX := -s.bounds.HalfW + box.HalfW
		maxX := s.bounds.HalfW - box.HalfW
		minY := -s.bounds.HalfH + box.HalfH
		maxY := s.bounds.HalfH - box.HalfH

		pos.X = clampf(pos.X, minX, maxX)
		pos.Y = clampf(pos.Y, minY, maxY)

		if pos.X <= minX || pos.X >= maxX {
			mov.VelX = 0
		}
		if pos.Y <= minY || pos.Y >= maxY {
			mov.VelY = 0
		}
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OffscreenSystem destroys auto-despawn entities once their collider is
// fully outside the play field. The box must be completely clear of the
// field, which leaves one box width of slack past the edge and avoids
// flicker right at the boundary.
type OffscreenSystem struct {
	filter ecs.Filter3[components.Position, components.ColliderAABB, components.AutoDespawn]
	bounds Bounds
}

// NewOffscreenSystem creates the out-of-bounds despawn pass.
func NewOffscreenSystem(w *ecs.World, bounds Bounds) *OffscreenSystem {
	return &OffscreenSystem{
		filter: *ecs.NewFilter3[components.Position, components.ColliderAABB, components.AutoDespawn](w),
		bounds: bounds,
	}
}

// Update marks fully offscreen entities for removal and returns how many
// it marked.
func (s *OffscreenSystem) Update(despawns *DespawnBuffer) int {
	marked := 0
	query := s.filter.Query()
	for query.Next() {
		pos, box, _ := query.Get()

		if pos.X-box.HalfW > s.bounds.HalfW ||
			pos.X+box.HalfW < -s.bounds.HalfW ||
			pos.Y-box.HalfH > s.bounds.HalfH ||
			pos.Y+box.HalfH < -s.bounds.HalfH {
			if despawns.Mark(query.Entity()) {
				marked++
			}
		}
	}
	return marked
}
