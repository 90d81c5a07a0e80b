package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// LifetimeSystem expires transient entities. The countdown saturates at
// zero and expiry marks the entity for removal at the next barrier. This
// is what bounds the worst-case entity count even when nothing collides.
type LifetimeSystem struct {
	filter ecs.Filter1[components.Lifetime]
	dt     float32
}

// NewLifetimeSystem creates the lifetime countdown pass.
func NewLifetimeSystem(w *ecs.World, dt float32) *LifetimeSystem {
	return &LifetimeSystem{
		filter: *ecs.NewFilter1[components.Lifetime](w),
		dt:     dt,
	}
}

// Update decrements every lifetime by one tick and returns how many
// entities expired.
func (s *LifetimeSystem) Update(despawns *DespawnBuffer) int {
	expired := 0
	query := s.filter.Query()
	for query.Next() {
		lt := query.Get()

		lt.Remaining -= s.dt
		if lt.Remaining <= 0 {
			lt.Remaining = 0
			if despawns.Mark(query.Entity()) {
				expired++
			}
		}
	}
	return expired
}
