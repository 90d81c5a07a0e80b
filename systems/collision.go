package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// CollisionSystem resolves bullet hits once per tick, after movement and
// shooting. Each bullet is tested against mirrors with the oriented-box
// test, then against enemies with the interval test; the first hit
// destroys both participants and ends that bullet's scan. Entities already
// marked in the despawn buffer are skipped, so a bullet can neither hit
// twice nor score twice within a tick.
type CollisionSystem struct {
	bullets ecs.Filter4[components.Position, components.Rotation, components.ColliderAABB, components.Bullet]
	enemies ecs.Filter3[components.Position, components.ColliderAABB, components.Enemy]
	mirrors ecs.Filter4[components.Position, components.Rotation, components.ColliderAABB, components.Mirror]
}

// NewCollisionSystem creates the collision resolver.
func NewCollisionSystem(w *ecs.World) *CollisionSystem {
	return &CollisionSystem{
		bullets: *ecs.NewFilter4[components.Position, components.Rotation, components.ColliderAABB, components.Bullet](w),
		enemies: *ecs.NewFilter3[components.Position, components.ColliderAABB, components.Enemy](w),
		mirrors: *ecs.NewFilter4[components.Position, components.Rotation, components.ColliderAABB, components.Mirror](w),
	}
}

type orientedBox struct {
	entity ecs.Entity
	center Vec2
	angle  float32
	half   Vec2
}

type alignedBox struct {
	entity ecs.Entity
	center Vec2
	half   Vec2
}

// Update resolves all bullet collisions for the tick. It returns the
// number of enemies killed (the score delta) and the number of bullets
// absorbed by mirrors.
func (s *CollisionSystem) Update(despawns *DespawnBuffer) (kills, absorbed int) {
	// Snapshot the candidates; the counts here are tens at most, and a
	// snapshot keeps destruction deferred while the pairs are walked.
	var bullets, mirrors []orientedBox
	var enemies []alignedBox

	bq := s.bullets.Query()
	for bq.Next() {
		pos, rot, box, _ := bq.Get()
		bullets = append(bullets, orientedBox{bq.Entity(), Vec2{pos.X, pos.Y}, rot.Angle, Vec2{box.HalfW, box.HalfH}})
	}
	mq := s.mirrors.Query()
	for mq.Next() {
		pos, rot, box, _ := mq.Get()
		mirrors = append(mirrors, orientedBox{mq.Entity(), Vec2{pos.X, pos.Y}, rot.Angle, Vec2{box.HalfW, box.HalfH}})
	}
	eq := s.enemies.Query()
	for eq.Next() {
		pos, box, _ := eq.Get()
		enemies = append(enemies, alignedBox{eq.Entity(), Vec2{pos.X, pos.Y}, Vec2{box.HalfW, box.HalfH}})
	}

	for _, b := range bullets {
		if despawns.Contains(b.entity) {
			continue
		}

		hit := false
		for _, m := range mirrors {
			if despawns.Contains(m.entity) {
				continue
			}
			if OBBOverlap(b.center, b.angle, b.half, m.center, m.angle, m.half) {
				despawns.Mark(b.entity)
				despawns.Mark(m.entity)
				absorbed++
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		for _, e := range enemies {
			if despawns.Contains(e.entity) {
				continue
			}
			if AABBOverlap(b.center, b.half, e.center, e.half) {
				despawns.Mark(b.entity)
				despawns.Mark(e.entity)
				kills++
				break
			}
		}
	}
	return kills, absorbed
}
