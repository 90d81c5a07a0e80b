package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// BulletSpawner creates a bullet at (x, y) with the given horizontal
// velocity. Implemented by the game factory; invoked only after query
// iteration has finished, so creation never happens mid-pass.
type BulletSpawner func(x, y, velX float32)

// ShootSystem emits a bullet pair from each player while fire is held: one
// bullet off the left box edge moving left, one off the right edge moving
// right. With a zero cooldown (the default) a pair leaves every tick.
type ShootSystem struct {
	filter    ecs.Filter3[components.Position, components.ColliderAABB, components.Player]
	speed     float32
	cooldown  float32 // seconds between pairs; 0 disables the limit
	sinceLast float32
}

// NewShootSystem creates the shooting pass.
func NewShootSystem(w *ecs.World, bulletSpeed, cooldown float32) *ShootSystem {
	return &ShootSystem{
		filter:    *ecs.NewFilter3[components.Position, components.ColliderAABB, components.Player](w),
		speed:     bulletSpeed,
		cooldown:  cooldown,
		sinceLast: cooldown,
	}
}

// Cooldown returns the current minimum time between bullet pairs.
func (s *ShootSystem) Cooldown() float32 {
	return s.cooldown
}

// SetCooldown changes the minimum time between bullet pairs at runtime.
func (s *ShootSystem) SetCooldown(cooldown float32) {
	s.cooldown = cooldown
}

// Update spawns bullets for the tick and returns how many were created.
func (s *ShootSystem) Update(dt float32, fire bool, spawn BulletSpawner) int {
	s.sinceLast += dt
	if !fire {
		return 0
	}
	if s.cooldown > 0 && s.sinceLast < s.cooldown {
		return 0
	}

	type muzzle struct {
		x, y, halfW float32
	}
	var muzzles []muzzle
	query := s.filter.Query()
	for query.Next() {
		pos, box, _ := query.Get()
		muzzles = append(muzzles, muzzle{pos.X, pos.Y, box.HalfW})
	}

	for _, m := range muzzles {
		spawn(m.x-m.halfW, m.y, -s.speed)
		spawn(m.x+m.halfW, m.y, s.speed)
	}
	if len(muzzles) > 0 {
		s.sinceLast = 0
	}
	return len(muzzles) * 2
}
