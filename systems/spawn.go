package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// enemySpawnMargin keeps random spawn positions off the very edge of the
// field: x is drawn uniformly over the middle 95%.
const enemySpawnMargin = 0.95

// EnemyFactory instantiates an enemy at (x, y) from a spawner template.
type EnemyFactory func(x, y float32, tpl *components.EnemySpawner)

// MirrorFactory instantiates a mirror at (x, y) with the given rotation.
type MirrorFactory func(x, y, angle float32)

// EnemySpawnSystem ticks every enemy spawner's timer and instantiates its
// template on each completed interval. The spawn x comes from the injected
// RNG so runs are reproducible under a fixed seed; enemies enter just
// above the top edge.
type EnemySpawnSystem struct {
	filter ecs.Filter1[components.EnemySpawner]
	bounds Bounds
	rng    *rand.Rand
}

// NewEnemySpawnSystem creates the enemy spawn pass.
func NewEnemySpawnSystem(w *ecs.World, bounds Bounds, rng *rand.Rand) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		filter: *ecs.NewFilter1[components.EnemySpawner](w),
		bounds: bounds,
		rng:    rng,
	}
}

// Update advances all spawner timers by dt and returns how many enemies
// were created.
func (s *EnemySpawnSystem) Update(dt float32, spawn EnemyFactory) int {
	type request struct {
		x, y float32
		tpl  components.EnemySpawner
	}
	var requests []request

	query := s.filter.Query()
	for query.Next() {
		spawner := query.Get()
		if spawner.Timer.Tick(dt) {
			x := (s.rng.Float32()*2 - 1) * s.bounds.HalfW * enemySpawnMargin
			y := s.bounds.HalfH + spawner.Box.HalfH
			requests = append(requests, request{x, y, *spawner})
		}
	}

	// Creation after iteration; the factory mutates the world.
	for i := range requests {
		spawn(requests[i].x, requests[i].y, &requests[i].tpl)
	}
	return len(requests)
}

// MirrorSpawnSystem ticks the mirror spawners and creates a mirror at the
// spawner's own position and angle on each completed interval.
type MirrorSpawnSystem struct {
	filter ecs.Filter2[components.Position, components.MirrorSpawner]
}

// NewMirrorSpawnSystem creates the mirror spawn pass.
func NewMirrorSpawnSystem(w *ecs.World) *MirrorSpawnSystem {
	return &MirrorSpawnSystem{
		filter: *ecs.NewFilter2[components.Position, components.MirrorSpawner](w),
	}
}

// Update advances the spawner timers by dt and returns how many mirrors
// were created.
func (s *MirrorSpawnSystem) Update(dt float32, spawn MirrorFactory) int {
	type request struct {
		x, y, angle float32
	}
	var requests []request

	query := s.filter.Query()
	for query.Next() {
		pos, spawner := query.Get()
		if spawner.Timer.Tick(dt) {
			requests = append(requests, request{pos.X, pos.Y, spawner.Angle})
		}
	}

	for _, r := range requests {
		spawn(r.x, r.y, r.angle)
	}
	return len(requests)
}
