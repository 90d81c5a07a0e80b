package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

type collisionWorld struct {
	world   *ecs.World
	bullets *ecs.Map4[components.Position, components.Rotation, components.ColliderAABB, components.Bullet]
	enemies *ecs.Map3[components.Position, components.ColliderAABB, components.Enemy]
	mirrors *ecs.Map4[components.Position, components.Rotation, components.ColliderAABB, components.Mirror]
}

func newCollisionWorld() *collisionWorld {
	cw := &collisionWorld{world: ecs.NewWorld()}
	cw.bullets = ecs.NewMap4[components.Position, components.Rotation, components.ColliderAABB, components.Bullet](cw.world)
	cw.enemies = ecs.NewMap3[components.Position, components.ColliderAABB, components.Enemy](cw.world)
	cw.mirrors = ecs.NewMap4[components.Position, components.Rotation, components.ColliderAABB, components.Mirror](cw.world)
	return cw
}

func (cw *collisionWorld) bullet(x, y float32) ecs.Entity {
	return cw.bullets.NewEntity(
		&components.Position{X: x, Y: y},
		&components.Rotation{},
		&components.ColliderAABB{HalfW: 1, HalfH: 1},
		&components.Bullet{},
	)
}

func (cw *collisionWorld) enemy(x, y float32) ecs.Entity {
	return cw.enemies.NewEntity(
		&components.Position{X: x, Y: y},
		&components.ColliderAABB{HalfW: 16, HalfH: 16},
		&components.Enemy{},
	)
}

func (cw *collisionWorld) mirror(x, y, angle float32) ecs.Entity {
	return cw.mirrors.NewEntity(
		&components.Position{X: x, Y: y},
		&components.Rotation{Angle: angle},
		&components.ColliderAABB{HalfW: 8, HalfH: 1},
		&components.Mirror{},
	)
}

func TestCollisionBulletKillsEnemy(t *testing.T) {
	cw := newCollisionWorld()
	b := cw.bullet(0, 0)
	e := cw.enemy(10, 0)

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, absorbed := sys.Update(despawns)

	if kills != 1 || absorbed != 0 {
		t.Errorf("kills=%d absorbed=%d, want 1, 0", kills, absorbed)
	}
	if !despawns.Contains(b) || !despawns.Contains(e) {
		t.Error("both participants must be marked")
	}

	despawns.Flush(cw.world)
	if cw.world.Alive(b) || cw.world.Alive(e) {
		t.Error("participants alive after the barrier")
	}
}

func TestCollisionMiss(t *testing.T) {
	cw := newCollisionWorld()
	b := cw.bullet(0, 0)
	e := cw.enemy(100, 0)
	m := cw.mirror(0, 100, float32(math.Pi/4))

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, absorbed := sys.Update(despawns)

	if kills != 0 || absorbed != 0 {
		t.Errorf("kills=%d absorbed=%d on a clean miss", kills, absorbed)
	}
	if despawns.Len() != 0 {
		t.Error("entities marked without any overlap")
	}
	_ = b
	_ = e
	_ = m
}

func TestCollisionBulletHitsOnlyOneEnemy(t *testing.T) {
	// One bullet overlapping two stacked enemies destroys exactly one
	// of them and scores once.
	cw := newCollisionWorld()
	cw.bullet(0, 0)
	first := cw.enemy(5, 0)
	second := cw.enemy(-5, 0)

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, _ := sys.Update(despawns)

	if kills != 1 {
		t.Fatalf("kills = %d, want 1", kills)
	}
	if despawns.Contains(first) == despawns.Contains(second) {
		t.Error("exactly one of the overlapping enemies should be destroyed")
	}
}

func TestCollisionMirrorTakesPrecedence(t *testing.T) {
	// A bullet overlapping a mirror and an enemy at once is absorbed by
	// the mirror; the enemy survives and no score is awarded.
	cw := newCollisionWorld()
	b := cw.bullet(0, 0)
	e := cw.enemy(0, 0)
	m := cw.mirror(0, 0, float32(math.Pi/4))

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, absorbed := sys.Update(despawns)

	if kills != 0 || absorbed != 1 {
		t.Errorf("kills=%d absorbed=%d, want 0, 1", kills, absorbed)
	}
	if !despawns.Contains(b) || !despawns.Contains(m) {
		t.Error("bullet and mirror must be marked")
	}
	if despawns.Contains(e) {
		t.Error("enemy destroyed although the mirror absorbed the bullet")
	}
}

func TestCollisionNoDoubleKillOnSharedTarget(t *testing.T) {
	// Two bullets on the same enemy: the first destroys it, the second
	// sees it already marked and flies on.
	cw := newCollisionWorld()
	b1 := cw.bullet(-5, 0)
	b2 := cw.bullet(5, 0)
	e := cw.enemy(0, 0)

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, _ := sys.Update(despawns)

	if kills != 1 {
		t.Errorf("kills = %d, want 1 for a single enemy", kills)
	}
	if despawns.Contains(b1) == despawns.Contains(b2) {
		t.Error("exactly one bullet should be spent on the enemy")
	}
	if !despawns.Contains(e) {
		t.Error("enemy not destroyed")
	}
}

func TestCollisionSkipsPreMarkedBullet(t *testing.T) {
	cw := newCollisionWorld()
	b := cw.bullet(0, 0)
	e := cw.enemy(0, 0)

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	despawns.Mark(b) // e.g. expired earlier in the tick

	kills, _ := sys.Update(despawns)
	if kills != 0 {
		t.Errorf("kills = %d for a bullet already marked, want 0", kills)
	}
	if despawns.Contains(e) {
		t.Error("enemy destroyed by an already-dead bullet")
	}
}

func TestCollisionRotatedMirrorAbsorbs(t *testing.T) {
	// A bullet centered inside a 45-degree mirror overlaps on all four
	// separating axes.
	cw := newCollisionWorld()
	b := cw.bullet(-240, 50)
	m := cw.mirror(-240, 50, float32(-math.Pi/4))

	sys := NewCollisionSystem(cw.world)
	despawns := NewDespawnBuffer()
	kills, absorbed := sys.Update(despawns)

	if absorbed != 1 || kills != 0 {
		t.Errorf("kills=%d absorbed=%d, want 0, 1", kills, absorbed)
	}
	if !despawns.Contains(b) || !despawns.Contains(m) {
		t.Error("bullet and mirror must both be destroyed")
	}
}
