package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

type firedBullet struct {
	x, y, velX float32
}

func newShootWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.ColliderAABB, components.Player](w)
	e := mapper.NewEntity(
		&components.Position{X: 10, Y: -160},
		&components.ColliderAABB{HalfW: 16, HalfH: 16},
		&components.Player{},
	)
	return w, e
}

func TestShootSpawnsPairPerTick(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	w, _ := newShootWorld(t)
	sys := NewShootSystem(w, 3.0, 0)

	var fired []firedBullet
	spawn := func(x, y, velX float32) {
		fired = append(fired, firedBullet{x, y, velX})
	}

	// Holding fire for N ticks with no cooldown yields exactly 2N
	// bullets.
	const ticks = 5
	for i := 0; i < ticks; i++ {
		if n := sys.Update(dt, true, spawn); n != 2 {
			t.Fatalf("tick %d: spawned %d, want 2", i, n)
		}
	}
	if len(fired) != 2*ticks {
		t.Fatalf("fired %d bullets over %d ticks, want %d", len(fired), ticks, 2*ticks)
	}

	// The pair departs from the ship's box edges, one per direction.
	left, right := fired[0], fired[1]
	if left.x != 10-16 || left.velX != -3 {
		t.Errorf("left bullet = (%v, vel %v), want (-6, -3)", left.x, left.velX)
	}
	if right.x != 10+16 || right.velX != 3 {
		t.Errorf("right bullet = (%v, vel %v), want (26, 3)", right.x, right.velX)
	}
	if left.y != -160 || right.y != -160 {
		t.Error("bullets not launched at the ship's y")
	}
}

func TestShootIdleWithoutFire(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	w, _ := newShootWorld(t)
	sys := NewShootSystem(w, 3.0, 0)

	for i := 0; i < 10; i++ {
		if n := sys.Update(dt, false, func(x, y, velX float32) {
			t.Fatal("spawned a bullet without fire held")
		}); n != 0 {
			t.Fatalf("Update returned %d without fire", n)
		}
	}
}

func TestShootFiresImmediatelyAfterIdle(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	w, _ := newShootWorld(t)
	sys := NewShootSystem(w, 3.0, 0.5)

	count := 0
	spawn := func(x, y, velX float32) { count++ }

	// The cooldown starts satisfied: the first press fires at once.
	if n := sys.Update(dt, true, spawn); n != 2 {
		t.Errorf("first press spawned %d, want 2", n)
	}
}

func TestShootCooldownRateLimits(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	w, _ := newShootWorld(t)
	// Three ticks' worth of cooldown: pairs on ticks 1, 4, 7, ...
	sys := NewShootSystem(w, 3.0, 3*dt)

	count := 0
	spawn := func(x, y, velX float32) { count++ }

	for i := 0; i < 9; i++ {
		sys.Update(dt, true, spawn)
	}
	if count != 6 {
		t.Errorf("fired %d bullets in 9 ticks with a 3-tick cooldown, want 6", count)
	}
}

func TestShootNoPlayerNoBullets(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewShootSystem(w, 3.0, 0)

	if n := sys.Update(1.0/60.0, true, func(x, y, velX float32) {
		t.Fatal("spawned a bullet with no player in the world")
	}); n != 0 {
		t.Fatalf("Update returned %d with no player", n)
	}
}
