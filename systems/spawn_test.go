package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

func newEnemySpawner(interval float32) components.EnemySpawner {
	return components.EnemySpawner{
		Timer: components.NewTimer(interval),
		Movement: components.Movement{
			AccelY:   -0.1,
			VelY:     -1,
			MaxSpeed: 10,
		},
		Box:      components.ColliderAABB{HalfW: 16, HalfH: 16},
		Lifetime: 5,
	}
}

func TestEnemySpawnTiming(t *testing.T) {
	const dt = float32(1.0 / 60.0)

	w := ecs.NewWorld()
	mapper := ecs.NewMap1[components.EnemySpawner](w)
	fast := newEnemySpawner(1.0)
	slow := newEnemySpawner(1.5)
	mapper.NewEntity(&fast)
	mapper.NewEntity(&slow)

	sys := NewEnemySpawnSystem(w, testBounds, rand.New(rand.NewSource(1)))

	spawned := 0
	spawn := func(x, y float32, tpl *components.EnemySpawner) { spawned++ }

	// Over 3 simulated seconds the 1.0s spawner fires 3 times and the
	// 1.5s spawner fires twice.
	for i := 0; i < 180; i++ {
		sys.Update(dt, spawn)
	}
	if spawned != 5 {
		t.Errorf("spawned %d enemies over 3s, want 5 (3 + 2)", spawned)
	}
}

func TestEnemySpawnPlacement(t *testing.T) {
	const dt = float32(1.0 / 60.0)

	w := ecs.NewWorld()
	mapper := ecs.NewMap1[components.EnemySpawner](w)
	tpl := newEnemySpawner(1.0)
	mapper.NewEntity(&tpl)

	sys := NewEnemySpawnSystem(w, testBounds, rand.New(rand.NewSource(42)))

	limit := testBounds.HalfW * enemySpawnMargin
	spawns := 0
	spawn := func(x, y float32, got *components.EnemySpawner) {
		spawns++
		if x < -limit || x > limit {
			t.Errorf("spawn x = %v outside the 95%% band [%v, %v]", x, -limit, limit)
		}
		wantY := testBounds.HalfH + 16
		if y != wantY {
			t.Errorf("spawn y = %v, want %v (just above the top edge)", y, wantY)
		}
		if got.Movement.VelY != -1 || got.Movement.AccelY != -0.1 {
			t.Error("template movement profile not passed through")
		}
		if got.Lifetime != 5 {
			t.Errorf("template lifetime = %v, want 5", got.Lifetime)
		}
	}

	for i := 0; i < 600; i++ {
		sys.Update(dt, spawn)
	}
	if spawns != 10 {
		t.Errorf("spawned %d enemies over 10s at 1/s, want 10", spawns)
	}
}

func TestEnemySpawnReproducibleUnderSeed(t *testing.T) {
	const dt = float32(1.0 / 60.0)

	run := func(seed int64) []float32 {
		w := ecs.NewWorld()
		mapper := ecs.NewMap1[components.EnemySpawner](w)
		tpl := newEnemySpawner(1.0)
		mapper.NewEntity(&tpl)

		sys := NewEnemySpawnSystem(w, testBounds, rand.New(rand.NewSource(seed)))
		var xs []float32
		for i := 0; i < 300; i++ {
			sys.Update(dt, func(x, y float32, tpl *components.EnemySpawner) {
				xs = append(xs, x)
			})
		}
		return xs
	}

	a := run(7)
	b := run(7)
	c := run(8)

	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at spawn %d: %v vs %v", i, a[i], b[i])
		}
	}
	same := len(a) == len(c)
	if same {
		for i := range a {
			if a[i] != c[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced an identical spawn sequence")
	}
}

func TestMirrorSpawn(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	angle := float32(-math.Pi / 4)

	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.MirrorSpawner](w)
	mapper.NewEntity(
		&components.Position{X: -246, Y: -202},
		&components.MirrorSpawner{Timer: components.NewTimer(1.0), Angle: angle},
	)

	sys := NewMirrorSpawnSystem(w)

	spawns := 0
	spawn := func(x, y, a float32) {
		spawns++
		if x != -246 || y != -202 {
			t.Errorf("mirror spawned at (%v, %v), want the spawner position (-246, -202)", x, y)
		}
		if a != angle {
			t.Errorf("mirror angle = %v, want %v", a, angle)
		}
	}

	for i := 0; i < 120; i++ {
		sys.Update(dt, spawn)
	}
	if spawns != 2 {
		t.Errorf("spawned %d mirrors over 2s at 1/s, want 2", spawns)
	}
}
