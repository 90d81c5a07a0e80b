package game

import (
	"math"

	"github.com/pthm-cable/broadside/telemetry"
)

// InputState carries one tick of player intent into the simulation. The
// axes are -1, 0, or +1; the render loop fills this from the keyboard,
// headless drivers fill it directly.
type InputState struct {
	AxisX, AxisY int8
	Fire         bool
}

// Step runs a single simulation tick.
//
// The ordered passes run first: control, movement, bounds, shooting,
// collision. Destruction is deferred into the despawn buffer and applied
// at two barriers: after collision, and after the lifetime/offscreen
// passes. Spawner passes run between the barriers, so an enemy spawned
// this tick can be neither hit nor expired this tick.
func (g *Game) Step(in InputState) {
	dt := g.dtTarget
	pc := g.perfCollector
	pc.StartTick()

	pc.StartPhase(telemetry.PhaseControl)
	g.control.Update(in.AxisX, in.AxisY)

	pc.StartPhase(telemetry.PhaseMovement)
	g.movement.Update()

	pc.StartPhase(telemetry.PhaseBounds)
	g.boundsSys.Update()

	pc.StartPhase(telemetry.PhaseShooting)
	shots := g.shooting.Update(dt, in.Fire, g.spawnBullet)
	g.collector.RecordShots(shots)

	pc.StartPhase(telemetry.PhaseCollision)
	kills, absorbed := g.collision.Update(g.despawns)
	g.score += kills
	g.collector.RecordKills(kills)
	g.collector.RecordAbsorbed(absorbed)
	g.flushDespawns()

	pc.StartPhase(telemetry.PhaseSpawners)
	if g.enemySpawning {
		g.collector.RecordEnemySpawns(g.enemySpawn.Update(dt, g.spawnEnemy))
	}
	if g.mirrorSpawning {
		g.collector.RecordMirrorSpawns(g.mirrorSpawn.Update(dt, g.spawnMirror))
	}

	pc.StartPhase(telemetry.PhaseLifetimes)
	g.collector.RecordExpired(g.lifetimes.Update(g.despawns))

	pc.StartPhase(telemetry.PhaseOffscreen)
	g.collector.RecordOffscreen(g.offscreen.Update(g.despawns))
	g.flushDespawns()

	pc.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.flushTelemetry()

	pc.EndTick()
}

// flushDespawns applies all pending entity removals.
func (g *Game) flushDespawns() {
	g.despawns.Flush(g.world)
}

// census counts the transient entity populations.
func (g *Game) census() telemetry.Census {
	var c telemetry.Census
	for q := g.bulletFilter.Query(); q.Next(); {
		c.Bullets++
	}
	for q := g.enemyFilter.Query(); q.Next(); {
		c.Enemies++
	}
	for q := g.mirrorFilter.Query(); q.Next(); {
		c.Mirrors++
	}
	c.Entities = c.Bullets + c.Enemies + c.Mirrors + g.staticEntities
	return c
}

// EntityCount returns the current number of entities in the world.
func (g *Game) EntityCount() int {
	return g.census().Entities
}

// EnemiesOnField returns the number of live enemies.
func (g *Game) EnemiesOnField() int {
	return g.census().Enemies
}

// MirrorsOnField returns the number of live mirrors.
func (g *Game) MirrorsOnField() int {
	return g.census().Mirrors
}

// sampleSpeeds collects the current speed of every moving entity.
func (g *Game) sampleSpeeds() []float64 {
	var speeds []float64
	query := g.motionFilter.Query()
	for query.Next() {
		mov := query.Get()
		v := float64(mov.VelX)*float64(mov.VelX) + float64(mov.VelY)*float64(mov.VelY)
		if v > 0 {
			speeds = append(speeds, math.Sqrt(v))
		}
	}
	return speeds
}
