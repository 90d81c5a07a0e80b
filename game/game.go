// Package game wires the simulation systems, the ECS world, and the
// render/input collaborators into a playable whole.
package game

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/camera"
	"github.com/pthm-cable/broadside/components"
	"github.com/pthm-cable/broadside/config"
	"github.com/pthm-cable/broadside/systems"
	"github.com/pthm-cable/broadside/telemetry"
	"github.com/pthm-cable/broadside/ui"
)

// Options configures game startup.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // empty = CSV output disabled
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	seed  int64

	bounds systems.Bounds

	// Entity mappers
	playerMapper *ecs.Map6[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Player,
	]
	bulletMapper *ecs.Map8[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.AutoDespawn,
		components.Bullet,
	]
	enemyMapper *ecs.Map7[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.Enemy,
	]
	mirrorMapper *ecs.Map7[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.Mirror,
	]
	backgroundMapper *ecs.Map5[
		components.Position,
		components.Rotation,
		components.Scale,
		components.Sprite,
		components.Background,
	]
	enemySpawnerMapper  *ecs.Map1[components.EnemySpawner]
	mirrorSpawnerMapper *ecs.Map2[components.Position, components.MirrorSpawner]

	scaleMap *ecs.Map[components.Scale]

	// Census filters
	spawnerFilter       *ecs.Filter1[components.EnemySpawner]
	mirrorSpawnerFilter *ecs.Filter1[components.MirrorSpawner]

	bulletFilter *ecs.Filter1[components.Bullet]
	enemyFilter  *ecs.Filter1[components.Enemy]
	mirrorFilter *ecs.Filter1[components.Mirror]
	motionFilter *ecs.Filter1[components.Movement]
	drawFilter   *ecs.Filter3[components.Position, components.Rotation, components.Sprite]

	// Simulation passes, in tick order
	control     *systems.PlayerControlSystem
	movement    *systems.MovementSystem
	boundsSys   *systems.BoundsSystem
	shooting    *systems.ShootSystem
	collision   *systems.CollisionSystem
	enemySpawn  *systems.EnemySpawnSystem
	mirrorSpawn *systems.MirrorSpawnSystem
	lifetimes   *systems.LifetimeSystem
	offscreen   *systems.OffscreenSystem

	despawns *systems.DespawnBuffer
	registry *systems.SystemRegistry

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	tick           int32
	score          int
	staticEntities int
	paused         bool
	stepsPerUpdate int
	enemySpawning  bool
	mirrorSpawning bool
	intervalScale  float32
	headless       bool

	// Rendering (nil in headless mode)
	camera   *camera.Camera
	hud      *ui.HUD
	panel    *ui.DebugPanel
	assets   *Assets
	screenW  float32
	screenH  float32
	dtAccum  float32
	dtTarget float32
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{Seed: 42, StepsPerUpdate: 1})
}

// NewGameWithOptions creates a game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	w := ecs.NewWorld()
	g := &Game{
		world:          w,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		seed:           opts.Seed,
		bounds:         systems.Bounds{HalfW: cfg.Derived.FieldHalfW, HalfH: cfg.Derived.FieldHalfH},
		stepsPerUpdate: opts.StepsPerUpdate,
		enemySpawning:  true,
		mirrorSpawning: true,
		intervalScale:  1,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		dtTarget:       cfg.Derived.DT32,
		screenW:        float32(cfg.Screen.Width),
		screenH:        float32(cfg.Screen.Height),
	}

	g.playerMapper = ecs.NewMap6[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Player,
	](g.world)
	g.bulletMapper = ecs.NewMap8[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.AutoDespawn,
		components.Bullet,
	](g.world)
	g.enemyMapper = ecs.NewMap7[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.Enemy,
	](g.world)
	g.mirrorMapper = ecs.NewMap7[
		components.Position,
		components.Rotation,
		components.Movement,
		components.ColliderAABB,
		components.Sprite,
		components.Lifetime,
		components.Mirror,
	](g.world)
	g.backgroundMapper = ecs.NewMap5[
		components.Position,
		components.Rotation,
		components.Scale,
		components.Sprite,
		components.Background,
	](g.world)
	g.enemySpawnerMapper = ecs.NewMap1[components.EnemySpawner](g.world)
	g.mirrorSpawnerMapper = ecs.NewMap2[components.Position, components.MirrorSpawner](g.world)

	g.scaleMap = ecs.NewMap[components.Scale](g.world)

	g.spawnerFilter = ecs.NewFilter1[components.EnemySpawner](g.world)
	g.mirrorSpawnerFilter = ecs.NewFilter1[components.MirrorSpawner](g.world)
	g.bulletFilter = ecs.NewFilter1[components.Bullet](g.world)
	g.enemyFilter = ecs.NewFilter1[components.Enemy](g.world)
	g.mirrorFilter = ecs.NewFilter1[components.Mirror](g.world)
	g.motionFilter = ecs.NewFilter1[components.Movement](g.world)
	g.drawFilter = ecs.NewFilter3[components.Position, components.Rotation, components.Sprite](g.world)

	g.control = systems.NewPlayerControlSystem(g.world)
	g.movement = systems.NewMovementSystem(g.world)
	g.boundsSys = systems.NewBoundsSystem(g.world, g.bounds)
	g.shooting = systems.NewShootSystem(g.world, float32(cfg.Bullet.Speed), float32(cfg.Player.FireCooldown))
	g.collision = systems.NewCollisionSystem(g.world)
	g.enemySpawn = systems.NewEnemySpawnSystem(g.world, g.bounds, g.rng)
	g.mirrorSpawn = systems.NewMirrorSpawnSystem(g.world)
	g.lifetimes = systems.NewLifetimeSystem(g.world, g.dtTarget)
	g.offscreen = systems.NewOffscreenSystem(g.world, g.bounds)

	g.despawns = systems.NewDespawnBuffer()
	g.registry = systems.NewSystemRegistry()

	g.collector = telemetry.NewCollector(statsWindow, g.dtTarget)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		panic(err)
	}
	g.outputManager = om
	if g.outputManager != nil {
		if err := g.outputManager.WriteConfig(cfg); err != nil {
			panic(err)
		}
	}

	if !g.headless {
		g.assets = LoadAssets()
		g.camera = camera.New(
			g.screenW, g.screenH,
			cfg.Derived.FieldW32, cfg.Derived.FieldH32,
			float32(cfg.Field.PixelZoom),
		)
		g.hud = ui.NewHUD()
		g.panel = ui.NewDebugPanel(g.screenW-250, 50)
		g.spawnBackground()
	}

	g.spawnPlayer()
	g.createSpawners()
	g.staticEntities = g.countStaticEntities()

	g.logStartup()

	return g
}

// countStaticEntities counts the permanent entities created at startup.
func (g *Game) countStaticEntities() int {
	n := 0
	for q := g.drawFilter.Query(); q.Next(); {
		n++
	}
	for q := g.spawnerFilter.Query(); q.Next(); {
		n++
	}
	for q := g.mirrorSpawnerFilter.Query(); q.Next(); {
		n++
	}
	return n
}

// mirrorAngle is the deflection of the two mirror spawners, in radians.
const mirrorAngle = float32(math.Pi / 4)

// Unload releases all resources.
func (g *Game) Unload() {
	g.logWorldState()
	if g.assets != nil {
		g.assets.Unload()
	}
	if g.outputManager != nil {
		g.outputManager.Close()
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Score returns the number of enemies destroyed so far.
func (g *Game) Score() int {
	return g.score
}

// Seed returns the RNG seed this run was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}
