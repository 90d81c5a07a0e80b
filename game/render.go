package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/broadside/components"
	"github.com/pthm-cable/broadside/ui"
)

// spriteTints gives the flat-rectangle fallback a distinct color per kind.
var spriteTints = map[components.SpriteKind]rl.Color{
	components.SpriteShip:       rl.SkyBlue,
	components.SpriteEnemy:      rl.Red,
	components.SpriteBullet:     rl.Yellow,
	components.SpriteMirror:     rl.Purple,
	components.SpriteBackground: rl.Color{R: 12, G: 14, B: 24, A: 255},
}

// Draw renders a frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawEntities()
	g.drawHUD()

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawEntities renders every entity with a sprite, backgrounds first so
// ships and bullets stay on top.
func (g *Game) drawEntities() {
	// Two passes over a snapshot keeps the draw order stable without a
	// z-component.
	type drawable struct {
		x, y, angle float32
		sx, sy      float32
		sprite      components.Sprite
	}
	var backdrop, foreground []drawable

	query := g.drawFilter.Query()
	for query.Next() {
		pos, rot, sprite := query.Get()
		d := drawable{x: pos.X, y: pos.Y, angle: rot.Angle, sx: 1, sy: 1, sprite: *sprite}
		if g.scaleMap.Has(query.Entity()) {
			sc := g.scaleMap.Get(query.Entity())
			d.sx, d.sy = sc.X, sc.Y
		}
		if sprite.Kind == components.SpriteBackground {
			backdrop = append(backdrop, d)
		} else {
			foreground = append(foreground, d)
		}
	}

	for _, d := range backdrop {
		g.drawSprite(d.x, d.y, d.angle, d.sx, d.sy, d.sprite)
	}
	for _, d := range foreground {
		g.drawSprite(d.x, d.y, d.angle, d.sx, d.sy, d.sprite)
	}
}

// spriteHalfExtent returns the culling radius for a sprite drawn at the
// given scale: half its diagonal, which covers any rotation.
func spriteHalfExtent(sprite components.Sprite, scaleX, scaleY float32) float32 {
	w := float64(sprite.W * scaleX)
	h := float64(sprite.H * scaleY)
	return float32(math.Sqrt(w*w+h*h)) / 2
}

// drawSprite draws one sprite through the camera transform.
func (g *Game) drawSprite(wx, wy, angle, scaleX, scaleY float32, sprite components.Sprite) {
	if !g.camera.IsVisible(wx, wy, spriteHalfExtent(sprite, scaleX, scaleY)) {
		return
	}

	sx, sy := g.camera.WorldToScreen(wx, wy)
	w := sprite.W * scaleX * g.camera.Zoom
	h := sprite.H * scaleY * g.camera.Zoom
	// Screen y grows downward, so screen rotation is the negated world angle.
	rotDeg := -angle * 180 / math.Pi

	dest := rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}

	if sprite.Texture != components.TextureNone {
		tex := g.assets.Get(sprite.Texture)
		src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
		rl.DrawTexturePro(tex, src, dest, origin, rotDeg, rl.White)
		return
	}

	tint, ok := spriteTints[sprite.Kind]
	if !ok {
		tint = rl.White
	}
	rl.DrawRectanglePro(dest, origin, rotDeg, tint)
}

// drawHUD renders the overlay text and the debug panel.
func (g *Game) drawHUD() {
	c := g.census()
	g.hud.Draw(ui.HUDData{
		Title:        "Broadside",
		Score:        g.score,
		EntityCount:  c.Entities,
		Tick:         g.tick,
		Speed:        g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  int32(g.screenW),
		ScreenHeight: int32(g.screenH),
	})
	g.hud.DrawControls(int32(g.screenW), int32(g.screenH),
		"WASD move | SPACE fire | P pause | < > speed | F1 debug")

	if g.panel != nil {
		state := g.panel.Draw(ui.PanelState{
			Paused:             g.paused,
			Speed:              g.stepsPerUpdate,
			EnemySpawning:      g.enemySpawning,
			MirrorSpawning:     g.mirrorSpawning,
			FireCooldown:       g.shooting.Cooldown(),
			SpawnIntervalScale: g.intervalScale,
		})
		g.applyPanel(state)
		g.panel.DrawPerf(g.perfRows())
	}
}

// perfRows maps the registered systems onto their measured share of tick
// time, in registration order.
func (g *Game) perfRows() []ui.PerfRow {
	stats := g.perfCollector.Stats()
	var rows []ui.PerfRow
	for _, info := range g.registry.All() {
		if pct, ok := stats.PhasePct[info.ID]; ok {
			rows = append(rows, ui.PerfRow{Name: info.Name, Pct: pct})
		}
	}
	return rows
}
