package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/broadside/ui"
)

// Update advances the game one frame in graphical mode: input, then
// fixed-dt simulation steps from the frame-time accumulator.
func (g *Game) Update() {
	g.handleInput()

	if g.hud != nil {
		g.hud.Update(g.score, rl.GetFrameTime())
	}

	if g.paused {
		return
	}

	// Fixed-step accumulator keeps the simulation rate independent of
	// the render rate.
	g.dtAccum += rl.GetFrameTime()
	if g.dtAccum > 0.25 {
		g.dtAccum = 0.25 // clamp after a stall so we don't spiral
	}

	in := g.readInput()
	for g.dtAccum >= g.dtTarget {
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.Step(in)
		}
		g.dtAccum -= g.dtTarget
	}
}

// UpdateHeadless advances the simulation without graphics. The ship holds
// fire so every pass stays exercised; there is no other autopilot.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(InputState{Fire: true})
	}
}

// readInput samples the movement and fire keys into an InputState.
func (g *Game) readInput() InputState {
	var in InputState

	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		in.AxisX--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		in.AxisX++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		in.AxisY--
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		in.AxisY++
	}
	in.Fire = rl.IsKeyDown(rl.KeySpace)

	return in
}

// handleInput processes the non-movement keys.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 8 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyF1) && g.panel != nil {
		g.panel.Visible = !g.panel.Visible
	}
}

// applyPanel pushes debug-panel changes back into the simulation.
func (g *Game) applyPanel(state ui.PanelState) {
	g.paused = state.Paused
	g.stepsPerUpdate = state.Speed
	g.enemySpawning = state.EnemySpawning
	g.mirrorSpawning = state.MirrorSpawning
	g.shooting.SetCooldown(state.FireCooldown)
	g.setIntervalScale(state.SpawnIntervalScale)
}

// setIntervalScale rescales every spawner timer relative to the previous
// scale, so the configured 1.0s/1.5s ratio between spawners is preserved.
func (g *Game) setIntervalScale(scale float32) {
	if scale <= 0 || scale == g.intervalScale {
		return
	}
	ratio := scale / g.intervalScale
	g.intervalScale = scale

	for q := g.spawnerFilter.Query(); q.Next(); {
		sp := q.Get()
		sp.Timer.Interval *= ratio
	}
	for q := g.mirrorSpawnerFilter.Query(); q.Next(); {
		ms := q.Get()
		ms.Timer.Interval *= ratio
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
}
