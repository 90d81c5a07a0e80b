package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelState holds the tunables exposed by the debug panel.
type PanelState struct {
	Paused             bool
	Speed              int
	EnemySpawning      bool
	MirrorSpawning     bool
	FireCooldown       float32
	SpawnIntervalScale float32
}

// DebugPanel renders the runtime tuning controls.
type DebugPanel struct {
	x, y    float32
	Visible bool
}

// NewDebugPanel creates a debug panel anchored at the given position.
func NewDebugPanel(x, y float32) *DebugPanel {
	return &DebugPanel{x: x, y: y}
}

// Draw renders the panel and returns the possibly-updated state.
func (p *DebugPanel) Draw(state PanelState) PanelState {
	if !p.Visible {
		return state
	}

	x := p.x
	y := p.y
	const width = float32(220)

	rl.DrawRectangle(int32(x-10), int32(y-10), int32(width+20), 238, rl.Color{R: 20, G: 25, B: 30, A: 240})
	rl.DrawText("Debug", int32(x), int32(y), 16, rl.White)
	y += 25

	pauseText := "Pause"
	if state.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, pauseText) {
		state.Paused = !state.Paused
	}
	y += 34

	rl.DrawText("Speed (steps per frame)", int32(x), int32(y), 14, rl.Gray)
	y += 18
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: width - 60, Height: 20},
		"1", "8",
		float32(state.Speed), 1, 8,
	)
	rl.DrawText(fmt.Sprintf("%dx", state.Speed), int32(x+width-50), int32(y+2), 16, rl.LightGray)
	state.Speed = int(newSpeed + 0.5)
	y += 30

	rl.DrawText("Fire cooldown (sec)", int32(x), int32(y), 14, rl.Gray)
	y += 18
	state.FireCooldown = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: width - 60, Height: 20},
		"0", "0.5",
		state.FireCooldown, 0, 0.5,
	)
	rl.DrawText(fmt.Sprintf("%.2f", state.FireCooldown), int32(x+width-50), int32(y+2), 16, rl.LightGray)
	y += 30

	rl.DrawText("Spawn interval x", int32(x), int32(y), 14, rl.Gray)
	y += 18
	state.SpawnIntervalScale = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: width - 60, Height: 20},
		"0.25", "4",
		state.SpawnIntervalScale, 0.25, 4,
	)
	rl.DrawText(fmt.Sprintf("%.2f", state.SpawnIntervalScale), int32(x+width-50), int32(y+2), 16, rl.LightGray)
	y += 30

	state.EnemySpawning = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Enemy spawners", state.EnemySpawning,
	)
	y += 24
	state.MirrorSpawning = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Mirror spawners", state.MirrorSpawning,
	)

	return state
}

// PerfRow is one line of the per-system timing readout: a display name and
// its share of tick time in percent.
type PerfRow struct {
	Name string
	Pct  float64
}

// DrawPerf renders the per-system tick-time breakdown below the panel.
func (p *DebugPanel) DrawPerf(rows []PerfRow) {
	if !p.Visible || len(rows) == 0 {
		return
	}

	x := p.x
	y := p.y + 244
	const width = float32(220)

	rl.DrawRectangle(int32(x-10), int32(y-10), int32(width+20), int32(len(rows)*18+36), rl.Color{R: 20, G: 25, B: 30, A: 240})
	rl.DrawText("Tick time", int32(x), int32(y), 16, rl.White)
	y += 22

	for _, r := range rows {
		rl.DrawText(r.Name, int32(x), int32(y), 14, rl.LightGray)
		rl.DrawText(fmt.Sprintf("%5.1f%%", r.Pct), int32(x+width-50), int32(y), 14, rl.Gray)
		y += 18
	}
}
