// Package ui renders the heads-up display and the debug panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	scorePulseScale = 1.6
	scorePulseSec   = 0.35
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Score        int
	EntityCount  int
	Tick         int32
	Speed        int
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	lastScore  int
	pulse      *gween.Tween
	pulseScale float32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{pulseScale: 1}
}

// Update advances the score pulse animation. A score change restarts the
// pulse from its widest scale.
func (h *HUD) Update(score int, dt float32) {
	if score != h.lastScore {
		h.lastScore = score
		h.pulse = gween.New(scorePulseScale, 1, scorePulseSec, ease.OutQuad)
	}
	if h.pulse != nil {
		v, finished := h.pulse.Update(dt)
		h.pulseScale = v
		if finished {
			h.pulse = nil
			h.pulseScale = 1
		}
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	scoreSize := int32(24 * h.pulseScale)
	scoreText := fmt.Sprintf("Score: %d", data.Score)
	scoreWidth := rl.MeasureText(scoreText, scoreSize)
	rl.DrawText(scoreText, data.ScreenWidth/2-scoreWidth/2, 10, scoreSize, rl.Gold)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Entities: %d",
			data.Tick, data.Speed, data.FPS, data.EntityCount),
		10, 35, 16, rl.LightGray,
	)

	statusText := "Running"
	statusColor := rl.Green
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(statusText, 10, 55, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
