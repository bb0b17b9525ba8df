// Package ui draws the heads-up display over the arena.
package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score        int
	HighScore    int
	Life         int
	Elapsed      float64 // Seconds in the current life
	Speed        int
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// Controls is the key legend shown at the bottom of the screen.
const Controls = "[arrows/WASD] move  [R] reset  [space] pause  [</>] speed  [F3] perf  [F11] fullscreen"

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD and reports whether the reset button was clicked.
func (h *HUD) Draw(data HUDData) bool {
	gui.Label(rl.Rectangle{X: 10, Y: 10, Width: 300, Height: 20},
		fmt.Sprintf("Score: %d   Best: %d", data.Score, data.HighScore))
	gui.Label(rl.Rectangle{X: 10, Y: 32, Width: 300, Height: 20},
		fmt.Sprintf("Life %d   %.1fs", data.Life, data.Elapsed))

	if data.Paused {
		rl.DrawText("PAUSED", 10, 56, 20, rl.Yellow)
	}
	if data.Speed > 1 {
		rl.DrawText(fmt.Sprintf("Speed: %dx", data.Speed), 10, 80, 16, rl.LightGray)
	}

	rl.DrawText(Controls, 10, data.ScreenHeight-25, 14, rl.Gray)

	return gui.Button(rl.Rectangle{X: float32(data.ScreenWidth) - 110, Y: 10, Width: 100, Height: 30}, "Reset")
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
	FPS        int32
}

// PerfPanel renders the frame phase timing panel.
type PerfPanel struct {
	x, y int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, sortedNames []string) {
	x := p.x
	y := p.y

	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range sortedNames {
		avg := data.PhaseTimes[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-8s %6s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
