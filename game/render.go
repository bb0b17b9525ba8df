package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltsnake/components"
	"github.com/pthm-cable/tiltsnake/ui"
)

// Palette
var (
	colorBackground = rl.Color{R: 18, G: 22, B: 28, A: 255}
	colorTrail      = rl.Color{R: 90, G: 200, B: 120, A: 255}
	colorHead       = rl.Color{R: 170, G: 255, B: 190, A: 255}
	colorFood       = rl.Color{R: 230, G: 60, B: 60, A: 255}
	colorHazard     = rl.Color{R: 60, G: 60, B: 70, A: 255}
	colorFuse       = rl.Color{R: 255, G: 190, B: 60, A: 255}
)

// Update reads input and advances the controller by the frame time.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	delta := float64(rl.GetFrameTime())
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	in := g.readInput()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(delta, in)
		// Reset is an edge, not a held state
		in.Reset = false
	}
	g.syncScene()
}

// Draw renders the scene and HUD.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	g.drawKind(components.SpriteTrail, colorTrail)
	g.drawKind(components.SpriteFood, colorFood)
	g.drawKind(components.SpriteHazard, colorHazard)
	g.drawKind(components.SpriteHead, colorHead)

	g.drawHUD()

	rl.EndDrawing()
	g.perf.Record(phaseDraw, time.Since(start))
}

// drawKind renders every entity of one kind as a circle.
func (g *Game) drawKind(kind components.SpriteKind, color rl.Color) {
	g.scene.Each(kind, func(pos *components.Position, body *components.Body, _ *components.Sprite) {
		if !g.camera.IsVisible(pos.X, pos.Y, body.Radius) {
			return
		}
		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)
		r := g.camera.Length(body.Radius)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, r, color)
		if kind == components.SpriteHazard {
			rl.DrawCircleV(rl.Vector2{X: sx + r*0.5, Y: sy - r*0.7}, r*0.25, colorFuse)
		}
	})
}

// drawHUD renders score, timers, the reset button and the perf panel.
func (g *Game) drawHUD() {
	hud := g.scene.hud
	reset := g.hud.Draw(ui.HUDData{
		Score:        hud.Score,
		HighScore:    hud.HighScore,
		Life:         hud.Life,
		Elapsed:      hud.Elapsed,
		Speed:        g.stepsPerUpdate,
		Paused:       g.paused,
		ScreenWidth:  int32(rl.GetScreenWidth()),
		ScreenHeight: int32(rl.GetScreenHeight()),
	})
	if reset {
		g.resetRequested = true
	}

	if g.showPerf {
		names := g.perf.SortedNames()
		times := make(map[string]time.Duration, len(names))
		for _, name := range names {
			times[name] = g.perf.Avg(name)
		}
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseTimes: times,
			Total:      g.perf.Total(),
			FPS:        rl.GetFPS(),
		}, names)
	}
}
