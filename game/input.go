package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltsnake/systems"
)

// screenSize returns the current window size.
func screenSize() (w, h float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// handleInput processes window and keyboard controls that are not snake input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// readInput samples keyboard and gamepad into controller input.
func (g *Game) readInput() systems.Input {
	in := systems.Input{
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Reset: rl.IsKeyPressed(rl.KeyR) || g.resetRequested,
	}
	g.resetRequested = false

	// Left stick stands in for device tilt. Screen y is down, so stick down
	// pitches toward -y in the world.
	if rl.IsGamepadAvailable(0) {
		x := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX))
		y := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY))
		in.TiltY += x * g.padScale
		in.TiltX += y * g.padScale
	}

	if g.autopilot != nil {
		auto := g.autopilot.Input(g.ctrl.Frame(), g.ctrl.Velocity())
		in.TiltX += auto.TiltX
		in.TiltY += auto.TiltY
	}
	return in
}

// handleResize checks for window resize and reinitialises the arena.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := screenSize()
	if !g.camera.Resize(w, h) {
		return
	}
	arena := g.camera.Arena()
	slog.Debug("arena resized", "width", arena.Width, "height", arena.Height)
	g.recordLife(g.ctrl.Resize(arena))
}
