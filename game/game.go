// Package game hosts the controller: frame timing, input, drawing,
// sound and telemetry around one systems.Controller.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/tiltsnake/camera"
	"github.com/pthm-cable/tiltsnake/config"
	"github.com/pthm-cable/tiltsnake/sfx"
	"github.com/pthm-cable/tiltsnake/systems"
	"github.com/pthm-cable/tiltsnake/telemetry"
	"github.com/pthm-cable/tiltsnake/ui"
)

// maxFrameDelta caps the step after a stall (window drag, breakpoint).
const maxFrameDelta = 0.1

// Options configures a Game.
type Options struct {
	Seed           int64
	Headless       bool
	OutputDir      string                 // CSV output directory, empty disables
	LogStats       bool                   // Log window stats via slog
	Autopilot      bool                   // Steer automatically instead of reading input
	Mute           bool                   // Skip audio initialization
	Store          systems.HighScoreStore // High score persistence, nil keeps it in memory
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	rng  *rand.Rand
	ctrl *systems.Controller

	scene     *Scene
	camera    *camera.Camera
	autopilot *Autopilot
	sound     *sfx.Player
	hud       *ui.HUD
	perfPanel *ui.PerfPanel

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	perf          *PerfStats
	logStats      bool

	// State
	tick           int32
	paused         bool
	headless       bool
	showPerf       bool
	resetRequested bool
	stepsPerUpdate int
	padScale       float64 // Tilt per unit of gamepad stick deflection
}

// NewGameWithOptions creates a game from the global config.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		rng:            rand.New(rand.NewSource(opts.Seed)),
		scene:          NewScene(),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:           NewPerfStats(),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
	}

	w, h := float32(cfg.Screen.Width), float32(cfg.Screen.Height)
	if !opts.Headless {
		w, h = screenSize()
	}
	g.camera = camera.New(w, h, float32(cfg.World.Size))

	g.ctrl = systems.NewController(cfg.Controller(), g.camera.Arena(), opts.Store, g.rng, slog.Default())

	if cfg.Snake.TiltSensitivity > 0 {
		g.padScale = 1 / cfg.Snake.TiltSensitivity
	}
	if opts.Autopilot {
		g.autopilot = NewAutopilot(cfg.Snake.TiltSensitivity)
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(10, 110)
	}

	if !opts.Headless && !opts.Mute && cfg.Audio.Enabled {
		g.sound = sfx.NewPlayer(cfg.Audio.Volume)
		if err := g.sound.Init(); err != nil {
			// Non-fatal, the game runs without sound
			slog.Warn("audio disabled", "error", err)
			g.sound = nil
		}
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
			slog.Info("output enabled", "dir", om.Dir())
		}
	}

	g.scene.Render(g.ctrl.Frame())
	return g
}

// UpdateHeadless runs simulation steps at the configured fixed delta without any rendering.
func (g *Game) UpdateHeadless() {
	delta := config.Cfg().Derived.FrameDelta
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(delta, g.autoInput())
	}
	g.syncScene()
}

// autoInput returns the autopilot's steering, or no input without one.
func (g *Game) autoInput() systems.Input {
	if g.autopilot == nil {
		return systems.Input{}
	}
	return g.autopilot.Input(g.ctrl.Frame(), g.ctrl.Velocity())
}

// step advances the controller once and dispatches the outcome.
func (g *Game) step(delta float64, in systems.Input) systems.Outcome {
	start := time.Now()
	out := g.ctrl.Update(delta, in)
	g.perf.Record(phaseUpdate, time.Since(start))

	g.sound.Play(out)
	g.recordOutcome(out)
	g.tick++
	return out
}

// syncScene mirrors the controller state into the render scene.
func (g *Game) syncScene() {
	start := time.Now()
	g.scene.Render(g.ctrl.Frame())
	g.perf.Record(phaseScene, time.Since(start))
}

// Tick returns the number of controller updates so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Controller returns the running controller.
func (g *Game) Controller() *systems.Controller {
	return g.ctrl
}

// Scene returns the render scene.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Unload flushes telemetry and releases resources.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
	g.sound.Close()
}
