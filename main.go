package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltsnake/config"
	"github.com/pthm-cable/tiltsnake/game"
	"github.com/pthm-cable/tiltsnake/prefs"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	prefsPath := flag.String("prefs", "", "High score file (empty = user config dir)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Controller updates per frame (higher = faster headless runs)")
	autopilot := flag.Bool("autopilot", false, "Steer automatically toward apples")
	mute := flag.Bool("mute", false, "Disable sound")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	path, err := prefs.Resolve(*prefsPath, "tiltsnake")
	if err != nil {
		slog.Error("failed to locate preferences", "error", err)
		os.Exit(1)
	}
	store, err := prefs.OpenFile(path)
	if err != nil {
		slog.Error("failed to load preferences", "error", err)
		os.Exit(1)
	}

	// Build game options
	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		Autopilot:      *autopilot || *headless,
		Mute:           *mute,
		Store:          store,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
			"prefs", path,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached",
					"tick", g.Tick(),
					"lives", g.Controller().Lives(),
					"high_score", g.Controller().HighScore(),
				)
				return
			}
		}
	} else {
		// Graphical mode
		if cfg.Screen.Resizable {
			rl.SetConfigFlags(rl.FlagWindowResizable)
		}
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Tilt Snake")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				break
			}
		}
	}
}
