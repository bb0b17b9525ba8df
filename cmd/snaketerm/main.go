// Command snaketerm plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tiltsnake/camera"
	"github.com/pthm-cable/tiltsnake/config"
	"github.com/pthm-cable/tiltsnake/prefs"
	"github.com/pthm-cable/tiltsnake/sfx"
	"github.com/pthm-cable/tiltsnake/systems"
)

// options holds the command-line settings.
type options struct {
	configPath string
	prefsPath  string
	logPath    string
	seed       int64
	mute       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	flag.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.StringVar(&opts.prefsPath, "prefs", "", "High score file (empty = user config dir)")
	flag.StringVar(&opts.logPath, "log", "", "Write JSON logs to this file (empty = discard)")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.Parse()

	if err := play(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// play sets up the game and runs it until the player quits.
func play(opts options) error {
	if err := config.Init(opts.configPath); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Cfg()

	// The screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if opts.logPath != "" {
		f, err := os.Create(opts.logPath)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	path, err := prefs.Resolve(opts.prefsPath, "tiltsnake")
	if err != nil {
		return fmt.Errorf("failed to locate preferences: %w", err)
	}
	store, err := prefs.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	rngSeed := opts.seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	var sound *sfx.Player
	if !opts.mute && cfg.Audio.Enabled {
		sound = sfx.NewPlayer(cfg.Audio.Volume)
		if err := sound.Init(); err != nil {
			// Non-fatal, play silently
			slog.Warn("audio disabled", "error", err)
			sound = nil
		}
	}
	defer sound.Close()

	h := newHost(screen, cfg, store, rand.New(rand.NewSource(rngSeed)), sound)
	slog.Info("starting terminal game", "seed", rngSeed, "prefs", path)
	h.run()
	return nil
}

// host runs the controller against a tcell screen.
type host struct {
	screen tcell.Screen
	ctrl   *systems.Controller
	camera *camera.Camera
	sound  *sfx.Player
	keys   heldKeys
	fps    int
	paused bool
}

func newHost(screen tcell.Screen, cfg *config.Config, store systems.HighScoreStore, rng *rand.Rand, sound *sfx.Player) *host {
	h := &host{
		screen: screen,
		camera: camera.New(1, 1, float32(cfg.World.Size)),
		sound:  sound,
		fps:    cfg.Screen.TargetFPS,
	}
	if h.fps <= 0 {
		h.fps = 60
	}
	h.fitScreen()
	h.ctrl = systems.NewController(cfg.Controller(), h.camera.Arena(), store, rng, slog.Default())
	return h
}

// fitScreen sizes the viewport to the terminal, below the status row.
// Cells are about twice as tall as wide, so each row spans two viewport units.
func (h *host) fitScreen() bool {
	cols, rows := h.screen.Size()
	if cols < 1 || rows < 2 {
		return false
	}
	return h.camera.Resize(float32(cols), float32(2*(rows-1)))
}

func (h *host) run() {
	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch h.keys.press(ev.Key(), ev.Rune(), time.Now()) {
				case actionQuit:
					return
				case actionPause:
					h.paused = !h.paused
				}
			case *tcell.EventResize:
				h.screen.Sync()
				if h.fitScreen() {
					h.ctrl.Resize(h.camera.Arena())
				}
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			if delta > 0.1 {
				delta = 0.1
			}
			if !h.paused {
				out := h.ctrl.Update(delta, h.keys.input(now))
				h.sound.Play(out)
			}
			h.Render(h.ctrl.Frame())
		}
	}
}

var (
	styleTrail  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHazard = tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Render implements systems.Renderer.
func (h *host) Render(f systems.Frame) {
	h.screen.Clear()

	for i := len(f.Trail) - 1; i >= 0; i-- {
		h.plot(f.Trail[i].X, f.Trail[i].Y, 'o', styleTrail)
	}
	for _, p := range f.Food {
		h.plot(p.X, p.Y, '@', styleFood)
	}
	for _, p := range f.Hazards {
		h.plot(p.X, p.Y, '*', styleHazard)
	}
	h.plot(f.Position.X, f.Position.Y, '●', styleHead)

	cols, _ := h.screen.Size()
	status := fmt.Sprintf(" Score %d  Best %d  Life %d  %.1fs  [arrows/hjkl] move  [r] reset  [q] quit ",
		f.Score, f.HighScore, f.Life, f.Elapsed)
	if h.paused {
		status = " PAUSED" + status
	}
	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, 0, r, nil, styleStatus)
	}

	h.screen.Show()
}

// plot draws one glyph at a world position.
func (h *host) plot(wx, wy float64, r rune, style tcell.Style) {
	sx, sy := h.camera.WorldToScreen(float32(wx), float32(wy))
	col, row := int(sx), int(sy/2)+1
	cols, rows := h.screen.Size()
	if col < 0 || col >= cols || row < 1 || row >= rows {
		return
	}
	h.screen.SetContent(col, row, r, nil, style)
}
