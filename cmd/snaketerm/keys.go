package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tiltsnake/systems"
)

// keyHold is how long a key counts as held after its last press.
// Terminals report presses and autorepeats but never releases.
const keyHold = 150 * time.Millisecond

const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
	numDirs
)

// action is a non-steering key result.
type action uint8

const (
	actionNone action = iota
	actionReset
	actionPause
	actionQuit
)

// heldKeys turns a stream of key presses into held-key state.
type heldKeys struct {
	last  [numDirs]time.Time
	reset bool
}

// press records a key event and reports any action it triggers.
func (h *heldKeys) press(key tcell.Key, r rune, now time.Time) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		h.last[dirLeft] = now
	case tcell.KeyRight:
		h.last[dirRight] = now
	case tcell.KeyUp:
		h.last[dirUp] = now
	case tcell.KeyDown:
		h.last[dirDown] = now
	case tcell.KeyRune:
		switch r {
		case 'h', 'a':
			h.last[dirLeft] = now
		case 'l', 'd':
			h.last[dirRight] = now
		case 'k', 'w':
			h.last[dirUp] = now
		case 'j', 's':
			h.last[dirDown] = now
		case 'r':
			h.reset = true
			return actionReset
		case ' ':
			return actionPause
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// input returns the controller input at now and consumes any pending reset.
func (h *heldKeys) input(now time.Time) systems.Input {
	held := func(dir int) bool {
		t := h.last[dir]
		return !t.IsZero() && now.Sub(t) < keyHold
	}
	in := systems.Input{
		Left:  held(dirLeft),
		Right: held(dirRight),
		Up:    held(dirUp),
		Down:  held(dirDown),
		Reset: h.reset,
	}
	h.reset = false
	return in
}
