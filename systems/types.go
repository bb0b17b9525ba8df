package systems

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Input is one frame of player intent, polled by the host.
type Input struct {
	Left, Right, Up, Down bool
	TiltX, TiltY          float64 // Accelerometer-style analog axes
	Reset                 bool
}

// Arena is the playable area, [0,Width) x [0,Height) with y pointing up.
type Arena struct {
	Width, Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() r2.Vec {
	return r2.Vec{X: a.Width / 2, Y: a.Height / 2}
}

// MinSide returns the shorter arena dimension.
func (a Arena) MinSide() float64 {
	return min(a.Width, a.Height)
}

// HighScoreStore is the persistence collaborator for the high score.
type HighScoreStore interface {
	Integer(key string, def int) int
	PutInteger(key string, value int)
	Flush() error
}

// HighScoreKey is the preferences key the high score lives under.
const HighScoreKey = "highscore"

// HazardPolicy selects what touching a bomb does.
type HazardPolicy uint8

const (
	HazardReset         HazardPolicy = iota // Bomb ends the life
	HazardDuplicateHead                     // Bomb lengthens the body by one sample
)

func (p HazardPolicy) String() string {
	switch p {
	case HazardReset:
		return "reset"
	case HazardDuplicateHead:
		return "duplicate_head"
	default:
		return fmt.Sprintf("HazardPolicy(%d)", uint8(p))
	}
}

// ParseHazardPolicy parses the config spelling of a policy.
func ParseHazardPolicy(s string) (HazardPolicy, error) {
	switch s {
	case "", "reset":
		return HazardReset, nil
	case "duplicate_head":
		return HazardDuplicateHead, nil
	}
	return 0, fmt.Errorf("unknown hazard policy %q", s)
}

// ResetCause records why a life ended.
type ResetCause uint8

const (
	CauseStart ResetCause = iota
	CauseSelfCollision
	CauseHazard
	CauseManual
	CauseResize
)

func (c ResetCause) String() string {
	switch c {
	case CauseStart:
		return "start"
	case CauseSelfCollision:
		return "self_collision"
	case CauseHazard:
		return "hazard"
	case CauseManual:
		return "manual"
	case CauseResize:
		return "resize"
	default:
		return "unknown"
	}
}

// LifeSummary describes a finished life.
type LifeSummary struct {
	Life     int
	Score    int
	Duration float64 // Seconds of simulation time
	Segments int
	Cause    ResetCause
}

// Outcome reports the game events of one Update call.
type Outcome struct {
	Sample        SampleResult
	Ate           bool
	Hazard        bool
	SelfCollision bool
	WallBounce    bool
	NewHighScore  bool
	Died          *LifeSummary // Set when the life ended this frame
}

// Frame is the render snapshot handed to the drawing collaborator.
type Frame struct {
	Arena        Arena
	Trail        []r2.Vec // Head first
	Position     r2.Vec
	Radius       float64
	Food         []r2.Vec
	FoodRadius   float64
	Hazards      []r2.Vec
	HazardRadius float64
	Score        int
	HighScore    int
	Elapsed      float64
	Life         int
}

// Renderer consumes a frame snapshot.
type Renderer interface {
	Render(f Frame)
}
