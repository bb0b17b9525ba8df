package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/tiltsnake/systems"
)

// Autopilot steers toward the nearest apple and away from nearby bombs.
// It drives headless runs and the demo mode.
type Autopilot struct {
	Cruise      float64 // Target speed in world units per second
	AvoidRadius float64 // Bombs closer than this push the snake away
	Sensitivity float64 // Controller tilt sensitivity, used to scale output
}

// NewAutopilot creates an autopilot for the given tilt sensitivity.
func NewAutopilot(sensitivity float64) *Autopilot {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return &Autopilot{
		Cruise:      150,
		AvoidRadius: 60,
		Sensitivity: sensitivity,
	}
}

// Input returns the tilt that moves vel toward the desired velocity.
// Steering strength never exceeds one held arrow key.
func (a *Autopilot) Input(f systems.Frame, vel r2.Vec) systems.Input {
	var desired r2.Vec
	if food, ok := nearest(f.Food, f.Position); ok {
		desired = unit(r2.Sub(food, f.Position))
	}
	for _, h := range f.Hazards {
		away := r2.Sub(f.Position, h)
		d := r2.Norm(away)
		if d >= a.AvoidRadius {
			continue
		}
		desired = r2.Add(desired, r2.Scale(2*(1-d/a.AvoidRadius), unit(away)))
	}

	var target r2.Vec
	if desired != (r2.Vec{}) {
		target = r2.Scale(a.Cruise, unit(desired))
	}
	steer := r2.Scale(1/a.Cruise, r2.Sub(target, vel))
	if n := r2.Norm(steer); n > 1 {
		steer = r2.Scale(1/n, steer)
	}

	return systems.Input{
		TiltY: steer.X / a.Sensitivity,
		TiltX: -steer.Y / a.Sensitivity,
	}
}

func nearest(points []r2.Vec, from r2.Vec) (r2.Vec, bool) {
	var best r2.Vec
	bestD := -1.0
	for _, p := range points {
		d := r2.Norm(r2.Sub(p, from))
		if bestD < 0 || d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD >= 0
}

func unit(v r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/n, v)
}
