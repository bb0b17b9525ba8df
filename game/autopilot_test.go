package game

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/tiltsnake/systems"
)

// accel converts autopilot tilt back to world-space steering.
func accel(a *Autopilot, in systems.Input) r2.Vec {
	return r2.Vec{X: a.Sensitivity * in.TiltY, Y: -a.Sensitivity * in.TiltX}
}

func TestAutopilotSteersToFood(t *testing.T) {
	a := NewAutopilot(10)
	f := systems.Frame{
		Position: r2.Vec{X: 100, Y: 100},
		Food:     []r2.Vec{{X: 400, Y: 100}, {X: 150, Y: 150}},
	}

	got := accel(a, a.Input(f, r2.Vec{}))

	// Nearest apple is up and to the right
	if !(got.X > 0 && got.Y > 0) {
		t.Errorf("steer = %v, want toward (150,150)", got)
	}
	if math.Abs(got.X-got.Y) > 1e-9 {
		t.Errorf("steer = %v, want 45 degrees", got)
	}
	if n := r2.Norm(got); n > 1+1e-9 {
		t.Errorf("|steer| = %v, want <= 1", n)
	}
}

func TestAutopilotAvoidsHazards(t *testing.T) {
	a := NewAutopilot(10)
	f := systems.Frame{
		Position: r2.Vec{X: 100, Y: 100},
		Hazards:  []r2.Vec{{X: 80, Y: 100}},
	}

	got := accel(a, a.Input(f, r2.Vec{}))
	if !(got.X > 0) || math.Abs(got.Y) > 1e-9 {
		t.Errorf("steer = %v, want straight away from the bomb", got)
	}

	// Out of range bombs are ignored
	f.Hazards = []r2.Vec{{X: 100 - a.AvoidRadius - 1, Y: 100}}
	if in := a.Input(f, r2.Vec{}); in != (systems.Input{}) {
		t.Errorf("input = %+v, want none", in)
	}
}

func TestAutopilotBrakesWithoutTarget(t *testing.T) {
	a := NewAutopilot(10)
	f := systems.Frame{Position: r2.Vec{X: 100, Y: 100}}

	got := accel(a, a.Input(f, r2.Vec{X: 0, Y: 300}))
	if !(got.Y < 0) || math.Abs(got.X) > 1e-9 {
		t.Errorf("steer = %v, want braking along -y", got)
	}
}

func TestAutopilotHoldsCruise(t *testing.T) {
	a := NewAutopilot(10)
	f := systems.Frame{
		Position: r2.Vec{X: 100, Y: 100},
		Food:     []r2.Vec{{X: 300, Y: 100}},
	}

	in := a.Input(f, r2.Vec{X: a.Cruise})
	if in.TiltX != 0 || in.TiltY != 0 {
		t.Errorf("input at cruise = %+v, want zero", in)
	}
}
