package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// TrailConfig holds the sampling thresholds of a trail.
type TrailConfig struct {
	SampleDist    float64 // Spacing between committed samples
	SampleTime    float64 // Seconds between growth ticks
	EpsilonFactor float64 // Inserts shorter than SampleDist*EpsilonFactor are skipped
}

// DefaultTrailConfig returns the tuning the game ships with.
func DefaultTrailConfig() TrailConfig {
	return TrailConfig{
		SampleDist:    10,
		SampleTime:    1.0,
		EpsilonFactor: 0.5,
	}
}

// SampleResult describes what a call to Trail.Sample did.
type SampleResult uint8

const (
	SampleNone SampleResult = iota // Trail unchanged
	SampleSlid                     // Head inserted, tail dropped (length unchanged)
	SampleGrew                     // Head inserted, tail kept (length +1)
)

func (r SampleResult) String() string {
	switch r {
	case SampleSlid:
		return "slid"
	case SampleGrew:
		return "grew"
	default:
		return "none"
	}
}

// Trail is the sampled body of the snake.
// points[0] is the sample nearest the current position, the last point is the tail.
type Trail struct {
	cfg        TrailConfig
	points     []r2.Vec
	lastSample float64
}

// NewTrail creates a single-point trail at origin with the sample timer set to now.
func NewTrail(origin r2.Vec, now float64, cfg TrailConfig) *Trail {
	points := make([]r2.Vec, 1, 32)
	points[0] = origin
	return &Trail{
		cfg:        cfg,
		points:     points,
		lastSample: now,
	}
}

// Sample advances the trail toward current.
//
// Nothing happens while current stays within SampleDist of the head. Otherwise a
// new head is placed SampleDist from the old one in the direction of current.
// Inside the sample time window the tail is dropped so the body only slides;
// once the window has elapsed the tail is kept and the window restarts.
func (t *Trail) Sample(current r2.Vec, now float64) SampleResult {
	head := t.points[0]
	d := distance(current, head)
	if !(d > t.cfg.SampleDist) {
		return SampleNone
	}

	dir := r2.Scale(1/d, r2.Sub(current, head))
	newHead := r2.Add(head, r2.Scale(t.cfg.SampleDist, dir))
	if !finite(newHead) || !(distance(newHead, head) > t.cfg.SampleDist*t.cfg.EpsilonFactor) {
		return SampleNone
	}

	t.pushFront(newHead)

	if now-t.lastSample < t.cfg.SampleTime {
		t.points = t.points[:len(t.points)-1]
		return SampleSlid
	}
	t.lastSample = now
	return SampleGrew
}

// CollidesWithSelf reports whether current lies within clearance of any sample
// other than the head. Copies stacked on the head by DuplicateHead count as the head.
func (t *Trail) CollidesWithSelf(current r2.Vec, clearance float64) bool {
	body := 1
	for body < len(t.points) && t.points[body] == t.points[0] {
		body++
	}
	for _, p := range t.points[body:] {
		if distance(current, p) < clearance {
			return true
		}
	}
	return false
}

// Shrink removes the tail. A single-point trail is left as is.
func (t *Trail) Shrink() bool {
	if len(t.points) <= 1 {
		return false
	}
	t.points = t.points[:len(t.points)-1]
	return true
}

// DuplicateHead prepends a copy of the head, lengthening the body in place.
func (t *Trail) DuplicateHead() {
	t.pushFront(t.points[0])
}

func (t *Trail) pushFront(p r2.Vec) {
	t.points = append(t.points, r2.Vec{})
	copy(t.points[1:], t.points)
	t.points[0] = p
}

// Len returns the number of samples.
func (t *Trail) Len() int { return len(t.points) }

// Head returns the newest sample.
func (t *Trail) Head() r2.Vec { return t.points[0] }

// Tail returns the oldest sample.
func (t *Trail) Tail() r2.Vec { return t.points[len(t.points)-1] }

// LastSample returns the time of the last committed (growth) sample.
func (t *Trail) LastSample() float64 { return t.lastSample }

// Points returns a copy of the samples, head first.
func (t *Trail) Points() []r2.Vec {
	out := make([]r2.Vec, len(t.points))
	copy(out, t.points)
	return out
}
