package telemetry

import "github.com/pthm-cable/tiltsnake/systems"

// Collector accumulates game events within time windows and produces WindowStats.
type Collector struct {
	windowDuration float64
	windowStart    float64

	// Event counters for current window
	apples         int
	hazardHits     int
	selfCollisions int
	wallBounces    int
	growths        int

	scores    []float64
	durations []float64
}

// NewCollector creates a new stats collector.
// windowDuration is the length of each window in simulation seconds.
func NewCollector(windowDuration float64) *Collector {
	if windowDuration <= 0 {
		windowDuration = 60
	}
	return &Collector{windowDuration: windowDuration}
}

// Record counts the events of one controller update.
func (c *Collector) Record(out systems.Outcome) {
	if out.Ate {
		c.apples++
	}
	if out.Hazard {
		c.hazardHits++
	}
	if out.SelfCollision {
		c.selfCollisions++
	}
	if out.WallBounce {
		c.wallBounces++
	}
	if out.Sample == systems.SampleGrew {
		c.growths++
	}
	if out.Died != nil {
		c.RecordLife(*out.Died)
	}
}

// RecordLife adds a finished life to the window's distributions.
func (c *Collector) RecordLife(s systems.LifeSummary) {
	c.scores = append(c.scores, float64(s.Score))
	c.durations = append(c.durations, s.Duration)
}

// ShouldFlush returns true if the current window has run its course.
func (c *Collector) ShouldFlush(now float64) bool {
	return now-c.windowStart >= c.windowDuration
}

// Snapshot is the controller state sampled at window end.
type Snapshot struct {
	HighScore   int
	TrailLength int
	FoodCount   int
	HazardCount int
}

// SnapshotOf samples a controller.
func SnapshotOf(ctrl *systems.Controller) Snapshot {
	return Snapshot{
		HighScore:   ctrl.HighScore(),
		TrailLength: ctrl.Trail().Len(),
		FoodCount:   ctrl.Food().Len(),
		HazardCount: ctrl.Hazards().Len(),
	}
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(now float64, snap Snapshot) WindowStats {
	scores := Summarize(c.scores)
	durations := Summarize(c.durations)

	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   now,

		ApplesEaten:    c.apples,
		HazardHits:     c.hazardHits,
		SelfCollisions: c.selfCollisions,
		WallBounces:    c.wallBounces,
		Growths:        c.growths,
		LivesEnded:     len(c.scores),

		ScoreMean: scores.Mean,
		ScoreStd:  scores.Std,
		ScoreP50:  scores.P50,
		ScoreP90:  scores.P90,

		DurationMean: durations.Mean,
		DurationP50:  durations.P50,
		DurationP90:  durations.P90,

		HighScore:   snap.HighScore,
		TrailLength: snap.TrailLength,
		FoodCount:   snap.FoodCount,
		HazardCount: snap.HazardCount,
	}

	// Reset for next window
	c.windowStart = now
	c.apples = 0
	c.hazardHits = 0
	c.selfCollisions = 0
	c.wallBounces = 0
	c.growths = 0
	c.scores = c.scores[:0]
	c.durations = c.durations[:0]

	return stats
}

// WindowDuration returns the window length in seconds.
func (c *Collector) WindowDuration() float64 {
	return c.windowDuration
}
