package telemetry

import (
	"testing"

	"github.com/pthm-cable/tiltsnake/systems"
)

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9.9) {
		t.Error("ShouldFlush before window end")
	}
	if !c.ShouldFlush(10) {
		t.Error("expected ShouldFlush at window end")
	}

	c.Record(systems.Outcome{Ate: true, Sample: systems.SampleGrew})
	c.Record(systems.Outcome{Ate: true, WallBounce: true})
	c.Record(systems.Outcome{
		Hazard: true,
		Died:   &systems.LifeSummary{Score: 2, Duration: 4, Cause: systems.CauseHazard},
	})
	c.Record(systems.Outcome{
		SelfCollision: true,
		Died:          &systems.LifeSummary{Score: 6, Duration: 8, Cause: systems.CauseSelfCollision},
	})

	stats := c.Flush(10, Snapshot{HighScore: 6, TrailLength: 1, FoodCount: 3, HazardCount: 0})

	if stats.ApplesEaten != 2 || stats.HazardHits != 1 || stats.SelfCollisions != 1 {
		t.Errorf("event counts = %+v", stats)
	}
	if stats.WallBounces != 1 || stats.Growths != 1 || stats.LivesEnded != 2 {
		t.Errorf("event counts = %+v", stats)
	}
	if stats.ScoreMean != 4 || stats.DurationMean != 6 {
		t.Errorf("means = %v/%v, want 4/6", stats.ScoreMean, stats.DurationMean)
	}
	if stats.HighScore != 6 || stats.FoodCount != 3 {
		t.Errorf("snapshot fields = %+v", stats)
	}

	// Counters reset for the next window
	if c.ShouldFlush(15) {
		t.Error("window should restart at flush time")
	}
	next := c.Flush(20, Snapshot{})
	if next.WindowStart != 10 || next.ApplesEaten != 0 || next.LivesEnded != 0 {
		t.Errorf("second window = %+v, want clean counters from t=10", next)
	}
}

func TestNewCollectorDefaultsWindow(t *testing.T) {
	if got := NewCollector(0).WindowDuration(); got != 60 {
		t.Errorf("window = %v, want 60", got)
	}
}
