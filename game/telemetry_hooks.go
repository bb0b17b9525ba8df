package game

import (
	"log/slog"

	"github.com/pthm-cable/tiltsnake/systems"
	"github.com/pthm-cable/tiltsnake/telemetry"
)

// recordOutcome feeds one update into the collector and writes finished lives.
func (g *Game) recordOutcome(out systems.Outcome) {
	g.collector.Record(out)
	if out.Died != nil {
		g.writeLife(*out.Died)
	}
	g.flushTelemetry()
}

// recordLife handles a life ended outside Update, such as a resize.
func (g *Game) recordLife(s systems.LifeSummary) {
	g.collector.RecordLife(s)
	g.writeLife(s)
}

func (g *Game) writeLife(s systems.LifeSummary) {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteLife(telemetry.NewLifeRecord(s, g.ctrl.Now())); err != nil {
		slog.Error("failed to write life", "error", err)
	}
}

// flushTelemetry closes the stats window once it has run its course.
func (g *Game) flushTelemetry() {
	now := g.ctrl.Now()
	if !g.collector.ShouldFlush(now) {
		return
	}

	stats := g.collector.Flush(now, telemetry.SnapshotOf(g.ctrl))

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "phases", g.perf)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteWindow(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}
