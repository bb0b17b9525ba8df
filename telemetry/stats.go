package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/tiltsnake/systems"
)

// LifeRecord is one finished life, written as a row of lives.csv.
type LifeRecord struct {
	Life     int     `csv:"life"`
	EndTime  float64 `csv:"end_time"`
	Score    int     `csv:"score"`
	Duration float64 `csv:"duration"`
	Segments int     `csv:"segments"`
	Cause    string  `csv:"cause"`
}

// NewLifeRecord converts a controller summary into a record.
func NewLifeRecord(s systems.LifeSummary, endTime float64) LifeRecord {
	return LifeRecord{
		Life:     s.Life,
		EndTime:  endTime,
		Score:    s.Score,
		Duration: s.Duration,
		Segments: s.Segments,
		Cause:    s.Cause.String(),
	}
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStart float64 `csv:"-"`
	WindowEnd   float64 `csv:"window_end"`

	// Events during window
	ApplesEaten    int `csv:"apples"`
	HazardHits     int `csv:"hazard_hits"`
	SelfCollisions int `csv:"self_collisions"`
	WallBounces    int `csv:"wall_bounces"`
	Growths        int `csv:"growths"`
	LivesEnded     int `csv:"lives_ended"`

	// Score distribution over lives that ended in the window
	ScoreMean float64 `csv:"score_mean"`
	ScoreStd  float64 `csv:"score_std"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`

	// Life length distribution (seconds)
	DurationMean float64 `csv:"duration_mean"`
	DurationP50  float64 `csv:"duration_p50"`
	DurationP90  float64 `csv:"duration_p90"`

	// State at window end
	HighScore   int `csv:"high_score"`
	TrailLength int `csv:"trail_length"`
	FoodCount   int `csv:"food"`
	HazardCount int `csv:"hazards"`
}

// Summary holds mean, standard deviation and quantiles of a sample.
type Summary struct {
	Mean, Std float64
	P50, P90  float64
}

// Summarize computes a Summary of values. An empty slice yields zeros.
// values is left untouched.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	values = append([]float64(nil), values...)
	sort.Float64s(values)

	s := Summary{
		Mean: stat.Mean(values, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStart),
		slog.Float64("window_end", s.WindowEnd),
		slog.Int("apples", s.ApplesEaten),
		slog.Int("hazard_hits", s.HazardHits),
		slog.Int("self_collisions", s.SelfCollisions),
		slog.Int("wall_bounces", s.WallBounces),
		slog.Int("growths", s.Growths),
		slog.Int("lives_ended", s.LivesEnded),
		slog.Float64("score_mean", s.ScoreMean),
		slog.Float64("score_std", s.ScoreStd),
		slog.Float64("score_p50", s.ScoreP50),
		slog.Float64("score_p90", s.ScoreP90),
		slog.Float64("duration_mean", s.DurationMean),
		slog.Float64("duration_p50", s.DurationP50),
		slog.Float64("duration_p90", s.DurationP90),
		slog.Int("high_score", s.HighScore),
		slog.Int("trail_length", s.TrailLength),
		slog.Int("food", s.FoodCount),
		slog.Int("hazards", s.HazardCount),
	)
}

// LogStats outputs the window stats via slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
