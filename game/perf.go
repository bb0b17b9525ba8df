package game

import (
	"log/slog"
	"sort"
	"time"
)

// Timed phases of a frame.
const (
	phaseUpdate = "update"
	phaseScene  = "scene"
	phaseDraw   = "draw"
)

// perfSamples is the rolling window per phase, ~2 seconds at 60fps.
const perfSamples = 120

// PerfStats tracks rolling execution time per frame phase.
type PerfStats struct {
	rings map[string]*perfRing
}

type perfRing struct {
	samples [perfSamples]time.Duration
	next    int
	n       int
}

// NewPerfStats creates a new performance stats tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{rings: make(map[string]*perfRing)}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	r, ok := p.rings[name]
	if !ok {
		r = &perfRing{}
		p.rings[name] = r
	}
	r.samples[r.next] = d
	r.next = (r.next + 1) % perfSamples
	if r.n < perfSamples {
		r.n++
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	r, ok := p.rings[name]
	if !ok || r.n == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.samples[:r.n] {
		total += d
	}
	return total / time.Duration(r.n)
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.rings {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns phase names sorted by average duration (descending).
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.rings))
	for name := range p.rings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return p.Avg(names[i]) > p.Avg(names[j])
	})
	return names
}

// LogValue implements slog.LogValuer for structured logging.
func (p *PerfStats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(p.rings)+1)
	for _, name := range p.SortedNames() {
		attrs = append(attrs, slog.Duration(name, p.Avg(name)))
	}
	attrs = append(attrs, slog.Duration("total", p.Total()))
	return slog.GroupValue(attrs...)
}
