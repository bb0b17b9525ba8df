package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// SpawnPolicy controls how a Spawner's population fluctuates.
type SpawnPolicy struct {
	SpawnRate       float64 // Spawn chance per second with an empty field
	SoftTarget      float64 // Population at which spawning stops
	DespawnRate     float64 // Base despawn chance per second
	DespawnPerPoint float64 // Extra despawn chance per second per live point
	Radius          float64 // Drawn radius of each point
}

// DefaultFoodPolicy returns the apple spawn policy.
func DefaultFoodPolicy() SpawnPolicy {
	return SpawnPolicy{
		SpawnRate:   1.0,
		SoftTarget:  5,
		DespawnRate: 0.19,
		Radius:      10,
	}
}

// DefaultHazardPolicy returns the bomb spawn policy.
func DefaultHazardPolicy() SpawnPolicy {
	return SpawnPolicy{
		SpawnRate:       0.12,
		SoftTarget:      5,
		DespawnRate:     0.1,
		DespawnPerPoint: 0.006,
		Radius:          10,
	}
}

// SpawnChance returns the probability of a spawn this tick for a population of n.
// The chance is zero at or above the soft target and approaches
// min(1, SpawnRate*delta) as the population drops to zero.
func (p SpawnPolicy) SpawnChance(delta float64, n int) float64 {
	if p.SoftTarget <= 0 {
		return 0
	}
	headroom := clamp01(1 - float64(n)/p.SoftTarget)
	return clamp01(p.SpawnRate*delta) * headroom
}

// DespawnChance returns the probability of the oldest point being removed this tick.
func (p SpawnPolicy) DespawnChance(delta float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return clamp01(delta * (p.DespawnRate + p.DespawnPerPoint*float64(n)))
}

// Ceiling returns the largest population the policy can reach.
func (p SpawnPolicy) Ceiling() int {
	if p.SoftTarget <= 0 {
		return 0
	}
	return int(math.Ceil(p.SoftTarget))
}

// Spawner maintains a self-regulating set of point targets (apples or bombs).
// Points are kept in spawn order; the oldest is removed first on despawn.
type Spawner struct {
	policy SpawnPolicy
	rng    *rand.Rand
	points []r2.Vec
}

// NewSpawner creates an empty spawner drawing randomness from rng.
func NewSpawner(policy SpawnPolicy, rng *rand.Rand) *Spawner {
	return &Spawner{
		policy: policy,
		rng:    rng,
		points: make([]r2.Vec, 0, policy.Ceiling()+1),
	}
}

// Tick rolls the spawn and despawn dice once for a frame of length delta.
// New points are placed uniformly in [0,width) x [0,height).
func (s *Spawner) Tick(delta, width, height float64) {
	if s.rng.Float64() < s.policy.SpawnChance(delta, len(s.points)) {
		s.points = append(s.points, r2.Vec{
			X: s.rng.Float64() * width,
			Y: s.rng.Float64() * height,
		})
	}
	if s.rng.Float64() < s.policy.DespawnChance(delta, len(s.points)) {
		s.points = s.points[1:]
	}
}

// TryConsume removes the first point, in spawn order, lying closer than radius
// to pos. It removes at most one point.
func (s *Spawner) TryConsume(pos r2.Vec, radius float64) bool {
	for i, p := range s.points {
		if distance(pos, p) < radius {
			s.points = append(s.points[:i], s.points[i+1:]...)
			return true
		}
	}
	return false
}

// Nearest returns the point closest to pos.
func (s *Spawner) Nearest(pos r2.Vec) (r2.Vec, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range s.points {
		if d := distance(pos, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return r2.Vec{}, false
	}
	return s.points[best], true
}

// Add inserts a point as the newest entry.
func (s *Spawner) Add(p r2.Vec) {
	s.points = append(s.points, p)
}

// Retain drops every point outside [0,width) x [0,height).
func (s *Spawner) Retain(width, height float64) {
	kept := s.points[:0]
	for _, p := range s.points {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			kept = append(kept, p)
		}
	}
	s.points = kept
}

// Clear removes all points.
func (s *Spawner) Clear() { s.points = s.points[:0] }

// Len returns the population.
func (s *Spawner) Len() int { return len(s.points) }

// Policy returns the spawn policy.
func (s *Spawner) Policy() SpawnPolicy { return s.policy }

// Points returns a copy of the points in spawn order.
func (s *Spawner) Points() []r2.Vec {
	out := make([]r2.Vec, len(s.points))
	copy(out, s.points)
	return out
}
