package systems

import (
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// MotionConfig holds the snake's movement tuning.
type MotionConfig struct {
	Drag            float64 // Linear drag per second
	RadiusFactor    float64 // Body radius as a fraction of the short arena side
	Acceleration    float64 // Velocity gained per second of held input
	KeyNudge        float64 // Direct position shift per second of held key
	TiltSensitivity float64 // Multiplier applied to analog tilt axes
	MaxSpeed        float64
}

// ControllerConfig gathers everything the controller needs to run.
type ControllerConfig struct {
	Motion      MotionConfig
	Trail       TrailConfig
	Food        SpawnPolicy
	Hazards     SpawnPolicy
	Hazard      HazardPolicy
	ShrinkOnEat bool
}

// DefaultControllerConfig returns the shipped tuning.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Motion: MotionConfig{
			Drag:            0.5,
			RadiusFactor:    1.0 / 40,
			Acceleration:    500,
			KeyNudge:        80,
			TiltSensitivity: 10,
			MaxSpeed:        4000,
		},
		Trail:       DefaultTrailConfig(),
		Food:        DefaultFoodPolicy(),
		Hazards:     DefaultHazardPolicy(),
		Hazard:      HazardReset,
		ShrinkOnEat: true,
	}
}

// life is the per-life snake state. A reset swaps in a fresh value.
type life struct {
	id               int
	position         r2.Vec
	velocity         r2.Vec
	baseRadius       float64
	radiusMultiplier float64
	score            int
	start            float64
	trail            *Trail
}

func newLife(id int, arena Arena, now float64, cfg ControllerConfig) life {
	center := arena.Center()
	return life{
		id:               id,
		position:         center,
		baseRadius:       cfg.Motion.RadiusFactor * arena.MinSide(),
		radiusMultiplier: 1,
		start:            now,
		trail:            NewTrail(center, now, cfg.Trail),
	}
}

// Controller runs the snake: motion, trail sampling, spawners and collisions.
// Food and the high score survive a reset; everything in life does not.
type Controller struct {
	cfg    ControllerConfig
	arena  Arena
	store  HighScoreStore
	logger *slog.Logger

	food    *Spawner
	hazards *Spawner

	now       float64
	highScore int
	lives     int
	cur       life
}

// NewController creates a controller for the given arena and starts the first life.
// store may be nil, in which case the high score is kept in memory only.
func NewController(cfg ControllerConfig, arena Arena, store HighScoreStore, rng *rand.Rand, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		cfg:     cfg,
		arena:   arena,
		store:   store,
		logger:  logger,
		food:    NewSpawner(cfg.Food, rng),
		hazards: NewSpawner(cfg.Hazards, rng),
	}
	if store != nil {
		c.highScore = store.Integer(HighScoreKey, 0)
	}
	c.startLife()
	return c
}

func (c *Controller) startLife() {
	c.lives++
	c.cur = newLife(c.lives, c.arena, c.now, c.cfg)
	c.hazards.Clear()
}

// Reset ends the current life and starts a new one at the arena centre.
// Apples stay where they are; bombs are cleared.
func (c *Controller) Reset(cause ResetCause) LifeSummary {
	summary := LifeSummary{
		Life:     c.cur.id,
		Score:    c.cur.score,
		Duration: c.now - c.cur.start,
		Segments: c.cur.trail.Len(),
		Cause:    cause,
	}
	c.logger.Debug("life ended",
		"life", summary.Life,
		"cause", cause.String(),
		"score", summary.Score,
		"duration", summary.Duration,
		"segments", summary.Segments,
	)
	c.startLife()
	return summary
}

// Resize adopts a new arena and reinitialises everything, apples included.
func (c *Controller) Resize(arena Arena) LifeSummary {
	c.arena = arena
	c.food.Clear()
	return c.Reset(CauseResize)
}

// Update advances the game by delta seconds.
func (c *Controller) Update(delta float64, in Input) Outcome {
	var out Outcome
	c.now += delta

	if in.Reset {
		s := c.Reset(CauseManual)
		out.Died = &s
		return out
	}

	c.integrate(delta, in)

	out.Sample = c.cur.trail.Sample(c.cur.position, c.now)

	c.food.Tick(delta, c.arena.Width, c.arena.Height)
	c.hazards.Tick(delta, c.arena.Width, c.arena.Height)

	radius := c.Radius()

	if c.cur.trail.CollidesWithSelf(c.cur.position, radius*0.5) {
		out.SelfCollision = true
		s := c.Reset(CauseSelfCollision)
		out.Died = &s
		return out
	}

	if c.food.TryConsume(c.cur.position, 2*c.cfg.Food.Radius) {
		out.Ate = true
		out.NewHighScore = c.scoreApple()
		if c.cfg.ShrinkOnEat {
			c.cur.trail.Shrink()
		}
	}

	if c.hazards.TryConsume(c.cur.position, 2*c.cfg.Hazards.Radius) {
		out.Hazard = true
		switch c.cfg.Hazard {
		case HazardDuplicateHead:
			c.cur.trail.DuplicateHead()
		default:
			s := c.Reset(CauseHazard)
			out.Died = &s
			return out
		}
	}

	out.WallBounce = ReflectWalls(&c.cur.position, &c.cur.velocity, radius, c.arena)
	return out
}

// integrate applies input, drag and the speed cap, then moves the snake.
func (c *Controller) integrate(delta float64, in Input) {
	m := c.cfg.Motion
	l := &c.cur

	var keys r2.Vec
	if in.Left {
		keys.X--
	}
	if in.Right {
		keys.X++
	}
	if in.Up {
		keys.Y++
	}
	if in.Down {
		keys.Y--
	}
	l.position = r2.Add(l.position, r2.Scale(delta*m.KeyNudge, keys))

	// Device tilt is landscape: rolling right (Y) steers +x, pitching (X) steers -y.
	tilt := r2.Vec{X: in.TiltY, Y: -in.TiltX}
	accel := r2.Add(keys, r2.Scale(m.TiltSensitivity, tilt))
	l.velocity = r2.Add(l.velocity, r2.Scale(delta*m.Acceleration, accel))

	l.velocity = r2.Sub(l.velocity, r2.Scale(clamp01(delta*m.Drag), l.velocity))
	l.velocity = limitLength(l.velocity, m.MaxSpeed)

	l.position = r2.Add(l.position, r2.Scale(delta, l.velocity))
}

// scoreApple counts an eaten apple and writes a new high score through.
func (c *Controller) scoreApple() bool {
	c.cur.score++
	if c.cur.score <= c.highScore {
		return false
	}
	c.highScore = c.cur.score
	if c.store != nil {
		c.store.PutInteger(HighScoreKey, c.highScore)
		if err := c.store.Flush(); err != nil {
			c.logger.Warn("high score not saved", "score", c.highScore, "error", err)
		}
	}
	c.logger.Info("new high score", "score", c.highScore, "life", c.cur.id)
	return true
}

// Frame returns a render snapshot of the current state.
func (c *Controller) Frame() Frame {
	return Frame{
		Arena:        c.arena,
		Trail:        c.cur.trail.Points(),
		Position:     c.cur.position,
		Radius:       c.Radius(),
		Food:         c.food.Points(),
		FoodRadius:   c.cfg.Food.Radius,
		Hazards:      c.hazards.Points(),
		HazardRadius: c.cfg.Hazards.Radius,
		Score:        c.cur.score,
		HighScore:    c.highScore,
		Elapsed:      c.Elapsed(),
		Life:         c.cur.id,
	}
}

// Radius returns the current body radius.
func (c *Controller) Radius() float64 { return c.cur.baseRadius * c.cur.radiusMultiplier }

// Position returns the snake's position.
func (c *Controller) Position() r2.Vec { return c.cur.position }

// Velocity returns the snake's velocity.
func (c *Controller) Velocity() r2.Vec { return c.cur.velocity }

// Trail returns the live trail.
func (c *Controller) Trail() *Trail { return c.cur.trail }

// Food returns the apple spawner.
func (c *Controller) Food() *Spawner { return c.food }

// Hazards returns the bomb spawner.
func (c *Controller) Hazards() *Spawner { return c.hazards }

// Arena returns the current arena.
func (c *Controller) Arena() Arena { return c.arena }

// Score returns apples eaten this life.
func (c *Controller) Score() int { return c.cur.score }

// HighScore returns the best score seen.
func (c *Controller) HighScore() int { return c.highScore }

// Now returns the simulation clock in seconds.
func (c *Controller) Now() float64 { return c.now }

// Elapsed returns seconds since the current life started.
func (c *Controller) Elapsed() float64 { return c.now - c.cur.start }

// Lives returns how many lives have been started, the current one included.
func (c *Controller) Lives() int { return c.lives }
