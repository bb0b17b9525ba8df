package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/tiltsnake/components"
	"github.com/pthm-cable/tiltsnake/systems"
)

// hudState holds the scalar part of the last rendered frame.
type hudState struct {
	Score     int
	HighScore int
	Elapsed   float64
	Life      int
}

// Scene mirrors controller frames into ECS entities for drawing.
// Entities are reused between frames; only the surplus is removed.
type Scene struct {
	world *ecs.World

	mapper *ecs.Map3[components.Position, components.Body, components.Sprite]
	filter *ecs.Filter3[components.Position, components.Body, components.Sprite]

	entities []ecs.Entity
	hud      hudState
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Body, components.Sprite](world),
		filter: ecs.NewFilter3[components.Position, components.Body, components.Sprite](world),
	}
}

// Render implements systems.Renderer.
func (s *Scene) Render(f systems.Frame) {
	n := len(f.Trail) + 1 + len(f.Food) + len(f.Hazards)

	// Grow or shrink the entity pool to fit
	for len(s.entities) < n {
		var (
			pos    components.Position
			body   components.Body
			sprite components.Sprite
		)
		s.entities = append(s.entities, s.mapper.NewEntity(&pos, &body, &sprite))
	}
	for len(s.entities) > n {
		last := len(s.entities) - 1
		s.world.RemoveEntity(s.entities[last])
		s.entities = s.entities[:last]
	}

	i := 0
	put := func(x, y, radius float64, kind components.SpriteKind, order int) {
		pos, body, sprite := s.mapper.Get(s.entities[i])
		pos.X, pos.Y = float32(x), float32(y)
		body.Radius = float32(radius)
		sprite.Kind = kind
		sprite.Order = int32(order)
		i++
	}

	for j, p := range f.Trail {
		put(p.X, p.Y, f.Radius, components.SpriteTrail, j)
	}
	put(f.Position.X, f.Position.Y, f.Radius, components.SpriteHead, 0)
	for j, p := range f.Food {
		put(p.X, p.Y, f.FoodRadius, components.SpriteFood, j)
	}
	for j, p := range f.Hazards {
		put(p.X, p.Y, f.HazardRadius, components.SpriteHazard, j)
	}

	s.hud = hudState{
		Score:     f.Score,
		HighScore: f.HighScore,
		Elapsed:   f.Elapsed,
		Life:      f.Life,
	}
}

// Each calls fn for every entity of the given kind.
func (s *Scene) Each(kind components.SpriteKind, fn func(pos *components.Position, body *components.Body, sprite *components.Sprite)) {
	query := s.filter.Query()
	for query.Next() {
		pos, body, sprite := query.Get()
		if sprite.Kind != kind {
			continue
		}
		fn(pos, body, sprite)
	}
}

// Count returns the number of entities of the given kind.
func (s *Scene) Count(kind components.SpriteKind) int {
	n := 0
	s.Each(kind, func(*components.Position, *components.Body, *components.Sprite) { n++ })
	return n
}

// Len returns the total number of live entities.
func (s *Scene) Len() int {
	return len(s.entities)
}
