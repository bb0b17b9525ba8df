// Package components defines ECS components for the render scene.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Body is the collision circle drawn for an entity.
type Body struct {
	Radius float32
}

// SpriteKind selects how an entity is drawn.
type SpriteKind uint8

const (
	SpriteTrail  SpriteKind = iota // Body segment behind the head
	SpriteHead                     // Live position of the snake
	SpriteFood                     // Apple
	SpriteHazard                   // Bomb
)

// String returns the kind name.
func (k SpriteKind) String() string {
	switch k {
	case SpriteTrail:
		return "trail"
	case SpriteHead:
		return "head"
	case SpriteFood:
		return "food"
	case SpriteHazard:
		return "hazard"
	}
	return "unknown"
}

// Sprite tags a drawable entity.
// Order is the index within its source collection, 0 being the newest trail
// sample or the oldest spawned point.
type Sprite struct {
	Kind  SpriteKind
	Order int32
}
