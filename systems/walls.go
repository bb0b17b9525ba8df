package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ReflectWalls keeps a circle of the given radius inside the arena.
// Each axis is handled on its own: when the leading edge is past a wall, or
// touching it while still moving outward, the position is clamped and the
// velocity component is mirrored back inside. Returns true if any axis bounced.
func ReflectWalls(pos, vel *r2.Vec, radius float64, arena Arena) bool {
	bx := reflectAxis(&pos.X, &vel.X, radius, arena.Width)
	by := reflectAxis(&pos.Y, &vel.Y, radius, arena.Height)
	return bx || by
}

func reflectAxis(p, v *float64, radius, size float64) bool {
	lo, hi := radius, size-radius
	switch {
	case *p < lo || (*p == lo && *v < 0):
		*p = lo
		*v = math.Abs(*v)
		return true
	case *p > hi || (*p == hi && *v > 0):
		*p = hi
		*v = -math.Abs(*v)
		return true
	}
	return false
}
