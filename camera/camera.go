// Package camera maps the arena onto the window.
package camera

import "github.com/pthm-cable/tiltsnake/systems"

// Camera is an extend viewport: the shorter window axis always shows
// WorldSize units and the longer axis shows more of the world.
// World space is y-up with the origin at the bottom-left corner.
type Camera struct {
	// WorldSize is the world extent along the shorter window axis
	WorldSize float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Visible world dimensions
	WorldW, WorldH float32

	// Screen pixels per world unit
	Scale float32
}

// New creates a camera for the given window size.
func New(viewportW, viewportH, worldSize float32) *Camera {
	c := &Camera{WorldSize: worldSize}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and recomputes the world extent.
// Returns true if the world extent changed.
func (c *Camera) Resize(viewportW, viewportH float32) bool {
	if viewportW <= 0 || viewportH <= 0 {
		return false
	}
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return false
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	short := viewportW
	if viewportH < short {
		short = viewportH
	}
	c.Scale = short / c.WorldSize
	c.WorldW = viewportW / c.Scale
	c.WorldH = viewportH / c.Scale
	return true
}

// Arena returns the playable area matching the visible world.
func (c *Camera) Arena() systems.Arena {
	return systems.Arena{Width: float64(c.WorldW), Height: float64(c.WorldH)}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return wx * c.Scale, c.ViewportH - wy*c.Scale
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return sx / c.Scale, (c.ViewportH - sy) / c.Scale
}

// Length converts a world distance to screen pixels.
func (c *Camera) Length(d float32) float32 {
	return d * c.Scale
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// overlaps the visible world (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}
