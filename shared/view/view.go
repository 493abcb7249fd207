// Package view computes where the camera looks and how large the visible
// area is, in the unscaled world pixels the terrain renderer works in.
package view

import (
	"math"

	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
)

// Lens scales the screen so the same amount of world is visible at any
// resolution. At Base resolution and Zoom 1 the scale is Factor.
type Lens struct {
	BaseWidth  float64
	BaseHeight float64
	Factor     float64
}

// Scale returns the screen scale for a w x h screen at the given zoom.
func (l Lens) Scale(w, h int, zoom float64) float64 {
	return math.Sqrt(float64(w)*float64(h)/(l.BaseWidth*l.BaseHeight)) * l.Factor * zoom
}

// Effective returns the screen size in world pixels, truncated to whole units.
func Effective(w, h int, scale float64) terrain.Viewport {
	return terrain.Viewport{
		EffWidth:  float64(int(float64(w) / scale)),
		EffHeight: float64(int(float64(h) / scale)),
	}
}

// Focus is the projected point the camera tries to centre on: the actor's
// projection raised by half the sprite height.
func Focus(pos gamemath.Point3D, spriteHeight float64) gamemath.Point {
	return pos.Project().Sub(gamemath.Point{Y: spriteHeight / 2.0})
}

// Clamp keeps the camera inside the world so no space past the edge shows.
// On an axis where the world is smaller than the viewport the camera sits on
// the world's middle.
func Clamp(focus gamemath.Point, w *terrain.World, vp terrain.Viewport) gamemath.Point {
	return gamemath.Point{
		X: clampAxis(focus.X, vp.EffWidth, float64(w.Width())*terrain.TileWidth),
		Y: clampAxis(focus.Y, vp.EffHeight, float64(w.Depth())*terrain.TileTopHeight),
	}
}

func clampAxis(v, eff, extent float64) float64 {
	lo, hi := eff/2.0, extent-eff/2.0
	if lo > hi {
		return extent / 2.0
	}
	return math.Max(lo, math.Min(v, hi))
}

// SpriteOrigin is the top left corner of a spriteW x spriteH image drawn at
// focus, relative to a camera looking at centre.
func SpriteOrigin(focus, centre gamemath.Point, vp terrain.Viewport, spriteW, spriteH float64) gamemath.Point {
	return gamemath.Point{
		X: (vp.EffWidth-spriteW)/2.0 - (centre.X - focus.X),
		Y: (vp.EffHeight-spriteH)/2.0 - (centre.Y - focus.Y),
	}
}

// Cell returns the depth row and height level an actor is drawn after.
func Cell(pos gamemath.Point3D) (z, y int) {
	return int(math.Floor(pos.Z / terrain.TileTopHeight)), int(math.Floor(pos.Y / terrain.TileHeight))
}

// StepZoom moves zoom by step and keeps it within [lo, hi].
func StepZoom(zoom, step, lo, hi float64) float64 {
	return math.Max(lo, math.Min(zoom+step, hi))
}
