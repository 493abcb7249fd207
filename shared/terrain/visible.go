package terrain

import (
	"math"

	"github.com/automoto/isoterrain/shared/gamemath"
)

// Viewport is the visible area in world pixels, already divided by the camera scale.
type Viewport struct {
	EffWidth  float64
	EffHeight float64
}

// The visible range functions invert the screen placement used by DrawTile.
// Start bounds are inclusive and end bounds exclusive; both are clamped to
// [0, extent] so a camera far off the grid yields an empty range.

// StartX is the first column that can reach the screen.
func (w *World) StartX(centre gamemath.Point, vp Viewport) int {
	a := int(math.Floor((0.0 - vp.EffWidth/2.0 + centre.X) / TileWidth))
	return clampIndex(a, w.width)
}

// EndX is one past the last column that can reach the screen.
func (w *World) EndX(centre gamemath.Point, vp Viewport) int {
	a := int(math.Floor((vp.EffWidth/2.0+centre.X)/TileWidth)) + 1
	return clampIndex(a, w.width)
}

// StartY is the first height level of depth row z that can reach the screen.
func (w *World) StartY(centre gamemath.Point, z int, vp Viewport) int {
	a := int(math.Floor((0.0 - vp.EffHeight/2.0 + centre.Y - float64(z)*TileTopHeight) / TileTopHeight))
	return clampIndex(a, w.Height())
}

// EndY is one past the last height level of depth row z that can reach the screen.
// It is at least one past the highest level whose top face, placed the way
// DrawTile places it, still overlaps the viewport.
func (w *World) EndY(centre gamemath.Point, z int, vp Viewport) int {
	a := int(math.Floor((vp.EffHeight+centre.Y-float64(z)*TileTopHeight)/TileTopHeight)) + 1
	top := int(math.Floor((vp.EffHeight/2.0+float64(z)*TileTopHeight-centre.Y+TileTopHeight)/TileHeight)) + 1
	return clampIndex(max(a, top), w.Height())
}

func clampIndex(a, upper int) int {
	if a < 0 {
		return 0
	}
	if a > upper {
		return upper
	}
	return a
}
