// Package collision tests an axis-aligned box against the terrain height grid.
package collision

import (
	"math"

	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
)

type CollisionType int

const (
	None CollisionType = iota
	SnapUp
	Colliding
)

func (c CollisionType) String() string {
	switch c {
	case None:
		return "none"
	case SnapUp:
		return "snap-up"
	case Colliding:
		return "colliding"
	}
	return "invalid"
}

// CollisionData is the result of one check. SnapHeight is only meaningful for SnapUp.
type CollisionData struct {
	Type       CollisionType
	SnapHeight float64
}

// Hitbox is a box centred on the X and Z of a position, extending upwards from
// its Y. It holds no state between queries.
type Hitbox struct {
	Width  float64
	Height float64
	Depth  float64
}

// Span is an inclusive range of tile indices.
type Span struct {
	Start, Stop int
}

func span(centre, extent, tileSize float64) Span {
	return Span{
		Start: int(math.Floor((centre - extent/2.0) / tileSize)),
		Stop:  int(math.Floor((centre + extent/2.0) / tileSize)),
	}
}

func edge(v, tileSize float64) Span {
	i := int(math.Floor(v / tileSize))
	return Span{Start: i, Stop: i}
}

// XSpan returns the columns the box overlaps at pos.
func (h Hitbox) XSpan(pos gamemath.Point3D) Span {
	return span(pos.X, h.Width, terrain.TileWidth)
}

// ZSpan returns the rows the box overlaps at pos.
func (h Hitbox) ZSpan(pos gamemath.Point3D) Span {
	return span(pos.Z, h.Depth, terrain.TileTopHeight)
}

// wall reports Colliding if any in-range tile in the spans rises above pos.Y.
func wall(xs, zs Span, pos gamemath.Point3D, w *terrain.World) CollisionData {
	for x := xs.Start; x <= xs.Stop; x++ {
		for z := zs.Start; z <= zs.Stop; z++ {
			tile, ok := w.TileAt(x, z)
			if !ok {
				continue
			}
			if tile.SnapHeight()-pos.Y > 0.0 {
				return CollisionData{Type: Colliding}
			}
		}
	}
	return CollisionData{Type: None}
}

// CollidingNorth checks the row under the box's north face.
func (h Hitbox) CollidingNorth(pos gamemath.Point3D, w *terrain.World) CollisionData {
	return wall(h.XSpan(pos), edge(pos.Z-h.Depth/2.0, terrain.TileTopHeight), pos, w)
}

// CollidingSouth checks the row under the box's south face.
func (h Hitbox) CollidingSouth(pos gamemath.Point3D, w *terrain.World) CollisionData {
	return wall(h.XSpan(pos), edge(pos.Z+h.Depth/2.0, terrain.TileTopHeight), pos, w)
}

// CollidingWest checks the column under the box's west face.
func (h Hitbox) CollidingWest(pos gamemath.Point3D, w *terrain.World) CollisionData {
	return wall(edge(pos.X-h.Width/2.0, terrain.TileWidth), h.ZSpan(pos), pos, w)
}

// CollidingEast checks the column under the box's east face.
func (h Hitbox) CollidingEast(pos gamemath.Point3D, w *terrain.World) CollisionData {
	return wall(edge(pos.X+h.Width/2.0, terrain.TileWidth), h.ZSpan(pos), pos, w)
}

// Settle lifts pos onto the highest surface under the footprint. A position
// already clear of the ground is returned unchanged.
func (h Hitbox) Settle(pos gamemath.Point3D, w *terrain.World) gamemath.Point3D {
	if c := h.CollidingBottom(pos, w); c.Type == SnapUp {
		pos.Y = c.SnapHeight
	}
	return pos
}

// CollidingBottom scans the whole footprint and returns SnapUp with the
// highest tile surface above pos.Y, or None if the box is clear of the ground.
func (h Hitbox) CollidingBottom(pos gamemath.Point3D, w *terrain.World) CollisionData {
	result := CollisionData{Type: None}
	xs, zs := h.XSpan(pos), h.ZSpan(pos)
	for x := xs.Start; x <= xs.Stop; x++ {
		for z := zs.Start; z <= zs.Stop; z++ {
			tile, ok := w.TileAt(x, z)
			if !ok {
				continue
			}
			snap := tile.SnapHeight()
			if snap-pos.Y > 0.0 {
				result.Type = SnapUp
				result.SnapHeight = math.Max(result.SnapHeight, snap)
			}
		}
	}
	return result
}
