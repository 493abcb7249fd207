package collision

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
)

const (
	TagWall  = "wall"
	TagActor = "actor"
)

// Footprint is a top-down resolv space around an actor. Each tile whose
// surface rises above the actor's feet becomes one wall object, so the
// overlay can show which tiles the hitbox would run into.
type Footprint struct {
	Space *resolv.Space
	Actor *resolv.Object
	Walls []*resolv.Object
}

// NewFootprint builds the space for the tiles within reach tiles of pos.
// Space X follows tile columns and space Y follows tile rows.
func NewFootprint(w *terrain.World, pos gamemath.Point3D, h Hitbox, reach int) *Footprint {
	cw, ch := int(terrain.TileWidth), int(terrain.TileTopHeight)
	space := resolv.NewSpace(w.Width()*cw, w.Depth()*ch, cw, ch)

	xs, zs := h.XSpan(pos), h.ZSpan(pos)
	f := &Footprint{Space: space}
	for x := xs.Start - reach; x <= xs.Stop+reach; x++ {
		for z := zs.Start - reach; z <= zs.Stop+reach; z++ {
			tile, ok := w.TileAt(x, z)
			if !ok || tile.SnapHeight() <= pos.Y {
				continue
			}
			obj := resolv.NewObject(float64(x)*terrain.TileWidth, float64(z)*terrain.TileTopHeight,
				terrain.TileWidth, terrain.TileTopHeight, TagWall)
			space.Add(obj)
			f.Walls = append(f.Walls, obj)
		}
	}

	f.Actor = resolv.NewObject(pos.X-h.Width/2, pos.Z-h.Depth/2, h.Width, h.Depth, TagActor)
	space.Add(f.Actor)
	return f
}

// Touching returns the walls sharing a cell with the actor after moving it by
// (dx, dz). The actor itself does not move.
func (f *Footprint) Touching(dx, dz float64) []*resolv.Object {
	check := f.Actor.Check(dx, dz, TagWall)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(TagWall)
}
