// Package actor moves a hitbox over the terrain one frame at a time.
package actor

import (
	"math"

	"github.com/automoto/isoterrain/shared/collision"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
)

// Tuning holds the movement constants. Distances are world units per frame.
type Tuning struct {
	Speed            float64
	Gravity          float64
	TerminalVelocity float64 // most negative YVel gravity will produce
	JumpImpulse      float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:            5.0,
		Gravity:          1.0,
		TerminalVelocity: -25.0,
		JumpImpulse:      7.5,
	}
}

// Actor is a box moving over the terrain. Pos is the centre of its footprint
// at the height of its feet.
type Actor struct {
	Hitbox   collision.Hitbox
	YVel     float64
	Pos      gamemath.Point3D
	Tuning   Tuning
	OnGround bool
}

// New places a 16 unit cube actor with default tuning at pos.
func New(pos gamemath.Point3D) *Actor {
	return &Actor{
		Hitbox: collision.Hitbox{Width: 16, Height: 16, Depth: 16},
		Pos:    pos,
		Tuning: DefaultTuning(),
	}
}

// Logic advances the actor by one frame: horizontal movement in dir with wall
// clamping, then gravity and ground snapping. A held jump relaunches the actor
// on every frame it lands.
func (a *Actor) Logic(dir gamemath.Direction, jumpHeld bool, w *terrain.World) {
	dx, dz := dir.Axes()
	step := a.Tuning.Speed
	if dir.Diagonal() {
		step *= gamemath.InvSqrt2
	}

	snap := false
	snapHeight := 0.0
	record := func(c collision.CollisionData) {
		if c.Type == collision.SnapUp {
			snap = true
			snapHeight = math.Max(snapHeight, c.SnapHeight)
		}
	}

	// Z before X so diagonals slide along walls
	if dz != 0 {
		record(a.moveZ(float64(dz)*step, w))
	}
	if dx != 0 {
		record(a.moveX(float64(dx)*step, w))
	}
	if snap {
		a.Pos.Y = snapHeight
	}

	if a.YVel > a.Tuning.TerminalVelocity {
		a.YVel -= a.Tuning.Gravity
	}
	a.Pos.Y += a.YVel

	a.OnGround = false
	if c := a.Hitbox.CollidingBottom(a.Pos, w); c.Type == collision.SnapUp {
		a.Pos.Y = c.SnapHeight
		a.OnGround = true
		if jumpHeld {
			a.YVel = a.Tuning.JumpImpulse
		} else {
			a.YVel = 0
		}
	}
}

func (a *Actor) moveZ(delta float64, w *terrain.World) collision.CollisionData {
	a.Pos.Z += delta
	var c collision.CollisionData
	if delta < 0 {
		c = a.Hitbox.CollidingNorth(a.Pos, w)
		if c.Type == collision.Colliding {
			a.Pos.Z = math.Floor(a.Pos.Z/terrain.TileTopHeight)*terrain.TileTopHeight + a.Hitbox.Depth/2.0
		}
	} else {
		c = a.Hitbox.CollidingSouth(a.Pos, w)
		if c.Type == collision.Colliding {
			a.Pos.Z = justBelow((math.Floor(a.Pos.Z/terrain.TileTopHeight)+1)*terrain.TileTopHeight - a.Hitbox.Depth/2.0)
		}
	}
	return c
}

func (a *Actor) moveX(delta float64, w *terrain.World) collision.CollisionData {
	a.Pos.X += delta
	var c collision.CollisionData
	if delta < 0 {
		c = a.Hitbox.CollidingWest(a.Pos, w)
		if c.Type == collision.Colliding {
			a.Pos.X = math.Floor(a.Pos.X/terrain.TileWidth)*terrain.TileWidth + a.Hitbox.Width/2.0
		}
	} else {
		c = a.Hitbox.CollidingEast(a.Pos, w)
		if c.Type == collision.Colliding {
			a.Pos.X = justBelow((math.Floor(a.Pos.X/terrain.TileWidth)+1)*terrain.TileWidth - a.Hitbox.Width/2.0)
		}
	}
	return c
}

// justBelow keeps the far face of the box inside the current tile.
func justBelow(v float64) float64 {
	return math.Nextafter(v, math.Inf(-1))
}
