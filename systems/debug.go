package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/isoterrain/components"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/fonts"
	"github.com/automoto/isoterrain/shared/collision"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/automoto/isoterrain/tags"
)

// debugReach is how many tiles around the hitbox the overlay inspects.
const debugReach = 2

// DrawDebug outlines the tiles that wall the player at its current height,
// filling the ones it overlaps, and prints the collision checks.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	a := components.Actor.Get(playerEntry).Actor
	world := components.Terrain.Get(terrainEntry).World

	footprint := collision.NewFootprint(world, a.Pos, a.Hitbox, debugReach)
	touching := map[*resolv.Object]bool{}
	for _, obj := range footprint.Touching(0, 0) {
		touching[obj] = true
	}

	// Footprint rectangles are drawn in the plane of the player's feet.
	toScreen := func(obj *resolv.Object) (x, y, w, h float32) {
		sx := camera.Viewport.EffWidth/2 + obj.X - camera.Position.X
		sy := camera.Viewport.EffHeight/2 + obj.Y - a.Pos.Y - camera.Position.Y
		return float32(sx * camera.Scale), float32(sy * camera.Scale),
			float32(obj.W * camera.Scale), float32(obj.H * camera.Scale)
	}

	for _, obj := range footprint.Walls {
		x, y, w, h := toScreen(obj)
		if touching[obj] {
			vector.FillRect(screen, x, y, w, h, cfg.BlackOverlay, false)
		}
		outline(screen, x, y, w, h, cfg.UI.DebugWallColor)
	}
	x, y, w, h := toScreen(footprint.Actor)
	outline(screen, x, y, w, h, cfg.UI.DebugFloorColor)

	drawChecks(screen, a.Hitbox, a.Pos, world, len(footprint.Walls), len(touching))
}

func outline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func drawChecks(screen *ebiten.Image, hb collision.Hitbox, pos gamemath.Point3D, w *terrain.World, walls, touching int) {
	face := fonts.MonoSmall.Get()
	lineHeight := face.Metrics().Height.Ceil()
	y := int(cfg.UI.HUDHeight) + lineHeight

	xs, zs := hb.XSpan(pos), hb.ZSpan(pos)
	lines := []string{
		fmt.Sprintf("pos   %.2f %.2f %.2f", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("tiles x[%d,%d] z[%d,%d]", xs.Start, xs.Stop, zs.Start, zs.Stop),
		fmt.Sprintf("north %s", hb.CollidingNorth(pos, w).Type),
		fmt.Sprintf("south %s", hb.CollidingSouth(pos, w).Type),
		fmt.Sprintf("west  %s", hb.CollidingWest(pos, w).Type),
		fmt.Sprintf("east  %s", hb.CollidingEast(pos, w).Type),
		fmt.Sprintf("floor %s", hb.CollidingBottom(pos, w).Type),
		fmt.Sprintf("walls %d touching %d", walls, touching),
	}
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.UI.HUDPadding, y, cfg.UI.DebugTextColor)
		y += lineHeight
	}
}
