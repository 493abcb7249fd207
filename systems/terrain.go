package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/isoterrain/assets"
	"github.com/automoto/isoterrain/components"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/automoto/isoterrain/shared/view"
	"github.com/automoto/isoterrain/tags"
)

// screenCanvas draws terrain faces from the tile sheet onto the screen.
type screenCanvas struct {
	screen *ebiten.Image
	bank   *assets.Bank
	geo    ebiten.GeoM
}

func (c *screenCanvas) DrawFace(_ terrain.Face, src terrain.Rect, x, y float64) {
	assets.NewImage(assets.ImageTiles, assets.RectFromFace(src)).Draw(c.screen, x, y, c.bank, c.geo)
}

// DrawTerrain renders the visible tiles back to front, depth row by depth row
// and level by level, and draws the player after the row and level it stands in.
func DrawTerrain(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.SkyColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	world := components.Terrain.Get(terrainEntry).World
	bank := components.Bank.Get(terrainEntry).Bank
	if camera.Scale <= 0 {
		return
	}

	canvas := &screenCanvas{screen: screen, bank: bank}
	canvas.geo.Scale(camera.Scale, camera.Scale)

	centre := gamemath.Point{X: camera.Position.X, Y: camera.Position.Y}
	vp := camera.Viewport

	drawPlayer := func() {}
	playerZ, playerY := -1, -1
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Actor.Get(playerEntry).Pos
		sprite := components.Sprite.Get(playerEntry).Image
		playerZ, playerY = view.Cell(pos)
		origin := view.SpriteOrigin(view.Focus(pos, sprite.DispH), centre, vp, sprite.DispW, sprite.DispH)
		drawPlayer = func() {
			sprite.Draw(screen, origin.X, origin.Y, bank, canvas.geo)
		}
	}

	startX, endX := world.StartX(centre, vp), world.EndX(centre, vp)
	for z := 0; z < world.Depth(); z++ {
		startY, endY := world.StartY(centre, z, vp), world.EndY(centre, z, vp)
		for y := startY; y < endY; y++ {
			for x := startX; x < endX; x++ {
				world.DrawTile(x, y, z, centre, vp, canvas)
			}
			if z == playerZ && y == playerY {
				drawPlayer()
			}
		}
	}
}
