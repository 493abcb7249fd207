package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/isoterrain/components"
)

// UpdateHUD refreshes the status bar with the measured frame rate.
func UpdateHUD(ecs *ecs.ECS) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	fps := 0.0
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		fps = components.Clock.Get(clockEntry).Framerate()
	}
	level := ""
	if terrainEntry, ok := components.Terrain.First(ecs.World); ok {
		level = components.Terrain.Get(terrainEntry).Name
	}

	hud.SetStatus(fps, level)
	hud.Update()
}

// DrawHUD draws the status bar over everything else.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	components.HUD.Get(hudEntry).Draw(screen)
}
