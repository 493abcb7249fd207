package systems

import (
	"unicode"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/isoterrain/components"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/view"
	"github.com/automoto/isoterrain/tags"
)

// UpdateControls handles the actions that are not player movement: quitting,
// zooming, the debug overlay and typed commands.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	switch {
	case GetAction(input, cfg.ActionZoomIn).JustPressed:
		zoomBy(ecs, cfg.Camera.ZoomStep)
	case GetAction(input, cfg.ActionZoomOut).JustPressed:
		zoomBy(ecs, -cfg.Camera.ZoomStep)
	}

	for _, r := range input.TakeChars() {
		switch unicode.ToLower(r) {
		case 'r':
			respawnPlayer(ecs)
		case '0':
			zoomTo(ecs, 1.0)
		}
	}
}

func zoomBy(ecs *ecs.ECS, step float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	zoomTo(ecs, view.StepZoom(camera.ZoomTarget, step, cfg.Camera.ZoomMin, cfg.Camera.ZoomMax))
}

// zoomTo starts a tween from the current zoom to target.
func zoomTo(ecs *ecs.ECS, target float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if target == camera.ZoomTarget {
		return
	}
	camera.ZoomTarget = target
	camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), float32(cfg.Camera.ZoomTweenSeconds), ease.OutQuad)
}

// respawnPlayer puts the player back on the level's spawn point.
func respawnPlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return
	}
	a := components.Actor.Get(playerEntry)
	a.Pos = components.Terrain.Get(terrainEntry).Spawn
	a.YVel = 0
}
