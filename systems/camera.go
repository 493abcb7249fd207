package systems

import (
	"github.com/automoto/isoterrain/components"
	"github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/view"
	"github.com/automoto/isoterrain/tags"
	"github.com/yohamta/donburi/ecs"
)

func lens() view.Lens {
	return view.Lens{
		BaseWidth:  config.Camera.BaseWidth,
		BaseHeight: config.Camera.BaseHeight,
		Factor:     config.Camera.ScaleFactor,
	}
}

func UpdateCamera(e *ecs.ECS) {
	updateCamera(e, config.Camera.FollowSmoothing)
}

// SnapCamera centres the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	updateCamera(e, 1.0)
}

func updateCamera(e *ecs.ECS, smoothing float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	advanceZoom(e, camera)
	camera.Scale = lens().Scale(config.C.Width, config.C.Height, camera.Zoom)
	camera.Viewport = view.Effective(config.C.Width, config.C.Height, camera.Scale)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	pos := components.Actor.Get(playerEntry).Pos
	world := components.Terrain.Get(terrainEntry).World

	focus := view.Focus(pos, config.Player.SpriteHeight)
	target := view.Clamp(focus, world, camera.Viewport)

	camera.Position.X += (target.X - camera.Position.X) * smoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * smoothing
}

// advanceZoom steps the zoom tween by the last frame's duration.
func advanceZoom(e *ecs.ECS, camera *components.CameraData) {
	if camera.ZoomTween == nil {
		return
	}
	dt := 1.0 / float64(config.C.TPS)
	if clockEntry, ok := components.Clock.First(e.World); ok {
		if d := components.Clock.Get(clockEntry).Delta(); d > 0 {
			dt = d
		}
	}
	zoom, finished := camera.ZoomTween.Update(float32(dt))
	camera.Zoom = float64(zoom)
	if finished {
		camera.Zoom = camera.ZoomTarget
		camera.ZoomTween = nil
	}
}
