package factory

import (
	"github.com/automoto/isoterrain/archetypes"
	"github.com/automoto/isoterrain/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Zoom:       1.0,
		ZoomTarget: 1.0,
	})
}
