package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isoterrain/shared/terrain"
)

type CameraData struct {
	Position math.Vec2 // Clamped centre in projected world pixels
	Scale    float64   // Screen pixels per world pixel
	Viewport terrain.Viewport

	Zoom       float64
	ZoomTarget float64
	ZoomTween  *gween.Tween // nil when no zoom change is in flight
}

var Camera = donburi.NewComponentType[CameraData]()
